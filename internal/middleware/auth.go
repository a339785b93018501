package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/barberia-jordan/barberia-api/internal/credentials"
	"github.com/barberia-jordan/barberia-api/internal/httperr"
	"github.com/barberia-jordan/barberia-api/internal/models"
	"github.com/barberia-jordan/barberia-api/internal/token"
)

const (
	ContextUsuario   = "usuario"
	ContextUsuarioID = "usuarioID"
	ContextRol       = "rol"
)

// AuthRequired resuelve la identidad de la request: extrae el Bearer token,
// lo verifica y carga el usuario. Cada paso corta con 401; un fallo de
// conectividad al cargar el usuario corta con 503 para que el cliente
// reintente.
func AuthRequired(tokens *token.Manager, users *credentials.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "Token no encontrado")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			httperr.Unauthorized(c, "Formato de token inválido")
			return
		}

		usuarioID, err := tokens.Verify(parts[1])
		if err != nil {
			httperr.Unauthorized(c, "Token inválido o expirado")
			return
		}

		usuario, err := users.FindByID(c.Request.Context(), usuarioID)
		if err != nil {
			httperr.FromStore(c, err)
			return
		}
		if usuario == nil {
			httperr.Unauthorized(c, "Usuario no encontrado")
			return
		}

		c.Set(ContextUsuario, usuario)
		c.Set(ContextUsuarioID, usuario.ID)
		c.Set(ContextRol, usuario.Rol)

		c.Next()
	}
}

// AdminRequired corre después de AuthRequired y exige rol admin.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		usuario := UsuarioFromContext(c)
		if usuario == nil || !usuario.EsAdmin() {
			httperr.Forbidden(c, "Acceso denegado. Se requiere rol de administrador")
			return
		}

		c.Next()
	}
}

// UsuarioFromContext devuelve la identidad resuelta o nil.
func UsuarioFromContext(c *gin.Context) *models.Usuario {
	val, exists := c.Get(ContextUsuario)
	if !exists {
		return nil
	}
	usuario, _ := val.(*models.Usuario)
	return usuario
}
