package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/barberia-jordan/barberia-api/internal/audit"
	"github.com/barberia-jordan/barberia-api/internal/credentials"
	"github.com/barberia-jordan/barberia-api/internal/dto"
	"github.com/barberia-jordan/barberia-api/internal/httperr"
	"github.com/barberia-jordan/barberia-api/internal/httpresp"
	"github.com/barberia-jordan/barberia-api/internal/token"
	"github.com/barberia-jordan/barberia-api/internal/validators"
)

type AuthHandler struct {
	users  *credentials.Store
	tokens *token.Manager
	audit  *audit.Dispatcher
}

func NewAuthHandler(users *credentials.Store, tokens *token.Manager, audit *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, audit: audit}
}

// --------- Requests ---------

type RegistroRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Registro(c *gin.Context) {
	var req RegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Email == "" || req.Password == "" || req.Nombre == "" {
		httperr.BadRequest(c, "Email, password y nombre son requeridos")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "Email inválido")
		return
	}

	usuario, err := h.users.Create(c.Request.Context(), email, req.Password, req.Nombre, req.Rol)
	if err != nil {
		if err == credentials.ErrEmailRegistrado {
			httperr.Conflict(c, "El email ya está registrado")
			return
		}
		httperr.FromStore(c, err)
		return
	}

	tok, err := h.tokens.Issue(usuario.ID)
	if err != nil {
		httperr.Write(c, http.StatusInternalServerError, "Error interno")
		return
	}

	h.audit.Dispatch(audit.Event{
		UsuarioID: &usuario.ID,
		Accion:    "usuario_registrado",
		Entidad:   "usuario",
		EntidadID: &usuario.ID,
	})

	httpresp.Created(c, gin.H{
		"mensaje": "Usuario registrado exitosamente",
		"token":   tok,
		"usuario": dto.NewUsuarioDTO(usuario),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "Email y password son requeridos")
		return
	}

	usuario, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		httperr.FromStore(c, err)
		return
	}

	// Respuesta uniforme: no se revela si el email existe.
	if usuario == nil || !h.users.VerifyPassword(usuario, req.Password) {
		httperr.Unauthorized(c, "Email o contraseña incorrectos")
		return
	}

	tok, err := h.tokens.Issue(usuario.ID)
	if err != nil {
		httperr.Write(c, http.StatusInternalServerError, "Error interno")
		return
	}

	httpresp.OK(c, gin.H{
		"mensaje": "Login exitoso",
		"token":   tok,
		"usuario": dto.NewUsuarioDTO(usuario),
	})
}

// Logout no guarda estado de sesión en el servidor: el token sigue siendo
// válido hasta expirar y es el cliente quien lo descarta.
func (h *AuthHandler) Logout(c *gin.Context) {
	httpresp.Mensaje(c, "Sesión cerrada")
}
