package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberia-jordan/barberia-api/internal/db"
)

// Todos los errores comparten la forma {"error": mensaje}.

type HTTPError struct {
	Error string `json:"error"`
}

func Write(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, HTTPError{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Write(c, http.StatusConflict, message)
}

// FromStore traduce un fallo del datastore: conectividad → 503 reintentable,
// cualquier otra cosa → 500 genérico.
func FromStore(c *gin.Context, err error) {
	if db.IsTransient(err) {
		Write(c, http.StatusServiceUnavailable, "Conexión temporal a BD - reintentar")
		return
	}
	Write(c, http.StatusInternalServerError, "Error interno")
}
