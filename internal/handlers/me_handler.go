package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberia-jordan/barberia-api/internal/dto"
	"github.com/barberia-jordan/barberia-api/internal/httperr"
	"github.com/barberia-jordan/barberia-api/internal/httpresp"
	"github.com/barberia-jordan/barberia-api/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	usuario := middleware.UsuarioFromContext(c)
	if usuario == nil {
		httperr.Unauthorized(c, "Usuario no encontrado")
		return
	}

	httpresp.OK(c, dto.NewUsuarioDTO(usuario))
}
