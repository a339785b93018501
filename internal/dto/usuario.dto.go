package dto

import (
	"github.com/barberia-jordan/barberia-api/internal/models"
	"github.com/barberia-jordan/barberia-api/internal/timeutil"
)

type UsuarioDTO struct {
	ID            uint   `json:"id"`
	Email         string `json:"email"`
	Nombre        string `json:"nombre"`
	Rol           string `json:"rol"`
	Estado        string `json:"estado"`
	FechaRegistro string `json:"fecha_registro"`
}

func NewUsuarioDTO(u *models.Usuario) UsuarioDTO {
	return UsuarioDTO{
		ID:            u.ID,
		Email:         u.Email,
		Nombre:        u.Nombre,
		Rol:           u.Rol,
		Estado:        u.Estado,
		FechaRegistro: u.FechaRegistro.Format(timeutil.LayoutFecha),
	}
}
