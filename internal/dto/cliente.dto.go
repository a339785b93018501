package dto

import (
	"github.com/barberia-jordan/barberia-api/internal/models"
	"github.com/barberia-jordan/barberia-api/internal/timeutil"
)

type ClienteDTO struct {
	ID            uint    `json:"id"`
	Nombre        string  `json:"nombre"`
	Email         *string `json:"email"`
	Telefono      *string `json:"telefono"`
	FechaRegistro string  `json:"fecha_registro"`
}

func NewClienteDTO(c *models.Cliente) ClienteDTO {
	return ClienteDTO{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Email:         c.Email,
		Telefono:      c.Telefono,
		FechaRegistro: c.FechaRegistro.Format(timeutil.LayoutFecha),
	}
}

func NewClienteListDTO(clientes []models.Cliente) []ClienteDTO {
	out := make([]ClienteDTO, 0, len(clientes))
	for i := range clientes {
		out = append(out, NewClienteDTO(&clientes[i]))
	}
	return out
}
