package dto

import (
	"github.com/barberia-jordan/barberia-api/internal/models"
	"github.com/barberia-jordan/barberia-api/internal/timeutil"
)

type ServicioDTO struct {
	ID            uint    `json:"id"`
	Nombre        string  `json:"nombre"`
	Precio        float64 `json:"precio"`
	Descripcion   string  `json:"descripcion"`
	FechaRegistro string  `json:"fecha_registro"`
}

func NewServicioDTO(s *models.Servicio) ServicioDTO {
	return ServicioDTO{
		ID:            s.ID,
		Nombre:        s.Nombre,
		Precio:        s.Precio,
		Descripcion:   s.Descripcion,
		FechaRegistro: s.FechaRegistro.Format(timeutil.LayoutFecha),
	}
}

func NewServicioListDTO(servicios []models.Servicio) []ServicioDTO {
	out := make([]ServicioDTO, 0, len(servicios))
	for i := range servicios {
		out = append(out, NewServicioDTO(&servicios[i]))
	}
	return out
}
