package dto

import (
	"github.com/barberia-jordan/barberia-api/internal/models"
	"github.com/barberia-jordan/barberia-api/internal/timeutil"
)

type BarberoDTO struct {
	ID            uint    `json:"id"`
	Nombre        string  `json:"nombre"`
	Email         *string `json:"email"`
	Telefono      *string `json:"telefono"`
	Comision      float64 `json:"comision"`
	Estado        string  `json:"estado"`
	FechaRegistro string  `json:"fecha_registro"`
}

func NewBarberoDTO(b *models.Barbero) BarberoDTO {
	return BarberoDTO{
		ID:            b.ID,
		Nombre:        b.Nombre,
		Email:         b.Email,
		Telefono:      b.Telefono,
		Comision:      b.Comision,
		Estado:        b.Estado,
		FechaRegistro: b.FechaRegistro.Format(timeutil.LayoutFecha),
	}
}

func NewBarberoListDTO(barberos []models.Barbero) []BarberoDTO {
	out := make([]BarberoDTO, 0, len(barberos))
	for i := range barberos {
		out = append(out, NewBarberoDTO(&barberos[i]))
	}
	return out
}
