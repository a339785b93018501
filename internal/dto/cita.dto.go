package dto

import (
	"github.com/barberia-jordan/barberia-api/internal/models"
	"github.com/barberia-jordan/barberia-api/internal/timeutil"
)

// ClienteNoRegistrado se muestra cuando la cita no tiene cliente asociado.
const ClienteNoRegistrado = "Cliente no registrado"

type CitaDTO struct {
	ID         uint    `json:"id"`
	Cliente    string  `json:"cliente"`
	ClienteID  *uint   `json:"cliente_id"`
	Barbero    string  `json:"barbero"`
	BarberoID  uint    `json:"barbero_id"`
	Servicio   string  `json:"servicio"`
	ServicioID uint    `json:"servicio_id"`
	Precio     float64 `json:"precio"`
	Fecha      string  `json:"fecha"`
	Notas      string  `json:"notas"`
}

// NewCitaDTO espera la cita con Barbero, Servicio y Cliente precargados.
func NewCitaDTO(c *models.Cita) CitaDTO {
	cliente := ClienteNoRegistrado
	if c.Cliente != nil {
		cliente = c.Cliente.Nombre
	}

	return CitaDTO{
		ID:         c.ID,
		Cliente:    cliente,
		ClienteID:  c.ClienteID,
		Barbero:    c.Barbero.Nombre,
		BarberoID:  c.BarberoID,
		Servicio:   c.Servicio.Nombre,
		ServicioID: c.ServicioID,
		Precio:     c.Precio,
		Fecha:      c.Fecha.Format(timeutil.LayoutFechaHora),
		Notas:      c.Notas,
	}
}

func NewCitaListDTO(citas []models.Cita) []CitaDTO {
	out := make([]CitaDTO, 0, len(citas))
	for i := range citas {
		out = append(out, NewCitaDTO(&citas[i]))
	}
	return out
}
