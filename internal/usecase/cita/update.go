package cita

import (
	"context"
	"net/http"
	"time"

	"github.com/barberia-jordan/barberia-api/internal/audit"
	domain "github.com/barberia-jordan/barberia-api/internal/domain/cita"
	"github.com/barberia-jordan/barberia-api/internal/httperr"
	"github.com/barberia-jordan/barberia-api/internal/models"
)

// UpdateCitaInput es una actualización parcial: solo los campos marcados como
// presentes en el body se aplican. ClienteID presente con valor nulo
// desasocia el cliente.
type UpdateCitaInput struct {
	ClienteID    *uint
	ClienteIDSet bool

	BarberoID  *uint
	ServicioID *uint
	Precio     *float64
	Fecha      *time.Time
	Notas      *string
}

type UpdateCita struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateCita(repo domain.Repository, audit *audit.Dispatcher) *UpdateCita {
	return &UpdateCita{repo: repo, audit: audit}
}

func (uc *UpdateCita) Execute(
	ctx context.Context,
	usuarioID uint,
	citaID uint,
	in UpdateCitaInput,
) (*models.Cita, error) {

	cita, err := uc.repo.GetCita(ctx, citaID)
	if err != nil {
		return nil, err
	}
	if cita == nil {
		return nil, httperr.ErrBusiness(http.StatusNotFound, "Cita no encontrada")
	}

	if in.ClienteIDSet {
		if in.ClienteID != nil {
			cliente, err := uc.repo.GetCliente(ctx, *in.ClienteID)
			if err != nil {
				return nil, err
			}
			if cliente == nil {
				return nil, httperr.ErrBusiness(http.StatusNotFound, "Cliente no encontrado")
			}
		}
		cita.ClienteID = in.ClienteID
	}

	if in.BarberoID != nil {
		barbero, err := uc.repo.GetBarbero(ctx, *in.BarberoID)
		if err != nil {
			return nil, err
		}
		if barbero == nil {
			return nil, httperr.ErrBusiness(http.StatusNotFound, "Barbero no encontrado")
		}
		cita.BarberoID = *in.BarberoID
	}

	if in.ServicioID != nil {
		servicio, err := uc.repo.GetServicio(ctx, *in.ServicioID)
		if err != nil {
			return nil, err
		}
		if servicio == nil {
			return nil, httperr.ErrBusiness(http.StatusNotFound, "Servicio no encontrado")
		}
		cita.ServicioID = *in.ServicioID
	}

	if in.Precio != nil {
		cita.Precio = *in.Precio
	}
	if in.Fecha != nil {
		cita.Fecha = *in.Fecha
	}
	if in.Notas != nil {
		cita.Notas = *in.Notas
	}

	if err := uc.repo.UpdateCita(ctx, cita); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &usuarioID,
		Accion:    "cita_actualizada",
		Entidad:   "cita",
		EntidadID: &cita.ID,
	})

	return uc.repo.GetCita(ctx, cita.ID)
}
