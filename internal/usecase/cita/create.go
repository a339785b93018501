package cita

import (
	"context"
	"net/http"
	"time"

	"github.com/barberia-jordan/barberia-api/internal/audit"
	domain "github.com/barberia-jordan/barberia-api/internal/domain/cita"
	"github.com/barberia-jordan/barberia-api/internal/httperr"
	"github.com/barberia-jordan/barberia-api/internal/models"
	"github.com/barberia-jordan/barberia-api/internal/timeutil"
)

type CreateCitaInput struct {
	ClienteID  *uint
	BarberoID  uint
	ServicioID uint
	Precio     float64
	Fecha      *time.Time
	Notas      string
}

type CreateCita struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateCita(repo domain.Repository, audit *audit.Dispatcher) *CreateCita {
	return &CreateCita{repo: repo, audit: audit}
}

// Execute valida que barbero, servicio y (si viene) cliente existan antes de
// insertar. No se detectan choques de horario: la agenda la lleva el personal.
func (uc *CreateCita) Execute(
	ctx context.Context,
	usuarioID uint,
	in CreateCitaInput,
) (*models.Cita, error) {

	barbero, err := uc.repo.GetBarbero(ctx, in.BarberoID)
	if err != nil {
		return nil, err
	}
	if barbero == nil {
		return nil, httperr.ErrBusiness(http.StatusNotFound, "Barbero no encontrado")
	}

	servicio, err := uc.repo.GetServicio(ctx, in.ServicioID)
	if err != nil {
		return nil, err
	}
	if servicio == nil {
		return nil, httperr.ErrBusiness(http.StatusNotFound, "Servicio no encontrado")
	}

	if in.ClienteID != nil {
		cliente, err := uc.repo.GetCliente(ctx, *in.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, httperr.ErrBusiness(http.StatusNotFound, "Cliente no encontrado")
		}
	}

	fecha := timeutil.NowUTC()
	if in.Fecha != nil {
		fecha = *in.Fecha
	}

	nueva := &models.Cita{
		ClienteID:  in.ClienteID,
		BarberoID:  in.BarberoID,
		ServicioID: in.ServicioID,
		Precio:     in.Precio,
		Fecha:      fecha,
		Notas:      in.Notas,
	}

	if err := uc.repo.CreateCita(ctx, nueva); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &usuarioID,
		Accion:    "cita_creada",
		Entidad:   "cita",
		EntidadID: &nueva.ID,
	})

	// Recarga con las relaciones para armar la respuesta.
	return uc.repo.GetCita(ctx, nueva.ID)
}
