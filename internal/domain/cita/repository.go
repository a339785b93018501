package cita

import (
	"context"

	"github.com/barberia-jordan/barberia-api/internal/models"
)

// Repository aisla la persistencia de citas y la resolución de sus
// referencias. Las lecturas de cita devuelven las relaciones precargadas.
type Repository interface {
	// -------- Referencias --------
	GetBarbero(ctx context.Context, id uint) (*models.Barbero, error)
	GetServicio(ctx context.Context, id uint) (*models.Servicio, error)
	GetCliente(ctx context.Context, id uint) (*models.Cliente, error)

	// -------- Cita --------
	GetCita(ctx context.Context, id uint) (*models.Cita, error)
	ListCitas(ctx context.Context) ([]models.Cita, error)
	CreateCita(ctx context.Context, c *models.Cita) error
	UpdateCita(ctx context.Context, c *models.Cita) error
	DeleteCita(ctx context.Context, c *models.Cita) error
}
