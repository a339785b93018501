package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbpkg "github.com/barberia-jordan/barberia-api/internal/db"
	"github.com/barberia-jordan/barberia-api/internal/models"
)

type CitaGormRepository struct {
	db *gorm.DB
}

func NewCitaGormRepository(db *gorm.DB) *CitaGormRepository {
	return &CitaGormRepository{db: db}
}

// Las ausencias se devuelven como (nil, nil); solo los fallos reales del
// datastore llegan como error.

func (r *CitaGormRepository) GetBarbero(ctx context.Context, id uint) (*models.Barbero, error) {
	var barbero models.Barbero
	if err := r.db.WithContext(ctx).First(&barbero, id).Error; err != nil {
		if dbpkg.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &barbero, nil
}

func (r *CitaGormRepository) GetServicio(ctx context.Context, id uint) (*models.Servicio, error) {
	var servicio models.Servicio
	if err := r.db.WithContext(ctx).First(&servicio, id).Error; err != nil {
		if dbpkg.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &servicio, nil
}

func (r *CitaGormRepository) GetCliente(ctx context.Context, id uint) (*models.Cliente, error) {
	var cliente models.Cliente
	if err := r.db.WithContext(ctx).First(&cliente, id).Error; err != nil {
		if dbpkg.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &cliente, nil
}

func (r *CitaGormRepository) GetCita(ctx context.Context, id uint) (*models.Cita, error) {
	var cita models.Cita
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Barbero").
		Preload("Servicio").
		First(&cita, id).Error
	if err != nil {
		if dbpkg.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &cita, nil
}

func (r *CitaGormRepository) ListCitas(ctx context.Context) ([]models.Cita, error) {
	var citas []models.Cita
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Barbero").
		Preload("Servicio").
		Order("fecha DESC").
		Find(&citas).Error
	if err != nil {
		return nil, err
	}
	return citas, nil
}

func (r *CitaGormRepository) CreateCita(ctx context.Context, c *models.Cita) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
}

func (r *CitaGormRepository) UpdateCita(ctx context.Context, c *models.Cita) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(c).Error
}

func (r *CitaGormRepository) DeleteCita(ctx context.Context, c *models.Cita) error {
	return r.db.WithContext(ctx).Delete(c).Error
}
