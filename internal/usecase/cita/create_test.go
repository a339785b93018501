package cita

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/barberia-jordan/barberia-api/internal/audit"
	dbpkg "github.com/barberia-jordan/barberia-api/internal/db"
	"github.com/barberia-jordan/barberia-api/internal/httperr"
	infraRepo "github.com/barberia-jordan/barberia-api/internal/infra/repository"
	"github.com/barberia-jordan/barberia-api/internal/models"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	repo     *infraRepo.CitaGormRepository
	create   *CreateCita
	update   *UpdateCita
	barbero  models.Barbero
	servicio models.Servicio
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb, err := dbpkg.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := dbpkg.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := &fixture{
		db:       gdb,
		repo:     infraRepo.NewCitaGormRepository(gdb),
		barbero:  models.Barbero{Nombre: "Juan", Comision: 20, Estado: models.EstadoActivo},
		servicio: models.Servicio{Nombre: "Corte", Precio: 15},
	}
	if err := gdb.Create(&f.barbero).Error; err != nil {
		t.Fatalf("seed barbero: %v", err)
	}
	if err := gdb.Create(&f.servicio).Error; err != nil {
		t.Fatalf("seed servicio: %v", err)
	}

	dispatcher := audit.NewDispatcher(audit.New(gdb))
	f.create = NewCreateCita(f.repo, dispatcher)
	f.update = NewUpdateCita(f.repo, dispatcher)
	return f
}

func TestCreateCita_BarberoInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.create.Execute(context.Background(), 1, CreateCitaInput{
		BarberoID:  999,
		ServicioID: f.servicio.ID,
		Precio:     15,
	})

	be, ok := httperr.AsBusiness(err)
	if !ok || be.Status != http.StatusNotFound || be.Message != "Barbero no encontrado" {
		t.Fatalf("expected 404 business error, got %v", err)
	}
}

func TestCreateCita_FechaPorDefecto(t *testing.T) {
	f := newFixture(t)

	antes := time.Now().UTC().Add(-time.Second)
	cita, err := f.create.Execute(context.Background(), 1, CreateCitaInput{
		BarberoID:  f.barbero.ID,
		ServicioID: f.servicio.ID,
		Precio:     15,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if cita.Fecha.Before(antes) {
		t.Fatalf("fecha should default to now, got %v", cita.Fecha)
	}
	if cita.Barbero.Nombre != "Juan" || cita.Servicio.Nombre != "Corte" {
		t.Fatalf("relations not preloaded: %+v", cita)
	}
	if cita.ClienteID != nil {
		t.Fatalf("expected no cliente, got %v", cita.ClienteID)
	}
}

func TestUpdateCita_DesasociaCliente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cliente := models.Cliente{Nombre: "Carlos"}
	if err := f.db.Create(&cliente).Error; err != nil {
		t.Fatalf("seed cliente: %v", err)
	}

	cita, err := f.create.Execute(ctx, 1, CreateCitaInput{
		ClienteID:  &cliente.ID,
		BarberoID:  f.barbero.ID,
		ServicioID: f.servicio.ID,
		Precio:     15,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	actualizada, err := f.update.Execute(ctx, 1, cita.ID, UpdateCitaInput{
		ClienteID:    nil,
		ClienteIDSet: true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if actualizada.ClienteID != nil {
		t.Fatalf("cliente not cleared: %v", actualizada.ClienteID)
	}
}

func TestUpdateCita_Inexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.update.Execute(context.Background(), 1, 999, UpdateCitaInput{})
	be, ok := httperr.AsBusiness(err)
	if !ok || be.Status != http.StatusNotFound || be.Message != "Cita no encontrada" {
		t.Fatalf("expected 404 business error, got %v", err)
	}
}
