package seed

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/barberia-jordan/barberia-api/internal/config"
	"github.com/barberia-jordan/barberia-api/internal/credentials"
	"github.com/barberia-jordan/barberia-api/internal/models"
)

// BootstrapAdmin crea el usuario administrador en el arranque si las
// credenciales vienen configuradas y aún no existe.
func BootstrapAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	users := credentials.NewStore(db)

	existing, err := users.FindByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	_, err = users.Create(ctx, cfg.AdminEmail, cfg.AdminPassword, "Administrador", models.RolAdmin)
	if err != nil {
		return err
	}

	log.Println("admin creado:", cfg.AdminEmail)
	return nil
}

// SampleData inserta barberos y servicios de prueba. No hace nada si ya hay
// barberos cargados.
func SampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Barbero{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	str := func(s string) *string { return &s }

	barberos := []models.Barbero{
		{Nombre: "Juan Carlos", Email: str("juan@example.com"), Telefono: str("1234567890"), Comision: 25.0, Estado: models.EstadoActivo},
		{Nombre: "Pedro López", Email: str("pedro@example.com"), Telefono: str("0987654321"), Comision: 20.0, Estado: models.EstadoActivo},
		{Nombre: "Miguel Ruiz", Email: str("miguel@example.com"), Telefono: str("1122334455"), Comision: 22.0, Estado: models.EstadoActivo},
	}

	servicios := []models.Servicio{
		{Nombre: "Corte de Cabello", Precio: 15.00, Descripcion: "Corte clásico"},
		{Nombre: "Barba", Precio: 10.00, Descripcion: "Afeitado profesional"},
		{Nombre: "Corte + Barba", Precio: 23.00, Descripcion: "Combo completo"},
		{Nombre: "Líneas", Precio: 8.00, Descripcion: "Líneas de precisión"},
	}

	if err := db.Create(&barberos).Error; err != nil {
		return err
	}
	return db.Create(&servicios).Error
}
