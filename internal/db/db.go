package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/barberia-jordan/barberia-api/internal/config"
	"github.com/barberia-jordan/barberia-api/internal/models"
)

// NewDB abre la conexión y migra el esquema. Sin DATABASE_URL se usa un
// archivo SQLite local, igual que en desarrollo.
func NewDB(cfg *config.Config) *gorm.DB {
	gdb, err := Open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(gdb); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return gdb
}

func Open(url string) (*gorm.DB, error) {
	dialector := gorm.Dialector(sqlite.Open("barberia.db"))
	if url != "" {
		dialector = postgres.Open(url)
	}

	return gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
}

func OpenSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
	})
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Usuario{},
		&models.Barbero{},
		&models.Cliente{},
		&models.Servicio{},
		&models.Cita{},
		&models.AuditLog{},
	)
}
