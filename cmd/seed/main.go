package main

import (
	"log"

	"github.com/barberia-jordan/barberia-api/internal/config"
	dbpkg "github.com/barberia-jordan/barberia-api/internal/db"
	"github.com/barberia-jordan/barberia-api/internal/seed"
)

func main() {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := seed.SampleData(db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("datos de prueba agregados")
}
