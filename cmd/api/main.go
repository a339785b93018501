package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberia-jordan/barberia-api/internal/config"
	dbpkg "github.com/barberia-jordan/barberia-api/internal/db"
	"github.com/barberia-jordan/barberia-api/internal/routes"
	"github.com/barberia-jordan/barberia-api/internal/seed"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := seed.BootstrapAdmin(context.Background(), db, cfg); err != nil {
		log.Fatalf("failed to bootstrap admin: %v", err)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
	}))

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
