package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-jordan/barberia-api/internal/audit"
	"github.com/barberia-jordan/barberia-api/internal/config"
	"github.com/barberia-jordan/barberia-api/internal/credentials"
	"github.com/barberia-jordan/barberia-api/internal/handlers"
	infraRepo "github.com/barberia-jordan/barberia-api/internal/infra/repository"
	"github.com/barberia-jordan/barberia-api/internal/middleware"
	"github.com/barberia-jordan/barberia-api/internal/token"
	ucCita "github.com/barberia-jordan/barberia-api/internal/usecase/cita"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	tokens := token.NewManager(cfg.SecretKey)
	users := credentials.NewStore(db)

	citaRepo := infraRepo.NewCitaGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — CITAS
	// ======================================================
	createCitaUC := ucCita.NewCreateCita(citaRepo, auditDispatcher)
	updateCitaUC := ucCita.NewUpdateCita(citaRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(users, tokens, auditDispatcher)
	meHandler := handlers.NewMeHandler()

	barberoHandler := handlers.NewBarberoHandler(db, auditDispatcher)
	clienteHandler := handlers.NewClienteHandler(db, auditDispatcher)
	servicioHandler := handlers.NewServicioHandler(db, auditDispatcher)
	citaHandler := handlers.NewCitaHandler(citaRepo, createCitaUC, updateCitaUC, auditDispatcher)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	healthHandler := handlers.NewHealthHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.GET("/health", healthHandler.Health)
		api.GET("/health/pool", healthHandler.Pool)

		api.POST("/auth/registro", authHandler.Registro)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PROTEGIDO (token válido)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthRequired(tokens, users))
		{
			secured.GET("/auth/me", meHandler.GetMe)
			secured.POST("/auth/logout", authHandler.Logout)

			// Lecturas: cualquier rol autenticado.
			secured.GET("/barberos", barberoHandler.List)
			secured.GET("/servicios", servicioHandler.List)

			secured.GET("/clientes", clienteHandler.List)
			secured.POST("/clientes", clienteHandler.Create)
			secured.PUT("/clientes/:id", clienteHandler.Update)
			secured.DELETE("/clientes/:id", clienteHandler.Delete)

			secured.GET("/citas", citaHandler.List)
			secured.POST("/citas", citaHandler.Create)
			secured.PUT("/citas/:id", citaHandler.Update)
			secured.DELETE("/citas/:id", citaHandler.Delete)

			// ------------------------------
			// SOLO ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.AdminRequired())
			{
				admin.POST("/barberos", barberoHandler.Create)
				admin.PUT("/barberos/:id", barberoHandler.Update)
				admin.DELETE("/barberos/:id", barberoHandler.Delete)

				admin.POST("/servicios", servicioHandler.Create)
				admin.PUT("/servicios/:id", servicioHandler.Update)
				admin.DELETE("/servicios/:id", servicioHandler.Delete)

				admin.GET("/auditoria", auditLogsHandler.List)
			}
		}
	}
}
