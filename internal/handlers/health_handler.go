package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-jordan/barberia-api/internal/httpresp"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "API activa"})
}

// Pool prueba la conectividad y reporta el estado del pool de conexiones.
func (h *HealthHandler) Pool(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}

	stats := sqlDB.Stats()
	httpresp.OK(c, gin.H{
		"pool_size":   stats.MaxOpenConnections,
		"checked_out": stats.InUse,
		"checked_in":  stats.Idle,
		"wait_count":  stats.WaitCount,
	})
}
