package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-jordan/barberia-api/internal/httperr"
	"github.com/barberia-jordan/barberia-api/internal/models"
	"github.com/barberia-jordan/barberia-api/internal/timeutil"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List devuelve la auditoría paginada, con filtros opcionales por acción,
// entidad y rango de fechas. Solo admins llegan hasta aquí.
func (h *AuditLogsHandler) List(c *gin.Context) {
	accion := c.Query("accion")
	entidad := c.Query("entidad")
	desdeStr := c.Query("desde")
	hastaStr := c.Query("hasta")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	if accion != "" {
		q = q.Where("accion = ?", accion)
	}
	if entidad != "" {
		q = q.Where("entidad = ?", entidad)
	}
	if desdeStr != "" {
		if desde, err := time.Parse(timeutil.LayoutFecha, desdeStr); err == nil {
			q = q.Where("fecha >= ?", desde)
		}
	}
	if hastaStr != "" {
		if hasta, err := time.Parse(timeutil.LayoutFecha, hastaStr); err == nil {
			q = q.Where("fecha <= ?", hasta.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.FromStore(c, err)
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("fecha DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.FromStore(c, err)
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
