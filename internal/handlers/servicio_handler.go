package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberia-jordan/barberia-api/internal/audit"
	dbpkg "github.com/barberia-jordan/barberia-api/internal/db"
	"github.com/barberia-jordan/barberia-api/internal/dto"
	"github.com/barberia-jordan/barberia-api/internal/httperr"
	"github.com/barberia-jordan/barberia-api/internal/httpresp"
	"github.com/barberia-jordan/barberia-api/internal/middleware"
	"github.com/barberia-jordan/barberia-api/internal/models"
)

type ServicioHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServicioHandler(db *gorm.DB, audit *audit.Dispatcher) *ServicioHandler {
	return &ServicioHandler{db: db, audit: audit}
}

type CrearServicioRequest struct {
	Nombre      string  `json:"nombre"`
	Precio      float64 `json:"precio"`
	Descripcion string  `json:"descripcion"`
}

func (h *ServicioHandler) List(c *gin.Context) {
	var servicios []models.Servicio
	if err := h.db.WithContext(c.Request.Context()).Find(&servicios).Error; err != nil {
		httperr.FromStore(c, err)
		return
	}

	httpresp.OK(c, dto.NewServicioListDTO(servicios))
}

func (h *ServicioHandler) Create(c *gin.Context) {
	var req CrearServicioRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.Nombre) == "" || req.Precio == 0 {
		httperr.BadRequest(c, "Nombre y precio son requeridos")
		return
	}

	servicio := models.Servicio{
		Nombre:      req.Nombre,
		Precio:      req.Precio,
		Descripcion: req.Descripcion,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&servicio).Error; err != nil {
		httperr.FromStore(c, err)
		return
	}

	h.dispatch(c, "servicio_creado", servicio.ID)
	httpresp.Created(c, dto.NewServicioDTO(&servicio))
}

func (h *ServicioHandler) Update(c *gin.Context) {
	servicio, ok := h.find(c)
	if !ok {
		return
	}

	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		httperr.BadRequest(c, "Nombre y precio son requeridos")
		return
	}

	if nombre, ok := getString(data, "nombre"); ok {
		servicio.Nombre = nombre
	}
	if precio, ok := getFloat(data, "precio"); ok {
		servicio.Precio = precio
	}
	if descripcion, ok := getString(data, "descripcion"); ok {
		servicio.Descripcion = descripcion
	}

	if err := h.db.WithContext(c.Request.Context()).Save(servicio).Error; err != nil {
		httperr.FromStore(c, err)
		return
	}

	h.dispatch(c, "servicio_actualizado", servicio.ID)
	httpresp.OK(c, dto.NewServicioDTO(servicio))
}

func (h *ServicioHandler) Delete(c *gin.Context) {
	servicio, ok := h.find(c)
	if !ok {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(servicio).Error; err != nil {
		httperr.FromStore(c, err)
		return
	}

	h.dispatch(c, "servicio_eliminado", servicio.ID)
	httpresp.Mensaje(c, "Servicio eliminado correctamente")
}

func (h *ServicioHandler) find(c *gin.Context) (*models.Servicio, bool) {
	id, ok := idParam(c)
	if !ok {
		httperr.NotFound(c, "Servicio no encontrado")
		return nil, false
	}

	var servicio models.Servicio
	if err := h.db.WithContext(c.Request.Context()).First(&servicio, id).Error; err != nil {
		if dbpkg.IsNotFound(err) {
			httperr.NotFound(c, "Servicio no encontrado")
		} else {
			httperr.FromStore(c, err)
		}
		return nil, false
	}
	return &servicio, true
}

func (h *ServicioHandler) dispatch(c *gin.Context, accion string, entidadID uint) {
	usuario := middleware.UsuarioFromContext(c)
	if usuario == nil {
		return
	}
	h.audit.Dispatch(audit.Event{
		UsuarioID: &usuario.ID,
		Accion:    accion,
		Entidad:   "servicio",
		EntidadID: &entidadID,
	})
}
