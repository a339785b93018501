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

type BarberoHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBarberoHandler(db *gorm.DB, audit *audit.Dispatcher) *BarberoHandler {
	return &BarberoHandler{db: db, audit: audit}
}

type CrearBarberoRequest struct {
	Nombre   string   `json:"nombre"`
	Email    string   `json:"email"`
	Telefono string   `json:"telefono"`
	Comision *float64 `json:"comision"`
}

func (h *BarberoHandler) List(c *gin.Context) {
	var barberos []models.Barbero
	if err := h.db.WithContext(c.Request.Context()).Find(&barberos).Error; err != nil {
		httperr.FromStore(c, err)
		return
	}

	httpresp.OK(c, dto.NewBarberoListDTO(barberos))
}

func (h *BarberoHandler) Create(c *gin.Context) {
	var req CrearBarberoRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Nombre) == "" {
		httperr.BadRequest(c, "El nombre es requerido")
		return
	}

	comision := 20.0
	if req.Comision != nil {
		comision = *req.Comision
	}

	barbero := models.Barbero{
		Nombre:   strings.TrimSpace(req.Nombre),
		Email:    nilIfEmpty(req.Email),
		Telefono: nilIfEmpty(req.Telefono),
		Comision: comision,
		Estado:   models.EstadoActivo,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&barbero).Error; err != nil {
		if dbpkg.IsDuplicate(err) {
			httperr.Conflict(c, "El email ya está registrado")
			return
		}
		httperr.FromStore(c, err)
		return
	}

	h.dispatch(c, "barbero_creado", barbero.ID)
	httpresp.Created(c, dto.NewBarberoDTO(&barbero))
}

func (h *BarberoHandler) Update(c *gin.Context) {
	barbero, ok := h.find(c)
	if !ok {
		return
	}

	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		httperr.BadRequest(c, "El nombre es requerido")
		return
	}

	if nombre, ok := getString(data, "nombre"); ok {
		barbero.Nombre = nombre
	}
	if email, ok := getString(data, "email"); ok {
		barbero.Email = nilIfEmpty(email)
	}
	if telefono, ok := getString(data, "telefono"); ok {
		barbero.Telefono = nilIfEmpty(telefono)
	}
	if comision, ok := getFloat(data, "comision"); ok {
		barbero.Comision = comision
	}
	if estado, ok := getString(data, "estado"); ok {
		barbero.Estado = estado
	}

	if err := h.db.WithContext(c.Request.Context()).Save(barbero).Error; err != nil {
		httperr.FromStore(c, err)
		return
	}

	h.dispatch(c, "barbero_actualizado", barbero.ID)
	httpresp.OK(c, dto.NewBarberoDTO(barbero))
}

func (h *BarberoHandler) Delete(c *gin.Context) {
	barbero, ok := h.find(c)
	if !ok {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(barbero).Error; err != nil {
		httperr.FromStore(c, err)
		return
	}

	h.dispatch(c, "barbero_eliminado", barbero.ID)
	httpresp.Mensaje(c, "Barbero eliminado correctamente")
}

func (h *BarberoHandler) find(c *gin.Context) (*models.Barbero, bool) {
	id, ok := idParam(c)
	if !ok {
		httperr.NotFound(c, "Barbero no encontrado")
		return nil, false
	}

	var barbero models.Barbero
	if err := h.db.WithContext(c.Request.Context()).First(&barbero, id).Error; err != nil {
		if dbpkg.IsNotFound(err) {
			httperr.NotFound(c, "Barbero no encontrado")
		} else {
			httperr.FromStore(c, err)
		}
		return nil, false
	}
	return &barbero, true
}

func (h *BarberoHandler) dispatch(c *gin.Context, accion string, entidadID uint) {
	usuario := middleware.UsuarioFromContext(c)
	if usuario == nil {
		return
	}
	h.audit.Dispatch(audit.Event{
		UsuarioID: &usuario.ID,
		Accion:    accion,
		Entidad:   "barbero",
		EntidadID: &entidadID,
	})
}
