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

type ClienteHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClienteHandler(db *gorm.DB, audit *audit.Dispatcher) *ClienteHandler {
	return &ClienteHandler{db: db, audit: audit}
}

type CrearClienteRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

func (h *ClienteHandler) List(c *gin.Context) {
	var clientes []models.Cliente
	if err := h.db.WithContext(c.Request.Context()).Find(&clientes).Error; err != nil {
		httperr.FromStore(c, err)
		return
	}

	httpresp.OK(c, dto.NewClienteListDTO(clientes))
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var req CrearClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Nombre) == "" {
		httperr.BadRequest(c, "El nombre es requerido")
		return
	}

	cliente := models.Cliente{
		Nombre:   strings.TrimSpace(req.Nombre),
		Email:    nilIfEmpty(req.Email),
		Telefono: nilIfEmpty(req.Telefono),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&cliente).Error; err != nil {
		if dbpkg.IsDuplicate(err) {
			httperr.Conflict(c, "El email ya está registrado")
			return
		}
		httperr.FromStore(c, err)
		return
	}

	h.dispatch(c, "cliente_creado", cliente.ID)
	httpresp.Created(c, dto.NewClienteDTO(&cliente))
}

func (h *ClienteHandler) Update(c *gin.Context) {
	cliente, ok := h.find(c)
	if !ok {
		return
	}

	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		httperr.BadRequest(c, "El nombre es requerido")
		return
	}

	if nombre, ok := getString(data, "nombre"); ok {
		cliente.Nombre = nombre
	}
	if email, ok := getString(data, "email"); ok {
		cliente.Email = nilIfEmpty(email)
	}
	if telefono, ok := getString(data, "telefono"); ok {
		cliente.Telefono = nilIfEmpty(telefono)
	}

	if err := h.db.WithContext(c.Request.Context()).Save(cliente).Error; err != nil {
		httperr.FromStore(c, err)
		return
	}

	h.dispatch(c, "cliente_actualizado", cliente.ID)
	httpresp.OK(c, dto.NewClienteDTO(cliente))
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	cliente, ok := h.find(c)
	if !ok {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(cliente).Error; err != nil {
		httperr.FromStore(c, err)
		return
	}

	h.dispatch(c, "cliente_eliminado", cliente.ID)
	httpresp.Mensaje(c, "Cliente eliminado correctamente")
}

func (h *ClienteHandler) find(c *gin.Context) (*models.Cliente, bool) {
	id, ok := idParam(c)
	if !ok {
		httperr.NotFound(c, "Cliente no encontrado")
		return nil, false
	}

	var cliente models.Cliente
	if err := h.db.WithContext(c.Request.Context()).First(&cliente, id).Error; err != nil {
		if dbpkg.IsNotFound(err) {
			httperr.NotFound(c, "Cliente no encontrado")
		} else {
			httperr.FromStore(c, err)
		}
		return nil, false
	}
	return &cliente, true
}

func (h *ClienteHandler) dispatch(c *gin.Context, accion string, entidadID uint) {
	usuario := middleware.UsuarioFromContext(c)
	if usuario == nil {
		return
	}
	h.audit.Dispatch(audit.Event{
		UsuarioID: &usuario.ID,
		Accion:    accion,
		Entidad:   "cliente",
		EntidadID: &entidadID,
	})
}
