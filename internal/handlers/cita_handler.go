package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberia-jordan/barberia-api/internal/audit"
	domain "github.com/barberia-jordan/barberia-api/internal/domain/cita"
	"github.com/barberia-jordan/barberia-api/internal/dto"
	"github.com/barberia-jordan/barberia-api/internal/httperr"
	"github.com/barberia-jordan/barberia-api/internal/httpresp"
	"github.com/barberia-jordan/barberia-api/internal/middleware"
	"github.com/barberia-jordan/barberia-api/internal/timeutil"
	ucCita "github.com/barberia-jordan/barberia-api/internal/usecase/cita"
)

type CitaHandler struct {
	repo     domain.Repository
	createUC *ucCita.CreateCita
	updateUC *ucCita.UpdateCita
	audit    *audit.Dispatcher
}

func NewCitaHandler(
	repo domain.Repository,
	createUC *ucCita.CreateCita,
	updateUC *ucCita.UpdateCita,
	audit *audit.Dispatcher,
) *CitaHandler {
	return &CitaHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		audit:    audit,
	}
}

type CrearCitaRequest struct {
	ClienteID  *uint    `json:"cliente_id"`
	BarberoID  *uint    `json:"barbero_id"`
	ServicioID *uint    `json:"servicio_id"`
	Precio     *float64 `json:"precio"`
	Fecha      string   `json:"fecha"`
	Notas      string   `json:"notas"`
}

func (h *CitaHandler) List(c *gin.Context) {
	citas, err := h.repo.ListCitas(c.Request.Context())
	if err != nil {
		httperr.FromStore(c, err)
		return
	}

	httpresp.OK(c, dto.NewCitaListDTO(citas))
}

func (h *CitaHandler) Create(c *gin.Context) {
	var req CrearCitaRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.BarberoID == nil || req.ServicioID == nil || req.Precio == nil {
		httperr.BadRequest(c, "Datos incompletos. Barbero, Servicio y Precio son requeridos")
		return
	}

	in := ucCita.CreateCitaInput{
		ClienteID:  req.ClienteID,
		BarberoID:  *req.BarberoID,
		ServicioID: *req.ServicioID,
		Precio:     *req.Precio,
		Notas:      req.Notas,
	}

	if req.Fecha != "" {
		fecha, err := timeutil.ParseFechaHora(req.Fecha)
		if err != nil {
			httperr.BadRequest(c, "Formato de fecha inválido")
			return
		}
		in.Fecha = &fecha
	}

	usuario := middleware.UsuarioFromContext(c)

	cita, err := h.createUC.Execute(c.Request.Context(), usuario.ID, in)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.Write(c, be.Status, be.Message)
			return
		}
		httperr.FromStore(c, err)
		return
	}

	httpresp.Created(c, dto.NewCitaDTO(cita))
}

func (h *CitaHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		httperr.NotFound(c, "Cita no encontrada")
		return
	}

	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil {
		httperr.BadRequest(c, "Formato de fecha inválido")
		return
	}

	var in ucCita.UpdateCitaInput

	if clienteID, ok := getUint(data, "cliente_id"); ok {
		in.ClienteID = clienteID
		in.ClienteIDSet = true
	}
	if barberoID, ok := getUint(data, "barbero_id"); ok {
		in.BarberoID = barberoID
	}
	if servicioID, ok := getUint(data, "servicio_id"); ok {
		in.ServicioID = servicioID
	}
	if precio, ok := getFloat(data, "precio"); ok {
		in.Precio = &precio
	}
	if notas, ok := getString(data, "notas"); ok {
		in.Notas = &notas
	}
	if fechaStr, ok := getString(data, "fecha"); ok {
		fecha, err := timeutil.ParseFechaHora(fechaStr)
		if err != nil {
			httperr.BadRequest(c, "Formato de fecha inválido")
			return
		}
		in.Fecha = &fecha
	}

	usuario := middleware.UsuarioFromContext(c)

	cita, err := h.updateUC.Execute(c.Request.Context(), usuario.ID, id, in)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.Write(c, be.Status, be.Message)
			return
		}
		httperr.FromStore(c, err)
		return
	}

	httpresp.OK(c, dto.NewCitaDTO(cita))
}

func (h *CitaHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		httperr.NotFound(c, "Cita no encontrada")
		return
	}

	cita, err := h.repo.GetCita(c.Request.Context(), id)
	if err != nil {
		httperr.FromStore(c, err)
		return
	}
	if cita == nil {
		httperr.NotFound(c, "Cita no encontrada")
		return
	}

	if err := h.repo.DeleteCita(c.Request.Context(), cita); err != nil {
		httperr.FromStore(c, err)
		return
	}

	usuario := middleware.UsuarioFromContext(c)
	if usuario != nil {
		h.audit.Dispatch(audit.Event{
			UsuarioID: &usuario.ID,
			Accion:    "cita_eliminada",
			Entidad:   "cita",
			EntidadID: &cita.ID,
		})
	}

	httpresp.Mensaje(c, "Cita eliminada correctamente")
}
