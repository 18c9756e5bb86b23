package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/samir-141/Gremar/internal/dto"
	"github.com/samir-141/Gremar/internal/service"
	"github.com/samir-141/Gremar/pkg/response"
)

// EstudianteHandler handlers HTTP del módulo de estudiantes
type EstudianteHandler struct {
	estudianteSvc service.EstudianteService
}

// NewEstudianteHandler crea un EstudianteHandler
func NewEstudianteHandler(estudianteSvc service.EstudianteService) *EstudianteHandler {
	return &EstudianteHandler{estudianteSvc: estudianteSvc}
}

// Listar estudiantes ordenados por GR
// GET /student/
func (h *EstudianteHandler) Listar(c *gin.Context) {
	estudiantes, err := h.estudianteSvc.Listar(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, estudiantes)
}

// Agregar un estudiante nuevo
// POST /student/agregar
func (h *EstudianteHandler) Agregar(c *gin.Context) {
	var req dto.CrearEstudianteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Cuerpo de la solicitud inválido")
		return
	}

	estudiante, err := h.estudianteSvc.Agregar(c.Request.Context(), &req)
	if err != nil {
		h.handleEstudianteError(c, err)
		return
	}

	response.Creado(c, "Estudiante agregado correctamente", estudiante)
}

// FiltrarPorNombre busca por subcadena del nombre
// GET /student/buscar?nombre=
func (h *EstudianteHandler) FiltrarPorNombre(c *gin.Context) {
	nombre := c.Query("nombre")

	estudiantes, err := h.estudianteSvc.FiltrarPorNombre(c.Request.Context(), nombre)
	if err != nil {
		h.handleEstudianteError(c, err)
		return
	}

	response.OK(c, estudiantes)
}

// BuscarPorDNI busca la primera coincidencia exacta de DNI
// GET /student/buscar-dni?dni=
func (h *EstudianteHandler) BuscarPorDNI(c *gin.Context) {
	dni := c.Query("dni")

	estudiantes, err := h.estudianteSvc.BuscarPorDNI(c.Request.Context(), dni)
	if err != nil {
		h.handleEstudianteError(c, err)
		return
	}

	response.OK(c, estudiantes)
}

// Editar actualiza parcialmente un estudiante por id
// POST /student/editar/:id
func (h *EstudianteHandler) Editar(c *gin.Context) {
	id := c.Param("id")

	var req dto.EditarEstudianteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Cuerpo de la solicitud inválido")
		return
	}

	estudiante, err := h.estudianteSvc.Editar(c.Request.Context(), id, &req)
	if err != nil {
		h.handleEstudianteError(c, err)
		return
	}

	response.Actualizado(c, "Estudiante actualizado correctamente", estudiante)
}

// handleEstudianteError traduce los errores del módulo a respuestas HTTP
func (h *EstudianteHandler) handleEstudianteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCamposObligatorios):
		response.BadRequest(c, "Faltan campos obligatorios")
	case errors.Is(err, service.ErrNombreRequerido):
		response.BadRequest(c, "El parámetro 'nombre' es requerido")
	case errors.Is(err, service.ErrDNIRequerido):
		response.BadRequest(c, "El parámetro 'dni' es requerido")
	case errors.Is(err, service.ErrEstudianteNoEncontrado):
		response.NotFound(c, "Estudiante no encontrado")
	default:
		response.InternalError(c)
	}
}
