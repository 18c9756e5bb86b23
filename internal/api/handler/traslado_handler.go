package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/samir-141/Gremar/internal/service"
	"github.com/samir-141/Gremar/pkg/response"
)

// TrasladoHandler handlers HTTP del módulo de traslados
type TrasladoHandler struct {
	trasladoSvc service.TrasladoService
}

// NewTrasladoHandler crea un TrasladoHandler
func NewTrasladoHandler(trasladoSvc service.TrasladoService) *TrasladoHandler {
	return &TrasladoHandler{trasladoSvc: trasladoSvc}
}

// Listar traslados registrados
// GET /traslado/
func (h *TrasladoHandler) Listar(c *gin.Context) {
	traslados, err := h.trasladoSvc.Listar(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, traslados)
}
