package handler

import "github.com/samir-141/Gremar/internal/service"

// Handler punto de entrada agregado de todos los handlers
type Handler struct {
	Estudiante *EstudianteHandler
	Export     *ExportHandler
	Traslado   *TrasladoHandler
}

// NewHandler crea el agregado de handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Estudiante: NewEstudianteHandler(svc.Estudiante),
		Export:     NewExportHandler(svc.Export),
		Traslado:   NewTrasladoHandler(svc.Traslado),
	}
}
