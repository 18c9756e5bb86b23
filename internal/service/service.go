package service

import (
	"go.uber.org/zap"

	"github.com/samir-141/Gremar/internal/store"
)

// Service punto de entrada agregado de todos los servicios
type Service struct {
	Estudiante EstudianteService
	Export     ExportService
	Traslado   TrasladoService
}

// NewService crea el agregado de servicios
func NewService(almacen store.Almacen, logger *zap.Logger) *Service {
	return &Service{
		Estudiante: NewEstudianteService(almacen, logger),
		Export:     NewExportService(almacen, logger),
		Traslado:   NewTrasladoService(logger),
	}
}
