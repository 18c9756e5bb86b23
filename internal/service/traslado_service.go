package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/samir-141/Gremar/internal/model"
)

// TrasladoService módulo de traslados de estudiantes.
//
// El módulo está en construcción: por ahora solo expone el listado, que
// responde con la colección vacía hasta que se defina la persistencia de
// traslados.
// TODO: persistir los traslados en el mismo Almacen cuando se cierre el
// formato de la ficha de traslado.
type TrasladoService interface {
	// Listar devuelve los traslados registrados.
	Listar(ctx context.Context) ([]model.Traslado, error)
}

type trasladoService struct {
	logger *zap.Logger
}

// NewTrasladoService crea una instancia de TrasladoService
func NewTrasladoService(logger *zap.Logger) TrasladoService {
	return &trasladoService{logger: logger}
}

func (s *trasladoService) Listar(_ context.Context) ([]model.Traslado, error) {
	return []model.Traslado{}, nil
}
