package store

import (
	"context"
	"errors"

	"github.com/samir-141/Gremar/internal/model"
)

// Errores de la capa de almacenamiento.
var (
	// ErrDatosInvalidos la entrada de EscribirTodos no es una colección válida.
	ErrDatosInvalidos = errors.New("datos inválidos, debe ser un arreglo de estudiantes")
)

// Almacen acceso a la colección completa de estudiantes.
//
// El contrato es deliberadamente de grano grueso: la colección se lee y se
// reescribe SIEMPRE entera. No hay operaciones por registro ni token de
// versión, así que dos escritores concurrentes terminan en last-write-wins
// sobre toda la colección. El sistema asume un único proceso escritor.
type Almacen interface {
	// ObtenerTodos devuelve todos los registros persistidos. Los errores del
	// backend se propagan al llamador; no hay reintentos.
	ObtenerTodos(ctx context.Context) ([]model.Estudiante, error)

	// EscribirTodos reemplaza la colección completa. Una entrada nil falla
	// con ErrDatosInvalidos.
	EscribirTodos(ctx context.Context, datos []model.Estudiante) error

	// Cerrar libera los recursos del backend.
	Cerrar() error
}
