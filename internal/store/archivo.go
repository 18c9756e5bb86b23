package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/samir-141/Gremar/internal/model"
)

// AlmacenArchivo persiste la colección en un único archivo JSON local:
// un arreglo de registros con sangría de 2 espacios, leído y reescrito
// entero en cada operación. Sin caché (el archivo ES la fuente local).
type AlmacenArchivo struct {
	ruta   string
	logger *zap.Logger
}

// NewAlmacenArchivo crea el backend de archivo JSON
func NewAlmacenArchivo(ruta string, logger *zap.Logger) *AlmacenArchivo {
	return &AlmacenArchivo{ruta: ruta, logger: logger}
}

// ObtenerTodos lee el archivo completo. Un archivo inexistente equivale a
// una colección vacía (primer arranque); cualquier otro error se propaga.
func (a *AlmacenArchivo) ObtenerTodos(_ context.Context) ([]model.Estudiante, error) {
	contenido, err := os.ReadFile(a.ruta)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Estudiante{}, nil
		}
		a.logger.Error("Error al leer el archivo de datos", zap.String("ruta", a.ruta), zap.Error(err))
		return nil, fmt.Errorf("error al leer el archivo de datos: %w", err)
	}

	var datos []model.Estudiante
	if err := json.Unmarshal(contenido, &datos); err != nil {
		a.logger.Error("Error al interpretar el archivo de datos", zap.String("ruta", a.ruta), zap.Error(err))
		return nil, fmt.Errorf("error al interpretar el archivo de datos: %w", err)
	}

	return datos, nil
}

// EscribirTodos reemplaza el archivo completo con el conjunto dado.
func (a *AlmacenArchivo) EscribirTodos(_ context.Context, datos []model.Estudiante) error {
	if datos == nil {
		return ErrDatosInvalidos
	}

	contenido, err := json.MarshalIndent(datos, "", "  ")
	if err != nil {
		a.logger.Error("Error al serializar los datos", zap.Error(err))
		return fmt.Errorf("error al serializar los datos: %w", err)
	}

	if dir := filepath.Dir(a.ruta); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			a.logger.Error("Error al crear el directorio de datos", zap.String("dir", dir), zap.Error(err))
			return fmt.Errorf("error al crear el directorio de datos: %w", err)
		}
	}

	if err := os.WriteFile(a.ruta, contenido, 0o644); err != nil {
		a.logger.Error("Error al escribir el archivo de datos", zap.String("ruta", a.ruta), zap.Error(err))
		return fmt.Errorf("error al escribir el archivo de datos: %w", err)
	}

	return nil
}

// Cerrar no tiene recursos que liberar en el backend de archivo
func (a *AlmacenArchivo) Cerrar() error {
	return nil
}
