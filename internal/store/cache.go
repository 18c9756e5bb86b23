package store

import (
	"sync"

	"github.com/samir-141/Gremar/internal/model"
)

// cacheEstudiantes caché en memoria del último conjunto leído o escrito.
//
// Contrato de consistencia: read-through, se reemplaza en cada lectura o
// escritura local exitosa y NUNCA se invalida por escritores externos. Bajo
// el supuesto de proceso escritor único esto es correcto; con otro escritor
// sobre la misma colección el caché queda obsoleto hasta Invalidar().
type cacheEstudiantes struct {
	mu      sync.RWMutex
	datos   []model.Estudiante
	poblado bool
}

// Obtener devuelve una copia del conjunto cacheado y si el caché está poblado.
func (c *cacheEstudiantes) Obtener() ([]model.Estudiante, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.poblado {
		return nil, false
	}
	copia := make([]model.Estudiante, len(c.datos))
	copy(copia, c.datos)
	return copia, true
}

// Reemplazar sustituye el contenido del caché por el conjunto dado.
func (c *cacheEstudiantes) Reemplazar(datos []model.Estudiante) {
	copia := make([]model.Estudiante, len(datos))
	copy(copia, datos)

	c.mu.Lock()
	c.datos = copia
	c.poblado = true
	c.mu.Unlock()
}

// Invalidar vacía el caché; la próxima lectura irá al backend.
func (c *cacheEstudiantes) Invalidar() {
	c.mu.Lock()
	c.datos = nil
	c.poblado = false
	c.mu.Unlock()
}
