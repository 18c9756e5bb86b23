package service

import (
	"context"

	"github.com/samir-141/Gremar/internal/model"
	"github.com/samir-141/Gremar/internal/store"
)

// mockAlmacen implementación en memoria de store.Almacen para pruebas.
//
// Con lecturaCongelada activo las lecturas devuelven siempre la foto inicial
// aunque haya escrituras posteriores, igual que un caché obsoleto que nunca
// ve las escrituras de otro proceso.
type mockAlmacen struct {
	datos            []model.Estudiante
	fotoInicial      []model.Estudiante
	lecturaCongelada bool
	errObtener       error
	errEscribir      error
	escrituras       int
}

func newMockAlmacen(iniciales []model.Estudiante) *mockAlmacen {
	datos := make([]model.Estudiante, len(iniciales))
	copy(datos, iniciales)
	foto := make([]model.Estudiante, len(iniciales))
	copy(foto, iniciales)
	return &mockAlmacen{datos: datos, fotoInicial: foto}
}

func (m *mockAlmacen) ObtenerTodos(_ context.Context) ([]model.Estudiante, error) {
	if m.errObtener != nil {
		return nil, m.errObtener
	}
	fuente := m.datos
	if m.lecturaCongelada {
		fuente = m.fotoInicial
	}
	copia := make([]model.Estudiante, len(fuente))
	copy(copia, fuente)
	return copia, nil
}

func (m *mockAlmacen) EscribirTodos(_ context.Context, datos []model.Estudiante) error {
	if datos == nil {
		return store.ErrDatosInvalidos
	}
	if m.errEscribir != nil {
		return m.errEscribir
	}
	copia := make([]model.Estudiante, len(datos))
	copy(copia, datos)
	m.datos = copia
	m.escrituras++
	return nil
}

func (m *mockAlmacen) Cerrar() error {
	return nil
}
