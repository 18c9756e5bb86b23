package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/samir-141/Gremar/internal/model"
)

// AlmacenFirestore persiste la colección en Firestore: un documento por
// registro, con el campo id como id de documento. La escritura es un único
// batch de operaciones Set, atómico solo en la medida en que lo garantiza el
// batch de Firestore; un fallo parcial se propaga sin tratamiento especial.
//
// Lleva el caché read-through descrito en cache.go: las lecturas sirven el
// último conjunto leído o escrito localmente y no ven escrituras de otros
// procesos.
type AlmacenFirestore struct {
	cliente   *firestore.Client
	coleccion string
	cache     cacheEstudiantes
	logger    *zap.Logger
}

// NewAlmacenFirestore conecta con Firestore usando el archivo de credenciales
func NewAlmacenFirestore(ctx context.Context, proyecto, credenciales, coleccion string, logger *zap.Logger) (*AlmacenFirestore, error) {
	var opts []option.ClientOption
	if credenciales != "" {
		opts = append(opts, option.WithCredentialsFile(credenciales))
	}

	cliente, err := firestore.NewClient(ctx, proyecto, opts...)
	if err != nil {
		return nil, fmt.Errorf("error al conectar con Firestore: %w", err)
	}

	return &AlmacenFirestore{
		cliente:   cliente,
		coleccion: coleccion,
		logger:    logger,
	}, nil
}

// ObtenerTodos devuelve el caché si está poblado; si no, recorre la
// colección completa y puebla el caché con el resultado.
func (a *AlmacenFirestore) ObtenerTodos(ctx context.Context) ([]model.Estudiante, error) {
	if datos, ok := a.cache.Obtener(); ok {
		return datos, nil
	}

	datos := []model.Estudiante{}
	iter := a.cliente.Collection(a.coleccion).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			a.logger.Error("Error al obtener datos de Firestore", zap.Error(err))
			return nil, fmt.Errorf("error al obtener datos de Firestore: %w", err)
		}

		var e model.Estudiante
		if err := doc.DataTo(&e); err != nil {
			a.logger.Error("Error al interpretar un documento de Firestore",
				zap.String("doc", doc.Ref.ID), zap.Error(err))
			return nil, fmt.Errorf("error al interpretar el documento %s: %w", doc.Ref.ID, err)
		}
		if e.ID == "" {
			e.ID = doc.Ref.ID
		}
		datos = append(datos, e)
	}

	a.cache.Reemplazar(datos)
	return datos, nil
}

// EscribirTodos reemplaza la colección con un único batch de Set por
// registro y refresca el caché con el conjunto escrito.
func (a *AlmacenFirestore) EscribirTodos(ctx context.Context, datos []model.Estudiante) error {
	if datos == nil {
		return ErrDatosInvalidos
	}

	// Un batch sin escrituras no puede confirmarse; con el conjunto vacío
	// solo se refresca el caché.
	if len(datos) == 0 {
		a.cache.Reemplazar(datos)
		return nil
	}

	batch := a.cliente.Batch()
	for i := range datos {
		ref := a.cliente.Collection(a.coleccion).Doc(datos[i].ID)
		batch.Set(ref, datos[i])
	}

	if _, err := batch.Commit(ctx); err != nil {
		a.logger.Error("Error al escribir en Firestore", zap.Error(err))
		return fmt.Errorf("error al escribir en Firestore: %w", err)
	}

	a.cache.Reemplazar(datos)
	return nil
}

// InvalidarCache descarta el caché; la próxima lectura volverá a Firestore.
// Útil cuando otro proceso escribió la colección.
func (a *AlmacenFirestore) InvalidarCache() {
	a.cache.Invalidar()
}

// Cerrar cierra el cliente de Firestore
func (a *AlmacenFirestore) Cerrar() error {
	return a.cliente.Close()
}
