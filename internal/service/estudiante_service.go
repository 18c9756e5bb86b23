package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/samir-141/Gremar/internal/dto"
	"github.com/samir-141/Gremar/internal/model"
	"github.com/samir-141/Gremar/internal/store"
)

// ── Errores del módulo de estudiantes ──

var (
	ErrCamposObligatorios     = errors.New("faltan campos obligatorios")
	ErrNombreRequerido        = errors.New("el parámetro 'nombre' es requerido")
	ErrDNIRequerido           = errors.New("el parámetro 'dni' es requerido")
	ErrEstudianteNoEncontrado = errors.New("estudiante no encontrado")
)

// EstudianteService operaciones del padrón de estudiantes.
//
// Cada operación es un ciclo leer-modificar-escribir sobre la colección
// completa, sin token de concurrencia: dos mutaciones simultáneas pueden
// leer el mismo conjunto y la segunda escritura descarta la primera
// (last-write-wins). Es una limitación asumida del diseño, no un invariante.
type EstudianteService interface {
	// Listar devuelve los estudiantes con GR presente, ordenados por GR
	// con colación española. Los registros sin GR se omiten en silencio.
	Listar(ctx context.Context) ([]model.Estudiante, error)

	// Agregar valida los campos obligatorios, genera el id, estampa
	// createdAt y persiste la colección completa.
	Agregar(ctx context.Context, req *dto.CrearEstudianteRequest) (*model.Estudiante, error)

	// FiltrarPorNombre busca por subcadena de APELLIDOS_NOMBRES sin
	// distinguir mayúsculas. Sin coincidencias devuelve un arreglo vacío.
	FiltrarPorNombre(ctx context.Context, nombre string) ([]model.Estudiante, error)

	// BuscarPorDNI devuelve a lo sumo el PRIMER registro con DNI igual
	// exacto, como arreglo de 0 o 1 elementos.
	BuscarPorDNI(ctx context.Context, dni string) ([]model.Estudiante, error)

	// Editar fusiona el parche sobre el registro con ese id, estampa
	// updatedAt y persiste la colección completa.
	Editar(ctx context.Context, id string, req *dto.EditarEstudianteRequest) (*model.Estudiante, error)
}

type estudianteService struct {
	almacen store.Almacen
	logger  *zap.Logger
}

// NewEstudianteService crea una instancia de EstudianteService
func NewEstudianteService(almacen store.Almacen, logger *zap.Logger) EstudianteService {
	return &estudianteService{almacen: almacen, logger: logger}
}

func (s *estudianteService) Listar(ctx context.Context) ([]model.Estudiante, error) {
	datos, err := s.almacen.ObtenerTodos(ctx)
	if err != nil {
		s.logger.Error("Error al obtener los estudiantes", zap.Error(err))
		return nil, err
	}

	validos := make([]model.Estudiante, 0, len(datos))
	for _, e := range datos {
		if e.GR != "" {
			validos = append(validos, e)
		}
	}

	// Orden por GR como texto con colación española, igual que el
	// localeCompare del frontend.
	col := collate.New(language.Spanish)
	sort.SliceStable(validos, func(i, j int) bool {
		return col.CompareString(validos[i].GR, validos[j].GR) < 0
	})

	return validos, nil
}

func (s *estudianteService) Agregar(ctx context.Context, req *dto.CrearEstudianteRequest) (*model.Estudiante, error) {
	nuevo := req.AEstudiante()
	if !nuevo.CamposObligatoriosCompletos() {
		return nil, ErrCamposObligatorios
	}

	datos, err := s.almacen.ObtenerTodos(ctx)
	if err != nil {
		s.logger.Error("Error al obtener los estudiantes", zap.Error(err))
		return nil, err
	}

	nuevo.ID = uuid.NewString()
	nuevo.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	datos = append(datos, nuevo)
	if err := s.almacen.EscribirTodos(ctx, datos); err != nil {
		s.logger.Error("Error al agregar el estudiante", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Estudiante agregado", zap.String("id", nuevo.ID), zap.String("dni", nuevo.DNI))
	return &nuevo, nil
}

func (s *estudianteService) FiltrarPorNombre(ctx context.Context, nombre string) ([]model.Estudiante, error) {
	if nombre == "" {
		return nil, ErrNombreRequerido
	}

	datos, err := s.almacen.ObtenerTodos(ctx)
	if err != nil {
		s.logger.Error("Error al obtener los estudiantes", zap.Error(err))
		return nil, err
	}

	consulta := strings.ToLower(nombre)
	filtrados := []model.Estudiante{}
	for _, e := range datos {
		if strings.Contains(strings.ToLower(e.ApellidosNombres), consulta) {
			filtrados = append(filtrados, e)
		}
	}

	return filtrados, nil
}

func (s *estudianteService) BuscarPorDNI(ctx context.Context, dni string) ([]model.Estudiante, error) {
	if dni == "" {
		return nil, ErrDNIRequerido
	}

	datos, err := s.almacen.ObtenerTodos(ctx)
	if err != nil {
		s.logger.Error("Error al obtener los estudiantes", zap.Error(err))
		return nil, err
	}

	// El DNI se trata como clave única: primera coincidencia exacta.
	for _, e := range datos {
		if e.DNI == dni {
			return []model.Estudiante{e}, nil
		}
	}

	return []model.Estudiante{}, nil
}

func (s *estudianteService) Editar(ctx context.Context, id string, req *dto.EditarEstudianteRequest) (*model.Estudiante, error) {
	datos, err := s.almacen.ObtenerTodos(ctx)
	if err != nil {
		s.logger.Error("Error al obtener los estudiantes", zap.Error(err))
		return nil, err
	}

	indice := -1
	for i := range datos {
		if datos[i].ID == id {
			indice = i
			break
		}
	}
	if indice == -1 {
		return nil, ErrEstudianteNoEncontrado
	}

	req.AplicarA(&datos[indice])
	datos[indice].UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.almacen.EscribirTodos(ctx, datos); err != nil {
		s.logger.Error("Error al actualizar el estudiante", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	actualizado := datos[indice]
	s.logger.Info("Estudiante actualizado", zap.String("id", id))
	return &actualizado, nil
}
