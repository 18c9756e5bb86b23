package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/samir-141/Gremar/internal/dto"
	"github.com/samir-141/Gremar/internal/model"
)

func ptr(s string) *string { return &s }

func setupEstudianteService(iniciales []model.Estudiante) (EstudianteService, *mockAlmacen) {
	almacen := newMockAlmacen(iniciales)
	return NewEstudianteService(almacen, zap.NewNop()), almacen
}

// ── Listar ──

func TestEstudianteService_Listar_OrdenaPorGR(t *testing.T) {
	svc, _ := setupEstudianteService([]model.Estudiante{
		{ID: "1", GR: "5B", DNI: "1", ApellidosNombres: "Uno", Sexo: "F"},
		{ID: "2", GR: "1A", DNI: "2", ApellidosNombres: "Dos", Sexo: "M"},
		{ID: "3", GR: "3C", DNI: "3", ApellidosNombres: "Tres", Sexo: "F"},
	})

	lista, err := svc.Listar(context.Background())
	if err != nil {
		t.Fatalf("Listar debe funcionar: %v", err)
	}
	if len(lista) != 3 {
		t.Fatalf("se esperaban 3 registros, hay %d", len(lista))
	}
	if lista[0].GR != "1A" || lista[1].GR != "3C" || lista[2].GR != "5B" {
		t.Errorf("orden por GR incorrecto: %s, %s, %s", lista[0].GR, lista[1].GR, lista[2].GR)
	}
}

func TestEstudianteService_Listar_OmiteSinGR(t *testing.T) {
	svc, _ := setupEstudianteService([]model.Estudiante{
		{ID: "1", GR: "5A", DNI: "1", ApellidosNombres: "Uno", Sexo: "F"},
		{ID: "2", GR: "", DNI: "2", ApellidosNombres: "Dos", Sexo: "M"},
	})

	lista, err := svc.Listar(context.Background())
	if err != nil {
		t.Fatalf("Listar debe funcionar: %v", err)
	}
	if len(lista) != 1 || lista[0].ID != "1" {
		t.Errorf("los registros sin GR deben omitirse, quedó: %+v", lista)
	}
}

func TestEstudianteService_Listar_ErrorDeAlmacen(t *testing.T) {
	svc, almacen := setupEstudianteService(nil)
	almacen.errObtener = errors.New("backend caído")

	if _, err := svc.Listar(context.Background()); err == nil {
		t.Error("el error del almacén debe propagarse")
	}
}

// ── Agregar ──

func TestEstudianteService_Agregar(t *testing.T) {
	svc, _ := setupEstudianteService(nil)

	nuevo, err := svc.Agregar(context.Background(), &dto.CrearEstudianteRequest{
		GR: "5A", DNI: "12345678", ApellidosNombres: "Lima Perez", Sexo: "F",
	})
	if err != nil {
		t.Fatalf("Agregar debe funcionar: %v", err)
	}
	if nuevo.ID == "" {
		t.Error("el estudiante agregado debe tener un id generado")
	}
	if nuevo.CreatedAt == "" {
		t.Error("el estudiante agregado debe tener createdAt")
	}

	lista, _ := svc.Listar(context.Background())
	if len(lista) != 1 || lista[0].ID != nuevo.ID {
		t.Errorf("el registro nuevo debe aparecer en el listado: %+v", lista)
	}
}

func TestEstudianteService_Agregar_IDUnico(t *testing.T) {
	svc, _ := setupEstudianteService([]model.Estudiante{
		{ID: "existente", GR: "1A", DNI: "1", ApellidosNombres: "Uno", Sexo: "F"},
	})

	nuevo, err := svc.Agregar(context.Background(), &dto.CrearEstudianteRequest{
		GR: "5A", DNI: "12345678", ApellidosNombres: "Lima Perez", Sexo: "F",
	})
	if err != nil {
		t.Fatalf("Agregar debe funcionar: %v", err)
	}
	if nuevo.ID == "existente" {
		t.Error("el id generado no debe chocar con ids existentes")
	}
}

func TestEstudianteService_Agregar_CamposObligatorios(t *testing.T) {
	svc, almacen := setupEstudianteService(nil)

	// Falta DNI
	_, err := svc.Agregar(context.Background(), &dto.CrearEstudianteRequest{
		GR: "5A", ApellidosNombres: "Lima Perez", Sexo: "F",
	})
	if !errors.Is(err, ErrCamposObligatorios) {
		t.Errorf("se esperaba ErrCamposObligatorios, se obtuvo: %v", err)
	}
	if almacen.escrituras != 0 {
		t.Error("una solicitud inválida no debe escribir nada")
	}
}

func TestEstudianteService_Agregar_ErrorDeEscritura(t *testing.T) {
	svc, almacen := setupEstudianteService(nil)
	almacen.errEscribir = errors.New("backend caído")

	_, err := svc.Agregar(context.Background(), &dto.CrearEstudianteRequest{
		GR: "5A", DNI: "12345678", ApellidosNombres: "Lima Perez", Sexo: "F",
	})
	if err == nil {
		t.Error("el error de escritura debe propagarse")
	}
}

// ── FiltrarPorNombre ──

func TestEstudianteService_FiltrarPorNombre(t *testing.T) {
	svc, _ := setupEstudianteService([]model.Estudiante{
		{ID: "1", GR: "5A", DNI: "1", ApellidosNombres: "Ana Lima", Sexo: "F"},
		{ID: "2", GR: "5B", DNI: "2", ApellidosNombres: "Juan Lima", Sexo: "M"},
		{ID: "3", GR: "5C", DNI: "3", ApellidosNombres: "Rosa Quispe", Sexo: "F"},
	})

	// Subcadena sin distinguir mayúsculas
	filtrados, err := svc.FiltrarPorNombre(context.Background(), "LIMA")
	if err != nil {
		t.Fatalf("FiltrarPorNombre debe funcionar: %v", err)
	}
	if len(filtrados) != 2 {
		t.Errorf("se esperaban 2 coincidencias, hay %d", len(filtrados))
	}

	// Sin coincidencias: arreglo vacío, no error
	vacios, err := svc.FiltrarPorNombre(context.Background(), "xyz")
	if err != nil {
		t.Fatalf("sin coincidencias no debe haber error: %v", err)
	}
	if vacios == nil || len(vacios) != 0 {
		t.Errorf("se esperaba arreglo vacío, se obtuvo: %+v", vacios)
	}
}

func TestEstudianteService_FiltrarPorNombre_ParametroVacio(t *testing.T) {
	svc, _ := setupEstudianteService(nil)

	if _, err := svc.FiltrarPorNombre(context.Background(), ""); !errors.Is(err, ErrNombreRequerido) {
		t.Errorf("se esperaba ErrNombreRequerido, se obtuvo: %v", err)
	}
}

// ── BuscarPorDNI ──

func TestEstudianteService_BuscarPorDNI(t *testing.T) {
	svc, _ := setupEstudianteService([]model.Estudiante{
		{ID: "1", GR: "5A", DNI: "87654321", ApellidosNombres: "Ana Lima", Sexo: "F"},
		{ID: "2", GR: "5B", DNI: "87654321", ApellidosNombres: "Duplicado", Sexo: "M"},
	})

	// El DNI se trata como clave única: solo la primera coincidencia.
	resultado, err := svc.BuscarPorDNI(context.Background(), "87654321")
	if err != nil {
		t.Fatalf("BuscarPorDNI debe funcionar: %v", err)
	}
	if len(resultado) != 1 || resultado[0].ID != "1" {
		t.Errorf("se esperaba solo la primera coincidencia, se obtuvo: %+v", resultado)
	}

	vacio, err := svc.BuscarPorDNI(context.Background(), "00000000")
	if err != nil {
		t.Fatalf("sin coincidencias no debe haber error: %v", err)
	}
	if len(vacio) != 0 {
		t.Errorf("se esperaba arreglo vacío, se obtuvo: %+v", vacio)
	}
}

func TestEstudianteService_BuscarPorDNI_ParametroVacio(t *testing.T) {
	svc, _ := setupEstudianteService(nil)

	if _, err := svc.BuscarPorDNI(context.Background(), ""); !errors.Is(err, ErrDNIRequerido) {
		t.Errorf("se esperaba ErrDNIRequerido, se obtuvo: %v", err)
	}
}

// ── Editar ──

func TestEstudianteService_Editar_FusionParcial(t *testing.T) {
	svc, _ := setupEstudianteService([]model.Estudiante{
		{ID: "X", GR: "5A", DNI: "12345678", ApellidosNombres: "Lima Perez", Sexo: "F", Apoderado: "Maria"},
	})

	editado, err := svc.Editar(context.Background(), "X", &dto.EditarEstudianteRequest{
		Celular: ptr("999"),
	})
	if err != nil {
		t.Fatalf("Editar debe funcionar: %v", err)
	}
	if editado.Celular != "999" {
		t.Errorf("el campo del parche debe aplicarse, quedó: %q", editado.Celular)
	}
	if editado.GR != "5A" || editado.ApellidosNombres != "Lima Perez" || editado.Apoderado != "Maria" {
		t.Errorf("los campos ausentes del parche deben conservarse: %+v", editado)
	}
	if editado.UpdatedAt == "" {
		t.Error("Editar debe estampar updatedAt")
	}

	// El cambio debe reflejarse en lecturas posteriores
	resultado, _ := svc.BuscarPorDNI(context.Background(), "12345678")
	if len(resultado) != 1 || resultado[0].Celular != "999" {
		t.Errorf("el cambio debe persistir: %+v", resultado)
	}
}

func TestEstudianteService_Editar_NoEncontrado(t *testing.T) {
	svc, almacen := setupEstudianteService([]model.Estudiante{
		{ID: "X", GR: "5A", DNI: "1", ApellidosNombres: "Uno", Sexo: "F"},
	})

	_, err := svc.Editar(context.Background(), "no-existe", &dto.EditarEstudianteRequest{Celular: ptr("999")})
	if !errors.Is(err, ErrEstudianteNoEncontrado) {
		t.Errorf("se esperaba ErrEstudianteNoEncontrado, se obtuvo: %v", err)
	}
	if almacen.escrituras != 0 {
		t.Error("un id inexistente no debe escribir nada")
	}
}

// ── Propiedad NO garantizada: last-write-wins ──

// Dos altas casi simultáneas contra un adaptador con caché obsoleto pueden
// perder la primera escritura: ambas leen la misma foto, cada una agrega su
// registro y la segunda escritura reemplaza la colección entera. Esta prueba
// documenta que la pérdida es posible, no que esté prohibida.
func TestEstudianteService_Agregar_PerdidaPorCacheObsoleto(t *testing.T) {
	almacen := newMockAlmacen(nil)
	almacen.lecturaCongelada = true
	svc := NewEstudianteService(almacen, zap.NewNop())
	ctx := context.Background()

	primero, err := svc.Agregar(ctx, &dto.CrearEstudianteRequest{
		GR: "5A", DNI: "1", ApellidosNombres: "Primero", Sexo: "F",
	})
	if err != nil {
		t.Fatalf("la primera alta debe funcionar: %v", err)
	}

	segundo, err := svc.Agregar(ctx, &dto.CrearEstudianteRequest{
		GR: "5B", DNI: "2", ApellidosNombres: "Segundo", Sexo: "M",
	})
	if err != nil {
		t.Fatalf("la segunda alta debe funcionar: %v", err)
	}

	// Solo sobrevive el segundo registro
	if len(almacen.datos) != 1 {
		t.Fatalf("con lecturas obsoletas debe quedar 1 registro, hay %d", len(almacen.datos))
	}
	if almacen.datos[0].ID != segundo.ID {
		t.Errorf("debe sobrevivir la última escritura, quedó: %+v", almacen.datos)
	}
	if almacen.datos[0].ID == primero.ID {
		t.Error("la primera escritura debió perderse (last-write-wins)")
	}
}
