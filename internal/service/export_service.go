package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/samir-141/Gremar/internal/store"
)

// ErrExportGenerar fallo al materializar el libro de Excel.
var ErrExportGenerar = errors.New("error al generar el archivo Excel")

// ExportService exporta el padrón como hoja de cálculo.
//
// El resultado se devuelve como bytes.Buffer y el Handler arma la respuesta
// de descarga. Las filas siguen el orden actual del almacenamiento, no el
// orden del listado.
type ExportService interface {
	// ExportarEstudiantes genera el .xlsx con las 18 columnas de la ficha.
	ExportarEstudiantes(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	almacen store.Almacen
	logger  *zap.Logger
}

// NewExportService crea una instancia de ExportService
func NewExportService(almacen store.Almacen, logger *zap.Logger) ExportService {
	return &exportService{almacen: almacen, logger: logger}
}

// columnasExcel encabezados y anchos de la hoja, en el orden de la ficha.
var columnasExcel = []struct {
	encabezado string
	ancho      float64
}{
	{"Grado", 15},
	{"DNI", 15},
	{"Apellidos y Nombres", 30},
	{"Sexo", 10},
	{"Apoderado", 20},
	{"Celular", 15},
	{"Situación Matrícula", 20},
	{"Compromiso Documentos", 20},
	{"APAFA", 10},
	{"Qali Warma", 15},
	{"Tarjeta Salud", 15},
	{"CONADIS", 10},
	{"Dirección", 30},
	{"Religión", 15},
	{"Celular Adicional", 15},
	{"Nombre Apoderado", 20},
	{"Parentesco", 15},
	{"Observación", 30},
}

func (s *exportService) ExportarEstudiantes(ctx context.Context) (*bytes.Buffer, string, error) {
	datos, err := s.almacen.ObtenerTodos(ctx)
	if err != nil {
		s.logger.Error("Error al obtener los estudiantes para exportar", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const hoja = "Estudiantes"
	idx, err := f.NewSheet(hoja)
	if err != nil {
		s.logger.Error("Error al crear la hoja de Excel", zap.Error(err))
		return nil, "", ErrExportGenerar
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// Encabezados y anchos de columna
	encabezados := make([]interface{}, len(columnasExcel))
	for i, c := range columnasExcel {
		encabezados[i] = c.encabezado
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(hoja, col, col, c.ancho)
	}
	if err := f.SetSheetRow(hoja, "A1", &encabezados); err != nil {
		s.logger.Error("Error al escribir los encabezados", zap.Error(err))
		return nil, "", ErrExportGenerar
	}

	estiloEncabezado, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	ultima, _ := excelize.ColumnNumberToName(len(columnasExcel))
	f.SetCellStyle(hoja, "A1", ultima+"1", estiloEncabezado)

	// Una fila por estudiante; los campos ausentes quedan como celdas vacías.
	for i, e := range datos {
		fila := []interface{}{
			strings.TrimSpace(e.GR),
			e.DNI,
			e.ApellidosNombres,
			e.Sexo,
			e.Apoderado,
			e.Celular,
			e.SituacionMatricula,
			e.CompromisoDocumentos,
			e.Apafa,
			e.QaliWarma,
			e.TarjetaSalud,
			e.Conadis,
			e.Direccion,
			e.Religion,
			e.CelularAdicional,
			e.NombreApoderado,
			e.Parentesco,
			e.Observacion,
		}
		celda := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(hoja, celda, &fila); err != nil {
			s.logger.Error("Error al escribir una fila", zap.Int("fila", i+2), zap.Error(err))
			return nil, "", ErrExportGenerar
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("Error al escribir el Excel", zap.Error(err))
		return nil, "", ErrExportGenerar
	}

	return buf, "estudiantes.xlsx", nil
}
