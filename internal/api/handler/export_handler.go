package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samir-141/Gremar/internal/service"
	"github.com/samir-141/Gremar/pkg/response"
)

const tipoContenidoXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handler HTTP de exportación a Excel
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler crea un ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// GenerarExcel descarga el padrón como .xlsx
// GET /student/generar-excel
func (h *ExportHandler) GenerarExcel(c *gin.Context) {
	buf, nombreArchivo, err := h.exportSvc.ExportarEstudiantes(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename="+nombreArchivo)
	c.Header("Content-Type", tipoContenidoXLSX)
	c.Data(http.StatusOK, tipoContenidoXLSX, buf.Bytes())
}
