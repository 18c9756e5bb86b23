package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Los cuerpos de respuesta conservan las formas del API:
// listas como arreglos planos, mutaciones como {success, estudiante}
// y errores como {error}.

// ErrorBody cuerpo de error con mensaje corto
type ErrorBody struct {
	Error string `json:"error"`
}

// MutacionBody cuerpo de éxito para crear/editar
type MutacionBody struct {
	Success    string      `json:"success"`
	Estudiante interface{} `json:"estudiante"`
}

// OK 200 con el dato tal cual (arreglo u objeto)
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Creado 201 tras agregar un estudiante
func Creado(c *gin.Context, mensaje string, estudiante interface{}) {
	c.JSON(http.StatusCreated, MutacionBody{Success: mensaje, Estudiante: estudiante})
}

// Actualizado 200 tras editar un estudiante
func Actualizado(c *gin.Context, mensaje string, estudiante interface{}) {
	c.JSON(http.StatusOK, MutacionBody{Success: mensaje, Estudiante: estudiante})
}

// ── Errores ──

// Error respuesta de error genérica
func Error(c *gin.Context, httpStatus int, mensaje string) {
	c.JSON(httpStatus, ErrorBody{Error: mensaje})
}

// BadRequest 400
func BadRequest(c *gin.Context, mensaje string) {
	Error(c, http.StatusBadRequest, mensaje)
}

// NotFound 404
func NotFound(c *gin.Context, mensaje string) {
	Error(c, http.StatusNotFound, mensaje)
}

// InternalError 500 sin detalle interno
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Error interno del servidor")
}
