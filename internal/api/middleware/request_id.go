package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen límite de longitud de un Request-ID externo,
// para evitar inyección en los logs
const requestIDMaxLen = 64

// RequestID middleware de trazabilidad de solicitudes.
// Lee X-Request-ID del encabezado; si no viene, genera un UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
