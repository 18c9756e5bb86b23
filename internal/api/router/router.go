package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/samir-141/Gremar/config"
	"github.com/samir-141/Gremar/internal/api/handler"
	"github.com/samir-141/Gremar/internal/api/middleware"
)

// Setup inicializa y devuelve el motor de rutas de Gin
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middleware global ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── Chequeo de salud ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── Módulo de estudiantes ──
	student := r.Group("/student")
	{
		student.GET("/", h.Estudiante.Listar)
		student.GET("/generar-excel", h.Export.GenerarExcel)
		student.POST("/agregar", h.Estudiante.Agregar)
		student.GET("/buscar", h.Estudiante.FiltrarPorNombre)
		student.GET("/buscar-dni", h.Estudiante.BuscarPorDNI)
		student.POST("/editar/:id", h.Estudiante.Editar)
	}

	// ── Módulo de traslados ──
	traslado := r.Group("/traslado")
	{
		traslado.GET("/", h.Traslado.Listar)
	}

	return r
}
