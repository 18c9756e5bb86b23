package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/samir-141/Gremar/config"
	"github.com/samir-141/Gremar/internal/api/handler"
	"github.com/samir-141/Gremar/internal/api/router"
	"github.com/samir-141/Gremar/internal/service"
	"github.com/samir-141/Gremar/internal/store"
	applogger "github.com/samir-141/Gremar/pkg/logger"
)

func main() {
	// 1. Cargar configuración
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al cargar la configuración: %v\n", err)
		os.Exit(1)
	}

	// 2. Inicializar logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error al inicializar el logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Iniciando la aplicación",
		zap.Int("port", cfg.Server.Port),
		zap.String("backend", cfg.Storage.Backend),
	)

	// 3. Inicializar el almacén según el backend configurado
	almacen, err := nuevoAlmacen(cfg, logger)
	if err != nil {
		logger.Fatal("Error al inicializar el almacenamiento", zap.Error(err))
	}
	defer almacen.Cerrar()

	// 4. Inyección de dependencias: Store → Service → Handler
	svc := service.NewService(almacen, logger)
	h := handler.NewHandler(svc)

	// 5. Inicializar rutas
	engine := router.Setup(cfg, h, logger)

	// 6. Servidor HTTP con apagado ordenado
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Servidor HTTP iniciado", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Fallo del servidor HTTP", zap.Error(err))
		}
	}()

	// 7. Señales del sistema y apagado ordenado
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("Señal de apagado recibida", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Error al apagar el servidor", zap.Error(err))
	}

	logger.Info("Servidor detenido")
}

// nuevoAlmacen construye el backend de persistencia configurado
func nuevoAlmacen(cfg *config.Config, logger *zap.Logger) (store.Almacen, error) {
	switch cfg.Storage.Backend {
	case config.BackendFirestore:
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return store.NewAlmacenFirestore(
			ctx,
			cfg.Storage.Firestore.Proyecto,
			cfg.Storage.Firestore.Credenciales,
			cfg.Storage.Firestore.Coleccion,
			logger,
		)
	default:
		return store.NewAlmacenArchivo(cfg.Storage.Archivo.Ruta, logger), nil
	}
}
