package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Backends de almacenamiento soportados.
const (
	BackendArchivo   = "archivo"
	BackendFirestore = "firestore"
)

// Config estructura global de configuración de la aplicación
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig configuración del servidor HTTP
type ServerConfig struct {
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`
}

// CORSConfig configuración de orígenes permitidos
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// StorageConfig selección del backend de persistencia.
// backend: "archivo" (JSON local) o "firestore" (colección remota).
type StorageConfig struct {
	Backend   string          `mapstructure:"backend"`
	Archivo   ArchivoConfig   `mapstructure:"archivo"`
	Firestore FirestoreConfig `mapstructure:"firestore"`
}

// ArchivoConfig backend de archivo JSON local
type ArchivoConfig struct {
	Ruta string `mapstructure:"ruta"`
}

// FirestoreConfig backend de Firestore
type FirestoreConfig struct {
	Proyecto     string `mapstructure:"proyecto"`
	Credenciales string `mapstructure:"credenciales"`
	Coleccion    string `mapstructure:"coleccion"`
}

// LogConfig configuración de logs
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load carga la configuración desde archivo y variables de entorno.
// Prioridad: variables de entorno > archivo > valores por defecto.
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── Valores por defecto ──
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:3000"})

	v.SetDefault("storage.backend", BackendArchivo)
	v.SetDefault("storage.archivo.ruta", "data/data.json")
	v.SetDefault("storage.firestore.proyecto", "")
	v.SetDefault("storage.firestore.credenciales", "serviceAccountKey.json")
	v.SetDefault("storage.firestore.coleccion", "estudiantes")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── Archivo de configuración ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── Variables de entorno ──
	v.SetEnvPrefix("GREMAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
		}
		// Sin archivo de configuración: solo defaults y variables de entorno.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error al interpretar la configuración: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate verifica las opciones críticas
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("configuración inválida: server.port debe estar entre 1 y 65535")
	}
	switch c.Storage.Backend {
	case BackendArchivo:
		if c.Storage.Archivo.Ruta == "" {
			return fmt.Errorf("configuración inválida: storage.archivo.ruta no puede estar vacío")
		}
	case BackendFirestore:
		if c.Storage.Firestore.Proyecto == "" {
			return fmt.Errorf("configuración inválida: storage.firestore.proyecto no puede estar vacío")
		}
		if c.Storage.Firestore.Coleccion == "" {
			return fmt.Errorf("configuración inválida: storage.firestore.coleccion no puede estar vacío")
		}
	default:
		return fmt.Errorf("configuración inválida: storage.backend desconocido %q", c.Storage.Backend)
	}
	return nil
}
