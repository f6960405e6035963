package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var ErrDatabaseURLMissing = errors.New("DATABASE_URL environment variable not set")

// Config agrupa toda la configuración del servicio.
// Se carga desde .env (si existe) y luego desde el environment.
type Config struct {
	AppName string
	Port    string

	// Connection string de Postgres. Obligatoria para el server y el seed;
	// su ausencia es error fatal de arranque.
	DatabaseURL string

	// Directorio local donde se guardan las imágenes subidas.
	UploadsDir string

	LogLevel  string
	LogFormat string

	// Proveedor de identidad externo (opcional; sin esto el middleware
	// corre en modo trust sobre el token crudo).
	FirebaseBaseURL string
	FirebaseAPIKey  string
}

// Load lee .env si está presente y arma la Config desde env vars.
// No valida DatabaseURL; eso lo decide cada entrypoint (los tests no la usan).
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:         getenv("APP_NAME", "petpals-backend"),
		Port:            getenv("PORT", "8000"),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		UploadsDir:      getenv("UPLOADS_DIR", "static/images/pets"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		LogFormat:       os.Getenv("LOG_FORMAT"),
		FirebaseBaseURL: strings.TrimSpace(os.Getenv("FIREBASE_BASE_URL")),
		FirebaseAPIKey:  strings.TrimSpace(os.Getenv("FIREBASE_API_KEY")),
	}
}

// RequireDatabaseURL corta el arranque si no hay connection string.
func (c Config) RequireDatabaseURL() error {
	if c.DatabaseURL == "" {
		return ErrDatabaseURLMissing
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
