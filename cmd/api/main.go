package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"petpals-backend/internal/adapters/auth/firebase"
	"petpals-backend/internal/adapters/storage/postgres"
	"petpals-backend/internal/config"
	"petpals-backend/internal/platform/logger"
	"petpals-backend/internal/ports/auth"
	"petpals-backend/internal/router"
)

func main() {
	cfg := config.Load()

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := cfg.RequireDatabaseURL(); err != nil {
		lg.Error("config inválida", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		lg.Error("no se pudo conectar a postgres", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		cancel()
		lg.Error("no se pudo crear el esquema", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	cancel()

	// Verifier externo solo si hay credenciales; sin ellas corre en modo trust.
	var verifier auth.Verifier
	if cfg.FirebaseBaseURL != "" && cfg.FirebaseAPIKey != "" {
		verifier = firebase.NewVerifier(firebase.NewClient(firebase.Config{
			BaseURL: cfg.FirebaseBaseURL,
			APIKey:  cfg.FirebaseAPIKey,
			Timeout: 5 * time.Second,
		}))
		lg.Info("verifier de identidad habilitado", nil)
	} else {
		lg.Warn("sin verifier de identidad: modo trust sobre el bearer crudo", nil)
	}

	r, err := router.NewRouter(router.Options{
		Verifier:   verifier,
		DB:         db,
		UploadsDir: cfg.UploadsDir,
	})
	if err != nil {
		lg.Error("no se pudo armar el router", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	lg.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lg.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
