package postgres

import (
	"context"
	"database/sql"
)

// EnsureSchema crea las tablas si no existen. Corre en el arranque;
// para cambios de esquema en serio tocaría una herramienta de migraciones.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS user_profiles (
			id            TEXT PRIMARY KEY,
			user_id       TEXT NOT NULL UNIQUE,
			email         TEXT NOT NULL UNIQUE,
			full_name     TEXT NOT NULL,
			role          TEXT NOT NULL,
			preferences   TEXT NOT NULL DEFAULT '',
			contact_phone TEXT NOT NULL DEFAULT '',
			address       TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS owners (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL UNIQUE,
			phone      TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS pets (
			id            TEXT PRIMARY KEY,
			owner_user_id TEXT NOT NULL,
			name          TEXT NOT NULL,
			age           TEXT NOT NULL,
			species       TEXT NOT NULL,
			breed         TEXT NOT NULL,
			gender        TEXT NOT NULL,
			description   TEXT NOT NULL DEFAULT '',
			temperament   TEXT NOT NULL DEFAULT '',
			medical_needs TEXT NOT NULL DEFAULT '',
			status        TEXT NOT NULL,
			image_url     TEXT,
			created_at    TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id                      TEXT PRIMARY KEY,
			pet_id                  TEXT NOT NULL,
			user_id                 TEXT NOT NULL,
			shelter_id              TEXT NOT NULL,
			full_name               TEXT NOT NULL,
			email                   TEXT NOT NULL,
			phone                   TEXT NOT NULL,
			address                 TEXT NOT NULL,
			living_situation        TEXT NOT NULL DEFAULT '',
			previous_pet_experience TEXT NOT NULL DEFAULT '',
			why_adopt               TEXT NOT NULL,
			home_description        TEXT NOT NULL DEFAULT '',
			status                  TEXT NOT NULL,
			created_at              TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id          TEXT PRIMARY KEY,
			sender_id   TEXT NOT NULL,
			receiver_id TEXT NOT NULL,
			pet_id      TEXT,
			content     TEXT NOT NULL,
			ts          TIMESTAMPTZ NOT NULL,
			is_read     BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pets_species ON pets (species)`,
		`CREATE INDEX IF NOT EXISTS idx_pets_status ON pets (status)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_user ON applications (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_sender ON messages (sender_id)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_receiver ON messages (receiver_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
