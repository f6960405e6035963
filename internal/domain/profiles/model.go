package profiles

import (
	"time"

	"petpals-backend/internal/domain/policy"
)

// UserProfile es el perfil registrado para una identidad externa.
// UserID (UID del proveedor) y Email son únicos; el rol queda fijo
// al crear y es el que gobierna la autorización.
type UserProfile struct {
	ID     string
	UserID string

	Email    string
	FullName string
	Role     policy.Role

	Preferences  string
	ContactPhone string
	Address      string

	CreatedAt time.Time
	UpdatedAt time.Time
}
