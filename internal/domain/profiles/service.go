package profiles

import (
	"context"
	"errors"
	"strings"
	"time"

	"petpals-backend/internal/domain/policy"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// ErrAlreadyRegistered: user_id o email ya tienen perfil.
	ErrAlreadyRegistered = errors.New("already registered")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RegisterInput struct {
	UserID   string
	Email    string
	FullName string
	Role     string

	Preferences  string
	ContactPhone string
	Address      string
}

// Register crea el perfil para una identidad externa.
// Chequeo query-then-insert: la ventana de carrera es aceptable aquí
// (una request por identidad nueva en la práctica).
func (s *Service) Register(ctx context.Context, in RegisterInput) (UserProfile, error) {
	userID := strings.TrimSpace(in.UserID)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	fullName := strings.TrimSpace(in.FullName)
	role := policy.Role(strings.TrimSpace(in.Role))

	if userID == "" || fullName == "" {
		return UserProfile{}, ErrInvalidInput
	}
	if !validEmail(email) {
		return UserProfile{}, ErrInvalidInput
	}
	if !policy.ValidRole(role) {
		return UserProfile{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByUserID(ctx, userID); err == nil {
		return UserProfile{}, ErrAlreadyRegistered
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return UserProfile{}, ErrAlreadyRegistered
	}

	now := s.now()
	p := UserProfile{
		ID:           uuid.NewString(),
		UserID:       userID,
		Email:        email,
		FullName:     fullName,
		Role:         role,
		Preferences:  strings.TrimSpace(in.Preferences),
		ContactPhone: strings.TrimSpace(in.ContactPhone),
		Address:      strings.TrimSpace(in.Address),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return UserProfile{}, err
	}
	return p, nil
}

// GetByUserID resuelve una identidad externa a su perfil.
func (s *Service) GetByUserID(ctx context.Context, userID string) (UserProfile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return UserProfile{}, ErrInvalidInput
	}
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return UserProfile{}, ErrNotFound
	}
	return p, nil
}

// validEmail: chequeo de forma mínimo, sin regex pesada.
func validEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	if strings.Contains(domain, "@") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
