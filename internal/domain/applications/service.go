package applications

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
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

type CreateInput struct {
	PetID     string
	ShelterID string // dueño de la mascota, resuelto por el handler

	FullName string
	Email    string
	Phone    string
	Address  string

	LivingSituation       string
	PreviousPetExperience string
	WhyAdopt              string
	HomeDescription       string
}

func (s *Service) Create(ctx context.Context, applicantUserID string, in CreateInput) (Application, error) {
	applicantUserID = strings.TrimSpace(applicantUserID)
	petID := strings.TrimSpace(in.PetID)
	shelterID := strings.TrimSpace(in.ShelterID)

	if applicantUserID == "" || petID == "" || shelterID == "" {
		return Application{}, ErrInvalidInput
	}

	fullName := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)
	address := strings.TrimSpace(in.Address)
	whyAdopt := strings.TrimSpace(in.WhyAdopt)

	if fullName == "" || phone == "" || address == "" || whyAdopt == "" {
		return Application{}, ErrInvalidInput
	}
	if !strings.Contains(email, "@") {
		return Application{}, ErrInvalidInput
	}

	a := Application{
		ID:                    uuid.NewString(),
		PetID:                 petID,
		UserID:                applicantUserID,
		ShelterID:             shelterID,
		FullName:              fullName,
		Email:                 email,
		Phone:                 phone,
		Address:               address,
		LivingSituation:       strings.TrimSpace(in.LivingSituation),
		PreviousPetExperience: strings.TrimSpace(in.PreviousPetExperience),
		WhyAdopt:              whyAdopt,
		HomeDescription:       strings.TrimSpace(in.HomeDescription),
		Status:                StatusPending,
		CreatedAt:             s.now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Application, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, userID)
}
