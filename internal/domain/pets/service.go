package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
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
	Name         string
	Age          string
	Species      string
	Breed        string
	Gender       string
	Description  string
	Temperament  string
	MedicalNeeds string
	ImageURL     string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Pet{}, ErrInvalidInput
	}

	name := strings.TrimSpace(in.Name)
	age := strings.TrimSpace(in.Age)
	breed := strings.TrimSpace(in.Breed)
	species := Species(strings.TrimSpace(in.Species))
	gender := Gender(strings.TrimSpace(in.Gender))

	if name == "" || age == "" || breed == "" {
		return Pet{}, ErrInvalidInput
	}
	if !ValidSpecies(species) || !ValidGender(gender) {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:           uuid.NewString(),
		OwnerUserID:  ownerUserID,
		Name:         name,
		Age:          age,
		Species:      species,
		Breed:        breed,
		Gender:       gender,
		Description:  strings.TrimSpace(in.Description),
		Temperament:  strings.TrimSpace(in.Temperament),
		MedicalNeeds: strings.TrimSpace(in.MedicalNeeds),
		Status:       StatusAvailable, // default al crear
		ImageURL:     strings.TrimSpace(in.ImageURL),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Pet, error) {
	return s.repo.List(ctx, f)
}

// UpdateInput es el patch tipado: nil = no tocar ese campo.
type UpdateInput struct {
	Name         *string
	Age          *string
	Species      *string
	Breed        *string
	Gender       *string
	Description  *string
	Temperament  *string
	MedicalNeeds *string
	Status       *string
	ImageURL     *string
}

// Update mezcla el patch campo por campo sobre el registro guardado.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		current.Name = v
	}
	if in.Age != nil {
		v := strings.TrimSpace(*in.Age)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		current.Age = v
	}
	if in.Species != nil {
		v := Species(strings.TrimSpace(*in.Species))
		if !ValidSpecies(v) {
			return Pet{}, ErrInvalidInput
		}
		current.Species = v
	}
	if in.Breed != nil {
		v := strings.TrimSpace(*in.Breed)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		current.Breed = v
	}
	if in.Gender != nil {
		v := Gender(strings.TrimSpace(*in.Gender))
		if !ValidGender(v) {
			return Pet{}, ErrInvalidInput
		}
		current.Gender = v
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}
	if in.Temperament != nil {
		current.Temperament = strings.TrimSpace(*in.Temperament)
	}
	if in.MedicalNeeds != nil {
		current.MedicalNeeds = strings.TrimSpace(*in.MedicalNeeds)
	}
	if in.Status != nil {
		v := Status(strings.TrimSpace(*in.Status))
		if !ValidStatus(v) {
			return Pet{}, ErrInvalidInput
		}
		current.Status = v
	}
	if in.ImageURL != nil {
		current.ImageURL = strings.TrimSpace(*in.ImageURL)
	}

	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
