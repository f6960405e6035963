package messages

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
	ReceiverID string
	PetID      string
	Content    string
}

func (s *Service) Create(ctx context.Context, senderID string, in CreateInput) (Message, error) {
	senderID = strings.TrimSpace(senderID)
	receiverID := strings.TrimSpace(in.ReceiverID)
	content := strings.TrimSpace(in.Content)

	if senderID == "" || receiverID == "" || content == "" {
		return Message{}, ErrInvalidInput
	}
	if senderID == receiverID {
		return Message{}, ErrInvalidInput
	}

	m := Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		PetID:      strings.TrimSpace(in.PetID),
		Content:    content,
		Timestamp:  s.now(),
		IsRead:     false,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Message{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Message, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Message{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Message, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, userID)
}

// MarkRead marca el mensaje como leído. Idempotente: si ya estaba leído
// devuelve el mensaje tal cual sin error.
func (s *Service) MarkRead(ctx context.Context, id string) (Message, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return Message{}, err
	}
	if m.IsRead {
		return m, nil
	}

	if err := s.repo.MarkRead(ctx, m.ID); err != nil {
		return Message{}, err
	}
	return s.repo.GetByID(ctx, m.ID)
}
