package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"petpals-backend/internal/domain/messages"
)

type messagesRepo struct {
	mu   sync.RWMutex
	byID map[string]messages.Message
}

func NewMessagesRepo() messages.Repository {
	return &messagesRepo{
		byID: make(map[string]messages.Message),
	}
}

func (r *messagesRepo) Create(ctx context.Context, m messages.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("message id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return errors.New("message already exists")
	}
	r.byID[m.ID] = m
	return nil
}

func (r *messagesRepo) GetByID(ctx context.Context, id string) (messages.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return messages.Message{}, messages.ErrNotFound
	}
	return m, nil
}

func (r *messagesRepo) ListByUser(ctx context.Context, userID string) ([]messages.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]messages.Message, 0)
	for _, m := range r.byID {
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	return out, nil
}

func (r *messagesRepo) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.byID[id]
	if !ok {
		return messages.ErrNotFound
	}
	m.IsRead = true
	r.byID[id] = m
	return nil
}
