package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"petpals-backend/internal/domain/applications"
)

type applicationsRepo struct {
	mu   sync.RWMutex
	byID map[string]applications.Application
}

func NewApplicationsRepo() applications.Repository {
	return &applicationsRepo{
		byID: make(map[string]applications.Application),
	}
}

func (r *applicationsRepo) Create(ctx context.Context, a applications.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("application id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("application already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *applicationsRepo) ListByUser(ctx context.Context, userID string) ([]applications.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]applications.Application, 0)
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
