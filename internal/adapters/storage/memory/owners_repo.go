package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"petpals-backend/internal/domain/owners"
)

var errOwnerNotFound = errors.New("owner not found")

type ownersRepo struct {
	mu      sync.RWMutex
	byEmail map[string]owners.Owner
}

func NewOwnersRepo() owners.Repository {
	return &ownersRepo{
		byEmail: make(map[string]owners.Owner),
	}
}

func (r *ownersRepo) Create(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.Email) == "" {
		return errors.New("owner email required")
	}
	if _, exists := r.byEmail[o.Email]; exists {
		return errors.New("owner already exists")
	}
	r.byEmail[o.Email] = o
	return nil
}

func (r *ownersRepo) GetByEmail(ctx context.Context, email string) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byEmail[email]
	if !ok {
		return owners.Owner{}, errOwnerNotFound
	}
	return o, nil
}

func (r *ownersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.Owner, 0, len(r.byEmail))
	for _, o := range r.byEmail {
		out = append(out, o)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Email < out[j].Email
	})

	return out, nil
}
