package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"petpals-backend/internal/domain/profiles"
)

type profilesRepo struct {
	mu       sync.RWMutex
	byUserID map[string]profiles.UserProfile
	byEmail  map[string]string // email → userID
}

func NewProfilesRepo() profiles.Repository {
	return &profilesRepo{
		byUserID: make(map[string]profiles.UserProfile),
		byEmail:  make(map[string]string),
	}
}

func (r *profilesRepo) Create(ctx context.Context, p profiles.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.UserID) == "" {
		return errors.New("profile user id required")
	}
	if _, exists := r.byUserID[p.UserID]; exists {
		return errors.New("profile already exists")
	}
	if _, exists := r.byEmail[p.Email]; exists {
		return errors.New("email already exists")
	}

	r.byUserID[p.UserID] = p
	r.byEmail[p.Email] = p.UserID
	return nil
}

func (r *profilesRepo) GetByUserID(ctx context.Context, userID string) (profiles.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byUserID[userID]
	if !ok {
		return profiles.UserProfile{}, profiles.ErrNotFound
	}
	return p, nil
}

func (r *profilesRepo) GetByEmail(ctx context.Context, email string) (profiles.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byEmail[email]
	if !ok {
		return profiles.UserProfile{}, profiles.ErrNotFound
	}
	return r.byUserID[userID], nil
}
