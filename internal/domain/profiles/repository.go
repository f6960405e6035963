package profiles

import "context"

type Repository interface {
	Create(ctx context.Context, p UserProfile) error
	GetByUserID(ctx context.Context, userID string) (UserProfile, error)
	GetByEmail(ctx context.Context, email string) (UserProfile, error)
}
