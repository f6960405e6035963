package applications

import "context"

type Repository interface {
	Create(ctx context.Context, a Application) error
	ListByUser(ctx context.Context, userID string) ([]Application, error)
}
