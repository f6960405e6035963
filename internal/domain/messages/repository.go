package messages

import "context"

type Repository interface {
	Create(ctx context.Context, m Message) error
	GetByID(ctx context.Context, id string) (Message, error)

	// ListByUser devuelve mensajes donde el usuario es sender o receiver.
	ListByUser(ctx context.Context, userID string) ([]Message, error)

	MarkRead(ctx context.Context, id string) error
}
