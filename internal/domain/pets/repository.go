package pets

import "context"

// ListFilter filtra por igualdad; campo vacío = sin filtro.
type ListFilter struct {
	Species string
	Status  string
	Gender  string
}

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context, f ListFilter) ([]Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
}
