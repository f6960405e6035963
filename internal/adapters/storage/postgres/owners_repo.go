package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"petpals-backend/internal/domain/owners"
)

var errOwnerNotFound = errors.New("owner not found")

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO owners (id, name, email, phone, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, o.ID, o.Name, o.Email, o.Phone, o.CreatedAt)
	return err
}

func (r *OwnersRepo) GetByEmail(ctx context.Context, email string) (owners.Owner, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return owners.Owner{}, errOwnerNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, created_at
		FROM owners
		WHERE email = $1
	`, email)

	var o owners.Owner
	if err := row.Scan(&o.ID, &o.Name, &o.Email, &o.Phone, &o.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return owners.Owner{}, errOwnerNotFound
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone, created_at
		FROM owners
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.Email, &o.Phone, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	return out, rows.Err()
}
