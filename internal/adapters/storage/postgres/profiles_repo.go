package postgres

import (
	"context"
	"database/sql"
	"strings"

	"petpals-backend/internal/domain/profiles"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

const profileColumns = `
	id, user_id, email, full_name, role,
	preferences, contact_phone, address,
	created_at, updated_at`

func (r *ProfilesRepo) Create(ctx context.Context, p profiles.UserProfile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profiles (`+profileColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		p.ID,
		p.UserID,
		p.Email,
		p.FullName,
		p.Role,
		p.Preferences,
		p.ContactPhone,
		p.Address,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *ProfilesRepo) GetByUserID(ctx context.Context, userID string) (profiles.UserProfile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return profiles.UserProfile{}, profiles.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+profileColumns+`
		FROM user_profiles
		WHERE user_id = $1
	`, userID)

	return scanProfile(row)
}

func (r *ProfilesRepo) GetByEmail(ctx context.Context, email string) (profiles.UserProfile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return profiles.UserProfile{}, profiles.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+profileColumns+`
		FROM user_profiles
		WHERE email = $1
	`, email)

	return scanProfile(row)
}

func scanProfile(row *sql.Row) (profiles.UserProfile, error) {
	var p profiles.UserProfile
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Email,
		&p.FullName,
		&p.Role,
		&p.Preferences,
		&p.ContactPhone,
		&p.Address,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return profiles.UserProfile{}, profiles.ErrNotFound
		}
		return profiles.UserProfile{}, err
	}
	return p, nil
}
