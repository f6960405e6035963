package postgres

import (
	"context"
	"database/sql"
	"strings"

	"petpals-backend/internal/domain/applications"
)

type ApplicationsRepo struct {
	db *sql.DB
}

func NewApplicationsRepo(db *sql.DB) *ApplicationsRepo {
	return &ApplicationsRepo{db: db}
}

func (r *ApplicationsRepo) Create(ctx context.Context, a applications.Application) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO applications (
			id, pet_id, user_id, shelter_id,
			full_name, email, phone, address,
			living_situation, previous_pet_experience, why_adopt, home_description,
			status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		a.ID,
		a.PetID,
		a.UserID,
		a.ShelterID,
		a.FullName,
		a.Email,
		a.Phone,
		a.Address,
		a.LivingSituation,
		a.PreviousPetExperience,
		a.WhyAdopt,
		a.HomeDescription,
		a.Status,
		a.CreatedAt,
	)
	return err
}

func (r *ApplicationsRepo) ListByUser(ctx context.Context, userID string) ([]applications.Application, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, pet_id, user_id, shelter_id,
			full_name, email, phone, address,
			living_situation, previous_pet_experience, why_adopt, home_description,
			status, created_at
		FROM applications
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]applications.Application, 0)
	for rows.Next() {
		var a applications.Application
		if err := rows.Scan(
			&a.ID,
			&a.PetID,
			&a.UserID,
			&a.ShelterID,
			&a.FullName,
			&a.Email,
			&a.Phone,
			&a.Address,
			&a.LivingSituation,
			&a.PreviousPetExperience,
			&a.WhyAdopt,
			&a.HomeDescription,
			&a.Status,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}
