package postgres

import (
	"context"
	"database/sql"
	"strings"

	"petpals-backend/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id, owner_user_id,
	name, age, species, breed, gender,
	description, temperament, medical_needs,
	status, image_url,
	created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		p.Age,
		p.Species,
		p.Breed,
		p.Gender,
		p.Description,
		p.Temperament,
		p.MedicalNeeds,
		p.Status,
		toNullString(p.ImageURL),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	return scanPet(row.Scan)
}

func (r *PetsRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, error) {
	// filtros por igualdad; $n vacío desactiva ese filtro
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE ($1 = '' OR species = $1)
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR gender = $3)
		ORDER BY created_at ASC
	`, f.Species, f.Status, f.Gender)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			age = $3,
			species = $4,
			breed = $5,
			gender = $6,
			description = $7,
			temperament = $8,
			medical_needs = $9,
			status = $10,
			image_url = $11,
			updated_at = $12
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Age,
		p.Species,
		p.Breed,
		p.Gender,
		p.Description,
		p.Temperament,
		p.MedicalNeeds,
		p.Status,
		toNullString(p.ImageURL),
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func scanPet(scan func(dest ...any) error) (pets.Pet, error) {
	var p pets.Pet
	var imageURL sql.NullString

	if err := scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&p.Age,
		&p.Species,
		&p.Breed,
		&p.Gender,
		&p.Description,
		&p.Temperament,
		&p.MedicalNeeds,
		&p.Status,
		&imageURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	if imageURL.Valid {
		p.ImageURL = imageURL.String
	}
	return p, nil
}

// image_url es nullable: "" se guarda como NULL
func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
