package postgres

import (
	"context"
	"database/sql"
	"strings"

	"petpals-backend/internal/domain/messages"
)

type MessagesRepo struct {
	db *sql.DB
}

func NewMessagesRepo(db *sql.DB) *MessagesRepo {
	return &MessagesRepo{db: db}
}

func (r *MessagesRepo) Create(ctx context.Context, m messages.Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (id, sender_id, receiver_id, pet_id, content, ts, is_read)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		m.ID,
		m.SenderID,
		m.ReceiverID,
		toNullString(m.PetID),
		m.Content,
		m.Timestamp,
		m.IsRead,
	)
	return err
}

func (r *MessagesRepo) GetByID(ctx context.Context, id string) (messages.Message, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return messages.Message{}, messages.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, sender_id, receiver_id, pet_id, content, ts, is_read
		FROM messages
		WHERE id = $1
	`, id)

	var m messages.Message
	var petID sql.NullString
	if err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &petID, &m.Content, &m.Timestamp, &m.IsRead); err != nil {
		if err == sql.ErrNoRows {
			return messages.Message{}, messages.ErrNotFound
		}
		return messages.Message{}, err
	}
	if petID.Valid {
		m.PetID = petID.String
	}
	return m, nil
}

func (r *MessagesRepo) ListByUser(ctx context.Context, userID string) ([]messages.Message, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sender_id, receiver_id, pet_id, content, ts, is_read
		FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY ts ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]messages.Message, 0)
	for rows.Next() {
		var m messages.Message
		var petID sql.NullString
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &petID, &m.Content, &m.Timestamp, &m.IsRead); err != nil {
			return nil, err
		}
		if petID.Valid {
			m.PetID = petID.String
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

// MarkRead solo sube el flag; nunca lo baja.
func (r *MessagesRepo) MarkRead(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE messages SET is_read = TRUE WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return messages.ErrNotFound
	}
	return nil
}
