package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/apperrors"
)

const contactColumns = `id, name, email, phone, subject, message, status, created_at`

// PostgresContactRepository handles contact message storage in Postgres.
type PostgresContactRepository struct {
	db *pgxpool.Pool
}

// NewPostgresContactRepository creates a new PostgresContactRepository.
func NewPostgresContactRepository(db *pgxpool.Pool) *PostgresContactRepository {
	return &PostgresContactRepository{db: db}
}

func (r *PostgresContactRepository) Create(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error) {
	msg.ID = uuid.New().String()
	msg.Status = models.ContactPending
	msg.CreatedAt = time.Now().UTC()

	query := `INSERT INTO contact_messages (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Phone, msg.Subject,
		msg.Message, msg.Status, msg.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert contact message: %w", err)
	}
	return &msg, nil
}

func (r *PostgresContactRepository) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_messages ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var msg models.ContactMessage
		err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Phone,
			&msg.Subject,
			&msg.Message,
			&msg.Status,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *PostgresContactRepository) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.ContactMessage, error) {
	query := `UPDATE contact_messages SET status = $2 WHERE id = $1
		RETURNING ` + contactColumns
	var msg models.ContactMessage
	err := r.db.QueryRow(ctx, query, id, status).Scan(
		&msg.ID,
		&msg.Name,
		&msg.Email,
		&msg.Phone,
		&msg.Subject,
		&msg.Message,
		&msg.Status,
		&msg.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update contact message %s: %w", id, err)
	}
	return &msg, nil
}
