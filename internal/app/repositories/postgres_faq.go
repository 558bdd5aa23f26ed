package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
)

const faqColumns = `id, question, answer, category, display_order, is_active, created_at`

// PostgresFAQRepository handles FAQ storage in Postgres.
type PostgresFAQRepository struct {
	db *pgxpool.Pool
}

// NewPostgresFAQRepository creates a new PostgresFAQRepository.
func NewPostgresFAQRepository(db *pgxpool.Pool) *PostgresFAQRepository {
	return &PostgresFAQRepository{db: db}
}

func (r *PostgresFAQRepository) queryFAQs(ctx context.Context, query string, args ...interface{}) ([]models.FAQ, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query faqs: %w", err)
	}
	defer rows.Close()

	faqs := []models.FAQ{}
	for rows.Next() {
		var faq models.FAQ
		err := rows.Scan(
			&faq.ID,
			&faq.Question,
			&faq.Answer,
			&faq.Category,
			&faq.Order,
			&faq.IsActive,
			&faq.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan faq: %w", err)
		}
		faqs = append(faqs, faq)
	}
	return faqs, rows.Err()
}

func (r *PostgresFAQRepository) GetAll(ctx context.Context) ([]models.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs
		WHERE is_active ORDER BY display_order, id`
	return r.queryFAQs(ctx, query)
}

func (r *PostgresFAQRepository) ByCategory(ctx context.Context, category string) ([]models.FAQ, error) {
	if category == "" {
		return r.GetAll(ctx)
	}
	query := `SELECT ` + faqColumns + ` FROM faqs
		WHERE is_active AND category = $1 ORDER BY display_order, id`
	return r.queryFAQs(ctx, query, category)
}

func (r *PostgresFAQRepository) SeedIfEmpty(ctx context.Context, defaults []models.FAQ) error {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM faqs`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count faqs: %w", err)
	}
	if count > 0 {
		return nil
	}
	query := `INSERT INTO faqs (` + faqColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, faq := range defaults {
		_, err := r.db.Exec(ctx, query,
			faq.ID, faq.Question, faq.Answer, faq.Category,
			faq.Order, faq.IsActive, faq.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to seed faq %s: %w", faq.ID, err)
		}
	}
	return nil
}
