package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/apperrors"
)

const teacherColumns = `id, name, title, avatar, bio, specializations,
	experience, education, certifications, teaching_style, courses_count,
	students_count, rating, is_active, created_at, social_links,
	achievements, courses_teaching, testimonials`

// PostgresTeacherRepository handles teacher profile storage in Postgres.
type PostgresTeacherRepository struct {
	db *pgxpool.Pool
}

// NewPostgresTeacherRepository creates a new PostgresTeacherRepository.
func NewPostgresTeacherRepository(db *pgxpool.Pool) *PostgresTeacherRepository {
	return &PostgresTeacherRepository{db: db}
}

func scanTeacher(row pgx.Row) (*models.TeacherDetail, error) {
	var t models.TeacherDetail
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Title,
		&t.Avatar,
		&t.Bio,
		&t.Specializations,
		&t.Experience,
		&t.Education,
		&t.Certifications,
		&t.TeachingStyle,
		&t.CoursesCount,
		&t.StudentsCount,
		&t.Rating,
		&t.IsActive,
		&t.CreatedAt,
		&t.SocialLinks,
		&t.Achievements,
		&t.CoursesTeaching,
		&t.Testimonials,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresTeacherRepository) queryTeachers(ctx context.Context, query string, args ...interface{}) ([]models.Teacher, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query teachers: %w", err)
	}
	defer rows.Close()

	teachers := []models.Teacher{}
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan teacher: %w", err)
		}
		teachers = append(teachers, t.Teacher)
	}
	return teachers, rows.Err()
}

func (r *PostgresTeacherRepository) GetAll(ctx context.Context) ([]models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers
		WHERE is_active ORDER BY created_at, id`
	return r.queryTeachers(ctx, query)
}

func (r *PostgresTeacherRepository) GetByID(ctx context.Context, id string) (*models.TeacherDetail, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE id = $1`
	t, err := scanTeacher(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrTeacherNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get teacher %s: %w", id, err)
	}
	return t, nil
}

func (r *PostgresTeacherRepository) Featured(ctx context.Context, limit int) ([]models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers
		WHERE is_active ORDER BY rating DESC, id LIMIT $1`
	return r.queryTeachers(ctx, query, limit)
}

func (r *PostgresTeacherRepository) SeedIfEmpty(ctx context.Context, defaults []models.TeacherDetail) error {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count teachers: %w", err)
	}
	if count > 0 {
		return nil
	}
	query := `INSERT INTO teachers (` + teacherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	for _, t := range defaults {
		_, err := r.db.Exec(ctx, query,
			t.ID, t.Name, t.Title, t.Avatar, t.Bio, t.Specializations,
			t.Experience, t.Education, t.Certifications, t.TeachingStyle,
			t.CoursesCount, t.StudentsCount, t.Rating, t.IsActive,
			t.CreatedAt, t.SocialLinks, t.Achievements, t.CoursesTeaching,
			t.Testimonials,
		)
		if err != nil {
			return fmt.Errorf("failed to seed teacher %s: %w", t.ID, err)
		}
	}
	return nil
}
