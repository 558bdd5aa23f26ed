package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/db"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/apperrors"
)

const courseColumns = `id, name, level, description, duration, price, image,
	features, is_active, created_at, syllabus, requirements, outcomes`

// PostgresCourseRepository handles course storage in Postgres. Ids keep
// the course- prefix; the numeric part comes from a sequence so both
// backends mint ids the same way.
type PostgresCourseRepository struct {
	db *pgxpool.Pool
}

// NewPostgresCourseRepository creates a new PostgresCourseRepository.
func NewPostgresCourseRepository(db *pgxpool.Pool) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

func scanCourse(row pgx.Row) (*models.CourseDetail, error) {
	var course models.CourseDetail
	err := row.Scan(
		&course.ID,
		&course.Name,
		&course.Level,
		&course.Description,
		&course.Duration,
		&course.Price,
		&course.Image,
		&course.Features,
		&course.IsActive,
		&course.CreatedAt,
		&course.Syllabus,
		&course.Requirements,
		&course.Outcomes,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *PostgresCourseRepository) queryCourses(ctx context.Context, query string, args ...interface{}) ([]models.CourseDetail, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []models.CourseDetail{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, *course)
	}
	return courses, rows.Err()
}

func (r *PostgresCourseRepository) GetAll(ctx context.Context) ([]models.CourseDetail, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY created_at, id`
	return r.queryCourses(ctx, query)
}

func (r *PostgresCourseRepository) GetByID(ctx context.Context, id string) (*models.CourseDetail, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course %s: %w", id, err)
	}
	return course, nil
}

func (r *PostgresCourseRepository) Create(ctx context.Context, patch models.CoursePatch) (*models.CourseDetail, error) {
	var seq int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('courses_id_seq')`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("failed to mint course id: %w", err)
	}
	course := materializeCourse(patch, fmt.Sprintf("%s%d", coursePrefix, seq), time.Now())

	query := `INSERT INTO courses (` + courseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		course.ID, course.Name, course.Level, course.Description,
		course.Duration, course.Price, course.Image, course.Features,
		course.IsActive, course.CreatedAt, course.Syllabus,
		course.Requirements, course.Outcomes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert course: %w", err)
	}
	return &course, nil
}

func (r *PostgresCourseRepository) Update(ctx context.Context, id string, patch models.CoursePatch) (*models.CourseDetail, error) {
	course, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCoursePatch(course, patch)

	query := `UPDATE courses SET
		name = $2, level = $3, description = $4, duration = $5,
		price = $6, image = $7, features = $8, is_active = $9,
		syllabus = $10, requirements = $11, outcomes = $12
		WHERE id = $1`
	_, err = r.db.Exec(ctx, query,
		course.ID, course.Name, course.Level, course.Description,
		course.Duration, course.Price, course.Image, course.Features,
		course.IsActive, course.Syllabus, course.Requirements, course.Outcomes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update course %s: %w", id, err)
	}
	return course, nil
}

func (r *PostgresCourseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

func (r *PostgresCourseRepository) Search(ctx context.Context, query string, level models.CourseLevel) ([]models.CourseDetail, error) {
	builder := squirrel.Select(courseColumns).
		From("courses").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at", "id").
		PlaceholderFormat(squirrel.Dollar)

	if query != "" {
		pattern := "%" + query + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		})
	}
	if level != "" {
		builder = builder.Where(squirrel.Eq{"level": string(level)})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course search: %w", err)
	}
	return r.queryCourses(ctx, sql, args...)
}

func (r *PostgresCourseRepository) Featured(ctx context.Context, limit int) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses
		WHERE is_active ORDER BY created_at, id LIMIT $1`
	courses, err := r.queryCourses(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	featured := make([]models.Course, 0, len(courses))
	for i := range courses {
		featured = append(featured, courses[i].Summary())
	}
	return featured, nil
}

func (r *PostgresCourseRepository) ExportSnapshot(ctx context.Context) (string, error) {
	courses, err := r.GetAll(ctx)
	if err != nil {
		return "", err
	}
	raw, err := json.MarshalIndent(courses, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize course snapshot: %w", err)
	}
	return string(raw), nil
}

func (r *PostgresCourseRepository) ImportSnapshot(ctx context.Context, text string) error {
	var courses []models.CourseDetail
	if err := json.Unmarshal([]byte(text), &courses); err != nil {
		return apperrors.ErrMalformedSnapshot
	}
	if courses == nil {
		// "null" decodes into a nil slice without an error and must
		// not wipe the table.
		return apperrors.ErrMalformedSnapshot
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM courses`); err != nil {
			return fmt.Errorf("failed to clear courses: %w", err)
		}
		query := `INSERT INTO courses (` + courseColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
		for _, course := range courses {
			_, err := tx.Exec(ctx, query,
				course.ID, course.Name, course.Level, course.Description,
				course.Duration, course.Price, course.Image, course.Features,
				course.IsActive, course.CreatedAt, course.Syllabus,
				course.Requirements, course.Outcomes,
			)
			if err != nil {
				return fmt.Errorf("failed to import course %s: %w", course.ID, err)
			}
		}
		// The id sequence is deliberately not reset here; the local
		// backend behaves the same way after an import.
		return nil
	})
}

func (r *PostgresCourseRepository) SeedIfEmpty(ctx context.Context, defaults []models.CourseDetail) error {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count courses: %w", err)
	}
	if count > 0 {
		return nil
	}
	query := `INSERT INTO courses (` + courseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	for _, course := range defaults {
		_, err := r.db.Exec(ctx, query,
			course.ID, course.Name, course.Level, course.Description,
			course.Duration, course.Price, course.Image, course.Features,
			course.IsActive, course.CreatedAt, course.Syllabus,
			course.Requirements, course.Outcomes,
		)
		if err != nil {
			return fmt.Errorf("failed to seed course %s: %w", course.ID, err)
		}
	}
	_, err := r.db.Exec(ctx, `SELECT setval('courses_id_seq', $1, false)`, len(defaults)+1)
	if err != nil {
		return fmt.Errorf("failed to initialize course id sequence: %w", err)
	}
	return nil
}
