package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/kvstore"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/apperrors"
)

// localCourseRepository keeps courses as one JSON array in the KV store.
type localCourseRepository struct {
	col *kvstore.Collection[models.CourseDetail]
	log zerolog.Logger
}

// NewLocalCourseRepository creates a file-backed course repository.
func NewLocalCourseRepository(kv kvstore.KV, log zerolog.Logger) CourseRepository {
	return &localCourseRepository{
		col: kvstore.NewCollection[models.CourseDetail](kv, coursesKey, coursesCounterKey, log),
		log: log.With().Str("repository", "courses").Logger(),
	}
}

func (r *localCourseRepository) GetAll(_ context.Context) ([]models.CourseDetail, error) {
	return r.col.LoadAll(), nil
}

func (r *localCourseRepository) GetByID(_ context.Context, id string) (*models.CourseDetail, error) {
	for _, course := range r.col.LoadAll() {
		if course.ID == id {
			return &course, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (r *localCourseRepository) Create(_ context.Context, patch models.CoursePatch) (*models.CourseDetail, error) {
	courses := r.col.LoadAll()
	id := fmt.Sprintf("%s%d", coursePrefix, r.col.NextID())
	course := materializeCourse(patch, id, time.Now())
	courses = append(courses, course)
	if err := r.col.SaveAll(courses); err != nil {
		return nil, err
	}
	// Only advanced after the write landed, so a failed create does not
	// burn an id.
	r.col.AdvanceCounter()
	return &course, nil
}

func (r *localCourseRepository) Update(_ context.Context, id string, patch models.CoursePatch) (*models.CourseDetail, error) {
	courses := r.col.LoadAll()
	for i := range courses {
		if courses[i].ID != id {
			continue
		}
		applyCoursePatch(&courses[i], patch)
		if err := r.col.SaveAll(courses); err != nil {
			return nil, err
		}
		updated := courses[i]
		return &updated, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (r *localCourseRepository) Delete(_ context.Context, id string) error {
	courses := r.col.LoadAll()
	kept := courses[:0]
	for _, course := range courses {
		if course.ID != id {
			kept = append(kept, course)
		}
	}
	if len(kept) == len(courses) {
		return apperrors.ErrCourseNotFound
	}
	return r.col.SaveAll(kept)
}

func (r *localCourseRepository) Search(_ context.Context, query string, level models.CourseLevel) ([]models.CourseDetail, error) {
	needle := strings.ToLower(query)
	results := []models.CourseDetail{}
	for _, course := range r.col.LoadAll() {
		if !course.IsActive {
			continue
		}
		if level != "" && course.Level != level {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(course.Name), needle) &&
			!strings.Contains(strings.ToLower(course.Description), needle) {
			continue
		}
		results = append(results, course)
	}
	return results, nil
}

func (r *localCourseRepository) Featured(_ context.Context, limit int) ([]models.Course, error) {
	featured := []models.Course{}
	for _, course := range r.col.LoadAll() {
		if !course.IsActive {
			continue
		}
		featured = append(featured, course.Summary())
		if len(featured) == limit {
			break
		}
	}
	return featured, nil
}

func (r *localCourseRepository) ExportSnapshot(_ context.Context) (string, error) {
	return r.col.ExportSnapshot()
}

func (r *localCourseRepository) ImportSnapshot(_ context.Context, text string) error {
	if !r.col.ImportSnapshot(text) {
		return apperrors.ErrMalformedSnapshot
	}
	return nil
}

func (r *localCourseRepository) SeedIfEmpty(_ context.Context, defaults []models.CourseDetail) error {
	return r.col.SeedIfEmpty(defaults)
}
