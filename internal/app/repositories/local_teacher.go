package repositories

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/kvstore"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/apperrors"
)

// localTeacherRepository keeps teacher profiles in the KV store. Writes
// come only through seeding; the public surface is read-only.
type localTeacherRepository struct {
	col *kvstore.Collection[models.TeacherDetail]
	log zerolog.Logger
}

// NewLocalTeacherRepository creates a file-backed teacher repository.
func NewLocalTeacherRepository(kv kvstore.KV, log zerolog.Logger) TeacherRepository {
	return &localTeacherRepository{
		col: kvstore.NewCollection[models.TeacherDetail](kv, teachersKey, teachersCounterKey, log),
		log: log.With().Str("repository", "teachers").Logger(),
	}
}

func (r *localTeacherRepository) GetAll(_ context.Context) ([]models.Teacher, error) {
	teachers := []models.Teacher{}
	for _, t := range r.col.LoadAll() {
		if t.IsActive {
			teachers = append(teachers, t.Teacher)
		}
	}
	return teachers, nil
}

func (r *localTeacherRepository) GetByID(_ context.Context, id string) (*models.TeacherDetail, error) {
	for _, t := range r.col.LoadAll() {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (r *localTeacherRepository) Featured(_ context.Context, limit int) ([]models.Teacher, error) {
	teachers, _ := r.GetAll(context.Background())
	sort.SliceStable(teachers, func(i, j int) bool {
		return teachers[i].Rating > teachers[j].Rating
	})
	if len(teachers) > limit {
		teachers = teachers[:limit]
	}
	return teachers, nil
}

func (r *localTeacherRepository) SeedIfEmpty(_ context.Context, defaults []models.TeacherDetail) error {
	return r.col.SeedIfEmpty(defaults)
}
