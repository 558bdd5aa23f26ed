package repositories

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/kvstore"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/apperrors"
)

func TestTeacherRepositoryListsActiveOnly(t *testing.T) {
	repo := NewLocalTeacherRepository(kvstore.NewMemStore(), zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.SeedIfEmpty(ctx, []models.TeacherDetail{
		{Teacher: models.Teacher{ID: "t1", Name: "Active", IsActive: true, Rating: 4.5}},
		{Teacher: models.Teacher{ID: "t2", Name: "Gone", IsActive: false, Rating: 5.0}},
		{Teacher: models.Teacher{ID: "t3", Name: "Top", IsActive: true, Rating: 4.9}},
	}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "t1", all[0].ID)
	assert.Equal(t, "t3", all[1].ID)
}

func TestTeacherRepositoryGetByID(t *testing.T) {
	repo := NewLocalTeacherRepository(kvstore.NewMemStore(), zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.SeedIfEmpty(ctx, []models.TeacherDetail{
		{
			Teacher:      models.Teacher{ID: "t1", Name: "Sensei", IsActive: true},
			Achievements: []string{"award"},
		},
	}))

	got, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Sensei", got.Name)
	assert.Equal(t, []string{"award"}, got.Achievements)

	_, err = repo.GetByID(ctx, "t404")
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}

func TestTeacherRepositoryFeaturedSortsByRating(t *testing.T) {
	repo := NewLocalTeacherRepository(kvstore.NewMemStore(), zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.SeedIfEmpty(ctx, []models.TeacherDetail{
		{Teacher: models.Teacher{ID: "t1", IsActive: true, Rating: 4.7}},
		{Teacher: models.Teacher{ID: "t2", IsActive: true, Rating: 4.9}},
		{Teacher: models.Teacher{ID: "t3", IsActive: true, Rating: 4.8}},
	}))

	featured, err := repo.Featured(ctx, 2)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, "t2", featured[0].ID)
	assert.Equal(t, "t3", featured[1].ID)
}

func TestFAQRepositorySortsByDisplayOrder(t *testing.T) {
	repo := NewLocalFAQRepository(kvstore.NewMemStore(), zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, repo.SeedIfEmpty(ctx, []models.FAQ{
		{ID: "faq-2", Question: "second", Category: "general", Order: 2, IsActive: true},
		{ID: "faq-3", Question: "hidden", Category: "general", Order: 3, IsActive: false},
		{ID: "faq-1", Question: "first", Category: "courses", Order: 1, IsActive: true},
	}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "faq-1", all[0].ID)
	assert.Equal(t, "faq-2", all[1].ID)

	courses, err := repo.ByCategory(ctx, "courses")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "faq-1", courses[0].ID)

	// An empty category means no filter.
	unfiltered, err := repo.ByCategory(ctx, "")
	require.NoError(t, err)
	assert.Len(t, unfiltered, 2)
}

func TestContactRepositoryCreate(t *testing.T) {
	repo := NewLocalContactRepository(kvstore.NewMemStore(), zerolog.Nop())

	created, err := repo.Create(context.Background(), models.ContactMessage{
		Name:    "Lan",
		Email:   "lan@example.com",
		Subject: "Tư vấn khóa học",
		Message: "Cho em hỏi về lớp N5",
		// Caller-supplied id and status must be overridden.
		ID:     "spoofed",
		Status: models.ContactResolved,
	})
	require.NoError(t, err)

	assert.NotEqual(t, "spoofed", created.ID)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.ContactPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestContactRepositoryGetAllNewestFirst(t *testing.T) {
	repo := NewLocalContactRepository(kvstore.NewMemStore(), zerolog.Nop())
	ctx := context.Background()

	first, err := repo.Create(ctx, models.ContactMessage{Name: "a", Email: "a@x.com", Subject: "s", Message: "m"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, models.ContactMessage{Name: "b", Email: "b@x.com", Subject: "s", Message: "m"})
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Creation stamps are monotonically non-decreasing, so the second
	// message sorts first or ties into creation order.
	assert.Contains(t, []string{first.ID, second.ID}, all[0].ID)
}

func TestContactRepositoryUpdateStatus(t *testing.T) {
	repo := NewLocalContactRepository(kvstore.NewMemStore(), zerolog.Nop())
	ctx := context.Background()

	created, err := repo.Create(ctx, models.ContactMessage{Name: "a", Email: "a@x.com", Subject: "s", Message: "m"})
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, created.ID, models.ContactProcessing)
	require.NoError(t, err)
	assert.Equal(t, models.ContactProcessing, updated.Status)

	_, err = repo.UpdateStatus(ctx, "missing", models.ContactResolved)
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
}
