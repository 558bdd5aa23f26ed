package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/app/models/dto"
	"github.com/tnqdo/tnqdo-backend/internal/app/repositories"
	"github.com/tnqdo/tnqdo-backend/internal/kvstore"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/apperrors"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/auth"
)

func TestGetStatsRequiresAuthentication(t *testing.T) {
	repos := repositories.NewLocalRepositories(kvstore.NewMemStore(), zerolog.Nop())
	svc := NewStatsService(repos, auth.ContextChecker{}, zerolog.Nop())

	_, err := svc.GetStats(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
}

func TestGetStatsCountsTheCatalog(t *testing.T) {
	repos := repositories.NewLocalRepositories(kvstore.NewMemStore(), zerolog.Nop())
	svc := NewStatsService(repos, auth.ContextChecker{}, zerolog.Nop())
	ctx := adminCtx()

	require.NoError(t, repos.Courses.SeedIfEmpty(ctx, []models.CourseDetail{
		{Course: models.Course{ID: "c1", IsActive: true}},
		{Course: models.Course{ID: "c2", IsActive: false}},
	}))
	require.NoError(t, repos.Blog.SeedIfEmpty(ctx, []models.BlogPost{
		{ID: "p1", IsPublished: true, Views: 100},
		{ID: "p2", IsPublished: false, Views: 20},
	}))
	require.NoError(t, repos.Teachers.SeedIfEmpty(ctx, []models.TeacherDetail{
		{Teacher: models.Teacher{ID: "t1", IsActive: true}},
	}))
	_, err := repos.Contact.Create(ctx, models.ContactMessage{Name: "a", Email: "a@x.com", Subject: "s", Message: "m"})
	require.NoError(t, err)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, &dto.StatsResponse{
		Courses:         2,
		ActiveCourses:   1,
		Posts:           2,
		PublishedPosts:  1,
		TotalViews:      120,
		Teachers:        1,
		PendingMessages: 1,
	}, stats)
}
