package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/app/repositories"
	"github.com/tnqdo/tnqdo-backend/internal/events"
	"github.com/tnqdo/tnqdo-backend/internal/kvstore"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/apperrors"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/auth"
)

func strPtr(s string) *string { return &s }

// topicRecorder captures every topic published during a test.
type topicRecorder struct {
	topics []string
}

func recordTopics(n *events.Notifier) *topicRecorder {
	rec := &topicRecorder{}
	for _, topic := range []string{
		events.TopicCoursesUpdated,
		events.TopicCourseCreated,
		events.TopicCourseUpdated,
		events.TopicCourseDeleted,
		events.TopicBlogUpdated,
		events.TopicBlogCreated,
		events.TopicBlogDeleted,
	} {
		topic := topic
		n.Subscribe(topic, func(interface{}) {
			rec.topics = append(rec.topics, topic)
		})
	}
	return rec
}

func newCourseService(t *testing.T) (CourseService, *topicRecorder) {
	t.Helper()
	repo := repositories.NewLocalCourseRepository(kvstore.NewMemStore(), zerolog.Nop())
	notifier := events.NewNotifier(zerolog.Nop())
	rec := recordTopics(notifier)
	svc := NewCourseService(repo, notifier, auth.ContextChecker{}, zerolog.Nop())
	return svc, rec
}

func adminCtx() context.Context {
	return auth.WithAdminSession(context.Background(), "admin@tnqdo.com")
}

func TestCourseWritesRequireAuthentication(t *testing.T) {
	svc, rec := newCourseService(t)
	ctx := context.Background()

	_, err := svc.CreateCourse(ctx, models.CoursePatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)

	_, err = svc.UpdateCourse(ctx, "course-1", models.CoursePatch{})
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)

	assert.ErrorIs(t, svc.DeleteCourse(ctx, "course-1"), apperrors.ErrNotAuthenticated)

	_, err = svc.ExportCourses(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)

	assert.ErrorIs(t, svc.ImportCourses(ctx, "[]"), apperrors.ErrNotAuthenticated)

	// Denied writes publish nothing.
	assert.Empty(t, rec.topics)
}

func TestCourseReadsArePublic(t *testing.T) {
	svc, _ := newCourseService(t)
	ctx := context.Background()

	all, err := svc.GetAllCourses(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	results, err := svc.SearchCourses(ctx, "anything", "")
	require.NoError(t, err)
	assert.Empty(t, results)

	featured, err := svc.GetFeaturedCourses(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, featured)
}

func TestCreateCoursePublishesCreatedAndListTopics(t *testing.T) {
	svc, rec := newCourseService(t)

	created, err := svc.CreateCourse(adminCtx(), models.CoursePatch{Name: strPtr("N5")})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, []string{events.TopicCourseCreated, events.TopicCoursesUpdated}, rec.topics)
}

func TestUpdateCoursePublishesUpdatedAndListTopics(t *testing.T) {
	svc, rec := newCourseService(t)
	ctx := adminCtx()

	created, err := svc.CreateCourse(ctx, models.CoursePatch{Name: strPtr("N5")})
	require.NoError(t, err)
	rec.topics = nil

	_, err = svc.UpdateCourse(ctx, created.ID, models.CoursePatch{Name: strPtr("N5+")})
	require.NoError(t, err)

	assert.Equal(t, []string{events.TopicCourseUpdated, events.TopicCoursesUpdated}, rec.topics)
}

func TestDeleteCoursePublishesDeletedAndListTopics(t *testing.T) {
	svc, rec := newCourseService(t)
	ctx := adminCtx()

	created, err := svc.CreateCourse(ctx, models.CoursePatch{Name: strPtr("N5")})
	require.NoError(t, err)
	rec.topics = nil

	require.NoError(t, svc.DeleteCourse(ctx, created.ID))
	assert.Equal(t, []string{events.TopicCourseDeleted, events.TopicCoursesUpdated}, rec.topics)
}

func TestDeleteCourseFailureSkipsTopics(t *testing.T) {
	svc, rec := newCourseService(t)

	err := svc.DeleteCourse(adminCtx(), "course-404")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.Empty(t, rec.topics)
}

func TestImportCoursesPublishesListTopicOnly(t *testing.T) {
	svc, rec := newCourseService(t)
	ctx := adminCtx()

	_, err := svc.CreateCourse(ctx, models.CoursePatch{Name: strPtr("exported")})
	require.NoError(t, err)

	snapshot, err := svc.ExportCourses(ctx)
	require.NoError(t, err)
	rec.topics = nil

	require.NoError(t, svc.ImportCourses(ctx, snapshot))
	assert.Equal(t, []string{events.TopicCoursesUpdated}, rec.topics)
}

func TestImportCoursesMalformedSnapshot(t *testing.T) {
	svc, rec := newCourseService(t)

	err := svc.ImportCourses(adminCtx(), "not json")
	assert.ErrorIs(t, err, apperrors.ErrMalformedSnapshot)
	assert.Empty(t, rec.topics)
}

func TestGetFeaturedCoursesDefaultLimit(t *testing.T) {
	svc, _ := newCourseService(t)
	ctx := adminCtx()

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		_, err := svc.CreateCourse(ctx, models.CoursePatch{Name: strPtr(name)})
		require.NoError(t, err)
	}

	featured, err := svc.GetFeaturedCourses(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, featured, DefaultFeaturedLimit)

	two, err := svc.GetFeaturedCourses(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}
