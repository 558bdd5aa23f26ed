package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnqdo/tnqdo-backend/internal/app/repositories"
	"github.com/tnqdo/tnqdo-backend/internal/kvstore"
)

func TestApplyPopulatesEmptyStorage(t *testing.T) {
	repos := repositories.NewLocalRepositories(kvstore.NewMemStore(), zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, Apply(ctx, repos, zerolog.Nop()))

	courses, err := repos.Courses.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 6)

	posts, err := repos.Blog.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 3)

	teachers, err := repos.Teachers.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, teachers, 3)

	faqs, err := repos.FAQs.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, faqs, 8)
}

func TestApplyIsIdempotent(t *testing.T) {
	repos := repositories.NewLocalRepositories(kvstore.NewMemStore(), zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, Apply(ctx, repos, zerolog.Nop()))
	require.NoError(t, Apply(ctx, repos, zerolog.Nop()))

	courses, err := repos.Courses.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 6)
}

func TestDefaultContentIsWellFormed(t *testing.T) {
	for _, course := range DefaultCourses() {
		assert.NotEmpty(t, course.ID)
		assert.NotEmpty(t, course.Name)
		assert.True(t, course.IsActive)
		assert.NotEmpty(t, course.Syllabus, "course %s has no syllabus", course.ID)
		assert.False(t, course.CreatedAt.IsZero())
	}

	seenSlugs := map[string]bool{}
	for _, post := range DefaultBlogPosts() {
		assert.NotEmpty(t, post.Slug)
		assert.False(t, seenSlugs[post.Slug], "duplicate slug %s", post.Slug)
		seenSlugs[post.Slug] = true
		assert.True(t, post.IsPublished)
		assert.NotEmpty(t, post.Author.Name)
	}

	for _, teacher := range DefaultTeachers() {
		assert.NotEmpty(t, teacher.ID)
		assert.Positive(t, teacher.Rating)
		assert.True(t, teacher.IsActive)
	}

	seenOrders := map[int]bool{}
	for _, faq := range DefaultFAQs() {
		assert.NotEmpty(t, faq.Question)
		assert.NotEmpty(t, faq.Answer)
		assert.False(t, seenOrders[faq.Order], "duplicate display order %d", faq.Order)
		seenOrders[faq.Order] = true
	}
}
