package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/kvstore"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/apperrors"
)

func newBlogRepo(t *testing.T) BlogRepository {
	t.Helper()
	return NewLocalBlogRepository(kvstore.NewMemStore(), zerolog.Nop())
}

func timePtr(v time.Time) *time.Time { return &v }

func TestBlogCreateFillsDefaults(t *testing.T) {
	repo := newBlogRepo(t)

	post, err := repo.Create(context.Background(), models.BlogPatch{Title: strPtr("Mẹo Học Kanji")})
	require.NoError(t, err)

	assert.Equal(t, "post-1", post.ID)
	assert.Equal(t, "meo-hoc-kanji", post.Slug)
	assert.Equal(t, "Học tiếng Nhật", post.Category)
	assert.Equal(t, "TNQDO", post.Author.Name)
	assert.True(t, post.IsPublished)
	assert.Zero(t, post.Views)
	assert.NotNil(t, post.Tags)
	assert.False(t, post.PublishedAt.IsZero())
}

func TestBlogCreateKeepsExplicitSlug(t *testing.T) {
	repo := newBlogRepo(t)

	post, err := repo.Create(context.Background(), models.BlogPatch{
		Title: strPtr("Some Title"),
		Slug:  strPtr("custom-slug"),
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", post.Slug)
}

func TestBlogGetBySlugReturnsFirstMatch(t *testing.T) {
	repo := newBlogRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, models.BlogPatch{Title: strPtr("One"), Slug: strPtr("dup")})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.BlogPatch{Title: strPtr("Two"), Slug: strPtr("dup")})
	require.NoError(t, err)

	got, err := repo.GetBySlug(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = repo.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestBlogUpdateStampsUpdatedAtAndKeepsViews(t *testing.T) {
	repo := newBlogRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.BlogPatch{Title: strPtr("Draft")})
	require.NoError(t, err)
	require.NoError(t, repo.IncrementViews(ctx, created.ID))

	updated, err := repo.Update(ctx, created.ID, models.BlogPatch{Title: strPtr("Final")})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, int64(1), updated.Views)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestBlogDelete(t *testing.T) {
	repo := newBlogRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.BlogPatch{Title: strPtr("bye")})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), apperrors.ErrPostNotFound)
}

func TestBlogSearch(t *testing.T) {
	repo := newBlogRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, models.BlogPatch{
		Title:    strPtr("Học Kanji mỗi ngày"),
		Category: strPtr("JLPT"),
		Tags:     &[]string{"kanji", "n5"},
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.BlogPatch{
		Title:   strPtr("Văn hóa Nhật"),
		Content: strPtr("<p>Trà đạo và kimono</p>"),
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.BlogPatch{
		Title:       strPtr("Bản nháp kanji"),
		IsPublished: boolPtr(false),
	})
	require.NoError(t, err)

	t.Run("matches title", func(t *testing.T) {
		results, err := repo.Search(ctx, "kanji", "")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "post-1", results[0].ID)
	})

	t.Run("matches content", func(t *testing.T) {
		results, err := repo.Search(ctx, "trà đạo", "")
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("matches tags", func(t *testing.T) {
		results, err := repo.Search(ctx, "n5", "")
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("category filter is exact", func(t *testing.T) {
		results, err := repo.Search(ctx, "", "JLPT")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "post-1", results[0].ID)
	})

	t.Run("drafts are hidden", func(t *testing.T) {
		results, err := repo.Search(ctx, "nháp", "")
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestBlogFeaturedSortsByViews(t *testing.T) {
	repo := newBlogRepo(t)
	ctx := context.Background()

	for _, title := range []string{"low", "high", "mid"} {
		_, err := repo.Create(ctx, models.BlogPatch{Title: strPtr(title)})
		require.NoError(t, err)
	}
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.IncrementViews(ctx, "post-2"))
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.IncrementViews(ctx, "post-3"))
	}

	featured, err := repo.Featured(ctx, 2)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, "high", featured[0].Title)
	assert.Equal(t, "mid", featured[1].Title)
}

func TestBlogRecentSortsByPublishedAt(t *testing.T) {
	repo := newBlogRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, models.BlogPatch{Title: strPtr("oldest"), PublishedAt: timePtr(base)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.BlogPatch{Title: strPtr("newest"), PublishedAt: timePtr(base.AddDate(0, 1, 0))})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.BlogPatch{Title: strPtr("middle"), PublishedAt: timePtr(base.AddDate(0, 0, 15))})
	require.NoError(t, err)

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "newest", recent[0].Title)
	assert.Equal(t, "middle", recent[1].Title)
	assert.Equal(t, "oldest", recent[2].Title)
}

func TestBlogCategoriesDedupPreservingOrder(t *testing.T) {
	repo := newBlogRepo(t)
	ctx := context.Background()

	for _, category := range []string{"JLPT", "Văn hóa", "JLPT", ""} {
		_, err := repo.Create(ctx, models.BlogPatch{Title: strPtr("t"), Category: strPtr(category)})
		require.NoError(t, err)
	}

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"JLPT", "Văn hóa"}, categories)
}

func TestBlogIncrementViews(t *testing.T) {
	repo := newBlogRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.BlogPatch{Title: strPtr("counted")})
	require.NoError(t, err)

	require.NoError(t, repo.IncrementViews(ctx, created.ID))
	require.NoError(t, repo.IncrementViews(ctx, created.ID))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Views)

	// Unknown ids are a silent no-op.
	assert.NoError(t, repo.IncrementViews(ctx, "post-404"))
}
