package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/kvstore"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/apperrors"
)

// localBlogRepository keeps blog posts as one JSON array in the KV store.
type localBlogRepository struct {
	col *kvstore.Collection[models.BlogPost]
	log zerolog.Logger
}

// NewLocalBlogRepository creates a file-backed blog repository.
func NewLocalBlogRepository(kv kvstore.KV, log zerolog.Logger) BlogRepository {
	return &localBlogRepository{
		col: kvstore.NewCollection[models.BlogPost](kv, blogKey, blogCounterKey, log),
		log: log.With().Str("repository", "blog").Logger(),
	}
}

func (r *localBlogRepository) GetAll(_ context.Context) ([]models.BlogPost, error) {
	return r.col.LoadAll(), nil
}

func (r *localBlogRepository) GetPublished(_ context.Context) ([]models.BlogPost, error) {
	published := []models.BlogPost{}
	for _, post := range r.col.LoadAll() {
		if post.IsPublished {
			published = append(published, post)
		}
	}
	return published, nil
}

func (r *localBlogRepository) GetByID(_ context.Context, id string) (*models.BlogPost, error) {
	for _, post := range r.col.LoadAll() {
		if post.ID == id {
			return &post, nil
		}
	}
	return nil, apperrors.ErrPostNotFound
}

func (r *localBlogRepository) GetBySlug(_ context.Context, slugValue string) (*models.BlogPost, error) {
	for _, post := range r.col.LoadAll() {
		if post.Slug == slugValue {
			return &post, nil
		}
	}
	return nil, apperrors.ErrPostNotFound
}

func (r *localBlogRepository) Create(_ context.Context, patch models.BlogPatch) (*models.BlogPost, error) {
	posts := r.col.LoadAll()
	id := fmt.Sprintf("%s%d", postPrefix, r.col.NextID())
	post := materializePost(patch, id, time.Now())
	posts = append(posts, post)
	if err := r.col.SaveAll(posts); err != nil {
		return nil, err
	}
	r.col.AdvanceCounter()
	return &post, nil
}

func (r *localBlogRepository) Update(_ context.Context, id string, patch models.BlogPatch) (*models.BlogPost, error) {
	posts := r.col.LoadAll()
	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		applyBlogPatch(&posts[i], patch, time.Now())
		if err := r.col.SaveAll(posts); err != nil {
			return nil, err
		}
		updated := posts[i]
		return &updated, nil
	}
	return nil, apperrors.ErrPostNotFound
}

func (r *localBlogRepository) Delete(_ context.Context, id string) error {
	posts := r.col.LoadAll()
	kept := posts[:0]
	for _, post := range posts {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	if len(kept) == len(posts) {
		return apperrors.ErrPostNotFound
	}
	return r.col.SaveAll(kept)
}

func (r *localBlogRepository) Search(_ context.Context, query, category string) ([]models.BlogPost, error) {
	needle := strings.ToLower(query)
	results := []models.BlogPost{}
	for _, post := range r.col.LoadAll() {
		if !post.IsPublished {
			continue
		}
		if category != "" && post.Category != category {
			continue
		}
		if needle != "" && !postMatches(post, needle) {
			continue
		}
		results = append(results, post)
	}
	return results, nil
}

func postMatches(post models.BlogPost, needle string) bool {
	if strings.Contains(strings.ToLower(post.Title), needle) ||
		strings.Contains(strings.ToLower(post.Excerpt), needle) ||
		strings.Contains(strings.ToLower(post.Content), needle) {
		return true
	}
	for _, tag := range post.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func (r *localBlogRepository) ByCategory(_ context.Context, category string) ([]models.BlogPost, error) {
	return r.Search(context.Background(), "", category)
}

func (r *localBlogRepository) Featured(_ context.Context, limit int) ([]models.BlogPost, error) {
	published, _ := r.GetPublished(context.Background())
	sort.SliceStable(published, func(i, j int) bool {
		return published[i].Views > published[j].Views
	})
	if len(published) > limit {
		published = published[:limit]
	}
	return published, nil
}

func (r *localBlogRepository) Recent(_ context.Context, limit int) ([]models.BlogPost, error) {
	published, _ := r.GetPublished(context.Background())
	sort.SliceStable(published, func(i, j int) bool {
		return published[i].PublishedAt.After(published[j].PublishedAt)
	})
	if len(published) > limit {
		published = published[:limit]
	}
	return published, nil
}

func (r *localBlogRepository) Categories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	categories := []string{}
	for _, post := range r.col.LoadAll() {
		if post.Category == "" || seen[post.Category] {
			continue
		}
		seen[post.Category] = true
		categories = append(categories, post.Category)
	}
	return categories, nil
}

func (r *localBlogRepository) IncrementViews(_ context.Context, id string) error {
	posts := r.col.LoadAll()
	for i := range posts {
		if posts[i].ID == id {
			posts[i].Views++
			return r.col.SaveAll(posts)
		}
	}
	// Unknown ids are silently ignored so a stale detail page cannot
	// surface an error to readers.
	return nil
}

func (r *localBlogRepository) SeedIfEmpty(_ context.Context, defaults []models.BlogPost) error {
	return r.col.SeedIfEmpty(defaults)
}
