package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/apperrors"
)

const blogColumns = `id, title, slug, excerpt, content, image, category,
	tags, author_name, author_avatar, published_at, updated_at,
	is_published, views`

// PostgresBlogRepository handles blog post storage in Postgres. The
// author object is flattened into author_name and author_avatar columns.
type PostgresBlogRepository struct {
	db *pgxpool.Pool
}

// NewPostgresBlogRepository creates a new PostgresBlogRepository.
func NewPostgresBlogRepository(db *pgxpool.Pool) *PostgresBlogRepository {
	return &PostgresBlogRepository{db: db}
}

func scanPost(row pgx.Row) (*models.BlogPost, error) {
	var post models.BlogPost
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.Image,
		&post.Category,
		&post.Tags,
		&post.Author.Name,
		&post.Author.Avatar,
		&post.PublishedAt,
		&post.UpdatedAt,
		&post.IsPublished,
		&post.Views,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostgresBlogRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]models.BlogPost, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog posts: %w", err)
	}
	defer rows.Close()

	posts := []models.BlogPost{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (r *PostgresBlogRepository) GetAll(ctx context.Context) ([]models.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts ORDER BY published_at DESC, id`
	return r.queryPosts(ctx, query)
}

func (r *PostgresBlogRepository) GetPublished(ctx context.Context) ([]models.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts
		WHERE is_published ORDER BY published_at DESC, id`
	return r.queryPosts(ctx, query)
}

func (r *PostgresBlogRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE id = $1`
	post, err := scanPost(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post %s: %w", id, err)
	}
	return post, nil
}

func (r *PostgresBlogRepository) GetBySlug(ctx context.Context, slugValue string) (*models.BlogPost, error) {
	// Slugs are not unique; the oldest matching post wins, matching the
	// first-match behavior of the local backend.
	query := `SELECT ` + blogColumns + ` FROM blog_posts
		WHERE slug = $1 ORDER BY id LIMIT 1`
	post, err := scanPost(r.db.QueryRow(ctx, query, slugValue))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post by slug %s: %w", slugValue, err)
	}
	return post, nil
}

func (r *PostgresBlogRepository) Create(ctx context.Context, patch models.BlogPatch) (*models.BlogPost, error) {
	var seq int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('blog_posts_id_seq')`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("failed to mint blog post id: %w", err)
	}
	post := materializePost(patch, fmt.Sprintf("%s%d", postPrefix, seq), time.Now())

	query := `INSERT INTO blog_posts (` + blogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content,
		post.Image, post.Category, post.Tags, post.Author.Name,
		post.Author.Avatar, post.PublishedAt, post.UpdatedAt,
		post.IsPublished, post.Views,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert blog post: %w", err)
	}
	return &post, nil
}

func (r *PostgresBlogRepository) Update(ctx context.Context, id string, patch models.BlogPatch) (*models.BlogPost, error) {
	post, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyBlogPatch(post, patch, time.Now())

	query := `UPDATE blog_posts SET
		title = $2, slug = $3, excerpt = $4, content = $5, image = $6,
		category = $7, tags = $8, author_name = $9, author_avatar = $10,
		published_at = $11, updated_at = $12, is_published = $13
		WHERE id = $1`
	_, err = r.db.Exec(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content,
		post.Image, post.Category, post.Tags, post.Author.Name,
		post.Author.Avatar, post.PublishedAt, post.UpdatedAt, post.IsPublished,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update blog post %s: %w", id, err)
	}
	return post, nil
}

func (r *PostgresBlogRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}

func (r *PostgresBlogRepository) Search(ctx context.Context, query, category string) ([]models.BlogPost, error) {
	builder := squirrel.Select(blogColumns).
		From("blog_posts").
		Where(squirrel.Eq{"is_published": true}).
		OrderBy("published_at DESC", "id").
		PlaceholderFormat(squirrel.Dollar)

	if query != "" {
		pattern := "%" + query + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"excerpt": pattern},
			squirrel.ILike{"content": pattern},
			squirrel.Expr("EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE t ILIKE ?)", pattern),
		})
	}
	if category != "" {
		builder = builder.Where(squirrel.Eq{"category": category})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build blog search: %w", err)
	}
	return r.queryPosts(ctx, sql, args...)
}

func (r *PostgresBlogRepository) ByCategory(ctx context.Context, category string) ([]models.BlogPost, error) {
	return r.Search(ctx, "", category)
}

func (r *PostgresBlogRepository) Featured(ctx context.Context, limit int) ([]models.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts
		WHERE is_published ORDER BY views DESC, id LIMIT $1`
	return r.queryPosts(ctx, query, limit)
}

func (r *PostgresBlogRepository) Recent(ctx context.Context, limit int) ([]models.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts
		WHERE is_published ORDER BY published_at DESC, id LIMIT $1`
	return r.queryPosts(ctx, query, limit)
}

func (r *PostgresBlogRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM blog_posts WHERE category <> '' ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("failed to scan blog category: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *PostgresBlogRepository) IncrementViews(ctx context.Context, id string) error {
	// Unknown ids affect zero rows, which is the intended no-op.
	_, err := r.db.Exec(ctx, `UPDATE blog_posts SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment views for %s: %w", id, err)
	}
	return nil
}

func (r *PostgresBlogRepository) SeedIfEmpty(ctx context.Context, defaults []models.BlogPost) error {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count blog posts: %w", err)
	}
	if count > 0 {
		return nil
	}
	query := `INSERT INTO blog_posts (` + blogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	for _, post := range defaults {
		_, err := r.db.Exec(ctx, query,
			post.ID, post.Title, post.Slug, post.Excerpt, post.Content,
			post.Image, post.Category, post.Tags, post.Author.Name,
			post.Author.Avatar, post.PublishedAt, post.UpdatedAt,
			post.IsPublished, post.Views,
		)
		if err != nil {
			return fmt.Errorf("failed to seed blog post %s: %w", post.ID, err)
		}
	}
	_, err := r.db.Exec(ctx, `SELECT setval('blog_posts_id_seq', $1, false)`, len(defaults)+1)
	if err != nil {
		return fmt.Errorf("failed to initialize blog id sequence: %w", err)
	}
	return nil
}
