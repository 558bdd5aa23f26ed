package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/kvstore"
)

// Storage keys used by the local backend. The spellings are shared
// with the data files exported from earlier deployments.
const (
	coursesKey         = "tnqdo_courses"
	coursesCounterKey  = "tnqdo_courses_counter"
	blogKey            = "tnqdo_blog_posts"
	blogCounterKey     = "tnqdo_blog_counter"
	teachersKey        = "tnqdo_teachers"
	teachersCounterKey = "tnqdo_teachers_counter"
	faqsKey            = "tnqdo_faqs"
	faqsCounterKey     = "tnqdo_faqs_counter"
	contactKey         = "tnqdo_contact_messages"
	contactCounterKey  = "tnqdo_contact_counter"
)

// Id prefixes combined with the per-collection counter.
const (
	coursePrefix = "course-"
	postPrefix   = "post-"
)

// CourseRepository is the course data-access surface. Both storage
// variants implement it; callers never depend on the storage medium.
type CourseRepository interface {
	GetAll(ctx context.Context) ([]models.CourseDetail, error)
	GetByID(ctx context.Context, id string) (*models.CourseDetail, error)
	Create(ctx context.Context, patch models.CoursePatch) (*models.CourseDetail, error)
	Update(ctx context.Context, id string, patch models.CoursePatch) (*models.CourseDetail, error)
	Delete(ctx context.Context, id string) error
	// Search matches query case-insensitively against name and
	// description, optionally filters on exact level, and only returns
	// active courses.
	Search(ctx context.Context, query string, level models.CourseLevel) ([]models.CourseDetail, error)
	// Featured returns the first limit active courses in storage order.
	Featured(ctx context.Context, limit int) ([]models.Course, error)
	ExportSnapshot(ctx context.Context) (string, error)
	ImportSnapshot(ctx context.Context, text string) error
	SeedIfEmpty(ctx context.Context, defaults []models.CourseDetail) error
}

// BlogRepository is the blog data-access surface.
type BlogRepository interface {
	GetAll(ctx context.Context) ([]models.BlogPost, error)
	GetPublished(ctx context.Context) ([]models.BlogPost, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	// GetBySlug returns the first post with the given slug. Slug
	// uniqueness is not enforced anywhere, so duplicates resolve to
	// whichever was stored first.
	GetBySlug(ctx context.Context, slugValue string) (*models.BlogPost, error)
	Create(ctx context.Context, patch models.BlogPatch) (*models.BlogPost, error)
	Update(ctx context.Context, id string, patch models.BlogPatch) (*models.BlogPost, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query, category string) ([]models.BlogPost, error)
	ByCategory(ctx context.Context, category string) ([]models.BlogPost, error)
	// Featured returns the limit most viewed published posts.
	Featured(ctx context.Context, limit int) ([]models.BlogPost, error)
	// Recent returns the limit newest published posts by publishedAt.
	Recent(ctx context.Context, limit int) ([]models.BlogPost, error)
	Categories(ctx context.Context) ([]string, error)
	// IncrementViews adds one view to the post; unknown ids are a no-op.
	IncrementViews(ctx context.Context, id string) error
	SeedIfEmpty(ctx context.Context, defaults []models.BlogPost) error
}

// TeacherRepository serves the read-only teacher profile pages.
type TeacherRepository interface {
	GetAll(ctx context.Context) ([]models.Teacher, error)
	GetByID(ctx context.Context, id string) (*models.TeacherDetail, error)
	// Featured returns the limit highest rated active teachers.
	Featured(ctx context.Context, limit int) ([]models.Teacher, error)
	SeedIfEmpty(ctx context.Context, defaults []models.TeacherDetail) error
}

// FAQRepository serves the read-only FAQ section.
type FAQRepository interface {
	GetAll(ctx context.Context) ([]models.FAQ, error)
	ByCategory(ctx context.Context, category string) ([]models.FAQ, error)
	SeedIfEmpty(ctx context.Context, defaults []models.FAQ) error
}

// ContactRepository stores messages from the public contact form.
type ContactRepository interface {
	Create(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error)
	GetAll(ctx context.Context) ([]models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.ContactMessage, error)
}

// Repositories bundles every repository behind one composition-time
// choice of storage backend.
type Repositories struct {
	Courses  CourseRepository
	Blog     BlogRepository
	Teachers TeacherRepository
	FAQs     FAQRepository
	Contact  ContactRepository
}

// NewLocalRepositories builds the file-backed variant over kv.
func NewLocalRepositories(kv kvstore.KV, log zerolog.Logger) *Repositories {
	return &Repositories{
		Courses:  NewLocalCourseRepository(kv, log),
		Blog:     NewLocalBlogRepository(kv, log),
		Teachers: NewLocalTeacherRepository(kv, log),
		FAQs:     NewLocalFAQRepository(kv, log),
		Contact:  NewLocalContactRepository(kv, log),
	}
}

// NewPostgresRepositories builds the relational variant over pool.
func NewPostgresRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Courses:  NewPostgresCourseRepository(pool),
		Blog:     NewPostgresBlogRepository(pool),
		Teachers: NewPostgresTeacherRepository(pool),
		FAQs:     NewPostgresFAQRepository(pool),
		Contact:  NewPostgresContactRepository(pool),
	}
}
