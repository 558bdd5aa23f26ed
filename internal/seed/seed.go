// Package seed holds the default catalog content loaded into an empty
// storage backend on startup.
package seed

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/tnqdo/tnqdo-backend/internal/app/repositories"
)

// ts parses an RFC3339 timestamp from the seed data. Seed constants are
// fixed strings, so a parse failure is a programming error.
func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("seed: bad timestamp " + value)
	}
	return t
}

// Apply loads the default content into every empty collection. Existing
// data is never overwritten.
func Apply(ctx context.Context, repos *repositories.Repositories, log zerolog.Logger) error {
	if err := repos.Courses.SeedIfEmpty(ctx, DefaultCourses()); err != nil {
		return err
	}
	if err := repos.Blog.SeedIfEmpty(ctx, DefaultBlogPosts()); err != nil {
		return err
	}
	if err := repos.Teachers.SeedIfEmpty(ctx, DefaultTeachers()); err != nil {
		return err
	}
	if err := repos.FAQs.SeedIfEmpty(ctx, DefaultFAQs()); err != nil {
		return err
	}
	log.Info().Msg("Seed check complete")
	return nil
}
