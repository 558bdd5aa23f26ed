package repositories

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/kvstore"
)

// localFAQRepository keeps FAQ entries in the KV store.
type localFAQRepository struct {
	col *kvstore.Collection[models.FAQ]
	log zerolog.Logger
}

// NewLocalFAQRepository creates a file-backed FAQ repository.
func NewLocalFAQRepository(kv kvstore.KV, log zerolog.Logger) FAQRepository {
	return &localFAQRepository{
		col: kvstore.NewCollection[models.FAQ](kv, faqsKey, faqsCounterKey, log),
		log: log.With().Str("repository", "faqs").Logger(),
	}
}

func (r *localFAQRepository) GetAll(_ context.Context) ([]models.FAQ, error) {
	faqs := []models.FAQ{}
	for _, faq := range r.col.LoadAll() {
		if faq.IsActive {
			faqs = append(faqs, faq)
		}
	}
	sort.SliceStable(faqs, func(i, j int) bool {
		return faqs[i].Order < faqs[j].Order
	})
	return faqs, nil
}

func (r *localFAQRepository) ByCategory(_ context.Context, category string) ([]models.FAQ, error) {
	all, _ := r.GetAll(context.Background())
	if category == "" {
		return all, nil
	}
	faqs := []models.FAQ{}
	for _, faq := range all {
		if faq.Category == category {
			faqs = append(faqs, faq)
		}
	}
	return faqs, nil
}

func (r *localFAQRepository) SeedIfEmpty(_ context.Context, defaults []models.FAQ) error {
	return r.col.SeedIfEmpty(defaults)
}
