package repositories

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tnqdo/tnqdo-backend/internal/app/models"
	"github.com/tnqdo/tnqdo-backend/internal/kvstore"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/apperrors"
)

// localContactRepository keeps contact messages in the KV store.
// Messages get uuid ids instead of counter ids because the form is
// public and unauthenticated.
type localContactRepository struct {
	col *kvstore.Collection[models.ContactMessage]
	log zerolog.Logger
}

// NewLocalContactRepository creates a file-backed contact repository.
func NewLocalContactRepository(kv kvstore.KV, log zerolog.Logger) ContactRepository {
	return &localContactRepository{
		col: kvstore.NewCollection[models.ContactMessage](kv, contactKey, contactCounterKey, log),
		log: log.With().Str("repository", "contact").Logger(),
	}
}

func (r *localContactRepository) Create(_ context.Context, msg models.ContactMessage) (*models.ContactMessage, error) {
	msg.ID = uuid.New().String()
	msg.Status = models.ContactPending
	msg.CreatedAt = time.Now().UTC()
	messages := r.col.LoadAll()
	messages = append(messages, msg)
	if err := r.col.SaveAll(messages); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *localContactRepository) GetAll(_ context.Context) ([]models.ContactMessage, error) {
	messages := r.col.LoadAll()
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}

func (r *localContactRepository) UpdateStatus(_ context.Context, id string, status models.ContactStatus) (*models.ContactMessage, error) {
	messages := r.col.LoadAll()
	for i := range messages {
		if messages[i].ID != id {
			continue
		}
		messages[i].Status = status
		if err := r.col.SaveAll(messages); err != nil {
			return nil, err
		}
		updated := messages[i]
		return &updated, nil
	}
	return nil, apperrors.ErrContactNotFound
}
