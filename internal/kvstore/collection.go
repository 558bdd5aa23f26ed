package kvstore

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

// Collection manages one entity collection stored as a serialized JSON
// array under a single key, plus a monotonic counter under a second
// key used to mint new ids.
type Collection[T any] struct {
	kv         KV
	key        string
	counterKey string
	log        zerolog.Logger
}

// NewCollection creates a collection over kv using the given keys.
func NewCollection[T any](kv KV, key, counterKey string, log zerolog.Logger) *Collection[T] {
	return &Collection[T]{
		kv:         kv,
		key:        key,
		counterKey: counterKey,
		log:        log.With().Str("collection", key).Logger(),
	}
}

// LoadAll returns every stored record in storage order. A missing key
// or an unparseable value yields an empty slice, never an error.
func (c *Collection[T]) LoadAll() []T {
	raw, ok := c.kv.Get(c.key)
	if !ok {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.log.Error().Err(err).Msg("Failed to parse stored collection")
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// SaveAll overwrites the collection in a single write.
func (c *Collection[T]) SaveAll(items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize collection %s: %w", c.key, err)
	}
	if err := c.kv.Set(c.key, string(raw)); err != nil {
		return fmt.Errorf("failed to store collection %s: %w", c.key, err)
	}
	return nil
}

// NextID reads the id counter, defaulting to 1 when absent or invalid.
func (c *Collection[T]) NextID() int {
	raw, ok := c.kv.Get(c.counterKey)
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// AdvanceCounter persists counter+1. Called after a successful add so
// a failed add never burns an id.
func (c *Collection[T]) AdvanceCounter() {
	next := c.NextID() + 1
	if err := c.kv.Set(c.counterKey, strconv.Itoa(next)); err != nil {
		c.log.Error().Err(err).Msg("Failed to advance id counter")
	}
}

// SeedIfEmpty writes defaults and sets the counter to len(defaults)+1,
// but only when the collection is currently empty. Existing data is
// never overwritten, so repeated calls are no-ops.
func (c *Collection[T]) SeedIfEmpty(defaults []T) error {
	if len(c.LoadAll()) > 0 {
		return nil
	}
	if err := c.SaveAll(defaults); err != nil {
		return err
	}
	if err := c.kv.Set(c.counterKey, strconv.Itoa(len(defaults)+1)); err != nil {
		return fmt.Errorf("failed to initialize counter for %s: %w", c.key, err)
	}
	c.log.Info().Int("count", len(defaults)).Msg("Seeded default records")
	return nil
}

// Clear removes both the collection and its counter.
func (c *Collection[T]) Clear() {
	if err := c.kv.Remove(c.key); err != nil {
		c.log.Error().Err(err).Msg("Failed to clear collection")
	}
	if err := c.kv.Remove(c.counterKey); err != nil {
		c.log.Error().Err(err).Msg("Failed to clear counter")
	}
}

// ExportSnapshot returns the full collection as pretty-printed JSON
// for backup.
func (c *Collection[T]) ExportSnapshot() (string, error) {
	raw, err := json.MarshalIndent(c.LoadAll(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot for %s: %w", c.key, err)
	}
	return string(raw), nil
}

// ImportSnapshot replaces the collection wholesale when text parses as
// a JSON array and reports whether it did. The id counter is left
// untouched, so adds after an import can collide with imported ids.
func (c *Collection[T]) ImportSnapshot(text string) bool {
	var items []T
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		c.log.Warn().Err(err).Msg("Rejected snapshot import")
		return false
	}
	if items == nil {
		// "null" decodes into a nil slice without an error. Only a
		// real JSON array may replace the collection.
		c.log.Warn().Str("key", c.key).Msg("Rejected snapshot import: not a JSON array")
		return false
	}
	if err := c.SaveAll(items); err != nil {
		c.log.Error().Err(err).Msg("Failed to store imported snapshot")
		return false
	}
	return true
}
