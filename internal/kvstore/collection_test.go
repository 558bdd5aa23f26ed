package kvstore

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestCollection(t *testing.T) *Collection[record] {
	t.Helper()
	return NewCollection[record](NewMemStore(), "items", "items_counter", zerolog.Nop())
}

func TestCollectionLoadAllEmpty(t *testing.T) {
	col := newTestCollection(t)
	items := col.LoadAll()
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCollectionSaveAndLoad(t *testing.T) {
	col := newTestCollection(t)
	require.NoError(t, col.SaveAll([]record{{ID: "a", Name: "first"}, {ID: "b", Name: "second"}}))

	items := col.LoadAll()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "second", items[1].Name)
}

func TestCollectionCounterDefaultsToOne(t *testing.T) {
	col := newTestCollection(t)
	assert.Equal(t, 1, col.NextID())

	// Reading never advances.
	assert.Equal(t, 1, col.NextID())
}

func TestCollectionAdvanceCounter(t *testing.T) {
	col := newTestCollection(t)
	col.AdvanceCounter()
	col.AdvanceCounter()
	assert.Equal(t, 3, col.NextID())
}

func TestCollectionCounterIgnoresGarbage(t *testing.T) {
	kv := NewMemStore()
	require.NoError(t, kv.Set("items_counter", "not-a-number"))
	col := NewCollection[record](kv, "items", "items_counter", zerolog.Nop())
	assert.Equal(t, 1, col.NextID())
}

func TestCollectionSeedIfEmpty(t *testing.T) {
	col := newTestCollection(t)
	defaults := []record{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	require.NoError(t, col.SeedIfEmpty(defaults))
	assert.Len(t, col.LoadAll(), 3)
	assert.Equal(t, 4, col.NextID())

	// A second call must not overwrite existing data.
	require.NoError(t, col.SeedIfEmpty([]record{{ID: "other"}}))
	items := col.LoadAll()
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, 4, col.NextID())
}

func TestCollectionExportImportRoundTrip(t *testing.T) {
	col := newTestCollection(t)
	require.NoError(t, col.SaveAll([]record{{ID: "a", Name: "first"}}))

	snapshot, err := col.ExportSnapshot()
	require.NoError(t, err)

	other := NewCollection[record](NewMemStore(), "items", "items_counter", zerolog.Nop())
	require.True(t, other.ImportSnapshot(snapshot))

	items := other.LoadAll()
	require.Len(t, items, 1)
	assert.Equal(t, "first", items[0].Name)
}

func TestCollectionImportRejectsMalformedText(t *testing.T) {
	col := newTestCollection(t)
	require.NoError(t, col.SaveAll([]record{{ID: "a"}}))

	assert.False(t, col.ImportSnapshot("{not json"))
	assert.False(t, col.ImportSnapshot(`{"id":"a"}`))

	// Rejected imports leave the data alone.
	assert.Len(t, col.LoadAll(), 1)
}

func TestCollectionImportLeavesCounterUntouched(t *testing.T) {
	col := newTestCollection(t)
	require.NoError(t, col.SeedIfEmpty([]record{{ID: "a"}, {ID: "b"}}))
	require.Equal(t, 3, col.NextID())

	require.True(t, col.ImportSnapshot(`[{"id":"x"},{"id":"y"},{"id":"z"},{"id":"w"}]`))
	assert.Equal(t, 3, col.NextID())
}

func TestCollectionImportRejectsNull(t *testing.T) {
	col := newTestCollection(t)
	require.NoError(t, col.SaveAll([]record{{ID: "a"}, {ID: "b"}}))

	// "null" unmarshals into a nil slice without an error; accepting
	// it would silently erase every stored record.
	require.False(t, col.ImportSnapshot("null"))
	assert.Len(t, col.LoadAll(), 2)
}

func TestCollectionClear(t *testing.T) {
	col := newTestCollection(t)
	require.NoError(t, col.SeedIfEmpty([]record{{ID: "a"}}))

	col.Clear()
	assert.Empty(t, col.LoadAll())
	assert.Equal(t, 1, col.NextID())
}
