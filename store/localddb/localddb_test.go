package localddb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hibiscushealth/backend/table"
)

var widgetsColl = table.CollectionDefinition{
	Name: "widgets-test",
	Key:  table.KeyDef{Name: "id"},
	Indexes: []table.SecondaryIndex{
		{Name: "owner-index", Key: "owner", SortKey: "createdAt"},
		{Name: "color-index", Key: "color"},
	},
}

type widget struct {
	ID        string `json:"id"`
	Owner     string `json:"owner,omitempty"`
	Color     string `json:"color,omitempty"`
	Count     int64  `json:"count"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(Options{InMemory: true}, widgetsColl)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in := widget{ID: "w1", Owner: "alice", Color: "red", Count: 3}
	require.NoError(t, s.Put(ctx, widgetsColl, in))

	var out widget
	found, err := s.Get(ctx, widgetsColl, "w1", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in, out)
}

func TestGetAbsentIsNotAnError(t *testing.T) {
	s := newTestStore(t)

	var out widget
	found, err := s.Get(context.Background(), widgetsColl, "missing", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, widget{}, out)
}

func TestPutOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, widgetsColl, widget{ID: "w1", Color: "red"}))
	require.NoError(t, s.Put(ctx, widgetsColl, widget{ID: "w1", Color: "blue"}))

	var out widget
	found, err := s.Get(ctx, widgetsColl, "w1", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "blue", out.Color)

	// The old index entry must be gone.
	var reds []widget
	require.NoError(t, s.Query(ctx, widgetsColl, "color-index", "red", &reds))
	assert.Empty(t, reds)

	var blues []widget
	require.NoError(t, s.Query(ctx, widgetsColl, "color-index", "blue", &blues))
	require.Len(t, blues, 1)
	assert.Equal(t, "w1", blues[0].ID)
}

func TestQueryOrdersBySortAttribute(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, widgetsColl, widget{ID: "w2", Owner: "alice", CreatedAt: "2026-02-01T00:00:00Z"}))
	require.NoError(t, s.Put(ctx, widgetsColl, widget{ID: "w1", Owner: "alice", CreatedAt: "2026-01-01T00:00:00Z"}))
	require.NoError(t, s.Put(ctx, widgetsColl, widget{ID: "w3", Owner: "bob", CreatedAt: "2025-01-01T00:00:00Z"}))

	var out []widget
	require.NoError(t, s.Query(ctx, widgetsColl, "owner-index", "alice", &out))
	require.Len(t, out, 2)
	assert.Equal(t, "w1", out[0].ID)
	assert.Equal(t, "w2", out[1].ID)
}

func TestQueryNoMatchesIsEmpty(t *testing.T) {
	s := newTestStore(t)

	var out []widget
	require.NoError(t, s.Query(context.Background(), widgetsColl, "owner-index", "nobody", &out))
	assert.Empty(t, out)
}

func TestQueryUnknownIndex(t *testing.T) {
	s := newTestStore(t)

	var out []widget
	err := s.Query(context.Background(), widgetsColl, "no-such-index", "x", &out)
	assert.Error(t, err)
}

func TestScanReturnsEverything(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"w1", "w2", "w3"} {
		require.NoError(t, s.Put(ctx, widgetsColl, widget{ID: id, Owner: "alice", Color: "red"}))
	}

	var out []widget
	require.NoError(t, s.Scan(ctx, widgetsColl, &out))
	assert.Len(t, out, 3)
}

func TestUpdateExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, widgetsColl, widget{ID: "w1", Color: "red", Count: 5}))

	var updated widget
	err := s.Update(ctx, widgetsColl, "w1", map[string]any{"count": 2}, &updated)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Count)
	assert.Equal(t, "red", updated.Color)

	var out widget
	found, err := s.Get(ctx, widgetsColl, "w1", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(2), out.Count)
}

func TestUpdateMissingKeyFails(t *testing.T) {
	s := newTestStore(t)

	err := s.Update(context.Background(), widgetsColl, "missing", map[string]any{"count": 1}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateReindexesChangedAttribute(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, widgetsColl, widget{ID: "w1", Color: "red"}))
	require.NoError(t, s.Update(ctx, widgetsColl, "w1", map[string]any{"color": "green"}, nil))

	var reds, greens []widget
	require.NoError(t, s.Query(ctx, widgetsColl, "color-index", "red", &reds))
	require.NoError(t, s.Query(ctx, widgetsColl, "color-index", "green", &greens))
	assert.Empty(t, reds)
	require.Len(t, greens, 1)
	assert.Equal(t, "w1", greens[0].ID)
}

func TestUnregisteredCollection(t *testing.T) {
	s := newTestStore(t)

	other := table.CollectionDefinition{Name: "other", Key: table.KeyDef{Name: "id"}}
	_, err := s.Get(context.Background(), other, "x", nil)
	assert.Error(t, err)
	assert.ErrorContains(t, err, "not registered")
}
