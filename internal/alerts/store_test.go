package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarfleet/internal/domain"
	"solarfleet/internal/registry"
)

func seeded(t *testing.T) *SessionStore {
	t.Helper()
	return NewSessionStore(registry.New().Alerts())
}

func TestActiveSeededFromRegistry(t *testing.T) {
	store := seeded(t)
	active := store.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "1", active[0].ID)
	assert.Equal(t, "2", active[1].ID)
}

func TestResolveRemovesExactlyOne(t *testing.T) {
	store := seeded(t)

	resolved, found := store.Resolve("1")
	assert.True(t, found)
	assert.True(t, resolved.Resolved)
	assert.Equal(t, "Usina Solar Sul", resolved.PlantName)

	active := store.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "2", active[0].ID)

	history := store.Resolved()
	require.Len(t, history, 1)
	assert.Equal(t, "1", history[0].ID)
}

func TestResolveUnknownIDIsNoOp(t *testing.T) {
	store := seeded(t)
	before := store.Active()

	_, found := store.Resolve("nope")
	assert.False(t, found)
	assert.Equal(t, before, store.Active())
}

func TestResolveTwiceIsNoOp(t *testing.T) {
	store := seeded(t)

	_, found := store.Resolve("2")
	require.True(t, found)
	_, found = store.Resolve("2")
	assert.False(t, found)

	assert.Len(t, store.Active(), 1)
	assert.Len(t, store.Resolved(), 1)
}

func TestResolveOrderPreserved(t *testing.T) {
	store := NewSessionStore([]domain.Alert{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
	})
	store.Resolve("b")

	active := store.Active()
	require.Len(t, active, 3)
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "c", active[1].ID)
	assert.Equal(t, "d", active[2].ID)
}

func TestNewSessionRestoresOriginalSet(t *testing.T) {
	store := seeded(t)
	store.Resolve("1")
	store.Resolve("2")
	assert.Empty(t, store.Active())

	// A fresh session sees the original unresolved alerts again.
	fresh := seeded(t)
	assert.Len(t, fresh.Active(), 2)
}
