package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStoreSetGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k1", payload{Name: "santoor", Count: 3}, 0))

	var got payload
	require.NoError(t, store.Get(ctx, "k1", &got))
	assert.Equal(t, payload{Name: "santoor", Count: 3}, got)
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemoryStore()

	var got payload
	err := store.Get(context.Background(), "absent", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k1", payload{Name: "original"}, 0))

	var first payload
	require.NoError(t, store.Get(ctx, "k1", &first))
	first.Name = "mutated"

	var second payload
	require.NoError(t, store.Get(ctx, "k1", &second))
	assert.Equal(t, "original", second.Name)
}

func TestMemoryStoreTTL(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "short", payload{Name: "x"}, 10*time.Millisecond))
	assert.True(t, store.Exists(ctx, "short"))

	time.Sleep(30 * time.Millisecond)

	assert.False(t, store.Exists(ctx, "short"))
	var got payload
	assert.ErrorIs(t, store.Get(ctx, "short", &got), ErrCacheMiss)
	assert.Equal(t, 0, store.Len(), "expired entry should be collected on read")
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "forever", payload{Name: "x"}, 0))
	time.Sleep(20 * time.Millisecond)
	assert.True(t, store.Exists(ctx, "forever"))
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k1", payload{}, 0))
	require.NoError(t, store.Delete(ctx, "k1"))
	assert.False(t, store.Exists(ctx, "k1"))

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete(ctx, "k1"))
}

func TestMemoryStoreDeletePattern(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "virasat:events:detail:id:1", payload{}, 0))
	require.NoError(t, store.Set(ctx, "virasat:events:detail:id:2", payload{}, 0))
	require.NoError(t, store.Set(ctx, "virasat:other:key", payload{}, 0))

	require.NoError(t, store.DeletePattern(ctx, "virasat:events:detail:id:*"))

	assert.False(t, store.Exists(ctx, "virasat:events:detail:id:1"))
	assert.False(t, store.Exists(ctx, "virasat:events:detail:id:2"))
	assert.True(t, store.Exists(ctx, "virasat:other:key"))
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStorePing(t *testing.T) {
	assert.NoError(t, NewMemoryStore().Ping(context.Background()))
}
