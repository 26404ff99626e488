package preload_test

import (
	"context"
	"testing"

	"virasat/internal/catalog"
	"virasat/internal/preload"
	"virasat/internal/query"
	"virasat/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource wraps the catalog and counts lookups, so tests can prove a
// cached read never reaches the catalog.
type countingSource struct {
	catalog *catalog.Catalog
	lookups int
}

func (c *countingSource) EventByID(id int) (catalog.Event, bool) {
	c.lookups++
	return c.catalog.EventByID(id)
}

func (c *countingSource) Events() []catalog.Event {
	return c.catalog.Events()
}

func newTestPreloader() (*preload.Preloader, *countingSource, *cache.MemoryStore) {
	cat := catalog.Default()
	src := &countingSource{catalog: cat}
	store := cache.NewMemoryStore()
	return preload.New(src, query.NewService(cat), store), src, store
}

func TestPreloadEventCachesOnFirstRead(t *testing.T) {
	p, src, _ := newTestPreloader()
	ctx := context.Background()

	event, ok := p.PreloadEvent(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, 1, event.ID)
	assert.Equal(t, 1, src.lookups)

	// Second read must come from the cache.
	again, ok := p.PreloadEvent(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, event, again)
	assert.Equal(t, 1, src.lookups)
}

func TestPreloadEventUnknownID(t *testing.T) {
	p, _, store := newTestPreloader()
	ctx := context.Background()

	_, ok := p.PreloadEvent(ctx, 9999)
	assert.False(t, ok)

	// A miss must not leave a negative entry behind.
	assert.Equal(t, 0, store.Len())
}

func TestCachedEventIsPureRead(t *testing.T) {
	p, src, _ := newTestPreloader()
	ctx := context.Background()

	_, ok := p.CachedEvent(ctx, 1)
	assert.False(t, ok, "cold cache read should miss")
	assert.Equal(t, 0, src.lookups, "CachedEvent must not touch the catalog")

	p.PreloadEvent(ctx, 1)

	event, ok := p.CachedEvent(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, 1, event.ID)
}

func TestPreloadBatchKeepsInputOrder(t *testing.T) {
	p, _, _ := newTestPreloader()
	ctx := context.Background()

	events := p.PreloadBatch(ctx, []int{5, 1, 9999, 3})
	require.Len(t, events, 3)
	assert.Equal(t, 5, events[0].ID)
	assert.Equal(t, 1, events[1].ID)
	assert.Equal(t, 3, events[2].ID)
}

func TestPreloadAll(t *testing.T) {
	p, _, store := newTestPreloader()
	ctx := context.Background()

	events := p.PreloadAll(ctx)
	assert.Len(t, events, 56)
	assert.Equal(t, 56, store.Len())
}

func TestClear(t *testing.T) {
	p, _, store := newTestPreloader()
	ctx := context.Background()

	p.PreloadAll(ctx)
	require.Equal(t, 56, store.Len())

	require.NoError(t, p.Clear(ctx))
	assert.Equal(t, 0, store.Len())

	_, ok := p.CachedEvent(ctx, 1)
	assert.False(t, ok)
}

func TestPreloadVisibleWarmsTheCurrentPage(t *testing.T) {
	p, _, _ := newTestPreloader()
	ctx := context.Background()

	events := p.PreloadVisible(ctx, 1, 4)
	require.Len(t, events, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, eventIDs(events))

	for _, id := range []int{1, 2, 3, 4} {
		_, ok := p.CachedEvent(ctx, id)
		assert.True(t, ok, "event %d should be cached", id)
	}
}

func TestPreloadNextPageWarmsAhead(t *testing.T) {
	p, _, _ := newTestPreloader()
	ctx := context.Background()

	events := p.PreloadNextPage(ctx, 1, 4)
	require.Len(t, events, 4)
	assert.Equal(t, []int{5, 6, 7, 8}, eventIDs(events))

	// Past the last page nothing is warmed.
	assert.Empty(t, p.PreloadNextPage(ctx, 14, 4))
}

func TestPreloadIsIdempotent(t *testing.T) {
	p, src, store := newTestPreloader()
	ctx := context.Background()

	first := p.PreloadVisible(ctx, 1, 4)
	lookupsAfterFirst := src.lookups

	second := p.PreloadVisible(ctx, 1, 4)
	assert.Equal(t, first, second)
	assert.Equal(t, lookupsAfterFirst, src.lookups, "warm page should not hit the catalog again")
	assert.Equal(t, 4, store.Len())
}

func eventIDs(events []catalog.Event) []int {
	ids := make([]int, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}
