package preload

import (
	"context"
	"errors"

	"virasat/internal/catalog"
	"virasat/internal/shared/constants"
	"virasat/pkg/cache"
	"virasat/pkg/logger"
)

// Source is the catalog surface the preloader reads from on a cache miss.
type Source interface {
	EventByID(id int) (catalog.Event, bool)
	Events() []catalog.Event
}

// PageSource reports which event ids occupy a given flat page. The query
// engine implements it, which lets the preloader warm exactly the events a
// listing view shows instead of guessing an index range.
type PageSource interface {
	PageEventIDs(page, pageSize int) []int
}

// Preloader warms the event cache ahead of booking-page navigation. The store
// is injected so tests can run against isolated in-memory stores and the
// server can share a Redis-backed one. Misses always fall back to the
// catalog, so every operation here is a best-effort optimization.
type Preloader struct {
	catalog Source
	pages   PageSource
	store   cache.Store
	log     *logger.Logger
}

func New(src Source, pages PageSource, store cache.Store) *Preloader {
	return &Preloader{
		catalog: src,
		pages:   pages,
		store:   store,
		log:     logger.GetDefault(),
	}
}

// PreloadEvent returns the cached event when present; otherwise it looks the
// event up in the catalog, stores it and returns it. A not-found lookup is
// never cached, so a bad id cannot poison the cache with negative entries.
func (p *Preloader) PreloadEvent(ctx context.Context, id int) (catalog.Event, bool) {
	key := constants.BuildEventDetailKey(id)

	var cached catalog.Event
	if err := p.store.Get(ctx, key, &cached); err == nil {
		p.log.LogCacheHit(ctx, key)
		return cached, true
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		p.log.WithError(err).Warn("cache read failed, falling back to catalog")
	}

	event, ok := p.catalog.EventByID(id)
	if !ok {
		return catalog.Event{}, false
	}
	p.log.LogCacheMiss(ctx, key)

	if err := p.store.Set(ctx, key, event, constants.TTL_EVENT_DETAIL); err != nil {
		p.log.WithError(err).Warn("failed to cache event")
	}
	return event, true
}

// PreloadBatch warms and returns the given ids in input order, dropping any
// that do not resolve.
func (p *Preloader) PreloadBatch(ctx context.Context, ids []int) []catalog.Event {
	var out []catalog.Event
	for _, id := range ids {
		if event, ok := p.PreloadEvent(ctx, id); ok {
			out = append(out, event)
		}
	}
	return out
}

// PreloadAll force-inserts every catalog event into the cache and returns the
// full catalog.
func (p *Preloader) PreloadAll(ctx context.Context) []catalog.Event {
	events := p.catalog.Events()
	for _, event := range events {
		key := constants.BuildEventDetailKey(event.ID)
		if err := p.store.Set(ctx, key, event, constants.TTL_EVENT_DETAIL); err != nil {
			p.log.WithError(err).Warn("failed to cache event during bulk warm")
		}
	}
	return events
}

// CachedEvent is a pure cache read: no catalog fallback, no insertion.
// A false result means "not cached yet", which is distinct from "no such
// event".
func (p *Preloader) CachedEvent(ctx context.Context, id int) (catalog.Event, bool) {
	var cached catalog.Event
	if err := p.store.Get(ctx, constants.BuildEventDetailKey(id), &cached); err != nil {
		return catalog.Event{}, false
	}
	return cached, true
}

// Clear empties the event cache. The catalog itself is untouched.
func (p *Preloader) Clear(ctx context.Context) error {
	return p.store.DeletePattern(ctx, constants.PATTERN_EVENT_DETAIL_ALL)
}

// PreloadVisible warms the events occupying the given flat page.
func (p *Preloader) PreloadVisible(ctx context.Context, page, pageSize int) []catalog.Event {
	return p.PreloadBatch(ctx, p.pages.PageEventIDs(page, pageSize))
}

// PreloadNextPage warms the page after the current one, ahead of the
// pagination cursor.
func (p *Preloader) PreloadNextPage(ctx context.Context, page, pageSize int) []catalog.Event {
	return p.PreloadBatch(ctx, p.pages.PageEventIDs(page+1, pageSize))
}
