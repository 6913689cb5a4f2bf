package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/visioncart/storefront/internal/core/domain"
	"github.com/visioncart/storefront/internal/core/port"
)

type PagerState int

const (
	PagerIdle PagerState = iota
	PagerFetching
	PagerExhausted
	PagerError
)

func (s PagerState) String() string {
	switch s {
	case PagerIdle:
		return "IDLE"
	case PagerFetching:
		return "FETCHING"
	case PagerExhausted:
		return "EXHAUSTED"
	case PagerError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// PagerSnapshot is a consistent read of the pager for rendering.
// Results is a copy; the caller may keep it.
type PagerSnapshot struct {
	Results []domain.ProductRecord
	State   PagerState
	HasMore bool
	Page    int
	Err     error
}

func (s PagerSnapshot) Loading() bool {
	return s.State == PagerFetching
}

type PagerOpt func(*CatalogPager)

func PageSizeOpt(size int) PagerOpt {
	return func(p *CatalogPager) {
		if size > 0 {
			p.pageSize = size
		}
	}
}

// OnChangeOpt registers the render callback invoked after every state
// transition, outside the pager's lock.
func OnChangeOpt(fn func(PagerSnapshot)) PagerOpt {
	return func(p *CatalogPager) {
		p.onChange = fn
	}
}

// CatalogPager owns the filter state, the page cursor and the
// accumulated result list for the infinite-scroll catalog view.
//
// At most one fetch is in flight per pager. A next-page request while a
// fetch is pending is dropped, and a completion whose originating
// query was superseded by ApplyFilters is discarded, so late responses
// are harmless no-ops. State is only mutated by the pager's own
// handlers; readers get copies.
type CatalogPager struct {
	mu       sync.Mutex
	querier  port.ProductQuerier
	pageSize int
	onChange func(PagerSnapshot)

	filters domain.CatalogFilters
	page    int
	results []domain.ProductRecord
	state   PagerState
	hasMore bool
	err     error
	epoch   uint64
}

func NewCatalogPager(querier port.ProductQuerier, opts ...PagerOpt) *CatalogPager {
	p := &CatalogPager{
		querier:  querier,
		pageSize: domain.DefaultPageSize,
		state:    PagerIdle,
		hasMore:  true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ApplyFilters replaces the filter state, resets the cursor to page
// zero, clears accumulated results and starts a fetch. Always legal;
// an in-flight fetch is superseded and its eventual response dropped.
func (p *CatalogPager) ApplyFilters(ctx context.Context, f domain.CatalogFilters) {
	p.mu.Lock()
	p.filters = f
	p.page = 0
	p.results = nil
	p.hasMore = true
	p.err = nil
	p.state = PagerFetching
	p.epoch++
	epoch := p.epoch
	query := f.Query(0, p.pageSize)
	snap := p.snapshotLocked()
	p.mu.Unlock()

	p.notify(snap)
	go p.fetch(ctx, query, epoch)
}

// RequestNextPage asks for the page after the current cursor. It
// reports whether the request was accepted: requests are dropped while
// a fetch is pending, after the last page, or when hasMore is false.
// In the error state the failed page is fetched again without
// advancing the cursor.
func (p *CatalogPager) RequestNextPage(ctx context.Context) bool {
	p.mu.Lock()
	if p.state == PagerFetching || p.state == PagerExhausted || !p.hasMore {
		p.mu.Unlock()
		return false
	}
	if p.state == PagerIdle {
		p.page++
	}
	p.state = PagerFetching
	epoch := p.epoch
	query := p.filters.Query(p.page, p.pageSize)
	snap := p.snapshotLocked()
	p.mu.Unlock()

	p.notify(snap)
	go p.fetch(ctx, query, epoch)
	return true
}

func (p *CatalogPager) fetch(ctx context.Context, q domain.CatalogQuery, epoch uint64) {
	const op = "CatalogPager.fetch"
	log := slog.With("op", op, "page", q.Page)

	page, err := p.querier.ListProducts(ctx, q)

	p.mu.Lock()
	if epoch != p.epoch || q.Page != p.page {
		p.mu.Unlock()
		log.Debug("superseded response discarded")
		return
	}

	if err != nil {
		p.state = PagerError
		p.err = err
		snap := p.snapshotLocked()
		p.mu.Unlock()
		log.Error("catalog fetch failed", "err", err)
		p.notify(snap)
		return
	}

	if q.Page == 0 {
		p.results = page.Content
	} else {
		p.results = append(p.results, page.Content...)
	}
	p.hasMore = !page.Last
	if p.hasMore {
		p.state = PagerIdle
	} else {
		p.state = PagerExhausted
	}
	p.err = nil
	snap := p.snapshotLocked()
	p.mu.Unlock()

	log.Info("page merged", "nRecords", len(page.Content), "hasMore", snap.HasMore)
	p.notify(snap)
}

func (p *CatalogPager) Snapshot() PagerSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *CatalogPager) Results() []domain.ProductRecord {
	return p.Snapshot().Results
}

func (p *CatalogPager) Loading() bool {
	return p.Snapshot().Loading()
}

func (p *CatalogPager) HasMore() bool {
	return p.Snapshot().HasMore
}

func (p *CatalogPager) State() PagerState {
	return p.Snapshot().State
}

func (p *CatalogPager) snapshotLocked() PagerSnapshot {
	results := make([]domain.ProductRecord, len(p.results))
	copy(results, p.results)
	return PagerSnapshot{
		Results: results,
		State:   p.state,
		HasMore: p.hasMore,
		Page:    p.page,
		Err:     p.err,
	}
}

func (p *CatalogPager) notify(snap PagerSnapshot) {
	if p.onChange != nil {
		p.onChange(snap)
	}
}
