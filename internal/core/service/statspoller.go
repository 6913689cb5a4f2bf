package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/visioncart/storefront/internal/core/domain"
	"github.com/visioncart/storefront/internal/core/port"
	"github.com/visioncart/storefront/pkg/retry"
)

const pollAttempts = 3

// StatsPoller refreshes the admin shop stats on a fixed interval. The
// schedule has an explicit lifecycle: it starts with Run and stops on
// context cancellation or Close, it is not a bare timer. A failed tick
// keeps the previous snapshot.
type StatsPoller struct {
	fetcher  port.ShopStatsFetcher
	interval time.Duration
	done     chan struct{}
	once     sync.Once

	mu      sync.Mutex
	last    domain.ShopStats
	fresh   bool
	lastErr error
}

func NewStatsPoller(fetcher port.ShopStatsFetcher, interval time.Duration) *StatsPoller {
	return &StatsPoller{
		fetcher:  fetcher,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Run polls until ctx is done or Close is called. The first poll
// happens immediately.
func (p *StatsPoller) Run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.done:
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *StatsPoller) Close() {
	p.once.Do(func() { close(p.done) })
}

// Latest returns the most recent snapshot and whether one has been
// fetched yet.
func (p *StatsPoller) Latest() (domain.ShopStats, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last, p.fresh
}

// LastError reports the most recent poll failure, nil after a
// successful tick.
func (p *StatsPoller) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

func (p *StatsPoller) poll(ctx context.Context) {
	const op = "StatsPoller.poll"
	log := slog.With("op", op)

	cfg := retry.RetryConfig{
		MaxAttempts: pollAttempts,
		Backoff:     retry.LinearBackoff(p.interval / 10),
	}
	stats, err := retry.DoWithResult(ctx, cfg, func() (domain.ShopStats, error) {
		return p.fetcher.FetchShopStats(ctx)
	})

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.lastErr = err
		log.Warn("stats poll failed, keeping previous snapshot", "err", err)
		return
	}
	p.last = stats
	p.fresh = true
	p.lastErr = nil
}
