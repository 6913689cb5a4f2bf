package viewport

import (
	"context"
	"log/slog"
	"sync"

	"github.com/visioncart/storefront/internal/core/port"
)

var _ port.ViewportObserver = (*Trigger)(nil)

// Trigger is a channel-backed viewport observer. The UI layer calls
// NearEnd when the rendered list end comes into view; pending signals
// coalesce, so a burst of scroll events becomes at most one buffered
// signal plus whatever the consumer already took.
type Trigger struct {
	signals chan struct{}
}

func NewTrigger() *Trigger {
	return &Trigger{signals: make(chan struct{}, 1)}
}

func (t *Trigger) NearEnd() {
	select {
	case t.signals <- struct{}{}:
	default:
	}
}

func (t *Trigger) Signals() <-chan struct{} {
	return t.signals
}

type pageRequester interface {
	RequestNextPage(context.Context) bool
}

// Binder drains an observer's signals into next-page requests. It
// forwards every signal as-is; the pager's own re-entrancy guard is
// what keeps rapid duplicate signals from issuing duplicate fetches.
type Binder struct {
	observer port.ViewportObserver
	pager    pageRequester
}

func NewBinder(observer port.ViewportObserver, pager pageRequester) Binder {
	return Binder{observer, pager}
}

func (b Binder) Run(ctx context.Context, wg *sync.WaitGroup) {
	const op = "Binder.Run"
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-b.observer.Signals():
			if !b.pager.RequestNextPage(ctx) {
				slog.Debug("next page request dropped", "op", op)
			}
		}
	}
}
