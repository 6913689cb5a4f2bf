package viewport_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visioncart/storefront/internal/adapter/viewport"
)

type countingPager struct {
	requests atomic.Int64
}

func (p *countingPager) RequestNextPage(context.Context) bool {
	p.requests.Add(1)
	return true
}

func TestTrigger(t *testing.T) {

	t.Run("SignalDelivered", func(t *testing.T) {
		tr := viewport.NewTrigger()
		tr.NearEnd()

		select {
		case <-tr.Signals():
		default:
			t.Fatal("expected a pending signal")
		}
	})

	t.Run("BurstCoalesces", func(t *testing.T) {
		tr := viewport.NewTrigger()
		for i := 0; i < 10; i++ {
			tr.NearEnd()
		}

		var n int
		for {
			select {
			case <-tr.Signals():
				n++
				continue
			default:
			}
			break
		}
		assert.Equal(t, 1, n)
	})
}

func TestBinder(t *testing.T) {

	t.Run("ForwardsSignals", func(t *testing.T) {
		tr := viewport.NewTrigger()
		pager := &countingPager{}
		b := viewport.NewBinder(tr, pager)

		ctx, cancel := context.WithCancel(context.Background())
		var wg sync.WaitGroup
		wg.Add(1)
		go b.Run(ctx, &wg)

		tr.NearEnd()
		require.Eventually(t, func() bool {
			return pager.requests.Load() == 1
		}, time.Second, time.Millisecond)

		tr.NearEnd()
		require.Eventually(t, func() bool {
			return pager.requests.Load() == 2
		}, time.Second, time.Millisecond)

		cancel()
		wg.Wait()
	})
}
