package checkout

import (
	"context"
	"sync"

	"github.com/TTJ-s/qr-annujoom/internal/payment"
)

// Handle decouples the gateway's callback from the attempt that opened it.
// The widget reports at an arbitrary later time, possibly after the attempt
// was torn down; a cancelled handle drops the result instead of applying it
// to state nobody is showing any more.
type Handle struct {
	mu        sync.Mutex
	done      chan struct{}
	cancelled bool
	delivered bool
	result    payment.Result
}

// NewHandle creates a live handle awaiting one gateway result.
func NewHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// Deliver hands the gateway result to the handle. It reports false when the
// attempt was already cancelled or a result was already delivered, in which
// case the caller must drop the event.
func (h *Handle) Deliver(result payment.Result) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled || h.delivered {
		return false
	}
	h.delivered = true
	h.result = result
	close(h.done)
	return true
}

// Cancel tears the handle down. Results delivered afterwards are dropped.
func (h *Handle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled || h.delivered {
		h.cancelled = true
		return
	}
	h.cancelled = true
	close(h.done)
}

// Wait blocks until a result arrives, the handle is cancelled, or the
// context expires.
func (h *Handle) Wait(ctx context.Context) (payment.Result, bool) {
	select {
	case <-ctx.Done():
		return payment.Result{}, false
	case <-h.done:
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.delivered {
		return payment.Result{}, false
	}
	return h.result, true
}
