package shutdown

import (
	"context"
	"errors"
	"os/signal"
	"slices"
	"sync"
	"syscall"
	"time"
)

// Handler runs cleanup hooks once.
type Handler struct {
	timeout time.Duration
	hooks   []func(context.Context) error
	mu      sync.Mutex
	once    sync.Once
	err     error
	done    chan struct{}
}

// NewHandler creates a new shutdown handler. Hooks share one context
// bounded by timeout.
func NewHandler(timeout time.Duration) *Handler {
	return &Handler{
		timeout: timeout,
		hooks:   make([]func(context.Context) error, 0),
		done:    make(chan struct{}),
	}
}

// OnShutdown registers a shutdown hook.
// Hooks are called in reverse order of registration.
func (h *Handler) OnShutdown(hook func(context.Context) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Shutdown executes the hooks. Every hook runs even if an earlier one
// fails; the errors are joined. Repeated calls return the first result.
func (h *Handler) Shutdown() error {
	h.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()

		h.mu.Lock()
		hooks := slices.Clone(h.hooks)
		h.mu.Unlock()

		var errs []error
		for i := len(hooks) - 1; i >= 0; i-- {
			if err := hooks[i](ctx); err != nil {
				errs = append(errs, err)
			}
		}

		h.err = errors.Join(errs...)
		close(h.done)
	})
	return h.err
}

// Done returns a channel that closes when shutdown is complete.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}

// WithSignals returns a copy of parent that is canceled on SIGINT or
// SIGTERM. Call stop to release the signal registration.
func WithSignals(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
