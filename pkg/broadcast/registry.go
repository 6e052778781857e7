package broadcast

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bruce-pain/authkit/pkg/logger"
)

// DefaultPollInterval is the tick period for streaming connections.
const DefaultPollInterval = time.Second

// Handle identifies one live connection in a Registry.
type Handle = uuid.UUID

// entry is the per-connection state. dirty means a change happened since
// the connection last pushed; alive means the connection ticked since the
// last aliveness reset.
type entry struct {
	dirty bool
	alive bool
}

// Registry tracks live connections of snapshot type T.
// All methods are safe for concurrent use.
type Registry[T any] struct {
	mu      sync.Mutex
	entries map[Handle]*entry

	pollInterval time.Duration
	logger       *slog.Logger
}

type Option[T any] func(*Registry[T])

// WithPollInterval sets the tick period used by Stream.
func WithPollInterval[T any](interval time.Duration) Option[T] {
	return func(r *Registry[T]) {
		if interval > 0 {
			r.pollInterval = interval
		}
	}
}

// WithLogger sets a custom logger for the registry.
func WithLogger[T any](log *slog.Logger) Option[T] {
	return func(r *Registry[T]) {
		r.logger = log
	}
}

// NewRegistry creates an empty connection registry.
func NewRegistry[T any](opts ...Option[T]) *Registry[T] {
	r := &Registry[T]{
		entries:      make(map[Handle]*entry),
		pollInterval: DefaultPollInterval,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Open registers a new connection and returns its handle. Opening starts a
// fresh aliveness epoch: every existing entry's alive flag is reset, so
// only connections that keep ticking survive the next OnChange purge. The
// new entry starts dirty, which makes the connection push an initial
// snapshot on its first tick.
func (r *Registry[T]) Open() Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		e.alive = false
	}

	h := uuid.New()
	r.entries[h] = &entry{dirty: true, alive: true}
	return h
}

// MarkActive records a tick for the connection. It returns false if the
// entry was purged, which the caller treats as a disconnect.
func (r *Registry[T]) MarkActive(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[h]
	if !ok {
		return false
	}
	e.alive = true
	return true
}

// OnChange is called after any mutation of the watched data. In one
// exclusive critical section it purges entries whose connections stopped
// ticking, then marks every survivor dirty and resets its alive flag for
// the next epoch. No connection can observe a half-reset map.
func (r *Registry[T]) OnChange() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for h, e := range r.entries {
		if !e.alive {
			delete(r.entries, h)
		}
	}
	for _, e := range r.entries {
		e.dirty = true
		e.alive = true
	}
}

// DrainDirty atomically reads and clears the dirty flag. The caller pushes
// a snapshot only when it returns true. A purged handle reports false.
func (r *Registry[T]) DrainDirty(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[h]
	if !ok {
		return false
	}
	dirty := e.dirty
	e.dirty = false
	return dirty
}

// Release removes the connection's entry. Safe to call for handles that
// were already purged.
func (r *Registry[T]) Release(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, h)
}

// Len reports the number of tracked connections.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Stream drives one connection: it ticks on the poll interval, marks the
// connection active, and emits a snapshot whenever the entry is dirty.
// The returned channel closes when ctx is cancelled or the handle is
// purged; the entry is released either way. Snapshot errors are logged
// and the tick skipped, so a transient failure does not kill the stream.
func (r *Registry[T]) Stream(ctx context.Context, h Handle, snapshot func(context.Context) (T, error)) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)
		defer r.Release(h)

		ticker := time.NewTicker(r.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !r.MarkActive(h) {
					return
				}
				if !r.DrainDirty(h) {
					continue
				}

				value, err := snapshot(ctx)
				if err != nil {
					r.logger.Error("snapshot failed",
						logger.Error(err),
						logger.Component("broadcast"),
					)
					continue
				}

				select {
				case out <- value:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
