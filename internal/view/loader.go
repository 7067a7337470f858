package view

import (
	"context"
	"errors"
	"sync"
)

// ErrDiscarded is returned when a load finishes after its section was
// unmounted.
var ErrDiscarded = errors.New("load discarded: section unmounted")

// Loader holds one section's data and its loading flag.
type Loader[T any] struct {
	mu      sync.Mutex
	loading bool
	loaded  bool
	value   T
	err     error
}

// Load runs fetch with ctx. The loading flag is set for the duration of the
// call whatever the outcome. If ctx is done when fetch returns the result is
// dropped and ErrDiscarded returned.
func (l *Loader[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	l.setLoading(true)
	defer l.setLoading(false)

	v, err := fetch(ctx)

	var zero T
	if ctx.Err() != nil {
		return zero, ErrDiscarded
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.err = err
		return zero, err
	}
	l.value, l.loaded, l.err = v, true, nil
	return v, nil
}

// Get returns the cached value if a load has succeeded.
func (l *Loader[T]) Get() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.loaded
}

func (l *Loader[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Err is the error of the last completed load.
func (l *Loader[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

func (l *Loader[T]) setLoading(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = v
}

// Scope derives a context that ends when either mount or req ends.
func Scope(mount, req context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(mount)
	stop := context.AfterFunc(req, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
