package domain

import (
	"context"
	"sync"
)

// Deferred is a result that completes later and settles exactly once,
// either fulfilled with a value or rejected with an error.
type Deferred[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

// NewDeferred creates a pending Deferred.
func NewDeferred[T any]() *Deferred[T] {
	return &Deferred[T]{done: make(chan struct{})}
}

// Resolve fulfills the Deferred with v.
// It reports false if the Deferred had already settled.
func (d *Deferred[T]) Resolve(v T) bool {
	settled := false
	d.once.Do(func() {
		d.value = v
		close(d.done)
		settled = true
	})
	return settled
}

// Reject settles the Deferred with err.
// It reports false if the Deferred had already settled.
func (d *Deferred[T]) Reject(err error) bool {
	settled := false
	d.once.Do(func() {
		d.err = err
		close(d.done)
		settled = true
	})
	return settled
}

// Done returns a channel closed once the Deferred settles.
func (d *Deferred[T]) Done() <-chan struct{} {
	return d.done
}

// Settled reports whether the Deferred has settled.
func (d *Deferred[T]) Settled() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// Await blocks until the Deferred settles or ctx is done.
// Giving up on ctx does not cancel the underlying work.
func (d *Deferred[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-d.done:
		return d.value, d.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result returns the settled value and error without blocking.
// ok is false while the Deferred is pending.
func (d *Deferred[T]) Result() (value T, err error, ok bool) { //nolint:staticcheck // ST1008: ok mirrors the comma-ok idiom
	if !d.Settled() {
		var zero T
		return zero, nil, false
	}
	return d.value, d.err, true
}
