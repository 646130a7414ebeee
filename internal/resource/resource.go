package resource

import (
	"context"
	"sync"

	"shopsphere/storefront/internal/domain"
)

// Snapshot is the observable state of one fetch site. Value is only
// meaningful when Status is Ready, Err only when Status is Failed.
type Snapshot[T any] struct {
	Status domain.Status
	Value  T
	Err    error
}

// Resource wraps a remote fetch in the idle/loading/ready/failed
// lifecycle. Each call to Load starts a new generation; a load that
// finishes after a newer one has started is discarded, so the committed
// state always corresponds to the most recently initiated request.
// In-flight fetches are never cancelled.
type Resource[T any] struct {
	mutex  sync.Mutex
	status domain.Status
	value  T
	err    error
	seq    uint64 // generation of the most recently started load
}

func New[T any]() *Resource[T] {
	return &Resource[T]{status: domain.StatusIdle}
}

// Load transitions to Loading, runs fetch, and commits Ready or Failed.
// Any previously held value or error is discarded on entry; there is no
// partial merge. The returned snapshot is the resource state after this
// load resolved, which may belong to a newer generation if one superseded
// it. Safe to call from multiple goroutines.
func (r *Resource[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) Snapshot[T] {
	r.mutex.Lock()
	r.seq++
	gen := r.seq
	r.status = domain.StatusLoading
	var zero T
	r.value = zero
	r.err = nil
	r.mutex.Unlock()

	value, err := fetch(ctx)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	// A newer load started while this one was in flight; its outcome
	// owns the resource now.
	if r.seq != gen {
		return r.snapshotLocked()
	}

	if err != nil {
		r.status = domain.StatusFailed
		r.value = zero
		r.err = err
	} else {
		r.status = domain.StatusReady
		r.value = value
		r.err = nil
	}

	return r.snapshotLocked()
}

// Snapshot returns the current lifecycle state.
func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.snapshotLocked()
}

func (r *Resource[T]) snapshotLocked() Snapshot[T] {
	return Snapshot[T]{
		Status: r.status,
		Value:  r.value,
		Err:    r.err,
	}
}
