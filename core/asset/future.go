package asset

import (
	"context"
	"sync"
)

// Future is a single-assignment asset result.
// A Future is Awaitable, so it can be used as a request in another call.
type Future struct {
	done  chan struct{}
	once  sync.Once
	value Asset
	err   error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Async runs fn in a new goroutine and returns its Future.
func Async(fn func() (Asset, error)) *Future {
	f := newFuture()
	go func() {
		f.settle(fn())
	}()
	return f
}

// Resolved returns a Future already holding v.
func Resolved(v Asset) *Future {
	f := newFuture()
	f.settle(v, nil)
	return f
}

// Rejected returns a Future already holding err.
func Rejected(err error) *Future {
	f := newFuture()
	f.settle(nil, err)
	return f
}

func (f *Future) settle(v Asset, err error) {
	f.once.Do(func() {
		f.value, f.err = v, err
		close(f.done)
	})
}

// Done is closed once the Future is settled.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the Future settles or ctx ends.
func (f *Future) Await(ctx context.Context) (Asset, error) {
	if f == nil {
		return nil, ErrInvalidRequest
	}
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
