package fetch

import (
	"bytes"
	"context"

	"golang.org/x/sync/singleflight"
)

// Coalescing collapses concurrent requests for the same URL into one call to
// the wrapped fetcher. Batches often name one file several times.
//
// The shared call runs detached from any single caller's context so one
// caller giving up does not fail the others; each caller still returns as
// soon as its own context ends.
type Coalescing struct {
	next  Fetcher
	group singleflight.Group
}

// NewCoalescing wraps next.
func NewCoalescing(next Fetcher) *Coalescing {
	return &Coalescing{next: next}
}

// Fetch implements Fetcher. Callers sharing a result get their own copy of the
// body. Requests with a method, headers or a body are never shared.
func (c *Coalescing) Fetch(ctx context.Context, url string, opts ...Option) (*Response, error) {
	if !NewRequest(opts...).Plain() {
		return c.next.Fetch(ctx, url, opts...)
	}
	return c.do(ctx, "fetch\x00"+url, func(ctx context.Context) (*Response, error) {
		return c.next.Fetch(ctx, url)
	})
}

// Stat implements Fetcher.
func (c *Coalescing) Stat(ctx context.Context, url string, opts ...Option) (*Response, error) {
	if !NewRequest(opts...).Plain() {
		return c.next.Stat(ctx, url, opts...)
	}
	return c.do(ctx, "stat\x00"+url, func(ctx context.Context) (*Response, error) {
		return c.next.Stat(ctx, url)
	})
}

func (c *Coalescing) do(ctx context.Context, key string, fn func(context.Context) (*Response, error)) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		return fn(detached)
	})

	select {
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		res := r.Val.(*Response)
		if !r.Shared {
			return res, nil
		}
		cp := *res
		cp.Body = bytes.Clone(res.Body)
		return &cp, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
