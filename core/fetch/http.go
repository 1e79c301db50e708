package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HTTPFetcher fetches http and https URLs with the fiber client.
type HTTPFetcher struct {
	timeout   time.Duration
	userAgent string
}

// NewHTTPFetcher creates an HTTP fetcher. A zero timeout means 30 seconds.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPFetcher{timeout: timeout, userAgent: userAgent}
}

// Fetch implements Fetcher.
// The request method, headers and body come from opts.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string, opts ...Option) (*Response, error) {
	req := NewRequest(opts...)
	a := fiber.Get(url)
	if req.Method != "" {
		a.Request().Header.SetMethod(req.Method)
	}
	if req.Body != nil {
		a.Body(req.Body)
	}
	return f.do(ctx, a, req.Header, true)
}

// Stat implements Fetcher. It always issues HEAD; only headers from opts apply.
func (f *HTTPFetcher) Stat(ctx context.Context, url string, opts ...Option) (*Response, error) {
	return f.do(ctx, fiber.Head(url), NewRequest(opts...).Header, false)
}

func (f *HTTPFetcher) do(ctx context.Context, a *fiber.Agent, header map[string]string, withBody bool) (*Response, error) {
	if err := ctx.Err(); err != nil {
		fiber.ReleaseAgent(a)
		return nil, err
	}

	a.Timeout(f.timeout)
	if f.userAgent != "" {
		a.UserAgent(f.userAgent)
	}
	for k, v := range header {
		a.Set(k, v)
	}
	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return nil, fmt.Errorf("failed to prepare request: %w", err)
	}

	type result struct {
		res *Response
		err error
	}
	// The fiber client has no context support; the agent timeout bounds the
	// request and the caller stops waiting when ctx ends.
	done := make(chan result, 1)
	go func() {
		resp := fiber.AcquireResponse()
		defer fiber.ReleaseResponse(resp)
		a.SetResponse(resp)

		code, body, errs := a.Bytes()
		if len(errs) > 0 {
			done <- result{err: errors.Join(errs...)}
			return
		}
		r := &Response{
			Status:      code,
			ContentType: string(resp.Header.ContentType()),
			Size:        int64(resp.Header.ContentLength()),
		}
		if withBody {
			r.Body = body
			r.Size = int64(len(body))
		}
		done <- result{res: r}
	}()

	select {
	case r := <-done:
		return r.res, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
