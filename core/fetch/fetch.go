package fetch

import (
	"context"
	"mime"
	"path"
	"strings"
)

// Response is the raw outcome of a fetch. Transports report missing resources
// through Status rather than an error, so loaders map statuses uniformly.
type Response struct {
	// Status follows HTTP semantics for every transport (200, 404, ...).
	Status      int
	ContentType string
	// Size is the content length in bytes, or -1 when unknown.
	Size int64
	// Body is nil for Stat.
	Body []byte
}

// OK reports whether Status is 2xx.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Request carries per-request transport settings taken from a load
// descriptor. Transports ignore fields that mean nothing to them; only the
// HTTP transport sends a method, headers or a body.
type Request struct {
	Method string
	Header map[string]string
	Body   []byte
}

// Option configures a Request.
type Option func(*Request)

// WithMethod sets the request method. Stat always issues HEAD.
func WithMethod(method string) Option {
	return func(r *Request) { r.Method = strings.ToUpper(method) }
}

// WithHeader adds a request header.
func WithHeader(key, value string) Option {
	return func(r *Request) {
		if r.Header == nil {
			r.Header = make(map[string]string)
		}
		r.Header[key] = value
	}
}

// WithBody sets the request body.
func WithBody(body []byte) Option {
	return func(r *Request) { r.Body = body }
}

// NewRequest applies opts to an empty Request.
func NewRequest(opts ...Option) Request {
	var r Request
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Plain reports whether r carries nothing beyond a default GET.
func (r Request) Plain() bool {
	return (r.Method == "" || r.Method == "GET") && len(r.Header) == 0 && r.Body == nil
}

// Fetcher retrieves raw asset bytes for a URL.
type Fetcher interface {
	// Fetch retrieves the full content.
	Fetch(ctx context.Context, url string, opts ...Option) (*Response, error)
	// Stat retrieves the status, size and content type only.
	Stat(ctx context.Context, url string, opts ...Option) (*Response, error)
}

// Mux routes URLs to fetchers by scheme. URLs without a registered scheme go
// to the fallback fetcher.
type Mux struct {
	schemes  map[string]Fetcher
	fallback Fetcher
}

// NewMux creates a Mux sending unrouted URLs to fallback.
func NewMux(fallback Fetcher) *Mux {
	return &Mux{schemes: make(map[string]Fetcher), fallback: fallback}
}

// Handle routes scheme (e.g. "https") to f.
func (m *Mux) Handle(scheme string, f Fetcher) {
	m.schemes[strings.ToLower(scheme)] = f
}

// Fetch implements Fetcher.
func (m *Mux) Fetch(ctx context.Context, url string, opts ...Option) (*Response, error) {
	return m.route(url).Fetch(ctx, url, opts...)
}

// Stat implements Fetcher.
func (m *Mux) Stat(ctx context.Context, url string, opts ...Option) (*Response, error) {
	return m.route(url).Stat(ctx, url, opts...)
}

func (m *Mux) route(url string) Fetcher {
	if scheme := Scheme(url); scheme != "" {
		if f, ok := m.schemes[scheme]; ok {
			return f
		}
	}
	return m.fallback
}

// Scheme returns the lower-cased URL scheme, or "" for plain paths.
func Scheme(url string) string {
	idx := strings.Index(url, "://")
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(url[:idx])
}

// contentTypeOf guesses a content type from the URL's file extension.
func contentTypeOf(url string) string {
	if idx := strings.IndexAny(url, "?#"); idx != -1 {
		url = url[:idx]
	}
	return TypeByExtension(path.Ext(url))
}

// TypeByExtension returns the MIME type for ext (with its leading dot), or ""
// when unknown. Common audio and video types resolve even on hosts without a
// system MIME table.
func TypeByExtension(ext string) string {
	if ext == "" {
		return ""
	}
	if ct, ok := extraTypes[strings.ToLower(ext)]; ok {
		return ct
	}
	return mime.TypeByExtension(ext)
}

// extraTypes covers media types missing from minimal system MIME tables.
var extraTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".wav":  "audio/wav",
	".oga":  "audio/ogg",
	".ogg":  "audio/ogg",
	".opus": "audio/opus",
	".flac": "audio/flac",
	".weba": "audio/webm",
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".ogv":  "video/ogg",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".json": "application/json",
	".txt":  "text/plain; charset=utf-8",
	".bin":  "application/octet-stream",
}
