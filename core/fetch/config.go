package fetch

import (
	"time"

	"asset-loader/core/storage"
)

// Config holds configuration for asset transports.
type Config struct {
	// BaseDir is the directory plain paths and file:// URLs are confined to.
	BaseDir string `mapstructure:"base_dir" default:"."`
	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UserAgent is sent with HTTP requests.
	UserAgent string `mapstructure:"user_agent" default:"asset-loader"`
}

// New builds the default transport: http(s) through the fiber client, s3
// through object storage (when store is non-nil) and everything else from the
// local filesystem. Concurrent requests for one URL are coalesced.
func New(cfg Config, store storage.Client, bucket string) Fetcher {
	m := NewMux(NewOSFileFetcher(cfg.BaseDir))

	httpFetcher := NewHTTPFetcher(time.Duration(cfg.TimeoutSeconds)*time.Second, cfg.UserAgent)
	m.Handle("http", httpFetcher)
	m.Handle("https", httpFetcher)

	if store != nil {
		m.Handle("s3", NewStorageFetcher(store, bucket))
	}
	return NewCoalescing(m)
}
