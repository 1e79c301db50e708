package loaders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"asset-loader/core/asset"
	"asset-loader/core/fetch"

	"go.uber.org/zap"
)

// Readiness events a media load can wait for.
const (
	EventCanPlay        = "canplay"
	EventCanPlayThrough = "canplaythrough"
	EventLoadedData     = "loadeddata"
	EventLoadedMetadata = "loadedmetadata"
)

// Media is a loaded audio or video resource with its playback attributes.
// Data is nil when only metadata was requested.
type Media struct {
	Kind         string  `json:"kind"`
	URL          string  `json:"url"`
	MIMEType     string  `json:"mimeType"`
	Size         int64   `json:"size"`
	Ready        string  `json:"ready"`
	CrossOrigin  string  `json:"crossOrigin,omitempty"`
	Volume       float64 `json:"volume"`
	Preload      string  `json:"preload,omitempty"`
	PlaybackRate float64 `json:"playbackRate"`
	Muted        bool    `json:"muted"`
	CurrentTime  float64 `json:"currentTime"`
	Controls     bool    `json:"controls"`
	AutoPlay     bool    `json:"autoPlay"`
	Data         []byte  `json:"-"`
}

var errEmptyMedia = errors.New("empty media body")

// MediaKind returns "audio" or "video" for a file extension, or "" when the
// extension is neither.
func MediaKind(ext string) string {
	ct := fetch.TypeByExtension(strings.ToLower(ext))
	switch {
	case strings.HasPrefix(ct, "audio/"):
		return "audio"
	case strings.HasPrefix(ct, "video/"):
		return "video"
	}
	return ""
}

func matchMedia(kind string) asset.MatchFunc {
	return func(ext string) bool {
		return MediaKind(ext) == kind
	}
}

func mediaLoader(kind string, fetcher fetch.Fetcher, logger *zap.Logger) asset.LoadFunc {
	return func(ctx context.Context, opts asset.Options) (asset.Asset, error) {
		m, err := loadMedia(ctx, kind, fetcher, opts)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			logger.Debug("Media load failed",
				zap.String("kind", kind),
				zap.String("url", opts.URL),
				zap.Error(err))
			return nil, &LoadError{Kind: kind, URL: opts.URL, Err: err}
		}
		return m, nil
	}
}

func loadMedia(ctx context.Context, kind string, fetcher fetch.Fetcher, opts asset.Options) (*Media, error) {
	m := &Media{Kind: kind, URL: opts.URL, Volume: 1, PlaybackRate: 1}
	if err := applyMediaOptions(m, opts); err != nil {
		return nil, err
	}

	event := EventCanPlay
	if e, ok := opts.String("event"); ok && e != "" {
		event = strings.ToLower(e)
	}
	switch event {
	case EventLoadedMetadata, EventCanPlayThrough, EventLoadedData:
	default:
		event = EventCanPlay
	}

	var (
		res *fetch.Response
		err error
	)
	if event == EventLoadedMetadata {
		res, err = fetcher.Stat(ctx, opts.URL)
	} else {
		res, err = fetcher.Fetch(ctx, opts.URL)
	}
	if err != nil {
		return nil, err
	}
	if err := statusErr(res.Status); err != nil {
		return nil, err
	}

	m.Ready = event
	m.MIMEType = res.ContentType
	if m.MIMEType == "" {
		m.MIMEType = fetch.TypeByExtension(asset.Extension(opts.URL))
	}
	m.Size = res.Size
	if event != EventLoadedMetadata {
		if len(res.Body) == 0 {
			return nil, errEmptyMedia
		}
		m.Data = res.Body
		m.Size = int64(len(res.Body))
	}
	return m, nil
}

// applyMediaOptions copies each supplied playback attribute from its own key.
func applyMediaOptions(m *Media, opts asset.Options) error {
	if v, ok := opts.String("crossOrigin"); ok {
		m.CrossOrigin = v
	}
	if v, ok := opts.String("preload"); ok {
		m.Preload = v
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"volume", &m.Volume},
		{"playbackRate", &m.PlaybackRate},
		{"currentTime", &m.CurrentTime},
	}
	for _, f := range floats {
		if !opts.Has(f.key) {
			continue
		}
		v, ok := opts.Float(f.key)
		if !ok {
			return fmt.Errorf("option %s must be a number", f.key)
		}
		*f.dst = v
	}
	if m.Volume < 0 || m.Volume > 1 {
		return fmt.Errorf("volume %v outside [0, 1]", m.Volume)
	}
	if m.CurrentTime < 0 {
		return fmt.Errorf("currentTime %v is negative", m.CurrentTime)
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"muted", &m.Muted},
		{"controls", &m.Controls},
		{"autoPlay", &m.AutoPlay},
	}
	for _, b := range bools {
		if !opts.Has(b.key) {
			continue
		}
		v, ok := opts.Bool(b.key)
		if !ok {
			return fmt.Errorf("option %s must be a boolean", b.key)
		}
		*b.dst = v
	}
	return nil
}
