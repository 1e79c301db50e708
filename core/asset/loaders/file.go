package loaders

import (
	"context"
	"fmt"

	"asset-loader/core/asset"
	"asset-loader/core/fetch"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Blob is the raw content of a resource together with its content type.
type Blob struct {
	Type string `json:"type"`
	Size int64  `json:"size"`
	Data []byte `json:"-"`
}

type fileKind int

const (
	kindText fileKind = iota
	kindJSON
	kindBinary
	kindBlob
)

func (k fileKind) String() string {
	switch k {
	case kindJSON:
		return "json"
	case kindBinary:
		return "binary"
	case kindBlob:
		return "blob"
	default:
		return "text"
	}
}

// fileLoader fetches a resource and decodes the body according to kind.
func fileLoader(kind fileKind, fetcher fetch.Fetcher, logger *zap.Logger) asset.LoadFunc {
	return func(ctx context.Context, opts asset.Options) (asset.Asset, error) {
		reqOpts, err := requestOptions(opts)
		if err != nil {
			return nil, &FileError{URL: opts.URL, Err: err}
		}
		v, err := loadFile(ctx, kind, fetcher, opts.URL, reqOpts...)
		if err != nil {
			logger.Debug("File load failed",
				zap.String("kind", kind.String()),
				zap.String("url", opts.URL),
				zap.Error(err))
			return nil, &FileError{URL: opts.URL, Err: err}
		}
		return v, nil
	}
}

// requestOptions reads the transport settings of a descriptor: "method",
// "headers" (an object of strings) and "body" (a string or bytes).
func requestOptions(opts asset.Options) ([]fetch.Option, error) {
	var out []fetch.Option
	if method, ok := opts.String("method"); ok && method != "" {
		out = append(out, fetch.WithMethod(method))
	}

	if raw, ok := opts.Value("headers"); ok && raw != nil {
		switch h := raw.(type) {
		case map[string]string:
			for k, v := range h {
				out = append(out, fetch.WithHeader(k, v))
			}
		case map[string]any:
			for k, v := range h {
				s, ok := v.(string)
				if !ok {
					return nil, fmt.Errorf("header %q must be a string, got %T", k, v)
				}
				out = append(out, fetch.WithHeader(k, s))
			}
		default:
			return nil, fmt.Errorf("headers must be an object, got %T", raw)
		}
	}

	if raw, ok := opts.Value("body"); ok && raw != nil {
		switch b := raw.(type) {
		case string:
			out = append(out, fetch.WithBody([]byte(b)))
		case []byte:
			out = append(out, fetch.WithBody(b))
		default:
			return nil, fmt.Errorf("body must be a string, got %T", raw)
		}
	}
	return out, nil
}

func loadFile(ctx context.Context, kind fileKind, fetcher fetch.Fetcher, url string, reqOpts ...fetch.Option) (asset.Asset, error) {
	res, err := fetcher.Fetch(ctx, url, reqOpts...)
	if err != nil {
		return nil, err
	}
	if err := statusErr(res.Status); err != nil {
		return nil, err
	}

	switch kind {
	case kindJSON:
		var v any
		if err := json.Unmarshal(res.Body, &v); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return v, nil
	case kindBinary:
		if res.Body == nil {
			return []byte{}, nil
		}
		return res.Body, nil
	case kindBlob:
		return &Blob{Type: res.ContentType, Size: int64(len(res.Body)), Data: res.Body}, nil
	default:
		return string(res.Body), nil
	}
}
