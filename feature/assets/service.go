package assets

import (
	"context"
	"sync"

	"asset-loader/core/asset"

	"go.uber.org/zap"
)

// Batch modes.
const (
	ModeAll = "all"
	ModeAny = "any"
)

// LoaderInfo describes one registered loader.
type LoaderInfo struct {
	Key string `json:"key"`
	// Extensions reports whether the loader is picked by URL extension, not only by explicit type.
	Extensions bool `json:"extensions"`
}

// Progress is the JSON view of an asset.ProgressEvent.
type Progress struct {
	Key      string  `json:"key,omitempty"`
	Index    int     `json:"index"`
	Count    int     `json:"count"`
	Total    int     `json:"total"`
	Progress float64 `json:"progress"`
	Error    string  `json:"error,omitempty"`
}

// BatchReport is the outcome of a batch load.
type BatchReport struct {
	Results  *asset.Results `json:"results"`
	Progress []Progress     `json:"progress"`
	Failed   int            `json:"failed"`
}

// Service runs asset loads on behalf of HTTP handlers and stored manifests.
type Service struct {
	loader *asset.Loader
	logger *zap.Logger
}

// NewService creates a new assets service.
func NewService(loader *asset.Loader, logger *zap.Logger) *Service {
	return &Service{loader: loader, logger: logger}
}

// Loaders lists the registered loaders in resolution order.
func (s *Service) Loaders() []LoaderInfo {
	descs := s.loader.Registry().Descriptors()
	out := make([]LoaderInfo, len(descs))
	for i, d := range descs {
		out[i] = LoaderInfo{Key: d.Key, Extensions: d.Match != nil}
	}
	return out
}

// Load loads a single request.
func (s *Service) Load(ctx context.Context, req asset.Request) (asset.Asset, error) {
	return s.loader.Load(ctx, req)
}

// Batch loads requests (a list or a keyed group) in the given mode and
// records every progress event.
func (s *Service) Batch(ctx context.Context, mode string, requests any) (*BatchReport, error) {
	b, err := asset.NewBatch(requests)
	if err != nil {
		return nil, err
	}

	var (
		mu     sync.Mutex
		events = make([]Progress, 0, b.Len())
	)
	onProgress := asset.WithProgress(func(ev asset.ProgressEvent) {
		p := Progress{
			Key:      ev.Key,
			Index:    ev.Index,
			Count:    ev.Count,
			Total:    ev.Total,
			Progress: ev.Progress,
		}
		if ev.Err != nil {
			p.Error = ev.Err.Error()
		}
		mu.Lock()
		events = append(events, p)
		mu.Unlock()
	})

	var res *asset.Results
	if mode == ModeAny {
		res, err = s.loader.Any(ctx, b, onProgress)
	} else {
		res, err = s.loader.All(ctx, b, onProgress)
	}
	if err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()
	return &BatchReport{Results: res, Progress: events, Failed: res.Failed()}, nil
}
