package asset

import (
	"context"

	"go.uber.org/zap"
)

// Loader dispatches requests to the loaders of a Registry.
type Loader struct {
	registry *Registry
	logger   *zap.Logger
}

// NewLoader creates a Loader over registry. A nil logger disables logging.
func NewLoader(registry *Registry, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{registry: registry, logger: logger}
}

// Registry returns the registry the loader resolves against.
func (l *Loader) Registry() *Registry {
	return l.registry
}

// Load resolves and runs the loader for req.
//
// Validation and resolution errors are returned before any loader runs.
// Errors from the loader itself are returned unchanged.
func (l *Loader) Load(ctx context.Context, req Request) (Asset, error) {
	spec, pending, err := normalize(req)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return pending.Await(ctx)
	}

	fn, err := l.registry.Resolve(spec)
	if err != nil {
		l.logger.Debug("Asset loader resolution failed",
			zap.String("url", spec.URL),
			zap.String("type", spec.Type.String()),
			zap.Error(err))
		return nil, err
	}

	return fn(ctx, spec.options())
}

// Go runs Load in the background.
func (l *Loader) Go(ctx context.Context, req Request) *Future {
	return Async(func() (Asset, error) {
		return l.Load(ctx, req)
	})
}
