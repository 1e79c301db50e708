package cmd

import (
	"context"
	"fmt"
	"time"

	"asset-loader/core/asset"
	"asset-loader/core/asset/loaders"
	"asset-loader/core/config"
	"asset-loader/core/fetch"
	"asset-loader/core/logger"
	"asset-loader/core/storage"

	"go.uber.org/zap"
)

// bootstrap loads configuration and builds the logger every command needs.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

// newAssetLoader wires the transports and built-in loaders.
func newAssetLoader(cfg *config.Config, logg *zap.Logger) (*asset.Loader, storage.Client, error) {
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	transport := fetch.New(cfg.Fetch, store, cfg.Storage.Bucket)
	reg := loaders.NewRegistry(transport, logg)
	return asset.NewLoader(reg, logg), store, nil
}

// checkBucket logs whether s3:// assets can be served. Storage is optional,
// so a missing or unreachable bucket only warns.
func checkBucket(ctx context.Context, store storage.Client, bucket string, logg *zap.Logger) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := store.BucketExists(ctx, bucket)
	switch {
	case err != nil:
		logg.Warn("Object storage unreachable, s3:// assets will fail", zap.String("bucket", bucket), zap.Error(err))
		return false
	case !exists:
		logg.Warn("Storage bucket does not exist, s3:// assets will fail", zap.String("bucket", bucket))
		return false
	}
	logg.Info("Object storage ready", zap.String("bucket", bucket))
	return true
}
