package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"asset-loader/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageFetcher serves s3://bucket/key URLs from object storage.
// The form s3:///key (empty host) reads from the default bucket.
type StorageFetcher struct {
	client storage.Client
	bucket string
}

// NewStorageFetcher creates a storage fetcher with a default bucket.
func NewStorageFetcher(client storage.Client, bucket string) *StorageFetcher {
	return &StorageFetcher{client: client, bucket: bucket}
}

// Fetch implements Fetcher.
func (f *StorageFetcher) Fetch(ctx context.Context, url string, _ ...Option) (*Response, error) {
	bucket, key, err := f.locate(url)
	if err != nil {
		return nil, err
	}

	obj, err := f.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return &Response{Status: http.StatusNotFound, Size: -1}, nil
		}
		return nil, fmt.Errorf("failed to get object %s/%s: %w", bucket, key, err)
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s/%s: %w", bucket, key, err)
	}

	contentType := ""
	if statter, ok := obj.(interface {
		Stat() (minio.ObjectInfo, error)
	}); ok {
		if info, err := statter.Stat(); err == nil {
			contentType = info.ContentType
		}
	}
	if contentType == "" {
		contentType = contentTypeOf(key)
	}

	return &Response{
		Status:      http.StatusOK,
		ContentType: contentType,
		Size:        int64(len(body)),
		Body:        body,
	}, nil
}

// Stat implements Fetcher.
func (f *StorageFetcher) Stat(ctx context.Context, url string, _ ...Option) (*Response, error) {
	bucket, key, err := f.locate(url)
	if err != nil {
		return nil, err
	}

	info, err := f.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return &Response{Status: http.StatusNotFound, Size: -1}, nil
		}
		return nil, fmt.Errorf("failed to stat object %s/%s: %w", bucket, key, err)
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = contentTypeOf(key)
	}
	return &Response{Status: http.StatusOK, ContentType: contentType, Size: info.Size}, nil
}

// locate splits s3://bucket/key into its parts.
func (f *StorageFetcher) locate(url string) (bucket, key string, err error) {
	rest := url
	if idx := strings.Index(rest, "://"); idx != -1 {
		rest = rest[idx+3:]
	}
	if idx := strings.IndexAny(rest, "?#"); idx != -1 {
		rest = rest[:idx]
	}

	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" {
		bucket = f.bucket
	}
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid storage URL %q, expected s3://bucket/key", url)
	}
	return bucket, key, nil
}
