// Package storage provides read access to assets kept in object storage.
//
// It wraps the MinIO Go client, which speaks to both AWS S3 and self-hosted
// MinIO instances. Asset URLs with the s3:// scheme are served from here by
// the fetch package.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider so that
// storage interactions can be mocked in unit tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//   - StatObject: Retrieves size and content type only.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "assets")
package storage
