// Package fetch provides the transports asset loaders read raw bytes through.
//
// A Mux routes each URL by scheme:
//   - http, https: HTTPFetcher, built on the fiber HTTP client.
//   - s3: StorageFetcher, reading s3://bucket/key from MinIO or S3.
//   - anything else: FileFetcher, reading plain paths and file:// URLs through afero.
//
// Every transport reports a missing resource as a 404 Response instead of an
// error so loaders can map statuses the same way regardless of the source.
package fetch
