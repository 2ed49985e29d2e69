// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a small read-only interface for the
// operations the object source needs: checking bucket existence, downloading
// exports and listing them. This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - LatestObject: Picks the newest export under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "exports")
//	key, err := storage.LatestObject(ctx, client, "exports", "links/", ".csv")
package storage
