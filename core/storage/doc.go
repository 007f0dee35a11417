// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the player store and the session sheet can
// live in an S3 bucket instead of on local disk. Both AWS S3 and self-hosted
// MinIO instances are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Helpers
//
//   - ReadObject: downloads a whole object, reporting a missing key as not found.
//   - WriteObject: uploads a whole object, creating the bucket on first use.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	data, found, err := storage.ReadObject(ctx, client, "ledger", "players_db.txt")
package storage
