package store

import (
	"context"

	"practice-ledger/core/storage"
)

// ObjectStore keeps the player store as a newline-delimited object in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	object string
}

// NewObjectStore creates a store backed by bucket/object.
func NewObjectStore(client storage.Client, bucket, object string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, object: object}
}

// Name returns the backend name.
func (s *ObjectStore) Name() string {
	return BackendObject
}

// Load returns the record lines. A missing object is an empty store.
func (s *ObjectStore) Load(ctx context.Context) ([]string, error) {
	data, found, err := storage.ReadObject(ctx, s.client, s.bucket, s.object)
	if err != nil || !found {
		return nil, err
	}
	return splitLines(data)
}

// Save uploads the whole store as a single object.
func (s *ObjectStore) Save(ctx context.Context, lines []string) error {
	return storage.WriteObject(ctx, s.client, s.bucket, s.object, "application/x-ndjson", joinLines(lines))
}
