package sessions

import (
	"bytes"
	"context"
	"fmt"

	"practice-ledger/core/reconcile"
	"practice-ledger/core/storage"
)

// ObjectSource reads and rewrites a session sheet stored in a bucket.
type ObjectSource struct {
	client storage.Client
	bucket string
	object string
	table  *Table
}

// NewObjectSource creates a source for bucket/object.
func NewObjectSource(client storage.Client, bucket, object string) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, object: object}
}

// Name returns the source name.
func (s *ObjectSource) Name() string {
	return "s3:" + s.bucket + "/" + s.object
}

func (s *ObjectSource) load(ctx context.Context) (*Table, error) {
	data, found, err := storage.ReadObject(ctx, s.client, s.bucket, s.object)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("session sheet %s not found in bucket %s", s.object, s.bucket)
	}
	return ParseTable(bytes.NewReader(data))
}

// Rows downloads the sheet and returns its rows in order.
func (s *ObjectSource) Rows(ctx context.Context) ([]reconcile.SessionRow, error) {
	table, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.table = table
	return table.Rows(), nil
}

// MarkProcessed uploads the sheet with the rows' Processed flags applied.
func (s *ObjectSource) MarkProcessed(ctx context.Context, rows []reconcile.SessionRow) error {
	table := s.table
	if table == nil {
		var err error
		if table, err = s.load(ctx); err != nil {
			return err
		}
	}
	if err := table.Apply(rows); err != nil {
		return err
	}
	data, err := table.Bytes()
	if err != nil {
		return err
	}
	return storage.WriteObject(ctx, s.client, s.bucket, s.object, "text/csv", data)
}
