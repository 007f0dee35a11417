package sessions

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"practice-ledger/core/reconcile"
	"practice-ledger/core/utils"
)

// FileSource reads and rewrites a session sheet on local disk.
type FileSource struct {
	path  string
	table *Table
}

// NewFileSource creates a source for the CSV at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the source name.
func (s *FileSource) Name() string {
	return "csv:" + s.path
}

func (s *FileSource) load() (*Table, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return ParseTable(bytes.NewReader(data))
}

// Rows reads the sheet and returns its rows in order.
func (s *FileSource) Rows(ctx context.Context) ([]reconcile.SessionRow, error) {
	table, err := s.load()
	if err != nil {
		return nil, err
	}
	s.table = table
	return table.Rows(), nil
}

// MarkProcessed writes the rows' Processed flags back, replacing the file.
func (s *FileSource) MarkProcessed(ctx context.Context, rows []reconcile.SessionRow) error {
	table := s.table
	if table == nil {
		var err error
		if table, err = s.load(); err != nil {
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
	return utils.WriteFileAtomic(s.path, data, 0o644)
}
