package reconcile

import "context"

// Store defines the persistence backend for the player ledger.
// Backends deal in encoded record lines only; decoding and ordering belong to the engine.
type Store interface {
	// Name returns a short identifier for logs (e.g. "file", "s3", "db").
	Name() string

	// Load returns every stored record line. A store that does not exist yet
	// returns no lines and no error.
	Load(ctx context.Context) ([]string, error)

	// Save replaces the whole store content with the given lines, in order.
	Save(ctx context.Context, lines []string) error
}

// Source defines the tabular collaborator that supplies session rows.
type Source interface {
	// Name returns a short identifier for logs.
	Name() string

	// Rows returns every session row in source order.
	Rows(ctx context.Context) ([]SessionRow, error)

	// MarkProcessed rewrites the whole source with the given rows.
	// Implementations keep the original column set and row order.
	MarkProcessed(ctx context.Context, rows []SessionRow) error
}
