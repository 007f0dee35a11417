// Package reconcile applies practice-session results to the player ledger.
//
// A run loads the player store once, walks the session rows in source order,
// applies every unprocessed row to the in-memory ledger and rewrites the
// store after each applied row. Once every row has been consumed the session
// source is rewritten with all rows marked processed, so a second run over
// the same input does not count anything twice.
//
// # Architecture
//
// The pipeline consists of three parts:
//
// 1. Engine: the update algorithm (score diffs, roster parsing, per-occurrence
//    ranking updates) and run orchestration.
//
// 2. Adapters: the Store and Source interfaces. Backends (NDJSON file, object
//    storage, database) live in feature/ledger and only move encoded lines
//    and typed session rows in and out.
//
// 3. Cache: a TTL-based standings snapshot with stampede protection for the
//    HTTP read path.
//
// # Failure semantics
//
// The first error halts the run. The store then reflects every row applied
// strictly before the failing one, and the session source is left untouched.
// Scores are validated before a row mutates the ledger, so a row is never
// half applied.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(fileStore, csvSource, logger, reconcile.Options{})
//	summary, err := engine.Run(ctx)
package reconcile
