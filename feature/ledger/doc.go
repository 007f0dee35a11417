// Package ledger exposes the practice ledger over HTTP.
//
// # Endpoints
//
//   - GET  /ledger/players?sort=name|ranking  standings snapshot
//   - GET  /ledger/players/:name              one player, 404 if unknown
//   - POST /ledger/process?dry_run=true       run the pipeline (when enabled)
//
// Standings are served from a short-lived snapshot of the player store
// (reconcile.StandingsCache) that is dropped after every run.
//
// The Service is also used by the process command, so the CLI and the API
// share locking and cache invalidation.
package ledger
