// Package store provides the player store backends for the ledger pipeline.
//
// Every backend implements reconcile.Store: it loads and saves whole sets of
// encoded player lines and leaves decoding and ordering to the engine.
//
//   - FileStore: newline-delimited records on local disk, rewritten through a
//     temp file and rename. Guards against a second concurrent run with a
//     lock file (gofrs/flock).
//   - ObjectStore: the same content as a single object in an S3/MinIO bucket.
//   - DBStore: a 'players' table managed through GORM, replaced in one
//     transaction per save.
//
// New selects a backend from Config.
package store
