package sessions

import (
	"practice-ledger/core/reconcile"
	"practice-ledger/feature/ledger/store"
)

// New builds the session source matching the configured store backend.
// The s3 backend reads the sheet from the bucket; the others read it from disk.
func New(cfg store.Config, deps store.Deps) reconcile.Source {
	if cfg.Backend == store.BackendObject && deps.Client != nil {
		return NewObjectSource(deps.Client, deps.Bucket, cfg.SessionsObject)
	}
	return NewFileSource(cfg.SessionsPath)
}
