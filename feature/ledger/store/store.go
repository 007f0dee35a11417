package store

import (
	"errors"
	"fmt"

	"practice-ledger/core/reconcile"
	"practice-ledger/core/storage"

	"gorm.io/gorm"
)

// ErrUnknownBackend is returned for an unsupported Config.Backend value.
var ErrUnknownBackend = errors.New("unknown ledger backend")

// Deps carries the connections a backend may need. Only the ones required by
// the selected backend must be set.
type Deps struct {
	DB     *gorm.DB
	Client storage.Client
	Bucket string
}

// New builds the player store selected by cfg.Backend.
func New(cfg Config, deps Deps) (reconcile.Store, error) {
	switch cfg.Backend {
	case BackendFile, "":
		return NewFileStore(cfg.StorePath), nil
	case BackendObject:
		if deps.Client == nil {
			return nil, fmt.Errorf("%s backend requires a storage client", BackendObject)
		}
		return NewObjectStore(deps.Client, deps.Bucket, cfg.StoreObject), nil
	case BackendDB:
		if deps.DB == nil {
			return nil, fmt.Errorf("%s backend requires a database connection", BackendDB)
		}
		return NewDBStore(deps.DB), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
