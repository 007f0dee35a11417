package cmd

import (
	"context"
	"fmt"
	"time"

	"practice-ledger/core/config"
	"practice-ledger/core/database"
	"practice-ledger/core/reconcile"
	"practice-ledger/core/storage"
	"practice-ledger/feature/ledger"
	"practice-ledger/feature/ledger/sessions"
	"practice-ledger/feature/ledger/store"

	"go.uber.org/zap"
)

// openLedger connects whatever the configured backend needs and returns the ledger service.
func openLedger(ctx context.Context, cfg *config.Config, l *zap.Logger) (*ledger.Service, error) {
	deps := store.Deps{Bucket: cfg.Storage.Bucket}

	switch cfg.Ledger.Backend {
	case store.BackendObject:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		deps.Client = client
	case store.BackendDB:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		deps.DB = db
	}

	st, err := store.New(cfg.Ledger, deps)
	if err != nil {
		return nil, err
	}

	if dbStore, ok := st.(*store.DBStore); ok {
		if err := dbStore.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to migrate players table: %w", err)
		}
		if err := dbStore.Verify(); err != nil {
			return nil, err
		}
	}

	l.Debug("Ledger backend ready",
		zap.String("backend", st.Name()),
		zap.String("store_path", cfg.Ledger.StorePath),
		zap.String("sessions_path", cfg.Ledger.SessionsPath),
	)

	sources := func() reconcile.Source {
		return sessions.New(cfg.Ledger, deps)
	}
	ttl := time.Duration(cfg.Ledger.CacheTTLSeconds) * time.Second
	return ledger.NewService(st, sources, l, ttl), nil
}
