// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration. The database is only needed when
// the ledger runs with the database-backed player store.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let the database store verify that the
// players table has the expected shape before a run writes to it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "players", "name", "ranking")
package database
