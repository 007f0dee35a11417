// Package config provides configuration management for the practice ledger.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv). Defaults come from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL/SQLite connection details for the database-backed store
//   - Storage: S3/MinIO credentials and bucket settings for the object-backed store
//   - Log: Logging level and format
//   - Ledger: store backend selection, file paths, object names, cache TTL
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Ledger.StorePath)
package config
