package store

// Backend names accepted in Config.Backend.
const (
	BackendFile   = "file"
	BackendObject = "s3"
	BackendDB     = "db"
)

// Config holds configuration for the player store and the session source.
type Config struct {
	// Backend selects where the player store lives (file, s3, db).
	Backend string `mapstructure:"backend" default:"file"`
	// StorePath is the NDJSON player store on local disk.
	StorePath string `mapstructure:"store_path" default:"players_db.txt"`
	// SessionsPath is the session CSV on local disk (file and db backends).
	SessionsPath string `mapstructure:"sessions_path" default:"practice_results.csv"`
	// StoreObject is the player store object name in the bucket (s3 backend).
	StoreObject string `mapstructure:"store_object" default:"players_db.txt"`
	// SessionsObject is the session CSV object name in the bucket (s3 backend).
	SessionsObject string `mapstructure:"sessions_object" default:"practice_results.csv"`
	// CacheTTLSeconds is how long the HTTP standings snapshot is reused. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"30"`
}
