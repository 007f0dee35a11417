package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Ledger.Backend)
	assert.Equal(t, "players_db.txt", cfg.Ledger.StorePath)
	assert.Equal(t, "practice_results.csv", cfg.Ledger.SessionsPath)
	assert.Equal(t, 30, cfg.Ledger.CacheTTLSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "LEDGER_BACKEND=db\nLEDGER_STORE_PATH=/data/players.ndjson\nDATABASE_DRIVER=sqlite\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("LEDGER_BACKEND")
		os.Unsetenv("LEDGER_STORE_PATH")
		os.Unsetenv("DATABASE_DRIVER")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.Ledger.Backend)
	assert.Equal(t, "/data/players.ndjson", cfg.Ledger.StorePath)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LEDGER_CACHE_TTL_SECONDS", "0")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 0, cfg.Ledger.CacheTTLSeconds)
}
