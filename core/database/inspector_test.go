package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE players (name TEXT PRIMARY KEY, ranking INTEGER, number_of_games INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "players")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "text", colMap["name"])
	assert.Equal(t, "integer", colMap["ranking"])
	assert.Equal(t, "integer", colMap["number_of_games"])

	// PRAGMA table_info returns an empty result for a non-existent table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE players (name TEXT PRIMARY KEY, ranking INTEGER)").Error)

	missing, err := MissingColumns(db, "players", "name", "ranking", "number_of_games")
	require.NoError(t, err)
	assert.Equal(t, []string{"number_of_games"}, missing)

	missing, err = MissingColumns(db, "absent", "name")
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, missing)
}
