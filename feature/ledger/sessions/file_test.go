package sessions

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "practice_results.csv")
	require.NoError(t, os.WriteFile(path, []byte(sheet), 0o644))

	src := NewFileSource(path)
	ctx := context.Background()

	rows, err := src.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	for i := range rows {
		rows[i].Processed = true
	}
	require.NoError(t, src.MarkProcessed(ctx, rows))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `Date,A-Score,B-Score,A-team,B-team,Processed
2024-03-01,21,15,[Alice|Bob],[Carol],True
2024-03-08,10.0,12,[Alice],[Bob|Carol],True
2024-03-15,,3,[Dan],[Eli],True
`, string(raw))

	// Re-reading sees every row processed
	again, err := NewFileSource(path).Rows(ctx)
	require.NoError(t, err)
	for _, r := range again {
		assert.True(t, r.Processed)
	}
}

func TestFileSource_MarkWithoutRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "practice_results.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,A-Score,B-Score\nd,1,2\n"), 0o644))

	src := NewFileSource(path)
	rows, err := NewFileSource(path).Rows(context.Background())
	require.NoError(t, err)
	rows[0].Processed = true

	require.NoError(t, src.MarkProcessed(context.Background(), rows))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date,A-Score,B-Score,Processed\nd,1,2,True\n", string(raw))
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "none.csv")).Rows(context.Background())
	assert.Error(t, err)
}
