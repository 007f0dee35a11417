package store

import (
	"bytes"
	"context"
	"io"
	"testing"

	"practice-ledger/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type missingObject struct{}

func (missingObject) Read(p []byte) (int, error) {
	return 0, minio.ErrorResponse{Code: "NoSuchKey"}
}

func (missingObject) Close() error {
	return nil
}

func TestObjectStore_Load(t *testing.T) {
	client := new(mocks.Client)
	content := "{\"name\": \"Alice\", \"number_of_games\": 1, \"ranking\": 6}\n"
	client.On("GetObject", mock.Anything, "ledger", "players_db.txt", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(content))), nil)

	lines, err := NewObjectStore(client, "ledger", "players_db.txt").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{`{"name": "Alice", "number_of_games": 1, "ranking": 6}`}, lines)
}

func TestObjectStore_LoadMissing(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "ledger", "players_db.txt", mock.Anything).
		Return(missingObject{}, nil)

	lines, err := NewObjectStore(client, "ledger", "players_db.txt").Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestObjectStore_Save(t *testing.T) {
	client := new(mocks.Client)
	want := "{\"name\": \"Alice\", \"number_of_games\": 1, \"ranking\": 6}\n"

	client.On("BucketExists", mock.Anything, "ledger").Return(true, nil)
	client.On("PutObject", mock.Anything, "ledger", "players_db.txt",
		mock.MatchedBy(func(r io.Reader) bool {
			data, err := io.ReadAll(r)
			return err == nil && string(data) == want
		}),
		int64(len(want)),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "application/x-ndjson"
		}),
	).Return(minio.UploadInfo{}, nil)

	err := NewObjectStore(client, "ledger", "players_db.txt").
		Save(context.Background(), []string{`{"name": "Alice", "number_of_games": 1, "ranking": 6}`})
	require.NoError(t, err)
	client.AssertExpectations(t)
}
