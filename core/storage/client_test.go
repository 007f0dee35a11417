package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"practice-ledger/core/storage"
	"practice-ledger/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "ledger",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

// failingReader returns err on the first Read.
type failingReader struct {
	err error
}

func (f failingReader) Read(p []byte) (int, error) {
	return 0, f.err
}

func (f failingReader) Close() error {
	return nil
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, storage.IsNotFound(nil))
	assert.False(t, storage.IsNotFound(errors.New("boom")))
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchBucket"}))
	assert.False(t, storage.IsNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
}

func TestReadObject(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "ledger", "players_db.txt", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("data"))), nil)

		data, found, err := storage.ReadObject(ctx, client, "ledger", "players_db.txt")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "data", string(data))
	})

	t.Run("Missing key on read", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "ledger", "players_db.txt", mock.Anything).
			Return(failingReader{err: minio.ErrorResponse{Code: "NoSuchKey"}}, nil)

		data, found, err := storage.ReadObject(ctx, client, "ledger", "players_db.txt")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, data)
	})

	t.Run("Read error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "ledger", "players_db.txt", mock.Anything).
			Return(failingReader{err: errors.New("reset")}, nil)

		_, _, err := storage.ReadObject(ctx, client, "ledger", "players_db.txt")
		assert.ErrorContains(t, err, "reset")
	})
}

func TestWriteObject(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates missing bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "ledger").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "ledger", mock.Anything).Return(nil)
		client.On("PutObject", mock.Anything, "ledger", "obj", mock.Anything, int64(3), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		err := storage.WriteObject(ctx, client, "ledger", "obj", "text/plain", []byte("abc"))
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Put error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "ledger").Return(true, nil)
		client.On("PutObject", mock.Anything, "ledger", "obj", mock.Anything, int64(0), mock.Anything).
			Return(minio.UploadInfo{}, errors.New("denied"))

		err := storage.WriteObject(ctx, client, "ledger", "obj", "text/plain", nil)
		assert.ErrorContains(t, err, "denied")
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})
}
