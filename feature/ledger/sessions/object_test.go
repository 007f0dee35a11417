package sessions

import (
	"bytes"
	"context"
	"io"
	"testing"

	"practice-ledger/core/storage/mocks"
	"practice-ledger/feature/ledger/store"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestObjectSource_RoundTrip(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "ledger", "practice_results.csv", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("Date,A-Score,B-Score,A-team,B-team\nd,2,1,[A],[B]\n"))), nil)
	client.On("BucketExists", mock.Anything, "ledger").Return(true, nil)

	var uploaded string
	client.On("PutObject", mock.Anything, "ledger", "practice_results.csv", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			data, _ := io.ReadAll(args.Get(3).(io.Reader))
			uploaded = string(data)
		}).
		Return(minio.UploadInfo{}, nil)

	src := NewObjectSource(client, "ledger", "practice_results.csv")
	rows, err := src.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rows[0].Processed = true
	require.NoError(t, src.MarkProcessed(context.Background(), rows))
	assert.Equal(t, "Date,A-Score,B-Score,A-team,B-team,Processed\nd,2,1,[A],[B],True\n", uploaded)
}

type missingObject struct{}

func (missingObject) Read(p []byte) (int, error) {
	return 0, minio.ErrorResponse{Code: "NoSuchKey"}
}

func (missingObject) Close() error {
	return nil
}

func TestObjectSource_Missing(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "ledger", "practice_results.csv", mock.Anything).
		Return(missingObject{}, nil)

	_, err := NewObjectSource(client, "ledger", "practice_results.csv").Rows(context.Background())
	assert.ErrorContains(t, err, "not found")
}

func TestNew(t *testing.T) {
	cfg := store.Config{SessionsPath: "practice_results.csv", SessionsObject: "practice_results.csv"}

	assert.IsType(t, &FileSource{}, New(cfg, store.Deps{}))

	cfg.Backend = store.BackendObject
	assert.IsType(t, &ObjectSource{}, New(cfg, store.Deps{Client: new(mocks.Client), Bucket: "ledger"}))
}
