package store

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"practice-ledger/core/utils"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another run holds the store lock.
var ErrLocked = errors.New("player store is locked by another run")

// Locker is implemented by stores that guard against concurrent runs.
type Locker interface {
	Lock() error
	Unlock() error
}

// FileStore keeps the player store as newline-delimited records on local disk.
type FileStore struct {
	path string
	lock *flock.Flock
}

// NewFileStore creates a store backed by path. The lock file is path + ".lock".
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Name returns the backend name.
func (s *FileStore) Name() string {
	return BackendFile
}

// Path returns the store file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the record lines. A missing file is an empty store.
func (s *FileStore) Load(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return splitLines(data)
}

// Save rewrites the whole file through a temp file and rename, so readers
// never see a truncated store.
func (s *FileStore) Save(ctx context.Context, lines []string) error {
	return utils.WriteFileAtomic(s.path, joinLines(lines), 0o644)
}

// Lock takes the single-writer lock without blocking.
func (s *FileStore) Lock() error {
	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", s.lock.Path(), err)
	}
	if !ok {
		return ErrLocked
	}
	return nil
}

// Unlock releases the single-writer lock.
func (s *FileStore) Unlock() error {
	return s.lock.Unlock()
}

// splitLines splits newline-delimited content, dropping a trailing empty line.
func splitLines(data []byte) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// joinLines renders one record per line, each terminated by a newline.
func joinLines(lines []string) []byte {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
