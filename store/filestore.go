// store/filestore.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"olilab_backend/models"
)

// FileStore keeps the document in a single JSON file. A mutex serializes all
// mutating operations behind one writer, so overlapping calls cannot lose each
// other's updates.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := fs.write(Seed()); err != nil {
			return nil, fmt.Errorf("seed %s: %w", path, err)
		}
	} else if err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FileStore) Load(ctx context.Context) (*models.State, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.read()
}

func (fs *FileStore) Update(ctx context.Context, fn func(*models.State) error) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	state, err := fs.read()
	if err != nil {
		return err
	}
	if err := fn(state); err != nil {
		// Mutation happened on the in-memory copy only; nothing to roll back.
		return err
	}
	return fs.write(state)
}

func (fs *FileStore) read() (*models.State, error) {
	b, err := os.ReadFile(fs.path)
	if err != nil {
		return nil, err
	}
	var state models.State
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, fmt.Errorf("decode %s: %w", fs.path, err)
	}
	return &state, nil
}

func (fs *FileStore) write(state *models.State) error {
	b, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	// Write-then-rename keeps a crash from truncating the document.
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, fs.path)
}

var _ Store = (*FileStore)(nil)
