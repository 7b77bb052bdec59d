package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"olilab_backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "database.json"))
	require.NoError(t, err)
	return fs
}

func TestFileStoreSeedsOnFirstOpen(t *testing.T) {
	fs := newFileStore(t)

	state, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, state.Items, 4)
	assert.Len(t, state.Users, 1)
	assert.Len(t, state.Logs, 2)
	assert.Equal(t, "admin", state.Users[0].Username)

	// Reopening the same file must not reseed.
	require.NoError(t, fs.Update(context.Background(), func(s *models.State) error {
		s.Items = s.Items[:1]
		return nil
	}))
	fs2, err := NewFileStore(fs.path)
	require.NoError(t, err)
	state2, err := fs2.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, state2.Items, 1)
}

func TestFileStoreUpdateIsAllOrNothing(t *testing.T) {
	fs := newFileStore(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := fs.Update(ctx, func(s *models.State) error {
		s.Items = nil
		s.Users = nil
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The failed mutation left the document untouched.
	state, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Items, 4)
	assert.Len(t, state.Users, 1)
}

func TestFileStoreSerializesConcurrentUpdates(t *testing.T) {
	fs := newFileStore(t)
	ctx := context.Background()

	const writers = 8
	const perWriter = 10

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				err := fs.Update(ctx, func(s *models.State) error {
					s.Notifications = append(s.Notifications, models.Notification{ID: "n"})
					return nil
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	state, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Notifications, writers*perWriter, "no lost updates")
}
