package core

import (
	"context"
	"path/filepath"
	"testing"

	"olilab_backend/mail"
	"olilab_backend/models"
	"olilab_backend/notify"
	"olilab_backend/store"

	"github.com/stretchr/testify/require"
)

// Seeded fixture IDs, see store.Seed.
const (
	seedBeakerID     = "item_1622548800000" // total 20, available 18
	seedRackID       = "item_1622548800001" // total 15, available 15
	seedMicroscopeID = "item_1622548800002" // total 5, available 3, open loan
	seedAcidID       = "item_1622548800003" // total 10, available 10
	seedAdminID      = "user_admin0000001"
	seedOpenLoanID   = "log_1622548800002" // approved borrow of 2 microscopes
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	fs, err := store.NewFileStore(filepath.Join(t.TempDir(), "database.json"))
	require.NoError(t, err)
	return NewService(fs, notify.NewPublisher(nil), mail.New(), 7)
}

func loadState(t *testing.T, s *Service) *models.State {
	t.Helper()
	state, err := s.store.Load(context.Background())
	require.NoError(t, err)
	return state
}

// registerMember creates and approves a plain member account.
func registerMember(t *testing.T, s *Service, username string) models.User {
	t.Helper()
	u, _, err := s.RegisterUser(context.Background(), RegisterUserInput{
		Username: username,
		FullName: username + " Test",
		Email:    username + "@olilab.app",
		Password: "secret",
		LRN:      "",
	})
	require.NoError(t, err)
	approved, err := s.ApproveUser(context.Background(), u.ID)
	require.NoError(t, err)
	return approved
}
