package core

import (
	"context"
	"testing"

	"olilab_backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowApproveReturnCycle(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	logEntry, notif, err := s.RequestBorrow(ctx, BorrowInput{
		UserID: seedAdminID, ItemID: seedBeakerID, Quantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, logEntry.Status)
	assert.Equal(t, models.ActionBorrow, logEntry.Action)
	assert.Equal(t, models.NotifBorrowRequest, notif.Type)
	assert.Equal(t, logEntry.ID, notif.RelatedLogID)

	// Request alone reserves nothing.
	state := loadState(t, s)
	assert.Equal(t, 18, state.ItemByID(seedBeakerID).AvailableQuantity)

	approved, item, err := s.ApproveBorrow(ctx, logEntry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)
	require.NotNil(t, approved.DueDate)
	assert.Equal(t, 13, item.AvailableQuantity)

	res, err := s.CompleteReturn(ctx, logEntry.ID, "all good")
	require.NoError(t, err)
	assert.Equal(t, models.StatusReturned, res.UpdatedBorrowLog.Status)
	assert.False(t, res.UpdatedBorrowLog.ReturnRequested)
	assert.Equal(t, models.ActionReturn, res.ReturnLog.Action)
	assert.Equal(t, models.StatusReturned, res.ReturnLog.Status)
	assert.Equal(t, logEntry.ID, res.ReturnLog.RelatedLogID)
	assert.Equal(t, 5, res.ReturnLog.Quantity)
	assert.Equal(t, 18, res.UpdatedItem.AvailableQuantity)
}

func TestRequestBorrowExceedsAvailability(t *testing.T) {
	s := newTestService(t)

	_, _, err := s.RequestBorrow(context.Background(), BorrowInput{
		UserID: seedAdminID, ItemID: seedBeakerID, Quantity: 25,
	})
	require.ErrorIs(t, err, ErrValidation)

	// Nothing was saved.
	state := loadState(t, s)
	assert.Empty(t, state.Notifications)
	assert.Len(t, state.Logs, 2)
}

func TestRequestBorrowUnknownItemAndUser(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, _, err := s.RequestBorrow(ctx, BorrowInput{UserID: seedAdminID, ItemID: "item_missing", Quantity: 1})
	require.ErrorIs(t, err, ErrNotFound)

	_, _, err = s.RequestBorrow(ctx, BorrowInput{UserID: "user_missing", ItemID: seedBeakerID, Quantity: 1})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestApproveBorrowIsTheAuthoritativeCheck(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	// Both requests pass the advisory request-time check against available=18.
	first, _, err := s.RequestBorrow(ctx, BorrowInput{UserID: seedAdminID, ItemID: seedBeakerID, Quantity: 10})
	require.NoError(t, err)
	second, _, err := s.RequestBorrow(ctx, BorrowInput{UserID: seedAdminID, ItemID: seedBeakerID, Quantity: 10})
	require.NoError(t, err)

	_, item, err := s.ApproveBorrow(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, item.AvailableQuantity)

	// Only one of them can be honored.
	_, _, err = s.ApproveBorrow(ctx, second.ID)
	require.ErrorIs(t, err, ErrConflict)

	state := loadState(t, s)
	assert.Equal(t, 8, state.ItemByID(seedBeakerID).AvailableQuantity)
	assert.Equal(t, models.StatusPending, state.LogByID(second.ID).Status)
}

func TestApproveBorrowOnlyFromPending(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	logEntry, _, err := s.RequestBorrow(ctx, BorrowInput{UserID: seedAdminID, ItemID: seedRackID, Quantity: 3})
	require.NoError(t, err)
	_, _, err = s.ApproveBorrow(ctx, logEntry.ID)
	require.NoError(t, err)

	// Approving again would deduct twice.
	_, _, err = s.ApproveBorrow(ctx, logEntry.ID)
	require.ErrorIs(t, err, ErrConflict)

	state := loadState(t, s)
	assert.Equal(t, 12, state.ItemByID(seedRackID).AvailableQuantity)
}

func TestApproveBorrowUnknownLog(t *testing.T) {
	s := newTestService(t)
	_, _, err := s.ApproveBorrow(context.Background(), "log_missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDenyBorrowLeavesQuantityAlone(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	logEntry, _, err := s.RequestBorrow(ctx, BorrowInput{UserID: seedAdminID, ItemID: seedBeakerID, Quantity: 5})
	require.NoError(t, err)

	denied, err := s.DenyBorrow(ctx, logEntry.ID, "not for freshmen")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDenied, denied.Status)
	assert.Equal(t, "not for freshmen", denied.AdminNotes)

	state := loadState(t, s)
	assert.Equal(t, 18, state.ItemByID(seedBeakerID).AvailableQuantity)

	// DENIED is terminal.
	_, _, err = s.ApproveBorrow(ctx, logEntry.ID)
	require.ErrorIs(t, err, ErrConflict)
}

func TestRequestReturnAppendsNotificationEveryTime(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	before := len(loadState(t, s).Notifications)

	updated, notif, err := s.RequestReturn(ctx, seedOpenLoanID)
	require.NoError(t, err)
	assert.True(t, updated.ReturnRequested)
	assert.Equal(t, models.NotifReturnRequest, notif.Type)

	// A duplicate request keeps appending; there is deliberately no guard.
	_, _, err = s.RequestReturn(ctx, seedOpenLoanID)
	require.NoError(t, err)

	state := loadState(t, s)
	assert.Len(t, state.Notifications, before+2)
	assert.True(t, state.LogByID(seedOpenLoanID).ReturnRequested)
}

func TestRequestReturnRequiresApprovedBorrow(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	logEntry, _, err := s.RequestBorrow(ctx, BorrowInput{UserID: seedAdminID, ItemID: seedBeakerID, Quantity: 1})
	require.NoError(t, err)

	_, _, err = s.RequestReturn(ctx, logEntry.ID)
	require.ErrorIs(t, err, ErrConflict)

	_, _, err = s.RequestReturn(ctx, "log_missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteReturnCapsAtTotalQuantity(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	// First return restores the two seeded microscopes: 3 -> 5.
	res, err := s.CompleteReturn(ctx, seedOpenLoanID, "")
	require.NoError(t, err)
	assert.Equal(t, 5, res.UpdatedItem.AvailableQuantity)

	// Replaying the same stale borrow log must not push past the total.
	res, err = s.CompleteReturn(ctx, seedOpenLoanID, "")
	require.NoError(t, err)
	assert.Equal(t, 5, res.UpdatedItem.AvailableQuantity)
	assert.Equal(t, res.UpdatedItem.TotalQuantity, res.UpdatedItem.AvailableQuantity)
}

func TestCompleteReturnGuards(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.CompleteReturn(ctx, "log_missing", "")
	require.ErrorIs(t, err, ErrNotFound)

	// A RETURN log is not a valid target.
	res, err := s.CompleteReturn(ctx, seedOpenLoanID, "")
	require.NoError(t, err)
	_, err = s.CompleteReturn(ctx, res.ReturnLog.ID, "")
	require.ErrorIs(t, err, ErrValidation)
}
