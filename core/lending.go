// core/lending.go
package core

import (
	"context"
	"fmt"
	"time"

	"olilab_backend/models"
)

// Lending workflow state machine:
//
//	PENDING → APPROVED → RETURNED
//	PENDING → DENIED (terminal)
//
// returnRequested is an orthogonal flag on APPROVED logs. This file is the
// only place that moves Item.AvailableQuantity, and the approval-time
// availability check is the authoritative one.

type BorrowInput struct {
	UserID   string `json:"userId" binding:"required"`
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// ReturnResult carries everything a completed return changed.
type ReturnResult struct {
	ReturnLog        models.LogEntry `json:"returnLog"`
	UpdatedBorrowLog models.LogEntry `json:"updatedBorrowLog"`
	UpdatedItem      models.Item     `json:"updatedItem"`
}

// RequestBorrow creates a PENDING borrow log. The availability check here is
// advisory only: nothing is reserved, and ApproveBorrow re-checks before any
// quantity moves.
func (s *Service) RequestBorrow(ctx context.Context, in BorrowInput) (models.LogEntry, models.Notification, error) {
	if in.Quantity <= 0 {
		return models.LogEntry{}, models.Notification{}, fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
	}
	var (
		created models.LogEntry
		notif   models.Notification
	)
	err := s.store.Update(ctx, func(state *models.State) error {
		item := state.ItemByID(in.ItemID)
		if item == nil {
			return fmt.Errorf("%w: item %s", ErrNotFound, in.ItemID)
		}
		if state.UserByID(in.UserID) == nil {
			return fmt.Errorf("%w: user %s", ErrNotFound, in.UserID)
		}
		if in.Quantity > item.AvailableQuantity {
			return fmt.Errorf("%w: item not available in the requested quantity", ErrValidation)
		}
		created = models.LogEntry{
			ID:        newID("log"),
			UserID:    in.UserID,
			ItemID:    in.ItemID,
			Quantity:  in.Quantity,
			Timestamp: time.Now().UTC(),
			Action:    models.ActionBorrow,
			Status:    models.StatusPending,
		}
		state.Logs = append(state.Logs, created)
		notif = emit(state, fmt.Sprintf("New borrow request for %s.", item.Name), models.NotifBorrowRequest, created.ID)
		return nil
	})
	if err != nil {
		return models.LogEntry{}, models.Notification{}, err
	}
	s.publish(ctx, notif)
	return created, notif, nil
}

// ApproveBorrow re-validates availability and deducts the quantity. Only a
// PENDING borrow can be approved; approving twice would deduct twice.
func (s *Service) ApproveBorrow(ctx context.Context, logID string) (models.LogEntry, models.Item, error) {
	var (
		updatedLog  models.LogEntry
		updatedItem models.Item
	)
	err := s.store.Update(ctx, func(state *models.State) error {
		log := state.LogByID(logID)
		if log == nil {
			return fmt.Errorf("%w: log entry %s", ErrNotFound, logID)
		}
		if log.Action != models.ActionBorrow || log.Status != models.StatusPending {
			return fmt.Errorf("%w: only a pending borrow request can be approved", ErrConflict)
		}
		item := state.ItemByID(log.ItemID)
		if item == nil || log.Quantity > item.AvailableQuantity {
			return fmt.Errorf("%w: item no longer available in the requested quantity", ErrConflict)
		}
		log.Status = models.StatusApproved
		due := time.Now().UTC().Add(s.loanPeriod)
		log.DueDate = &due
		item.AvailableQuantity -= log.Quantity
		updatedLog = *log
		updatedItem = *item
		return nil
	})
	return updatedLog, updatedItem, err
}

// DenyBorrow marks a pending borrow DENIED and records the reason. No quantity
// effect: nothing was ever deducted for a pending request.
func (s *Service) DenyBorrow(ctx context.Context, logID, reason string) (models.LogEntry, error) {
	var updated models.LogEntry
	err := s.store.Update(ctx, func(state *models.State) error {
		log := state.LogByID(logID)
		if log == nil {
			return fmt.Errorf("%w: log entry %s", ErrNotFound, logID)
		}
		if log.Action != models.ActionBorrow || log.Status != models.StatusPending {
			return fmt.Errorf("%w: only a pending borrow request can be denied", ErrConflict)
		}
		log.Status = models.StatusDenied
		log.AdminNotes = reason
		updated = *log
		return nil
	})
	return updated, err
}

// RequestReturn flags an approved borrow for return. Repeated calls keep
// appending notifications; the flag itself just stays true.
func (s *Service) RequestReturn(ctx context.Context, logID string) (models.LogEntry, models.Notification, error) {
	var (
		updated models.LogEntry
		notif   models.Notification
	)
	err := s.store.Update(ctx, func(state *models.State) error {
		log := state.LogByID(logID)
		if log == nil {
			return fmt.Errorf("%w: log entry %s", ErrNotFound, logID)
		}
		if log.Action != models.ActionBorrow || log.Status != models.StatusApproved {
			return fmt.Errorf("%w: only an approved borrow can be flagged for return", ErrConflict)
		}
		log.ReturnRequested = true
		itemName := "an item"
		if item := state.ItemByID(log.ItemID); item != nil {
			itemName = item.Name
		}
		notif = emit(state, fmt.Sprintf("A user has requested to return %s.", itemName), models.NotifReturnRequest, log.ID)
		updated = *log
		return nil
	})
	if err != nil {
		return models.LogEntry{}, models.Notification{}, err
	}
	s.publish(ctx, notif)
	return updated, notif, nil
}

// CompleteReturn closes a borrow: the borrow log becomes RETURNED, a RETURN
// log referencing it is appended, and the quantity goes back to the item,
// capped at totalQuantity. The cap is what keeps a stale or duplicated borrow
// log from restoring more than the item can hold.
func (s *Service) CompleteReturn(ctx context.Context, borrowLogID, adminNotes string) (ReturnResult, error) {
	var res ReturnResult
	err := s.store.Update(ctx, func(state *models.State) error {
		borrow := state.LogByID(borrowLogID)
		if borrow == nil {
			return fmt.Errorf("%w: original borrow record %s", ErrNotFound, borrowLogID)
		}
		if borrow.Action != models.ActionBorrow {
			return fmt.Errorf("%w: log entry %s is not a borrow record", ErrValidation, borrowLogID)
		}
		borrow.Status = models.StatusReturned
		borrow.ReturnRequested = false

		ret := models.LogEntry{
			ID:           newID("log"),
			UserID:       borrow.UserID,
			ItemID:       borrow.ItemID,
			Quantity:     borrow.Quantity,
			Timestamp:    time.Now().UTC(),
			Action:       models.ActionReturn,
			Status:       models.StatusReturned,
			AdminNotes:   adminNotes,
			RelatedLogID: borrow.ID,
		}
		state.Logs = append(state.Logs, ret)
		// Appending may relocate the slice; look the borrow log up again.
		borrow = state.LogByID(borrowLogID)

		if item := state.ItemByID(borrow.ItemID); item != nil {
			item.AvailableQuantity += borrow.Quantity
			if item.AvailableQuantity > item.TotalQuantity {
				item.AvailableQuantity = item.TotalQuantity
			}
			res.UpdatedItem = *item
		}
		res.ReturnLog = ret
		res.UpdatedBorrowLog = *borrow
		return nil
	})
	return res, err
}
