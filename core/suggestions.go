// core/suggestions.go
package core

import (
	"context"
	"fmt"
	"time"

	"olilab_backend/models"
)

// Suggestion workflow: user-submitted item/feature proposals plus their
// comment threads. Approving a suggestion as an item goes through the same
// record shape AddItem uses, so the new item starts fully available.

type SuggestionInput struct {
	UserID string `json:"userId" binding:"required"`
	Title  string `json:"title" binding:"required"`
	Reason string `json:"reason"`
}

type CommentInput struct {
	SuggestionID string `json:"suggestionId" binding:"required"`
	UserID       string `json:"userId" binding:"required"`
	Text         string `json:"text" binding:"required"`
}

func (s *Service) AddSuggestion(ctx context.Context, in SuggestionInput) (models.Suggestion, error) {
	var created models.Suggestion
	err := s.store.Update(ctx, func(state *models.State) error {
		created = models.Suggestion{
			ID:        newID("sugg"),
			UserID:    in.UserID,
			Title:     in.Title,
			Reason:    in.Reason,
			Status:    models.StatusPending,
			Timestamp: time.Now().UTC(),
		}
		state.Suggestions = append(state.Suggestions, created)
		return nil
	})
	return created, err
}

// ApproveAsItem approves the suggestion and materializes it in the inventory.
func (s *Service) ApproveAsItem(ctx context.Context, id, category string, totalQuantity int) (models.Suggestion, models.Item, error) {
	if totalQuantity < 0 {
		return models.Suggestion{}, models.Item{}, fmt.Errorf("%w: totalQuantity must be a non-negative integer", ErrValidation)
	}
	var (
		updated models.Suggestion
		item    models.Item
	)
	err := s.store.Update(ctx, func(state *models.State) error {
		sg := state.SuggestionByID(id)
		if sg == nil {
			return fmt.Errorf("%w: suggestion %s", ErrNotFound, id)
		}
		sg.Status = models.StatusApproved
		sg.Category = category
		item = models.Item{
			ID:                newID("item"),
			Name:              sg.Title,
			Category:          category,
			TotalQuantity:     totalQuantity,
			AvailableQuantity: totalQuantity,
		}
		state.Items = append(state.Items, item)
		updated = *sg
		return nil
	})
	return updated, item, err
}

// ApproveAsFeature approves without touching the inventory.
func (s *Service) ApproveAsFeature(ctx context.Context, id string) (models.Suggestion, error) {
	var updated models.Suggestion
	err := s.store.Update(ctx, func(state *models.State) error {
		sg := state.SuggestionByID(id)
		if sg == nil {
			return fmt.Errorf("%w: suggestion %s", ErrNotFound, id)
		}
		sg.Status = models.StatusApproved
		updated = *sg
		return nil
	})
	return updated, err
}

// DenySuggestion records the denial reason as a comment attributed to the
// acting admin.
func (s *Service) DenySuggestion(ctx context.Context, id, adminID, reason string) (models.Suggestion, models.Comment, error) {
	var (
		updated models.Suggestion
		comment models.Comment
	)
	err := s.store.Update(ctx, func(state *models.State) error {
		sg := state.SuggestionByID(id)
		if sg == nil {
			return fmt.Errorf("%w: suggestion %s", ErrNotFound, id)
		}
		sg.Status = models.StatusDenied
		comment = models.Comment{
			ID:           newID("comm"),
			SuggestionID: id,
			UserID:       adminID,
			Text:         fmt.Sprintf("Admin Note (Denied): %s", reason),
			Timestamp:    time.Now().UTC(),
		}
		state.Comments = append(state.Comments, comment)
		updated = *sg
		return nil
	})
	return updated, comment, err
}

// AddComment appends the comment verbatim plus a generated id and timestamp.
func (s *Service) AddComment(ctx context.Context, in CommentInput) (models.Comment, error) {
	var created models.Comment
	err := s.store.Update(ctx, func(state *models.State) error {
		created = models.Comment{
			ID:           newID("comm"),
			SuggestionID: in.SuggestionID,
			UserID:       in.UserID,
			Text:         in.Text,
			Timestamp:    time.Now().UTC(),
		}
		state.Comments = append(state.Comments, created)
		return nil
	})
	return created, err
}
