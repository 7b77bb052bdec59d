// core/items.go
package core

import (
	"context"
	"fmt"

	"olilab_backend/models"
)

// Inventory ledger: item records and their quantity accounting. Available
// quantity is only ever moved by the lending workflow (lending.go) or by an
// explicit edit.

type ItemInput struct {
	Name          string `json:"name" binding:"required"`
	Category      string `json:"category" binding:"required"`
	TotalQuantity int    `json:"totalQuantity" binding:"min=0"`
}

type EditItemInput struct {
	Name              string `json:"name" binding:"required"`
	Category          string `json:"category" binding:"required"`
	TotalQuantity     int    `json:"totalQuantity"`
	AvailableQuantity int    `json:"availableQuantity"`
}

func validateItemInput(in ItemInput) error {
	if in.Name == "" {
		return fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if in.TotalQuantity < 0 {
		return fmt.Errorf("%w: totalQuantity must be a non-negative integer", ErrValidation)
	}
	return nil
}

// AddItem creates an item with its full quantity available.
func (s *Service) AddItem(ctx context.Context, in ItemInput) (models.Item, error) {
	if err := validateItemInput(in); err != nil {
		return models.Item{}, err
	}
	var created models.Item
	err := s.store.Update(ctx, func(state *models.State) error {
		created = models.Item{
			ID:                newID("item"),
			Name:              in.Name,
			Category:          in.Category,
			TotalQuantity:     in.TotalQuantity,
			AvailableQuantity: in.TotalQuantity,
		}
		state.Items = append(state.Items, created)
		return nil
	})
	return created, err
}

// ImportItems creates one item per entry in a single save. Entries are
// validated up front, so a bad row fails the whole batch before any mutation.
func (s *Service) ImportItems(ctx context.Context, entries []ItemInput) ([]models.Item, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no items to import", ErrValidation)
	}
	for i, in := range entries {
		if err := validateItemInput(in); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	var created []models.Item
	err := s.store.Update(ctx, func(state *models.State) error {
		created = created[:0]
		for _, in := range entries {
			item := models.Item{
				ID:                newID("item"),
				Name:              in.Name,
				Category:          in.Category,
				TotalQuantity:     in.TotalQuantity,
				AvailableQuantity: in.TotalQuantity,
			}
			state.Items = append(state.Items, item)
			created = append(created, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// EditItem replaces the whole record. The quantity bounds are re-checked here:
// an edit must not leave availableQuantity outside [0, totalQuantity].
func (s *Service) EditItem(ctx context.Context, id string, in EditItemInput) (models.Item, error) {
	if in.TotalQuantity < 0 {
		return models.Item{}, fmt.Errorf("%w: totalQuantity must be a non-negative integer", ErrValidation)
	}
	if in.AvailableQuantity < 0 || in.AvailableQuantity > in.TotalQuantity {
		return models.Item{}, fmt.Errorf("%w: availableQuantity must stay within [0, totalQuantity]", ErrValidation)
	}
	var updated models.Item
	err := s.store.Update(ctx, func(state *models.State) error {
		item := state.ItemByID(id)
		if item == nil {
			return fmt.Errorf("%w: item %s", ErrNotFound, id)
		}
		item.Name = in.Name
		item.Category = in.Category
		item.TotalQuantity = in.TotalQuantity
		item.AvailableQuantity = in.AvailableQuantity
		updated = *item
		return nil
	})
	return updated, err
}

// DeleteItem removes an item unless an approved borrow still references it.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(state *models.State) error {
		if state.ItemByID(id) == nil {
			return fmt.Errorf("%w: item %s", ErrNotFound, id)
		}
		if state.ItemHasOutstandingLoan(id) {
			return fmt.Errorf("%w: cannot delete item with outstanding loans", ErrConflict)
		}
		kept := state.Items[:0]
		for _, it := range state.Items {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		state.Items = kept
		return nil
	})
}
