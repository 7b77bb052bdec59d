// store/store.go
package store

import (
	"context"
	"time"

	"olilab_backend/models"

	"golang.org/x/crypto/bcrypt"
)

// Store is the snapshot persistence boundary. Every operation is one
// Load or one Update; Update persists the document only when the mutation
// function returns nil, so a failed operation leaves the snapshot untouched.
type Store interface {
	Load(ctx context.Context) (*models.State, error)
	Update(ctx context.Context, fn func(*models.State) error) error
}

// Seed builds the initial document written when the backing store is empty.
func Seed() *models.State {
	now := time.Now().UTC()
	adminID := "user_admin0000001"
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	day := 24 * time.Hour

	return &models.State{
		Items: []models.Item{
			{ID: "item_1622548800000", Name: "Beaker 250ml", Category: "Chemistry", TotalQuantity: 20, AvailableQuantity: 18},
			{ID: "item_1622548800001", Name: "Test Tube Rack", Category: "Chemistry", TotalQuantity: 15, AvailableQuantity: 15},
			{ID: "item_1622548800002", Name: "Microscope", Category: "Biology", TotalQuantity: 5, AvailableQuantity: 3},
			{ID: "item_1622548800003", Name: "Sulfuric Acid (H2SO4)", Category: "Chemistry", TotalQuantity: 10, AvailableQuantity: 10},
		},
		Users: []models.User{
			{
				ID:       adminID,
				Username: "admin",
				FullName: "Admin User",
				Email:    "admin@olilab.app",
				Password: string(hash),
				Role:     "Admin",
				IsAdmin:  true,
				Status:   models.StatusApproved,
			},
		},
		Logs: []models.LogEntry{
			{
				ID: "log_1622548800002", UserID: adminID, ItemID: "item_1622548800002",
				Quantity: 2, Timestamp: now.Add(-day), Action: models.ActionBorrow,
				Status: models.StatusApproved,
			},
			{
				ID: "log_1622548800003", UserID: adminID, ItemID: "item_1622548800000",
				Quantity: 2, Timestamp: now.Add(-2 * day), Action: models.ActionBorrow,
				Status: models.StatusApproved, ReturnRequested: true,
			},
		},
		Notifications: []models.Notification{},
		Suggestions:   []models.Suggestion{},
		Comments:      []models.Comment{},
	}
}
