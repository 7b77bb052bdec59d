// models/models.go
package models

import "time"

// Record status values shared by users, lending logs and suggestions.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusDenied   = "DENIED"
	StatusReturned = "RETURNED"
)

// Lending log actions.
const (
	ActionBorrow = "BORROW"
	ActionReturn = "RETURN"
)

// Notification types.
const (
	NotifNewUser       = "new_user"
	NotifBorrowRequest = "new_borrow_request"
	NotifReturnRequest = "return_request"
)

type Item struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	TotalQuantity     int    `json:"totalQuantity"`
	AvailableQuantity int    `json:"availableQuantity"`
}

type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"` // bcrypt hash, stripped from API responses
	LRN        string `json:"lrn"`                // Learner Reference Number, empty for admins
	GradeLevel string `json:"gradeLevel,omitempty"`
	Section    string `json:"section,omitempty"`
	Role       string `json:"role"`
	IsAdmin    bool   `json:"isAdmin"`
	Status     string `json:"status"`
}

// Redacted returns a copy safe to put in an API response.
func (u User) Redacted() User {
	u.Password = ""
	return u
}

type LogEntry struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	ItemID          string     `json:"itemId"`
	Quantity        int        `json:"quantity"`
	Timestamp       time.Time  `json:"timestamp"`
	Action          string     `json:"action"`
	Status          string     `json:"status"`
	ReturnRequested bool       `json:"returnRequested"`
	AdminNotes      string     `json:"adminNotes,omitempty"`
	RelatedLogID    string     `json:"relatedLogId,omitempty"` // RETURN logs point at their BORROW log
	DueDate         *time.Time `json:"dueDate,omitempty"`
}

type Notification struct {
	ID           string    `json:"id"`
	Message      string    `json:"message"`
	Type         string    `json:"type"`
	Read         bool      `json:"read"`
	Timestamp    time.Time `json:"timestamp"`
	RelatedLogID string    `json:"relatedLogId,omitempty"`
}

type Suggestion struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Category  string    `json:"category,omitempty"` // set when approved as an item
	Reason    string    `json:"reason,omitempty"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type Comment struct {
	ID           string    `json:"id"`
	SuggestionID string    `json:"suggestionId"`
	UserID       string    `json:"userId"`
	Text         string    `json:"text"`
	Timestamp    time.Time `json:"timestamp"`
}
