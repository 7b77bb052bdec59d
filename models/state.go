// models/state.go
package models

// State is the whole persisted document: six ordered collections, loaded and
// saved as a unit per operation.
type State struct {
	Items         []Item         `json:"items"`
	Users         []User         `json:"users"`
	Logs          []LogEntry     `json:"logs"`
	Notifications []Notification `json:"notifications"`
	Suggestions   []Suggestion   `json:"suggestions"`
	Comments      []Comment      `json:"comments"`
}

func (s *State) ItemByID(id string) *Item {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

func (s *State) UserByID(id string) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

func (s *State) LogByID(id string) *LogEntry {
	for i := range s.Logs {
		if s.Logs[i].ID == id {
			return &s.Logs[i]
		}
	}
	return nil
}

func (s *State) SuggestionByID(id string) *Suggestion {
	for i := range s.Suggestions {
		if s.Suggestions[i].ID == id {
			return &s.Suggestions[i]
		}
	}
	return nil
}

// UserHasOutstandingLoan reports whether any approved borrow is still open for
// the user.
func (s *State) UserHasOutstandingLoan(userID string) bool {
	for i := range s.Logs {
		l := &s.Logs[i]
		if l.UserID == userID && l.Action == ActionBorrow && l.Status == StatusApproved {
			return true
		}
	}
	return false
}

// ItemHasOutstandingLoan reports whether any approved borrow is still open for
// the item.
func (s *State) ItemHasOutstandingLoan(itemID string) bool {
	for i := range s.Logs {
		l := &s.Logs[i]
		if l.ItemID == itemID && l.Action == ActionBorrow && l.Status == StatusApproved {
			return true
		}
	}
	return false
}

// ApprovedAdminCount counts admins whose account has been approved.
func (s *State) ApprovedAdminCount() int {
	n := 0
	for i := range s.Users {
		if s.Users[i].IsAdmin && s.Users[i].Status == StatusApproved {
			n++
		}
	}
	return n
}
