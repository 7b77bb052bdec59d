// core/users.go
package core

import (
	"context"
	"fmt"
	"strings"

	"olilab_backend/models"

	"golang.org/x/crypto/bcrypt"
)

// User directory: registration uniqueness, approval transitions and the two
// deletion guards (outstanding loans, last approved admin).

type RegisterUserInput struct {
	Username   string `json:"username" binding:"required"`
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password"`
	LRN        string `json:"lrn"`
	GradeLevel string `json:"gradeLevel"`
	Section    string `json:"section"`
	Role       string `json:"role"`
}

type EditUserInput struct {
	Username   string `json:"username" binding:"required"`
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password"` // empty keeps the stored hash
	LRN        string `json:"lrn"`
	GradeLevel string `json:"gradeLevel"`
	Section    string `json:"section"`
	Role       string `json:"role"`
	IsAdmin    bool   `json:"isAdmin"`
	Status     string `json:"status"`
}

// checkUserUnique enforces case-insensitive username/email uniqueness and LRN
// uniqueness when present. excludeID skips the record being edited.
func checkUserUnique(state *models.State, username, email, lrn, excludeID string) error {
	for i := range state.Users {
		u := &state.Users[i]
		if u.ID == excludeID {
			continue
		}
		if strings.EqualFold(u.Username, username) {
			return fmt.Errorf("%w: username is already taken", ErrValidation)
		}
		if strings.EqualFold(u.Email, email) {
			return fmt.Errorf("%w: email is already registered", ErrValidation)
		}
		if lrn != "" && u.LRN == lrn {
			return fmt.Errorf("%w: LRN is already registered", ErrValidation)
		}
	}
	return nil
}

// RegisterUser creates a PENDING account and notifies admins for review.
func (s *Service) RegisterUser(ctx context.Context, in RegisterUserInput) (models.User, models.Notification, error) {
	hash := ""
	if in.Password != "" {
		b, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, models.Notification{}, err
		}
		hash = string(b)
	}
	role := in.Role
	if role == "" {
		role = "Member"
	}
	var (
		created models.User
		notif   models.Notification
		admins  []models.User
	)
	err := s.store.Update(ctx, func(state *models.State) error {
		if err := checkUserUnique(state, in.Username, in.Email, in.LRN, ""); err != nil {
			return err
		}
		created = models.User{
			ID:         newID("user"),
			Username:   in.Username,
			FullName:   in.FullName,
			Email:      in.Email,
			Password:   hash,
			LRN:        in.LRN,
			GradeLevel: in.GradeLevel,
			Section:    in.Section,
			Role:       role,
			IsAdmin:    role == "Admin",
			Status:     models.StatusPending,
		}
		state.Users = append(state.Users, created)
		notif = emit(state,
			fmt.Sprintf("New user '%s' has registered and is awaiting approval.", created.FullName),
			models.NotifNewUser, "")
		admins = admins[:0]
		for i := range state.Users {
			if state.Users[i].IsAdmin && state.Users[i].Status == models.StatusApproved {
				admins = append(admins, state.Users[i])
			}
		}
		return nil
	})
	if err != nil {
		return models.User{}, models.Notification{}, err
	}
	s.publish(ctx, notif)
	s.mailer.SendNewUserDigest(created, admins)
	return created.Redacted(), notif, nil
}

func (s *Service) ApproveUser(ctx context.Context, id string) (models.User, error) {
	return s.setUserStatus(ctx, id, models.StatusApproved)
}

func (s *Service) DenyUser(ctx context.Context, id string) (models.User, error) {
	return s.setUserStatus(ctx, id, models.StatusDenied)
}

func (s *Service) setUserStatus(ctx context.Context, id, status string) (models.User, error) {
	var updated models.User
	err := s.store.Update(ctx, func(state *models.State) error {
		u := state.UserByID(id)
		if u == nil {
			return fmt.Errorf("%w: user %s", ErrNotFound, id)
		}
		u.Status = status
		updated = u.Redacted()
		return nil
	})
	return updated, err
}

// EditUser replaces the whole record. Uniqueness is re-checked against the
// other records so an edit cannot smuggle in a duplicate username/email/LRN.
func (s *Service) EditUser(ctx context.Context, id string, in EditUserInput) (models.User, error) {
	var updated models.User
	err := s.store.Update(ctx, func(state *models.State) error {
		u := state.UserByID(id)
		if u == nil {
			return fmt.Errorf("%w: user %s", ErrNotFound, id)
		}
		if err := checkUserUnique(state, in.Username, in.Email, in.LRN, id); err != nil {
			return err
		}
		u.Username = in.Username
		u.FullName = in.FullName
		u.Email = in.Email
		if in.Password != "" {
			b, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			u.Password = string(b)
		}
		u.LRN = in.LRN
		u.GradeLevel = in.GradeLevel
		u.Section = in.Section
		u.Role = in.Role
		u.IsAdmin = in.IsAdmin
		if in.Status != "" {
			u.Status = in.Status
		}
		updated = u.Redacted()
		return nil
	})
	return updated, err
}

// DeleteUser removes an account unless it still holds borrowed items or is
// the last approved admin.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(state *models.State) error {
		u := state.UserByID(id)
		if u == nil {
			return fmt.Errorf("%w: user %s", ErrNotFound, id)
		}
		if state.UserHasOutstandingLoan(id) {
			return fmt.Errorf("%w: cannot delete user with outstanding borrowed items", ErrConflict)
		}
		if u.IsAdmin && u.Status == models.StatusApproved && state.ApprovedAdminCount() <= 1 {
			return fmt.Errorf("%w: cannot delete the last admin account", ErrConflict)
		}
		kept := state.Users[:0]
		for _, usr := range state.Users {
			if usr.ID != id {
				kept = append(kept, usr)
			}
		}
		state.Users = kept
		return nil
	})
}
