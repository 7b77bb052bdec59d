// core/service.go
package core

import (
	"context"
	"strings"
	"time"

	"olilab_backend/mail"
	"olilab_backend/models"
	"olilab_backend/notify"
	"olilab_backend/store"

	"github.com/google/uuid"
)

// Service runs every workflow as one load→mutate→save cycle against the
// snapshot store. The store's Update is the transactional boundary: a failed
// mutation leaves the persisted document untouched.
type Service struct {
	store      store.Store
	publisher  *notify.Publisher
	mailer     *mail.Mailer
	loanPeriod time.Duration
}

func NewService(st store.Store, pub *notify.Publisher, m *mail.Mailer, loanPeriodDays int) *Service {
	if loanPeriodDays <= 0 {
		loanPeriodDays = 7
	}
	return &Service{
		store:      st,
		publisher:  pub,
		mailer:     m,
		loanPeriod: time.Duration(loanPeriodDays) * 24 * time.Hour,
	}
}

// Snapshot returns the full document with user passwords stripped.
func (s *Service) Snapshot(ctx context.Context) (*models.State, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range state.Users {
		state.Users[i] = state.Users[i].Redacted()
	}
	return state, nil
}

// newID builds identifiers like "item_3f2a9c01d4b7".
func newID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + hex[:12]
}

// emit appends a notification to the snapshot. Fan-out to Redis happens after
// the save succeeds, see publish.
func emit(state *models.State, message, typ, relatedLogID string) models.Notification {
	n := models.Notification{
		ID:           newID("notif"),
		Message:      message,
		Type:         typ,
		Timestamp:    time.Now().UTC(),
		RelatedLogID: relatedLogID,
	}
	state.Notifications = append(state.Notifications, n)
	return n
}

// publish fans a saved notification out to Redis subscribers, fire and forget.
func (s *Service) publish(ctx context.Context, n models.Notification) {
	s.publisher.Publish(ctx, n)
}
