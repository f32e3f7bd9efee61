package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akozyreva/medcab/internal/constants"
	"github.com/akozyreva/medcab/internal/logger"
	"github.com/akozyreva/medcab/internal/models"
	"github.com/akozyreva/medcab/internal/storage"
)

// Scheduler registers notification triggers and hands back opaque ids that
// are only ever used for cancellation.
type Scheduler interface {
	Schedule(t models.Trigger) (string, error)
	Cancel(id string) error
	CancelAll() error
	Pending() ([]models.Trigger, error)
}

// AgentScheduler persists triggers in the storage provider; the 'medcab
// notify' sweep delivers whatever is due.
type AgentScheduler struct {
	store storage.Provider
	now   func() time.Time
}

func NewAgentScheduler(store storage.Provider) *AgentScheduler {
	return &AgentScheduler{
		store: store,
		now:   time.Now,
	}
}

func (s *AgentScheduler) Schedule(t models.Trigger) (string, error) {
	now := s.now()

	switch t.Kind {
	case models.TriggerWeekly:
		if t.Weekday < 1 || t.Weekday > 7 {
			return "", fmt.Errorf("weekday must be between 1 (Monday) and 7 (Sunday)")
		}
		if _, err := time.Parse("15:04", t.Time); err != nil {
			return "", fmt.Errorf("invalid trigger time (expected HH:MM): %w", err)
		}
	case models.TriggerOneShot:
		// Imminent or just-passed fire times get the minimum lead, not an error
		lead := time.Duration(constants.MinOneShotLeadSeconds) * time.Second
		if t.FireAt.Before(now.Add(lead)) {
			t.FireAt = now.Add(lead)
		}
	default:
		return "", fmt.Errorf("unknown trigger kind %q", t.Kind)
	}

	if t.Title == "" {
		return "", fmt.Errorf("trigger title cannot be empty")
	}

	t.ID = uuid.NewString()
	t.CreatedAt = now
	if err := s.store.AddTrigger(t); err != nil {
		return "", err
	}

	logger.Debug("Scheduled trigger", "id", t.ID, "kind", t.Kind, "owner", t.OwnerID)
	return t.ID, nil
}

// Cancel removes a trigger. Cancelling an unknown id is not an error.
func (s *AgentScheduler) Cancel(id string) error {
	if err := s.store.DeleteTrigger(id); err != nil {
		logger.Debug("Cancel skipped missing trigger", "id", id)
	}
	return nil
}

func (s *AgentScheduler) CancelAll() error {
	triggers, err := s.store.GetAllTriggers()
	if err != nil {
		return err
	}
	for _, t := range triggers {
		if err := s.store.DeleteTrigger(t.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *AgentScheduler) Pending() ([]models.Trigger, error) {
	return s.store.GetAllTriggers()
}
