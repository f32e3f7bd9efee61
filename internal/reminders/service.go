package reminders

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akozyreva/medcab/internal/constants"
	"github.com/akozyreva/medcab/internal/logger"
	"github.com/akozyreva/medcab/internal/models"
	"github.com/akozyreva/medcab/internal/notify"
	"github.com/akozyreva/medcab/internal/storage"
)

// Service owns the reminder lifecycle: registering triggers with the
// scheduler and keeping the stored reminder in step with them.
type Service struct {
	store storage.Provider
	sched notify.Scheduler
	now   func() time.Time
}

func NewService(store storage.Provider, sched notify.Scheduler) *Service {
	return &Service{
		store: store,
		sched: sched,
		now:   time.Now,
	}
}

// Create validates the reminder, registers one trigger per occurrence and
// persists the result. Registration is all-or-nothing: if any trigger fails,
// every already-registered trigger is cancelled and nothing is stored.
func (s *Service) Create(r models.Reminder) (models.Reminder, error) {
	if err := r.Validate(); err != nil {
		return models.Reminder{}, err
	}

	r.ID = uuid.NewString()
	r.CreatedAt = s.now()
	r.TriggerIDs = []string{}

	title := "Напоминание о приёме"
	body := fmt.Sprintf("%s — %s", r.MedicineName, r.Dosage)

	rollback := func() {
		for _, id := range r.TriggerIDs {
			_ = s.sched.Cancel(id)
		}
	}

	if r.IsOneShot() {
		fireAt, err := time.ParseInLocation(
			constants.DateFormat+" "+constants.TimeFormat, r.Date+" "+r.Time, s.now().Location())
		if err != nil {
			return models.Reminder{}, fmt.Errorf("invalid reminder date/time: %w", err)
		}
		id, err := s.sched.Schedule(models.Trigger{
			Title:     title,
			Body:      body,
			Kind:      models.TriggerOneShot,
			FireAt:    fireAt,
			OwnerID:   r.ID,
			OwnerType: "reminder",
		})
		if err != nil {
			return models.Reminder{}, fmt.Errorf("failed to schedule reminder: %w", err)
		}
		r.TriggerIDs = append(r.TriggerIDs, id)
	} else {
		for _, wd := range r.Days {
			id, err := s.sched.Schedule(models.Trigger{
				Title:     title,
				Body:      body,
				Kind:      models.TriggerWeekly,
				Weekday:   models.ISOWeekday(wd),
				Time:      r.Time,
				OwnerID:   r.ID,
				OwnerType: "reminder",
			})
			if err != nil {
				rollback()
				return models.Reminder{}, fmt.Errorf("failed to schedule reminder for %s: %w", wd, err)
			}
			r.TriggerIDs = append(r.TriggerIDs, id)
		}
	}

	if err := s.store.AddReminder(r); err != nil {
		rollback()
		return models.Reminder{}, err
	}

	logger.Info("Created reminder", "id", r.ID, "medicine", r.MedicineName, "triggers", len(r.TriggerIDs))
	return r, nil
}

// Cancel removes a reminder, its triggers and its notification log entries.
// Cancelling a reminder that does not exist is a no-op.
func (s *Service) Cancel(id string) error {
	r, err := s.store.GetReminder(id)
	if err != nil {
		logger.Debug("Cancel skipped missing reminder", "id", id)
		return nil
	}

	for _, triggerID := range r.TriggerIDs {
		if err := s.sched.Cancel(triggerID); err != nil {
			return err
		}
	}
	// Belt and braces: remove anything still owned by this reminder
	if err := s.store.DeleteTriggersByOwner(r.ID); err != nil {
		return err
	}

	if err := s.store.DeleteNotificationLogsByReminder(r.ID); err != nil {
		return err
	}

	if err := s.store.DeleteReminder(r.ID); err != nil {
		return err
	}

	logger.Info("Cancelled reminder", "id", r.ID)
	return nil
}

// CancelAll removes every reminder along with its triggers and log entries.
func (s *Service) CancelAll() error {
	reminders, err := s.store.GetAllReminders()
	if err != nil {
		return err
	}
	for _, r := range reminders {
		if err := s.Cancel(r.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) Get(id string) (models.Reminder, error) {
	return s.store.GetReminder(id)
}

func (s *Service) List() ([]models.Reminder, error) {
	return s.store.GetAllReminders()
}

// DueOn returns the reminders with an occurrence on the given day.
func (s *Service) DueOn(day time.Time) ([]models.Reminder, error) {
	all, err := s.store.GetAllReminders()
	if err != nil {
		return nil, err
	}
	due := []models.Reminder{}
	for _, r := range all {
		if r.IsDueOn(day) {
			due = append(due, r)
		}
	}
	return due, nil
}
