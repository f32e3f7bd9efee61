package notify

import (
	"time"

	"github.com/akozyreva/medcab/internal/constants"
	"github.com/akozyreva/medcab/internal/logger"
	"github.com/akozyreva/medcab/internal/models"
	"github.com/akozyreva/medcab/internal/storage"
)

// Sender delivers a single notification to the user.
type Sender interface {
	Notify(title, subtitle string) error
}

// DeliveryHandler is notified after a trigger has been delivered. Handlers
// subscribe once at startup; delivery side effects (logging a history entry,
// decrementing stock) live in the subscribers, not in the dispatcher.
type DeliveryHandler interface {
	OnDelivered(t models.Trigger, firedAt time.Time)
}

// Dispatcher sweeps the registered triggers and delivers whatever is due.
type Dispatcher struct {
	store    storage.Provider
	sender   Sender
	handlers []DeliveryHandler
	grace    time.Duration
	now      func() time.Time
}

func NewDispatcher(store storage.Provider, sender Sender) *Dispatcher {
	return &Dispatcher{
		store:  store,
		sender: sender,
		grace:  time.Duration(constants.NotifyGraceMinutes) * time.Minute,
		now:    time.Now,
	}
}

// Subscribe registers a delivery handler. Not safe for concurrent use with
// Sweep; subscribe before sweeping.
func (d *Dispatcher) Subscribe(h DeliveryHandler) {
	d.handlers = append(d.handlers, h)
}

// Sweep delivers every due trigger once. One-shot triggers are removed after
// delivery; weekly triggers record their last fire time so a second sweep in
// the same window is a no-op. Returns the number of notifications delivered.
func (d *Dispatcher) Sweep() (int, error) {
	now := d.now()

	triggers, err := d.store.GetAllTriggers()
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, t := range triggers {
		firedAt, due := DueAt(t, now, d.grace)
		if !due {
			// Drop one-shots whose window has passed without delivery
			if t.Kind == models.TriggerOneShot && t.LastFired.IsZero() && t.FireAt.Before(now.Add(-d.grace)) {
				if err := d.store.DeleteTrigger(t.ID); err != nil {
					logger.Warn("Failed to prune expired trigger", "id", t.ID, "error", err)
				}
			}
			continue
		}

		if err := d.sender.Notify(t.Title, t.Body); err != nil {
			logger.Warn("Failed to deliver notification", "id", t.ID, "error", err)
			continue
		}
		delivered++

		if t.Kind == models.TriggerOneShot {
			if err := d.store.DeleteTrigger(t.ID); err != nil {
				logger.Warn("Failed to remove fired trigger", "id", t.ID, "error", err)
			}
		} else {
			t.LastFired = firedAt
			if err := d.store.UpdateTrigger(t); err != nil {
				logger.Warn("Failed to record trigger fire time", "id", t.ID, "error", err)
			}
		}

		for _, h := range d.handlers {
			h.OnDelivered(t, firedAt)
		}
	}

	return delivered, nil
}
