package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Reminder is a scheduled prompt to take a medicine. A reminder is either
// weekly-recurring (non-empty Days) or one-shot (non-empty Date). TriggerIDs
// holds one opaque scheduler handle per registered occurrence; they are only
// ever used to cancel the triggers as a group.
type Reminder struct {
	ID           string         `json:"id"`
	MedicineName string         `json:"medicine_name"`
	Dosage       string         `json:"dosage"`
	Time         string         `json:"time"`           // HH:MM
	Days         []time.Weekday `json:"days,omitempty"` // weekly recurrence
	Date         string         `json:"date,omitempty"` // YYYY-MM-DD, one-shot
	TriggerIDs   []string       `json:"trigger_ids"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (r *Reminder) Validate() error {
	if r.MedicineName == "" {
		return fmt.Errorf("medicine name cannot be empty")
	}

	if r.Dosage == "" {
		return fmt.Errorf("dosage cannot be empty")
	}

	if r.Time == "" {
		return fmt.Errorf("reminder time cannot be empty")
	}
	if _, err := time.Parse("15:04", r.Time); err != nil {
		return fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}

	if r.Date != "" {
		if len(r.Days) > 0 {
			return fmt.Errorf("cannot specify both weekdays and an exact date")
		}
		if _, err := time.Parse("2006-01-02", r.Date); err != nil {
			return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
		return nil
	}

	if len(r.Days) == 0 {
		return fmt.Errorf("at least one weekday must be selected")
	}

	return nil
}

// IsOneShot returns true if this reminder fires exactly once (has a date).
func (r *Reminder) IsOneShot() bool {
	return r.Date != ""
}

// IsDueOn reports whether the reminder has an occurrence on the given day.
func (r *Reminder) IsDueOn(day time.Time) bool {
	if r.IsOneShot() {
		return r.Date == day.Format("2006-01-02")
	}
	for _, wd := range r.Days {
		if wd == day.Weekday() {
			return true
		}
	}
	return false
}

// FormatDays returns a human-readable schedule description.
func (r *Reminder) FormatDays() string {
	if r.IsOneShot() {
		return fmt.Sprintf("Once on %s", r.Date)
	}

	days := make([]time.Weekday, len(r.Days))
	copy(days, r.Days)
	// Monday-first display order
	sort.Slice(days, func(i, j int) bool {
		return ISOWeekday(days[i]) < ISOWeekday(days[j])
	})

	names := make([]string, len(days))
	for i, wd := range days {
		names[i] = wd.String()[:3]
	}
	return fmt.Sprintf("Weekly: %s", strings.Join(names, ", "))
}
