package models

import "time"

// NotificationLog is a historical record of a notification that was delivered
// to (or tapped by) the user. Log entries outlive the reminder that produced
// them, except that cancelling a reminder prunes its back-referenced entries.
type NotificationLog struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Type       string    `json:"type"` // dose, appointment, system
	Read       bool      `json:"read"`
	ReminderID string    `json:"reminder_id,omitempty"`
}
