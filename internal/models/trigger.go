package models

import "time"

// Trigger kinds.
const (
	TriggerWeekly  = "weekly"
	TriggerOneShot = "oneshot"
)

// Trigger is a single registered notification occurrence. A weekly trigger
// fires every week on Weekday at Time; a one-shot trigger fires once at
// FireAt. The ID is the opaque handle handed back to callers.
type Trigger struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Kind      string    `json:"kind"`
	Weekday   int       `json:"weekday,omitempty"` // ISO numbering, Monday=1 .. Sunday=7
	Time      string    `json:"time,omitempty"`    // HH:MM, weekly only
	FireAt    time.Time `json:"fire_at,omitempty"` // one-shot only
	OwnerID   string    `json:"owner_id,omitempty"`
	OwnerType string    `json:"owner_type,omitempty"` // reminder, appointment
	LastFired time.Time `json:"last_fired,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ISOWeekday converts a time.Weekday to ISO numbering (Monday=1 .. Sunday=7).
func ISOWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// WeekdayFromISO converts an ISO weekday number back to a time.Weekday.
func WeekdayFromISO(n int) time.Weekday {
	if n == 7 {
		return time.Sunday
	}
	return time.Weekday(n)
}
