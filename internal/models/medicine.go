package models

import (
	"fmt"
	"time"
)

// Medicine is a single item in the home medicine cabinet.
type Medicine struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Quantity       int       `json:"quantity"`
	Dosage         string    `json:"dosage,omitempty"`
	ExpirationDate string    `json:"expiration_date,omitempty"` // YYYY-MM-DD
	Category       string    `json:"category"`
	Favorite       bool      `json:"favorite"`
	Image          string    `json:"image,omitempty"` // local file path
	CreatedAt      time.Time `json:"created_at"`
}

func (m *Medicine) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("medicine name cannot be empty")
	}

	if m.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}

	if m.Category == "" {
		return fmt.Errorf("category cannot be empty")
	}

	if m.ExpirationDate != "" {
		if _, err := time.Parse("2006-01-02", m.ExpirationDate); err != nil {
			return fmt.Errorf("invalid expiration date (expected YYYY-MM-DD): %w", err)
		}
	}

	return nil
}

// IsExpired reports whether the medicine's expiration date has passed.
// Medicines without an expiration date never expire.
func (m *Medicine) IsExpired(today time.Time) bool {
	if m.ExpirationDate == "" {
		return false
	}
	exp, err := time.Parse("2006-01-02", m.ExpirationDate)
	if err != nil {
		return false
	}
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return exp.Before(todayDate)
}
