package models

import (
	"fmt"
	"time"
)

// Specialties is the fixed list of doctor specialties an appointment may use.
var Specialties = []string{
	"Терапевт", "Педиатр", "Стоматолог", "Хирург", "Кардиолог",
	"Офтальмолог", "Невролог", "Гинеколог", "Уролог", "Эндокринолог",
	"Ревматолог", "Психотерапевт", "Диетолог", "Физиотерапевт",
	"Онколог", "ЛОР (отоларинголог)", "Аллерголог", "Пульмонолог",
	"Гастроэнтеролог", "Травматолог",
}

// Appointment is a scheduled doctor visit. Unlike the other entities it used
// to be identified positionally; it now carries a generated id like the rest.
type Appointment struct {
	ID        string    `json:"id"`
	Doctor    string    `json:"doctor"`
	Specialty string    `json:"specialty"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Time      string    `json:"time"` // HH:MM
	CreatedAt time.Time `json:"created_at"`
}

func (a *Appointment) Validate() error {
	if a.Doctor == "" {
		return fmt.Errorf("doctor name cannot be empty")
	}

	if !IsValidSpecialty(a.Specialty) {
		return fmt.Errorf("unknown specialty: %s", a.Specialty)
	}

	if _, err := time.Parse("2006-01-02", a.Date); err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	if _, err := time.Parse("15:04", a.Time); err != nil {
		return fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}

	return nil
}

// ValidateFuture rejects appointments whose date/time is already in the past.
func (a *Appointment) ValidateFuture(now time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}

	at, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.Time, now.Location())
	if err != nil {
		return err
	}
	if at.Before(now) {
		return fmt.Errorf("appointment must be scheduled in the future")
	}

	return nil
}

// IsPast reports whether the appointment's date/time has already passed.
func (a *Appointment) IsPast(now time.Time) bool {
	at, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.Time, now.Location())
	if err != nil {
		return false
	}
	return at.Before(now)
}

// IsValidSpecialty reports whether s is in the fixed specialty list.
func IsValidSpecialty(s string) bool {
	for _, spec := range Specialties {
		if spec == s {
			return true
		}
	}
	return false
}
