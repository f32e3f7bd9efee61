package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akozyreva/medcab/internal/models"
)

func (s *Store) AddReminder(r models.Reminder) error {
	_, err := s.db.Exec(`
		INSERT INTO reminders (id, medicine_name, dosage, time, days, date, trigger_ids, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.MedicineName, r.Dosage, r.Time, encodeDays(r.Days), r.Date,
		strings.Join(r.TriggerIDs, ","), r.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to add reminder: %w", err)
	}
	return nil
}

func (s *Store) GetReminder(id string) (models.Reminder, error) {
	row := s.db.QueryRow(`
		SELECT id, medicine_name, dosage, time, days, date, trigger_ids, created_at
		FROM reminders WHERE id = ?`, id)
	return scanReminder(row)
}

func (s *Store) GetAllReminders() ([]models.Reminder, error) {
	rows, err := s.db.Query(`
		SELECT id, medicine_name, dosage, time, days, date, trigger_ids, created_at
		FROM reminders ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	reminders := []models.Reminder{}
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

func (s *Store) UpdateReminder(r models.Reminder) error {
	res, err := s.db.Exec(`
		UPDATE reminders
		SET medicine_name = ?, dosage = ?, time = ?, days = ?, date = ?, trigger_ids = ?
		WHERE id = ?`,
		r.MedicineName, r.Dosage, r.Time, encodeDays(r.Days), r.Date,
		strings.Join(r.TriggerIDs, ","), r.ID)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}
	return requireAffected(res, "reminder", r.ID)
}

func (s *Store) DeleteReminder(id string) error {
	res, err := s.db.Exec("DELETE FROM reminders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return requireAffected(res, "reminder", id)
}

func scanReminder(row rowScanner) (models.Reminder, error) {
	var r models.Reminder
	var days, triggerIDs, createdAt string

	err := row.Scan(&r.ID, &r.MedicineName, &r.Dosage, &r.Time, &days, &r.Date, &triggerIDs, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reminder{}, fmt.Errorf("reminder not found")
		}
		return models.Reminder{}, err
	}

	r.Days, err = decodeDays(days)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("failed to parse days: %w", err)
	}
	if triggerIDs != "" {
		r.TriggerIDs = strings.Split(triggerIDs, ",")
	} else {
		r.TriggerIDs = []string{}
	}
	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return r, nil
}

// encodeDays stores weekdays as comma-separated ISO numbers (Monday=1).
func encodeDays(days []time.Weekday) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, len(days))
	for i, wd := range days {
		parts[i] = strconv.Itoa(models.ISOWeekday(wd))
	}
	return strings.Join(parts, ",")
}

func decodeDays(encoded string) ([]time.Weekday, error) {
	if encoded == "" {
		return nil, nil
	}
	parts := strings.Split(encoded, ",")
	days := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > 7 {
			return nil, fmt.Errorf("invalid weekday %q", p)
		}
		days = append(days, models.WeekdayFromISO(n))
	}
	return days, nil
}
