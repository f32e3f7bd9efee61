package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akozyreva/medcab/internal/models"
)

func (s *Store) AddNotificationLog(l models.NotificationLog) error {
	_, err := s.db.Exec(`
		INSERT INTO notification_logs (id, title, subtitle, timestamp, type, read, reminder_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Title, l.Subtitle, l.Timestamp.Format(time.RFC3339), l.Type,
		boolToInt(l.Read), l.ReminderID)
	if err != nil {
		return fmt.Errorf("failed to add notification log: %w", err)
	}
	return nil
}

func (s *Store) GetAllNotificationLogs() ([]models.NotificationLog, error) {
	rows, err := s.db.Query(`
		SELECT id, title, subtitle, timestamp, type, read, reminder_id
		FROM notification_logs ORDER BY timestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notification logs: %w", err)
	}
	defer rows.Close()

	logs := []models.NotificationLog{}
	for rows.Next() {
		l, err := scanNotificationLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *Store) SetNotificationLogRead(id string, read bool) error {
	res, err := s.db.Exec("UPDATE notification_logs SET read = ? WHERE id = ?", boolToInt(read), id)
	if err != nil {
		return fmt.Errorf("failed to update notification log: %w", err)
	}
	return requireAffected(res, "notification log", id)
}

// DeleteNotificationLog removes a history entry. Deleting an id that is
// already gone is a no-op.
func (s *Store) DeleteNotificationLog(id string) error {
	_, err := s.db.Exec("DELETE FROM notification_logs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete notification log: %w", err)
	}
	return nil
}

func (s *Store) DeleteNotificationLogsByReminder(reminderID string) error {
	_, err := s.db.Exec("DELETE FROM notification_logs WHERE reminder_id = ?", reminderID)
	if err != nil {
		return fmt.Errorf("failed to delete notification logs: %w", err)
	}
	return nil
}

func (s *Store) ClearNotificationLogs() error {
	_, err := s.db.Exec("DELETE FROM notification_logs")
	if err != nil {
		return fmt.Errorf("failed to clear notification logs: %w", err)
	}
	return nil
}

func scanNotificationLog(row rowScanner) (models.NotificationLog, error) {
	var l models.NotificationLog
	var read int
	var timestamp string

	err := row.Scan(&l.ID, &l.Title, &l.Subtitle, &timestamp, &l.Type, &read, &l.ReminderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NotificationLog{}, fmt.Errorf("notification log not found")
		}
		return models.NotificationLog{}, err
	}

	l.Read = read != 0
	l.Timestamp, err = time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return models.NotificationLog{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}
	return l, nil
}
