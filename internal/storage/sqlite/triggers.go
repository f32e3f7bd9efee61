package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akozyreva/medcab/internal/models"
)

func (s *Store) AddTrigger(t models.Trigger) error {
	_, err := s.db.Exec(`
		INSERT INTO triggers (id, title, body, kind, weekday, time, fire_at, owner_id, owner_type, last_fired, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Body, t.Kind, t.Weekday, t.Time,
		formatNullableTime(t.FireAt), t.OwnerID, t.OwnerType,
		formatNullableTime(t.LastFired), t.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to add trigger: %w", err)
	}
	return nil
}

func (s *Store) GetTrigger(id string) (models.Trigger, error) {
	row := s.db.QueryRow(`
		SELECT id, title, body, kind, weekday, time, fire_at, owner_id, owner_type, last_fired, created_at
		FROM triggers WHERE id = ?`, id)
	return scanTrigger(row)
}

func (s *Store) GetAllTriggers() ([]models.Trigger, error) {
	rows, err := s.db.Query(`
		SELECT id, title, body, kind, weekday, time, fire_at, owner_id, owner_type, last_fired, created_at
		FROM triggers ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query triggers: %w", err)
	}
	defer rows.Close()

	triggers := []models.Trigger{}
	for rows.Next() {
		t, err := scanTrigger(rows)
		if err != nil {
			return nil, err
		}
		triggers = append(triggers, t)
	}
	return triggers, rows.Err()
}

func (s *Store) UpdateTrigger(t models.Trigger) error {
	res, err := s.db.Exec(`
		UPDATE triggers
		SET title = ?, body = ?, kind = ?, weekday = ?, time = ?, fire_at = ?, owner_id = ?, owner_type = ?, last_fired = ?
		WHERE id = ?`,
		t.Title, t.Body, t.Kind, t.Weekday, t.Time,
		formatNullableTime(t.FireAt), t.OwnerID, t.OwnerType,
		formatNullableTime(t.LastFired), t.ID)
	if err != nil {
		return fmt.Errorf("failed to update trigger: %w", err)
	}
	return requireAffected(res, "trigger", t.ID)
}

func (s *Store) DeleteTrigger(id string) error {
	res, err := s.db.Exec("DELETE FROM triggers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete trigger: %w", err)
	}
	return requireAffected(res, "trigger", id)
}

func (s *Store) DeleteTriggersByOwner(ownerID string) error {
	_, err := s.db.Exec("DELETE FROM triggers WHERE owner_id = ?", ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete triggers: %w", err)
	}
	return nil
}

func scanTrigger(row rowScanner) (models.Trigger, error) {
	var t models.Trigger
	var fireAt, lastFired, createdAt string

	err := row.Scan(&t.ID, &t.Title, &t.Body, &t.Kind, &t.Weekday, &t.Time,
		&fireAt, &t.OwnerID, &t.OwnerType, &lastFired, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Trigger{}, fmt.Errorf("trigger not found")
		}
		return models.Trigger{}, err
	}

	if t.FireAt, err = parseNullableTime(fireAt); err != nil {
		return models.Trigger{}, fmt.Errorf("failed to parse fire_at: %w", err)
	}
	if t.LastFired, err = parseNullableTime(lastFired); err != nil {
		return models.Trigger{}, fmt.Errorf("failed to parse last_fired: %w", err)
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return models.Trigger{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return t, nil
}

func formatNullableTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func parseNullableTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}
