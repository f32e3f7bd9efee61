package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akozyreva/medcab/internal/models"
)

func (s *Store) AddAppointment(a models.Appointment) error {
	_, err := s.db.Exec(`
		INSERT INTO appointments (id, doctor, specialty, date, time, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Doctor, a.Specialty, a.Date, a.Time, a.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to add appointment: %w", err)
	}
	return nil
}

func (s *Store) GetAppointment(id string) (models.Appointment, error) {
	row := s.db.QueryRow(`
		SELECT id, doctor, specialty, date, time, created_at
		FROM appointments WHERE id = ?`, id)
	return scanAppointment(row)
}

func (s *Store) GetAllAppointments() ([]models.Appointment, error) {
	rows, err := s.db.Query(`
		SELECT id, doctor, specialty, date, time, created_at
		FROM appointments ORDER BY date, time`)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	appointments := []models.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func (s *Store) UpdateAppointment(a models.Appointment) error {
	res, err := s.db.Exec(`
		UPDATE appointments SET doctor = ?, specialty = ?, date = ?, time = ? WHERE id = ?`,
		a.Doctor, a.Specialty, a.Date, a.Time, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	return requireAffected(res, "appointment", a.ID)
}

func (s *Store) DeleteAppointment(id string) error {
	res, err := s.db.Exec("DELETE FROM appointments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return requireAffected(res, "appointment", id)
}

func scanAppointment(row rowScanner) (models.Appointment, error) {
	var a models.Appointment
	var createdAt string

	err := row.Scan(&a.ID, &a.Doctor, &a.Specialty, &a.Date, &a.Time, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Appointment{}, fmt.Errorf("appointment not found")
		}
		return models.Appointment{}, err
	}

	a.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return a, nil
}
