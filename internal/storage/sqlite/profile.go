package sqlite

import (
	"fmt"

	"github.com/akozyreva/medcab/internal/models"
)

// Profile fields are stored as individual key/value rows so partial updates
// never rewrite the whole record.
const (
	profileKeyFirstName = "first_name"
	profileKeyLastName  = "last_name"
	profileKeyBirthDate = "birth_date"
	profileKeyImagePath = "image_path"
)

func (s *Store) GetProfile() (models.Profile, error) {
	rows, err := s.db.Query("SELECT key, value FROM profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to query profile: %w", err)
	}
	defer rows.Close()

	var p models.Profile
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Profile{}, err
		}
		switch key {
		case profileKeyFirstName:
			p.FirstName = value
		case profileKeyLastName:
			p.LastName = value
		case profileKeyBirthDate:
			p.BirthDate = value
		case profileKeyImagePath:
			p.ImagePath = value
		}
	}
	return p, rows.Err()
}

func (s *Store) SaveProfile(p models.Profile) error {
	fields := map[string]string{
		profileKeyFirstName: p.FirstName,
		profileKeyLastName:  p.LastName,
		profileKeyBirthDate: p.BirthDate,
		profileKeyImagePath: p.ImagePath,
	}
	for key, value := range fields {
		_, err := s.db.Exec(`
			INSERT INTO profile (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
		if err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
	}
	return nil
}
