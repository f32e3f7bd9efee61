package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akozyreva/medcab/internal/models"
)

func (s *Store) AddMedicine(m models.Medicine) error {
	_, err := s.db.Exec(`
		INSERT INTO medicines (id, name, quantity, dosage, expiration_date, category, favorite, image, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Quantity, m.Dosage, m.ExpirationDate, m.Category,
		boolToInt(m.Favorite), m.Image, m.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to add medicine: %w", err)
	}
	return nil
}

func (s *Store) GetMedicine(id string) (models.Medicine, error) {
	row := s.db.QueryRow(`
		SELECT id, name, quantity, dosage, expiration_date, category, favorite, image, created_at
		FROM medicines WHERE id = ?`, id)
	return scanMedicine(row)
}

func (s *Store) GetAllMedicines() ([]models.Medicine, error) {
	rows, err := s.db.Query(`
		SELECT id, name, quantity, dosage, expiration_date, category, favorite, image, created_at
		FROM medicines ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query medicines: %w", err)
	}
	defer rows.Close()

	medicines := []models.Medicine{}
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, err
		}
		medicines = append(medicines, m)
	}
	return medicines, rows.Err()
}

func (s *Store) UpdateMedicine(m models.Medicine) error {
	res, err := s.db.Exec(`
		UPDATE medicines
		SET name = ?, quantity = ?, dosage = ?, expiration_date = ?, category = ?, favorite = ?, image = ?
		WHERE id = ?`,
		m.Name, m.Quantity, m.Dosage, m.ExpirationDate, m.Category,
		boolToInt(m.Favorite), m.Image, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update medicine: %w", err)
	}
	return requireAffected(res, "medicine", m.ID)
}

func (s *Store) DeleteMedicine(id string) error {
	res, err := s.db.Exec("DELETE FROM medicines WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete medicine: %w", err)
	}
	return requireAffected(res, "medicine", id)
}

// AdjustMedicineQuantity updates the stock count in a single statement so
// concurrent adjustments cannot clobber each other.
func (s *Store) AdjustMedicineQuantity(id string, delta int) (models.Medicine, error) {
	res, err := s.db.Exec(`
		UPDATE medicines SET quantity = MAX(0, quantity + ?) WHERE id = ?`, delta, id)
	if err != nil {
		return models.Medicine{}, fmt.Errorf("failed to adjust quantity: %w", err)
	}
	if err := requireAffected(res, "medicine", id); err != nil {
		return models.Medicine{}, err
	}
	return s.GetMedicine(id)
}

func (s *Store) SetMedicineFavorite(id string, favorite bool) error {
	res, err := s.db.Exec("UPDATE medicines SET favorite = ? WHERE id = ?", boolToInt(favorite), id)
	if err != nil {
		return fmt.Errorf("failed to update favorite: %w", err)
	}
	return requireAffected(res, "medicine", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedicine(row rowScanner) (models.Medicine, error) {
	var m models.Medicine
	var favorite int
	var createdAt string

	err := row.Scan(&m.ID, &m.Name, &m.Quantity, &m.Dosage, &m.ExpirationDate,
		&m.Category, &favorite, &m.Image, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Medicine{}, fmt.Errorf("medicine not found")
		}
		return models.Medicine{}, err
	}

	m.Favorite = favorite != 0
	m.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Medicine{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return m, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func requireAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s not found: %s", entity, id)
	}
	return nil
}
