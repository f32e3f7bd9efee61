package sqlite

import (
	"fmt"

	"github.com/akozyreva/medcab/internal/models"
)

func (s *Store) GetCustomCategories() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM categories ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		categories = append(categories, name)
	}
	return categories, rows.Err()
}

func (s *Store) AddCategory(name string) error {
	if name == "" {
		return fmt.Errorf("category name cannot be empty")
	}
	if models.IsDefaultCategory(name) {
		return fmt.Errorf("category already exists: %s", name)
	}
	// INSERT OR IGNORE keeps the add idempotent under concurrent writers
	res, err := s.db.Exec("INSERT OR IGNORE INTO categories (name) VALUES (?)", name)
	if err != nil {
		return fmt.Errorf("failed to add category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("category already exists: %s", name)
	}
	return nil
}

func (s *Store) DeleteCategory(name string) error {
	if models.IsDefaultCategory(name) {
		return fmt.Errorf("cannot delete built-in category: %s", name)
	}
	res, err := s.db.Exec("DELETE FROM categories WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return requireAffected(res, "category", name)
}
