package store

import (
	"fmt"
	"time"

	"github.com/Poovetha/Inventory/internal/models"
)

// ListMovements returns the full ledger, newest first.
func (s *Store) ListMovements() ([]models.Movement, error) {
	var movements []models.Movement
	if err := s.db.Order("timestamp desc").Find(&movements).Error; err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return movements, nil
}

func (s *Store) GetMovement(id string) (models.Movement, error) {
	var m models.Movement
	if err := s.db.First(&m, "movement_id = ?", id).Error; err != nil {
		return models.Movement{}, translate(err)
	}
	return m, nil
}

// CreateMovement inserts a movement. An empty timestamp defaults to now.
// A movement_id collision, including one lost to a concurrent submission,
// comes back as ErrDuplicateKey.
func (s *Store) CreateMovement(m *models.Movement) error {
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	if err := s.db.Create(m).Error; err != nil {
		return translate(err)
	}
	return nil
}

// UpdateMovement rewrites product, endpoints and qty. The movement_id and
// timestamp are immutable; whatever the caller has in those fields is ignored.
func (s *Store) UpdateMovement(id string, productID uint, from, to *uint, qty int) error {
	var existing models.Movement
	if err := s.db.First(&existing, "movement_id = ?", id).Error; err != nil {
		return translate(err)
	}
	err := s.db.Model(&existing).Updates(map[string]any{
		"product_id":    productID,
		"from_location": from,
		"to_location":   to,
		"qty":           qty,
	}).Error
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

func (s *Store) DeleteMovement(id string) error {
	res := s.db.Delete(&models.Movement{}, "movement_id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete movement: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
