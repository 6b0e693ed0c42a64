package store

import (
	"fmt"

	"github.com/Poovetha/Inventory/internal/models"
)

func (s *Store) ListLocations() ([]models.Location, error) {
	var locations []models.Location
	if err := s.db.Order("location_id").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}

func (s *Store) GetLocation(id uint) (models.Location, error) {
	var l models.Location
	if err := s.db.First(&l, "location_id = ?", id).Error; err != nil {
		return models.Location{}, translate(err)
	}
	return l, nil
}

func (s *Store) CreateLocation(l *models.Location) error {
	if err := s.db.Create(l).Error; err != nil {
		return fmt.Errorf("create location: %w", translate(err))
	}
	return nil
}

func (s *Store) UpdateLocation(l *models.Location) error {
	var existing models.Location
	if err := s.db.First(&existing, "location_id = ?", l.LocationID).Error; err != nil {
		return translate(err)
	}
	err := s.db.Model(&existing).Updates(map[string]any{
		"name":    l.Name,
		"address": l.Address,
	}).Error
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// DeleteLocation removes the location row only; movements keep their endpoint
// ids and the report drops the vanished location from its joins.
func (s *Store) DeleteLocation(id uint) error {
	res := s.db.Delete(&models.Location{}, "location_id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete location: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
