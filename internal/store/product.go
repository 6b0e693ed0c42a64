package store

import (
	"fmt"

	"github.com/Poovetha/Inventory/internal/models"
)

func (s *Store) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("product_id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *Store) GetProduct(id uint) (models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, "product_id = ?", id).Error; err != nil {
		return models.Product{}, translate(err)
	}
	return p, nil
}

func (s *Store) CreateProduct(p *models.Product) error {
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", translate(err))
	}
	return nil
}

func (s *Store) UpdateProduct(p *models.Product) error {
	var existing models.Product
	if err := s.db.First(&existing, "product_id = ?", p.ProductID).Error; err != nil {
		return translate(err)
	}
	// map form so cleared optional fields are written back as empty
	err := s.db.Model(&existing).Updates(map[string]any{
		"name":        p.Name,
		"description": p.Description,
	}).Error
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DeleteProduct removes the product row only. Movements that reference it are
// left in place; the report and list pages tolerate the dangling product_id.
func (s *Store) DeleteProduct(id uint) error {
	res := s.db.Delete(&models.Product{}, "product_id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
