package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/homebar/backend/internal/models"
)

// InventoryService handles inventory item operations
type InventoryService struct {
	db *gorm.DB
}

// NewInventoryService creates a new InventoryService instance
func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// CreateItem creates a new inventory item
func (s *InventoryService) CreateItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	if item.Unit == "" {
		item.Unit = "ml"
	}
	if item.PurchaseDate == nil {
		now := time.Now()
		item.PurchaseDate = &now
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves an inventory item by ID
func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem applies a partial field update and returns the stored item
func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.InventoryItem, error) {
	if err := s.db.WithContext(ctx).Model(&models.InventoryItem{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetItem(ctx, id)
}

// DeleteItem deletes an inventory item
func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	var item models.InventoryItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.InventoryItem{}, "id = ?", id).Error
}

// ListItems lists inventory items, optionally filtered by category
func (s *InventoryService) ListItems(ctx context.Context, category string) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	query := s.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListExpiring returns items whose expiration date falls within the next
// daysAhead days. Items without an expiration date never appear.
func (s *InventoryService) ListExpiring(ctx context.Context, daysAhead int) ([]models.InventoryItem, error) {
	cutoff := time.Now().AddDate(0, 0, daysAhead)
	var items []models.InventoryItem
	err := s.db.WithContext(ctx).
		Where("expiration_date IS NOT NULL AND expiration_date <= ?", cutoff).
		Order("expiration_date").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
