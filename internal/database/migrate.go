package database

import (
	"gorm.io/gorm"

	"github.com/pageza/homebar/backend/internal/models"
)

// Migrate creates or updates the inventory and recipe tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.InventoryItem{},
		&models.Recipe{},
	)
}
