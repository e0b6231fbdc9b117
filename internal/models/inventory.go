package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inventory categories. Items in the ready-to-drink categories can be
// served without mixing and feed the "lazy" recommendation mode.
const (
	CategorySpirits  = "spirits"
	CategoryLiqueurs = "liqueurs"
	CategoryMixers   = "mixers"
	CategoryFruits   = "fruits"
	CategoryHerbs    = "herbs"
	CategoryWine     = "wine"
	CategoryWhiskey  = "whiskey"
	CategoryBeer     = "beer"
	CategorySake     = "sake"
)

// ReadyToDrinkCategories lists inventory categories that require no mixing.
var ReadyToDrinkCategories = []string{
	CategoryWhiskey,
	CategoryWine,
	CategoryBeer,
	CategorySake,
}

// IsReadyToDrink reports whether the category needs no preparation.
func IsReadyToDrink(category string) bool {
	for _, c := range ReadyToDrinkCategories {
		if category == c {
			return true
		}
	}
	return false
}

// InventoryItem is a bottle or ingredient on the shelf. Quantity is never
// negative; a nil ExpirationDate means the item never expires.
type InventoryItem struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"itemId"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Category       string         `gorm:"size:50" json:"category"`
	Quantity       float64        `gorm:"not null;default:0" json:"quantity"`
	Unit           string         `gorm:"size:20" json:"unit"`
	ExpirationDate *time.Time     `json:"expirationDate,omitempty"`
	Brand          string         `gorm:"size:100" json:"brand,omitempty"`
	Notes          string         `gorm:"type:text" json:"notes,omitempty"`
	PurchaseDate   *time.Time     `json:"purchaseDate,omitempty"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
