package recommend

import (
	"strings"
	"time"

	"github.com/pageza/homebar/backend/internal/models"
)

// IsAvailable reports whether the named ingredient is currently satisfiable
// from inventory. Matching is a bidirectional substring test on normalized
// names, so a brand-qualified bottle ("Tanqueray Gin") satisfies a generic
// requirement ("Gin") and vice versa. A matching item must have positive
// quantity and must not be expired as of now (date-only comparison).
//
// Availability is non-destructive: no quantity is consumed, and one bottle
// can satisfy any number of recipes at once. This answers "could I make
// this", not "can I make all of these at the same time".
func IsAvailable(inventory []models.InventoryItem, required string, now time.Time) bool {
	normalizedRequired := Normalize(required)
	if normalizedRequired == "" {
		return false
	}

	for _, item := range inventory {
		normalizedItem := Normalize(item.Name)
		if normalizedItem == "" {
			continue
		}
		if normalizedItem != normalizedRequired &&
			!strings.Contains(normalizedItem, normalizedRequired) &&
			!strings.Contains(normalizedRequired, normalizedItem) {
			continue
		}
		if item.Quantity <= 0 {
			continue
		}
		if item.ExpirationDate != nil && expired(*item.ExpirationDate, now) {
			continue
		}
		return true
	}
	return false
}

// expired compares calendar days only; an item expiring today is still good.
func expired(expiration, now time.Time) bool {
	return dateOf(expiration).Before(dateOf(now))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
