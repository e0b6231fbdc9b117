package recommend

import (
	"strings"
	"time"

	"github.com/pageza/homebar/backend/internal/models"
)

// MatchResult is the availability breakdown and desirability score for one
// recipe against one inventory snapshot. It is computed fresh per request
// and never persisted.
type MatchResult struct {
	Score                int      `json:"matchScore"`
	AvailableIngredients []string `json:"availableIngredients"`
	MissingIngredients   []string `json:"missingIngredients"`
	MatchPercentage      float64  `json:"matchPercentage"`
	CanMake              bool     `json:"canMake"`
}

// Scoring weights. Availability dominates; mood fit, ease and speed bias
// the ranking among makeable drinks.
const (
	scoreAvailable      = 10
	scoreOptionalBonus  = 5
	scoreMissingPenalty = 20
	scoreMoodMatch      = 15
	scoreEasy           = 8
	scoreMedium         = 5
	scoreQuickPrep      = 10
	scoreShortPrep      = 5
)

// Score computes the match result for a recipe. Missing optional
// ingredients are ignored: they carry no penalty, are not recorded, and do
// not affect CanMake.
func Score(recipe models.Recipe, inventory []models.InventoryItem, selectedMoods []string, now time.Time) MatchResult {
	score := 0
	available := []string{}
	missing := []string{}

	for _, ing := range recipe.Ingredients {
		if IsAvailable(inventory, ing.Name, now) {
			available = append(available, ing.Name)
			score += scoreAvailable
			if ing.Optional {
				score += scoreOptionalBonus
			}
		} else if !ing.Optional {
			missing = append(missing, ing.Name)
			score -= scoreMissingPenalty
		}
	}

	for _, mood := range recipe.Moods {
		for _, selected := range selectedMoods {
			if strings.EqualFold(mood, selected) {
				score += scoreMoodMatch
				break
			}
		}
	}

	switch recipe.Difficulty {
	case "easy":
		score += scoreEasy
	case "medium":
		score += scoreMedium
	}

	if recipe.PreparationTime > 0 {
		if recipe.PreparationTime <= 3 {
			score += scoreQuickPrep
		} else if recipe.PreparationTime <= 5 {
			score += scoreShortPrep
		}
	}

	matchPercentage := 0.0
	if total := len(recipe.Ingredients); total > 0 {
		matchPercentage = float64(len(available)) / float64(total) * 100
	}

	return MatchResult{
		Score:                score,
		AvailableIngredients: available,
		MissingIngredients:   missing,
		MatchPercentage:      matchPercentage,
		CanMake:              len(missing) == 0,
	}
}
