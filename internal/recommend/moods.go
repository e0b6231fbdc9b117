package recommend

import (
	"strings"

	"github.com/pageza/homebar/backend/internal/models"
)

// Mood identifiers. Lazy and surprise-me are mode switches handled by the
// engine; the rest are recipe predicates that combine with AND.
const (
	MoodLazy      = "lazy"
	MoodSurprise  = "surprise-me"
	MoodSparkling = "sparkling"
	MoodWarm      = "warm"
	MoodLight     = "light"
	MoodStrong    = "strong"
	MoodSweet     = "sweet"
	MoodSour      = "sour"
)

// Predicate decides whether a recipe fits a mood.
type Predicate func(models.Recipe) bool

// moodPredicates is the rule table. New moods are added here without
// touching the scorer or the engine. Lazy as the primary mood skips recipes
// entirely; combined with other moods it narrows to ready-to-drink recipes.
var moodPredicates = map[string]Predicate{
	MoodLazy:      isReadyToDrinkRecipe,
	MoodSparkling: isSparkling,
	MoodWarm:      isHotDrink,
	MoodLight:     isLightDrink,
	MoodStrong:    isStrongDrink,
	MoodSweet:     isSweetDrink,
	MoodSour:      isSourDrink,
}

var sparklingTerms = []string{
	"tonic", "tonic water", "club soda", "soda water", "sparkling wine",
	"prosecco", "champagne", "cava", "seltzer", "ginger beer",
}

var hotTerms = []string{"hot", "warm", "toddy", "irish coffee", "mulled"}

var lightTerms = []string{
	"light tonic", "club soda", "soda water", "beer", "tonic water", "seltzer",
}

var lightExcluded = []string{"old fashioned", "negroni", "manhattan"}

var sweetTerms = []string{
	"juice", "syrup", "simple syrup", "chocolate", "choco", "mint liqueur",
	"melon", "liqueur", "sweet", "honey", "sugar", "agave",
}

var sourTerms = []string{"lemon", "lime", "grapefruit", "citrus"}

// lightABVThreshold: recipes under 18% count as light drinks.
const lightABVThreshold = 18

// FilterByMood narrows recipes to those fitting the mood. Unknown moods and
// surprise-me leave the set untouched.
func FilterByMood(recipes []models.Recipe, mood string) []models.Recipe {
	pred, ok := moodPredicates[mood]
	if !ok {
		return recipes
	}
	filtered := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if pred(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func anyIngredientContains(ingredients models.IngredientList, terms []string) bool {
	for _, ing := range ingredients {
		name := strings.ToLower(ing.Name)
		for _, term := range terms {
			if strings.Contains(name, term) {
				return true
			}
		}
	}
	return false
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func isSparkling(r models.Recipe) bool {
	return anyIngredientContains(r.Ingredients, sparklingTerms)
}

// isReadyToDrinkRecipe matches by category only: a "Whiskey Sour" is a
// cocktail, not a pour.
func isReadyToDrinkRecipe(r models.Recipe) bool {
	return models.IsReadyToDrink(r.Category)
}

func isHotDrink(r models.Recipe) bool {
	name := strings.ToLower(r.Name)
	desc := strings.ToLower(r.Description)
	if containsAny(name, hotTerms) || containsAny(desc, hotTerms) {
		return true
	}
	if strings.EqualFold(r.Temperature, "hot") {
		return true
	}
	for _, mood := range r.Moods {
		if strings.EqualFold(mood, MoodWarm) {
			return true
		}
	}
	return false
}

func isLightDrink(r models.Recipe) bool {
	name := strings.ToLower(r.Name)
	// High-calorie classics are never light, whatever their ingredients say
	if containsAny(name, lightExcluded) {
		return false
	}
	if anyIngredientContains(r.Ingredients, lightTerms) {
		return true
	}
	if r.ABV > 0 && r.ABV < lightABVThreshold {
		return true
	}
	return r.Category == models.CategoryBeer
}

func isStrongDrink(r models.Recipe) bool {
	return r.ABV > 20
}

func isSweetDrink(r models.Recipe) bool {
	return anyIngredientContains(r.Ingredients, sweetTerms)
}

func isSourDrink(r models.Recipe) bool {
	return anyIngredientContains(r.Ingredients, sourTerms)
}
