package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/pageza/homebar/backend/internal/models"
)

// InventorySource provides the current inventory snapshot.
type InventorySource interface {
	FetchInventory(ctx context.Context) ([]models.InventoryItem, error)
}

// RecipeSource provides the current recipe collection.
type RecipeSource interface {
	FetchRecipes(ctx context.Context) ([]models.Recipe, error)
}

// Rand is the engine's only source of non-determinism, used for
// surprise-me selection. Float64 returns a value in [0, 1).
type Rand interface {
	Float64() float64
}

// Options adjusts how many recommendations come back. ShowAll returns the
// full makeable set; otherwise Limit (default 3) caps the top-N selection.
type Options struct {
	ShowAll bool
	Limit   int
}

// DefaultLimit is the number of recommendations returned when the caller
// does not ask for more.
const DefaultLimit = 3

// ScoredRecipe is a recipe annotated with its match result.
type ScoredRecipe struct {
	models.Recipe
	MatchResult
}

// Result is the outcome of one recommendation request. Emptiness is a
// valid outcome carried in Message, never an error.
type Result struct {
	Recommendations []ScoredRecipe                    `json:"recommendations"`
	OrganizedByType map[string][]models.InventoryItem `json:"organizedByType,omitempty"`
	Message         string                            `json:"message,omitempty"`
	SelectedMoods   []string                          `json:"selectedMoods,omitempty"`
	TotalRecipes    int                               `json:"totalRecipes,omitempty"`
	MatchedRecipes  int                               `json:"matchedRecipes,omitempty"`
	TotalItems      int                               `json:"totalItems,omitempty"`
	IsLazyMode      bool                              `json:"isLazyMode,omitempty"`
	IsSurpriseMode  bool                              `json:"isSurpriseMode,omitempty"`
}

// Engine turns a mood selection plus the current inventory and recipe
// snapshots into a scored recommendation set. It holds no mutable state;
// concurrent Recommend calls are independent.
type Engine struct {
	inventory InventorySource
	recipes   RecipeSource
	rng       Rand
	now       func() time.Time
}

// NewEngine creates an engine with the default random source and clock.
func NewEngine(inventory InventorySource, recipes RecipeSource) *Engine {
	return &Engine{
		inventory: inventory,
		recipes:   recipes,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
	}
}

// WithRand replaces the random source, for deterministic tests.
func (e *Engine) WithRand(rng Rand) *Engine {
	e.rng = rng
	return e
}

// WithClock replaces the clock used for expiry checks.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Recommend runs the per-request decision tree: lazy mode short-circuits to
// a ready-to-drink inventory listing; otherwise moods narrow the recipe set
// (AND semantics), survivors are scored, and either one random makeable
// drink (surprise-me) or the deterministic top-N is returned.
func (e *Engine) Recommend(ctx context.Context, selectedMoods []string, opts Options) (*Result, error) {
	moods := normalizeMoods(selectedMoods)
	primary := ""
	if len(moods) > 0 {
		primary = moods[0]
	}

	inventory, err := e.inventory.FetchInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory: %w", err)
	}

	// Lazy mode never touches the recipe collection or the scorer.
	if primary == MoodLazy {
		return e.lazyResult(inventory, moods), nil
	}

	recipes, err := e.recipes.FetchRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipes: %w", err)
	}

	if len(recipes) == 0 {
		return &Result{
			Recommendations: []ScoredRecipe{},
			Message:         "No recipes found. Please add some recipes first.",
			SelectedMoods:   moods,
		}, nil
	}

	filtered := recipes
	for _, mood := range moods {
		filtered = FilterByMood(filtered, mood)
	}

	if len(filtered) == 0 {
		return &Result{
			Recommendations: []ScoredRecipe{},
			Message: fmt.Sprintf(
				"No drinks found matching your criteria: %s. Try different moods or update your inventory.",
				strings.Join(moods, ", ")),
			SelectedMoods: moods,
			TotalRecipes:  len(recipes),
		}, nil
	}

	now := e.now()
	scored := make([]ScoredRecipe, len(filtered))
	for i, recipe := range filtered {
		scored[i] = ScoredRecipe{
			Recipe:      recipe,
			MatchResult: Score(recipe, inventory, moods, now),
		}
	}

	makeable := make([]ScoredRecipe, 0, len(scored))
	for _, s := range scored {
		if s.CanMake {
			makeable = append(makeable, s)
		}
	}

	if primary == MoodSurprise {
		// Prefer a drink the user can actually make; fall back to the
		// full scored set when the inventory covers nothing.
		pool := makeable
		if len(pool) == 0 {
			pool = scored
		}
		pick := pool[e.randIndex(len(pool))]
		return &Result{
			Recommendations: []ScoredRecipe{pick},
			SelectedMoods:   moods,
			TotalRecipes:    len(recipes),
			IsSurpriseMode:  true,
		}, nil
	}

	if len(makeable) == 0 {
		return &Result{
			Recommendations: []ScoredRecipe{},
			Message: fmt.Sprintf(
				"No drinks found that you can make with your current inventory for: %s. Try different moods or update your inventory.",
				strings.Join(moods, ", ")),
			SelectedMoods: moods,
			TotalRecipes:  len(recipes),
		}, nil
	}

	// Deterministic top-N: score descending, name ascending on ties.
	sort.SliceStable(makeable, func(i, j int) bool {
		if makeable[i].Score != makeable[j].Score {
			return makeable[i].Score > makeable[j].Score
		}
		return makeable[i].Name < makeable[j].Name
	})

	selection := makeable
	if !opts.ShowAll {
		limit := opts.Limit
		if limit <= 0 {
			limit = DefaultLimit
		}
		if len(selection) > limit {
			selection = selection[:limit]
		}
	}

	return &Result{
		Recommendations: selection,
		SelectedMoods:   moods,
		TotalRecipes:    len(recipes),
		MatchedRecipes:  len(makeable),
	}, nil
}

// lazyResult lists ready-to-drink inventory grouped by category.
func (e *Engine) lazyResult(inventory []models.InventoryItem, moods []string) *Result {
	now := e.now()
	readyToDrink := make([]models.InventoryItem, 0)
	buckets := map[string][]models.InventoryItem{
		"whiskeys": {},
		"sake":     {},
		"wines":    {},
		"beers":    {},
	}

	for _, item := range inventory {
		if !models.IsReadyToDrink(item.Category) {
			continue
		}
		if item.Quantity <= 0 {
			continue
		}
		if item.ExpirationDate != nil && expired(*item.ExpirationDate, now) {
			continue
		}
		readyToDrink = append(readyToDrink, item)
		switch item.Category {
		case models.CategoryWhiskey:
			buckets["whiskeys"] = append(buckets["whiskeys"], item)
		case models.CategorySake:
			buckets["sake"] = append(buckets["sake"], item)
		case models.CategoryWine:
			buckets["wines"] = append(buckets["wines"], item)
		case models.CategoryBeer:
			buckets["beers"] = append(buckets["beers"], item)
		}
	}

	result := &Result{
		Recommendations: []ScoredRecipe{},
		OrganizedByType: buckets,
		SelectedMoods:   moods,
		TotalItems:      len(readyToDrink),
		IsLazyMode:      true,
	}
	if len(readyToDrink) == 0 {
		result.Message = "No ready-to-drink bottles in your inventory. Add some whiskey, wine, beer or sake."
	}
	return result
}

func (e *Engine) randIndex(n int) int {
	i := int(e.rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// normalizeMoods lower-cases, trims and deduplicates the selection while
// preserving order; the first surviving mood stays the mode switch.
func normalizeMoods(moods []string) []string {
	out := make([]string, 0, len(moods))
	seen := make(map[string]struct{}, len(moods))
	for _, m := range moods {
		m = strings.ToLower(strings.TrimSpace(m))
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
