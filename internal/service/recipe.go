package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/homebar/backend/internal/models"
)

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe creates a new recipe
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if recipe.Category == "" {
		recipe.Category = "cocktail"
	}
	if recipe.Difficulty == "" {
		recipe.Difficulty = "medium"
	}
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe applies a partial field update and returns the stored
// recipe. Map-based updates let callers clear fields to their zero value.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Recipe, error) {
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe deletes a recipe
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id).Error
}

// ListRecipes lists recipes with optional keyword search and category filter
func (s *RecipeService) ListRecipes(ctx context.Context, search, category string) ([]models.Recipe, error) {
	var recipes []models.Recipe

	query := s.db.WithContext(ctx)

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		if s.db.Dialector.Name() == "postgres" {
			query = query.Where(
				"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ingredients::text) LIKE ?",
				like, like, like)
		} else {
			query = query.Where(
				"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ingredients) LIKE ?",
				like, like, like)
		}
	}

	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Order("name").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
