package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/homebar/backend/internal/models"
	"github.com/pageza/homebar/backend/internal/service"
)

// RecipeHandler handles recipe CRUD requests
type RecipeHandler struct {
	recipeService *service.RecipeService
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// ListRecipes returns recipes, optionally filtered by ?q= and ?category=
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), c.Query("q"), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"count":   len(recipes),
	})
}

// GetRecipe returns one recipe by ID
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recipe"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe creates a new recipe
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if recipe.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if recipe.ABV < 0 || recipe.ABV > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "abv must be between 0 and 100"})
		return
	}

	created, err := h.recipeService.CreateRecipe(c.Request.Context(), &recipe)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateRecipe applies a partial update to a recipe
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	for field, column := range recipeUpdatableFields {
		if v, ok := body[field]; ok {
			updates[column] = v
		}
	}
	if v, ok := body["ingredients"]; ok {
		var list models.IngredientList
		if err := reencode(v, &list); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredients"})
			return
		}
		updates["ingredients"] = list
	}
	for _, field := range []string{"instructions", "moods", "tags"} {
		if v, ok := body[field]; ok {
			var list models.StringList
			if err := reencode(v, &list); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + field})
				return
			}
			updates[field] = list
		}
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}
	if abv, ok := updates["abv"].(float64); ok && (abv < 0 || abv > 100) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "abv must be between 0 and 100"})
		return
	}

	updated, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// recipeUpdatableFields maps JSON field names to database columns for
// partial updates. The JSONB list fields are converted separately.
var recipeUpdatableFields = map[string]string{
	"name":            "name",
	"description":     "description",
	"category":        "category",
	"glassType":       "glass_type",
	"difficulty":      "difficulty",
	"preparationTime": "preparation_time",
	"abv":             "abv",
	"temperature":     "temperature",
	"garnish":         "garnish",
	"imageUrl":        "image_url",
}

// reencode converts a decoded JSON value into a typed destination.
func reencode(v interface{}, dst interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// DeleteRecipe deletes a recipe
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Recipe deleted successfully",
		"recipeId": id.String(),
	})
}
