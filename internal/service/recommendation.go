package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/pageza/homebar/backend/internal/models"
	"github.com/pageza/homebar/backend/internal/recommend"
)

// RecommendationService wires the recommendation engine to the database.
// It implements the engine's source interfaces, handing the engine fresh
// inventory and recipe snapshots per request.
type RecommendationService struct {
	db     *gorm.DB
	engine *recommend.Engine
}

// NewRecommendationService creates a new RecommendationService instance
func NewRecommendationService(db *gorm.DB) *RecommendationService {
	s := &RecommendationService{db: db}
	s.engine = recommend.NewEngine(s, s)
	return s
}

// Engine exposes the underlying engine, mainly so tests can inject a
// deterministic random source.
func (s *RecommendationService) Engine() *recommend.Engine {
	return s.engine
}

// FetchInventory implements recommend.InventorySource
func (s *RecommendationService) FetchInventory(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FetchRecipes implements recommend.RecipeSource
func (s *RecommendationService) FetchRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecommendations runs the engine against the current snapshots.
func (s *RecommendationService) GetRecommendations(ctx context.Context, moods []string, opts recommend.Options) (*recommend.Result, error) {
	return s.engine.Recommend(ctx, moods, opts)
}
