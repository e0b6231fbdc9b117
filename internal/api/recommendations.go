package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/homebar/backend/internal/recommend"
	"github.com/pageza/homebar/backend/internal/service"
)

// RecommendationHandler handles mood-based recommendation requests
type RecommendationHandler struct {
	recommendationService *service.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendationService *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// RecommendationRequest selects moods and output size. An empty result is a
// normal response with a message, never an error status.
type RecommendationRequest struct {
	Moods   []string `json:"moods" binding:"required,min=1"`
	ShowAll bool     `json:"showAll"`
	Limit   int      `json:"limit"`
}

// GetRecommendations scores the recipe collection against the current
// inventory for the selected moods
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide at least one mood in the request body"})
		return
	}

	result, err := h.recommendationService.GetRecommendations(c.Request.Context(), req.Moods, recommend.Options{
		ShowAll: req.ShowAll,
		Limit:   req.Limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recommendations"})
		return
	}

	c.JSON(http.StatusOK, result)
}
