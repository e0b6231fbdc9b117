package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pageza/homebar/backend/internal/api"
	"github.com/pageza/homebar/backend/internal/middleware"
)

// Handlers bundles the API handlers wired into the router.
type Handlers struct {
	Auth           *api.AuthHandler
	Inventory      *api.InventoryHandler
	Recipe         *api.RecipeHandler
	Recommendation *api.RecommendationHandler
	Upload         *api.UploadHandler
}

// Limiters are optional; nil entries disable the corresponding limit.
type Limiters struct {
	Recommendations *middleware.RateLimiter
	Mutations       *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, authService middleware.TokenValidator, limiters Limiters) *gin.Engine {
	router := gin.Default()

	// The frontend is served from a different origin; mirror the original
	// deployment's permissive CORS policy.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", h.Auth.Login)

	protected := middleware.AuthMiddleware(authService)
	mutation := passthrough()
	if limiters.Mutations != nil {
		mutation = limiters.Mutations.RateLimitMiddleware()
	}

	inventory := v1.Group("/inventory")
	{
		inventory.GET("", h.Inventory.ListInventory)
		inventory.GET("/expiring", h.Inventory.GetExpiringItems)
		inventory.GET("/:id", h.Inventory.GetInventoryItem)
		inventory.POST("", protected, mutation, h.Inventory.CreateInventoryItem)
		inventory.PUT("/:id", protected, mutation, h.Inventory.UpdateInventoryItem)
		inventory.DELETE("/:id", protected, mutation, h.Inventory.DeleteInventoryItem)
	}

	recipes := v1.Group("/recipes")
	{
		recipes.GET("", h.Recipe.ListRecipes)
		recipes.GET("/:id", h.Recipe.GetRecipe)
		recipes.POST("", protected, mutation, h.Recipe.CreateRecipe)
		recipes.PUT("/:id", protected, mutation, h.Recipe.UpdateRecipe)
		recipes.DELETE("/:id", protected, mutation, h.Recipe.DeleteRecipe)
	}

	recommendations := passthrough()
	if limiters.Recommendations != nil {
		recommendations = limiters.Recommendations.RateLimitMiddleware()
	}
	v1.POST("/recommendations", recommendations, h.Recommendation.GetRecommendations)

	if h.Upload != nil {
		v1.POST("/uploads", protected, h.Upload.PresignUpload)
	}

	return router
}

func passthrough() gin.HandlerFunc {
	return func(c *gin.Context) { c.Next() }
}
