package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/homebar/backend/internal/api"
	"github.com/pageza/homebar/backend/internal/database"
	"github.com/pageza/homebar/backend/internal/models"
	"github.com/pageza/homebar/backend/internal/recommend"
	"github.com/pageza/homebar/backend/internal/router"
	"github.com/pageza/homebar/backend/internal/service"
)

const barPassword = "integration-password"

// setupPostgres starts a throwaway PostgreSQL container and returns a
// migrated connection. Requires Docker; gated behind INTEGRATION_TESTS.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run container-backed tests")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "testuser",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "homebar_test",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections"),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=testuser password=testpass dbname=homebar_test sslmode=disable",
		host, port.Port())
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func setupAPI(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authService, err := service.NewAuthService(barPassword, "integration-secret")
	require.NoError(t, err)

	h := router.Handlers{
		Auth:           api.NewAuthHandler(authService),
		Inventory:      api.NewInventoryHandler(service.NewInventoryService(db)),
		Recipe:         api.NewRecipeHandler(service.NewRecipeService(db)),
		Recommendation: api.NewRecommendationHandler(service.NewRecommendationService(db)),
	}
	return router.SetupRouter(h, authService, router.Limiters{})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestEndToEndOnPostgres walks the whole flow against a real database:
// log in, stock the bar, add recipes, ask for recommendations.
func TestEndToEndOnPostgres(t *testing.T) {
	db := setupPostgres(t)
	r := setupAPI(t, db)

	// Log in with the bar password.
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"password": barPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	token := login["token"]
	require.NotEmpty(t, token)

	// Stock the bar.
	for _, item := range []map[string]interface{}{
		{"name": "Plymouth Gin", "category": models.CategorySpirits, "quantity": 700},
		{"name": "Tonic Water", "category": models.CategoryMixers, "quantity": 1000},
		{"name": "Simple Syrup", "category": models.CategoryMixers, "quantity": 250},
		{"name": "Lime", "category": models.CategoryFruits, "quantity": 6, "unit": "pieces"},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/inventory", token, item)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// Add recipes with JSONB ingredient lists.
	for _, recipe := range []map[string]interface{}{
		{
			"name":        "Gin and Tonic",
			"description": "Sparkling classic",
			"abv":         8,
			"ingredients": []map[string]interface{}{
				{"name": "Gin", "quantity": 50, "unit": "ml"},
				{"name": "Tonic Water", "quantity": 150, "unit": "ml"},
			},
			"instructions": []string{"Build over ice"},
			"moods":        []string{"sparkling", "light"},
		},
		{
			"name":        "Gimlet",
			"description": "Sharp and sour",
			"abv":         20,
			"ingredients": []map[string]interface{}{
				{"name": "Gin", "quantity": 60, "unit": "ml"},
				{"name": "Fresh Lime Juice", "quantity": 20, "unit": "ml"},
				{"name": "Simple Syrup", "quantity": 15, "unit": "ml"},
			},
			"instructions": []string{"Shake with ice", "Strain into a coupe"},
			"moods":        []string{"sour"},
		},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/recipes", token, recipe)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// Keyword search goes through the jsonb::text cast on postgres.
	w = doJSON(t, r, http.MethodGet, "/api/v1/recipes?q=lime", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)

	// Both recipes are fully makeable from the stocked inventory.
	w = doJSON(t, r, http.MethodPost, "/api/v1/recommendations", "", map[string]interface{}{
		"moods": []string{"sour"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result recommend.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Gimlet", result.Recommendations[0].Name)
	assert.True(t, result.Recommendations[0].CanMake)
	assert.Empty(t, result.Recommendations[0].MissingIngredients)
}
