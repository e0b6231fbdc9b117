package api_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/homebar/backend/internal/api"
	"github.com/pageza/homebar/backend/internal/router"
	"github.com/pageza/homebar/backend/internal/service"
	"github.com/pageza/homebar/backend/internal/testhelpers"
)

const testBarPassword = "test-bar-password"

// testEnv bundles a fully wired router and its backing database.
type testEnv struct {
	Router *gin.Engine
	DB     *gorm.DB
	Token  string
}

// setupTestEnv wires the real services and router against an in-memory
// database, and logs in once so callers have a valid token.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)

	authService, err := service.NewAuthService(testBarPassword, "test-secret")
	require.NoError(t, err)

	recommendationService := service.NewRecommendationService(db)

	h := router.Handlers{
		Auth:           api.NewAuthHandler(authService),
		Inventory:      api.NewInventoryHandler(service.NewInventoryService(db)),
		Recipe:         api.NewRecipeHandler(service.NewRecipeService(db)),
		Recommendation: api.NewRecommendationHandler(recommendationService),
	}

	r := router.SetupRouter(h, authService, router.Limiters{})

	token, err := authService.Login(testBarPassword)
	require.NoError(t, err)

	return &testEnv{Router: r, DB: db, Token: token}
}

// performRequest sends a JSON request through the router. An empty token
// leaves the request unauthenticated.
func performRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a response body into out.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}
