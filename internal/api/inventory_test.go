package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/homebar/backend/internal/models"
)

func TestInventoryEndpoints(t *testing.T) {
	env := setupTestEnv(t)

	var itemID string

	t.Run("create requires auth", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodPost, "/api/v1/inventory", "", map[string]interface{}{
			"name": "Gin", "category": models.CategorySpirits, "quantity": 700,
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodPost, "/api/v1/inventory", env.Token, map[string]interface{}{
			"name":     "Tanqueray Gin",
			"category": models.CategorySpirits,
			"quantity": 700,
			"brand":    "Tanqueray",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var item models.InventoryItem
		decodeBody(t, w, &item)
		assert.Equal(t, "Tanqueray Gin", item.Name)
		assert.Equal(t, "ml", item.Unit, "unit defaults to ml")
		require.NotEmpty(t, item.ID)
		itemID = item.ID.String()
	})

	t.Run("create rejects negative quantity", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodPost, "/api/v1/inventory", env.Token, map[string]interface{}{
			"name": "Rum", "quantity": -1,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create rejects missing name", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodPost, "/api/v1/inventory", env.Token, map[string]interface{}{
			"quantity": 500,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodGet, "/api/v1/inventory/"+itemID, "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var item models.InventoryItem
		decodeBody(t, w, &item)
		assert.Equal(t, "Tanqueray Gin", item.Name)
	})

	t.Run("get unknown id", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodGet, "/api/v1/inventory/6f38cbb0-0000-0000-0000-000000000000", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("get malformed id", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodGet, "/api/v1/inventory/not-a-uuid", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("partial update", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodPut, "/api/v1/inventory/"+itemID, env.Token, map[string]interface{}{
			"quantity": 350,
			"notes":    "half bottle left",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var item models.InventoryItem
		decodeBody(t, w, &item)
		assert.Equal(t, 350.0, item.Quantity)
		assert.Equal(t, "half bottle left", item.Notes)
		assert.Equal(t, "Tanqueray Gin", item.Name, "untouched fields survive")
	})

	t.Run("update ignores unknown fields", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodPut, "/api/v1/inventory/"+itemID, env.Token, map[string]interface{}{
			"bogus": "value",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update rejects negative quantity", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodPut, "/api/v1/inventory/"+itemID, env.Token, map[string]interface{}{
			"quantity": -5,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodGet, "/api/v1/inventory", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Items []models.InventoryItem `json:"items"`
			Count int                    `json:"count"`
		}
		decodeBody(t, w, &resp)
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("list by category", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodGet, "/api/v1/inventory?category="+models.CategoryMixers, "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Count int `json:"count"`
		}
		decodeBody(t, w, &resp)
		assert.Equal(t, 0, resp.Count)
	})

	t.Run("delete", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodDelete, "/api/v1/inventory/"+itemID, env.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = performRequest(t, env.Router, http.MethodGet, "/api/v1/inventory/"+itemID, "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestExpiringItemsEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	soon := time.Now().AddDate(0, 0, 3)
	later := time.Now().AddDate(0, 1, 0)

	for _, body := range []map[string]interface{}{
		{"name": "Lime", "category": models.CategoryFruits, "quantity": 4, "unit": "pieces", "expirationDate": soon.Format(time.RFC3339)},
		{"name": "Mint", "category": models.CategoryHerbs, "quantity": 1, "unit": "bunch", "expirationDate": later.Format(time.RFC3339)},
	} {
		w := performRequest(t, env.Router, http.MethodPost, "/api/v1/inventory", env.Token, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := performRequest(t, env.Router, http.MethodGet, "/api/v1/inventory/expiring?days=7", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items     []models.InventoryItem `json:"items"`
		DaysAhead int                    `json:"daysAhead"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Lime", resp.Items[0].Name)
	assert.Equal(t, 7, resp.DaysAhead)

	w = performRequest(t, env.Router, http.MethodGet, "/api/v1/inventory/expiring?days=banana", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
