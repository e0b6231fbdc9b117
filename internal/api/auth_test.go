package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	t.Run("correct password", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"password": testBarPassword,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		decodeBody(t, w, &resp)
		assert.NotEmpty(t, resp["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		w := performRequest(t, env.Router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	w := performRequest(t, env.Router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
