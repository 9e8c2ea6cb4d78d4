package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateQuery_UserQueryParams exercises the query-string decoding
// rules for the admin user list.
func TestValidateQuery_UserQueryParams(t *testing.T) {
	var captured models.UserQueryParams
	handler := ValidateQuery[models.UserQueryParams](
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured, _ = r.Context().Value(models.ValidatedQueryKey{}).(models.UserQueryParams)
			w.WriteHeader(http.StatusOK)
		}))

	serve := func(query string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/users"+query, nil))
		return rec
	}

	t.Run("valid parameters land in the context", func(t *testing.T) {
		rec := serve("?page=2&limit=10&search=alice&tier=premium")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, models.UserQueryParams{Page: 2, Limit: 10, Search: "alice", Tier: "premium"}, captured)
	})

	t.Run("numeric search text stays a string", func(t *testing.T) {
		rec := serve("?search=123")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "123", captured.Search)
	})

	t.Run("absent parameters leave zero values", func(t *testing.T) {
		rec := serve("")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, models.UserQueryParams{}, captured)
	})

	t.Run("unknown parameters are ignored", func(t *testing.T) {
		rec := serve("?sort=points")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-numeric page is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, serve("?page=abc").Code)
	})

	t.Run("negative page is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, serve("?page=-1").Code)
	})

	t.Run("limit above the cap is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, serve("?limit=500").Code)
	})

	t.Run("unknown tier is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, serve("?tier=gold").Code)
	})
}

// TestValidateQuery_AnalyticsWindow verifies the fixed window choices.
func TestValidateQuery_AnalyticsWindow(t *testing.T) {
	handler := ValidateQuery[models.AnalyticsQueryParams](
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	serve := func(query string) int {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/analytics"+query, nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, serve(""))
	assert.Equal(t, http.StatusOK, serve("?days=7"))
	assert.Equal(t, http.StatusOK, serve("?days=30"))
	assert.Equal(t, http.StatusOK, serve("?days=90"))
	assert.Equal(t, http.StatusBadRequest, serve("?days=14"))
	assert.Equal(t, http.StatusBadRequest, serve("?days=month"))
}

// TestValidate_UserUpdateBody exercises the JSON body validation rules.
func TestValidate_UserUpdateBody(t *testing.T) {
	var captured models.UserUpdateBody
	handler := Validate[models.UserUpdateBody](
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured, _ = r.Context().Value(models.ValidatedBodyKey{}).(models.UserUpdateBody)
			w.WriteHeader(http.StatusOK)
		}))

	serve := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/admin/users/x", strings.NewReader(body))
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("partial body lands in the context", func(t *testing.T) {
		rec := serve(`{"tier":"premium_plus","points":10}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured.Tier)
		assert.Equal(t, "premium_plus", *captured.Tier)
		require.NotNil(t, captured.Points)
		assert.Equal(t, 10, *captured.Points)
		assert.Nil(t, captured.Username)
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, serve(`{"tier":`).Code)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, serve(`{"hashed_password":"x"}`).Code)
	})

	t.Run("invalid tier is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, serve(`{"tier":"gold"}`).Code)
	})

	t.Run("negative points are rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, serve(`{"points":-1}`).Code)
	})

	t.Run("short username is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, serve(`{"username":"ab"}`).Code)
	})
}
