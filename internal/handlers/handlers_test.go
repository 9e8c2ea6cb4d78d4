package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "api/internal/errors"
	"api/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func withClaims(claims models.UserClaims) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), models.UserClaimKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func serve(t *testing.T, handler http.HandlerFunc, claims *models.UserClaims, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	if claims != nil {
		r.Use(withClaims(*claims))
	}
	r.Get("/things/{id0}", handler)
	r.Get("/things", handler)
	r.Delete("/things/{id0}", handler)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

// TestGetHandler covers the envelope conversion around a typed service
// method: success payload, mapped API errors and the opaque 500.
func TestGetHandler(t *testing.T) {
	claims := models.UserClaims{UserID: uuid.New(), IsAdmin: true}

	t.Run("success wraps data in the envelope", func(t *testing.T) {
		handler := GetHandler(func(_ *zap.Logger, _ models.UserClaims, ids uuid.UUIDs) (map[string]any, error) {
			return map[string]any{"count": 1}, nil
		})

		rec := serve(t, handler, &claims, http.MethodGet, "/things/"+uuid.NewString())
		require.Equal(t, http.StatusOK, rec.Code)

		var body models.Response
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, map[string]any{"count": 1.0}, body.Data)
	})

	t.Run("api errors keep their status and code", func(t *testing.T) {
		handler := GetHandler(func(_ *zap.Logger, _ models.UserClaims, _ uuid.UUIDs) (any, error) {
			return nil, apierrors.NewAPIError(http.StatusNotFound, apierrors.ErrUserNotFound)
		})

		rec := serve(t, handler, &claims, http.MethodGet, "/things/"+uuid.NewString())
		require.Equal(t, http.StatusNotFound, rec.Code)

		var body models.Error
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.Equal(t, apierrors.ErrUserNotFound, body.Error)
		assert.Equal(t, http.StatusNotFound, body.StatusCode)
	})

	t.Run("unexpected errors become an opaque 500", func(t *testing.T) {
		handler := GetHandler(func(_ *zap.Logger, _ models.UserClaims, _ uuid.UUIDs) (any, error) {
			return nil, errors.New("pq: deadlock detected")
		})

		rec := serve(t, handler, &claims, http.MethodGet, "/things/"+uuid.NewString())
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var body models.Error
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, apierrors.ErrInternal, body.Error)
		assert.NotContains(t, rec.Body.String(), "deadlock", "internal detail never leaks")
	})

	t.Run("malformed id is rejected before the service runs", func(t *testing.T) {
		called := false
		handler := GetHandler(func(_ *zap.Logger, _ models.UserClaims, _ uuid.UUIDs) (any, error) {
			called = true
			return nil, nil
		})

		rec := serve(t, handler, &claims, http.MethodGet, "/things/not-a-uuid")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, called)
	})

	t.Run("missing claims are rejected with 401", func(t *testing.T) {
		handler := GetHandler(func(_ *zap.Logger, _ models.UserClaims, _ uuid.UUIDs) (any, error) {
			return nil, nil
		})

		rec := serve(t, handler, nil, http.MethodGet, "/things")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

// TestDeleteHandler verifies the fixed DELETED message on success.
func TestDeleteHandler(t *testing.T) {
	claims := models.UserClaims{UserID: uuid.New(), IsAdmin: true}

	handler := DeleteHandler(func(_ *zap.Logger, _ models.UserClaims, _ uuid.UUIDs) error {
		return nil
	})

	rec := serve(t, handler, &claims, http.MethodDelete, "/things/"+uuid.NewString())
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "DELETED", body.Message)
}
