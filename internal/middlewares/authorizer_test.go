package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "api/internal/errors"
	"api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithClaims(claims models.UserClaims) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
	ctx := context.WithValue(r.Context(), models.UserClaimKey{}, claims)
	return r.WithContext(ctx)
}

// TestAuthorizeAdmin verifies the single admin gate: admins pass, every
// other caller is rejected with the proper envelope.
func TestAuthorizeAdmin(t *testing.T) {
	nextCalled := false
	handler := AuthorizeAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("admin claims pass through", func(t *testing.T) {
		nextCalled = false
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, requestWithClaims(models.UserClaims{UserID: uuid.New(), IsAdmin: true}))

		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-admin claims get 403", func(t *testing.T) {
		nextCalled = false
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, requestWithClaims(models.UserClaims{UserID: uuid.New(), IsAdmin: false}))

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		var body models.Error
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.Equal(t, apierrors.ErrForbidden, body.Error)
		assert.Equal(t, http.StatusForbidden, body.StatusCode)
	})

	t.Run("missing claims get 401", func(t *testing.T) {
		nextCalled = false
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil))

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body models.Error
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, apierrors.ErrUnauthorized, body.Error)
	})
}
