package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	c "api/internal/cache"
	"api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// --- Mock Cache ---

type MockCache struct {
	RetryAfter int
	Err        error
	Identifier string
}

func (m *MockCache) GetRateLimit(userIdentifier string, _ int) (int, error) {
	m.Identifier = userIdentifier
	return m.RetryAfter, m.Err
}

func (m *MockCache) TryAcquireLock(_, _ string, _ int) (bool, error) { return true, nil }
func (m *MockCache) RefreshLock(_, _ string, _ int) (bool, error)    { return true, nil }
func (m *MockCache) Close() error                                    { return nil }

var _ c.ICache = (*MockCache)(nil)

func TestRateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("nil cache disables limiting", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RateLimit(nil, 60)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("within budget passes through", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RateLimit(&MockCache{RetryAfter: 0}, 60)(next).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("exhausted budget gets 429 with Retry-After", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RateLimit(&MockCache{RetryAfter: 17}, 60)(next).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "17", rec.Header().Get("Retry-After"))
	})

	t.Run("limiter failure fails open", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RateLimit(&MockCache{Err: errors.New("redis down")}, 60)(next).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("authenticated callers are keyed by user id", func(t *testing.T) {
		cache := &MockCache{}
		userID := uuid.New()

		req := requestWithClaims(models.UserClaims{UserID: userID})
		RateLimit(cache, 60)(next).ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, userID.String(), cache.Identifier)
	})
}
