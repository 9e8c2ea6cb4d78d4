package middlewares

import (
	"net/http"
	"strconv"

	c "api/internal/cache"
	apierrors "api/internal/errors"
	h "api/internal/helpers"
	"api/internal/models"

	"go.uber.org/zap"
)

// RateLimit applies a per-caller request budget backed by the shared
// cache. Identified by user ID when authenticated, caller IP otherwise.
// A nil cache disables limiting entirely.
func RateLimit(cache c.ICache, requestsPerMinute int) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if cache == nil {
				next.ServeHTTP(w, r)
				return
			}

			identifier := r.RemoteAddr
			if userClaims, ok := r.Context().Value(models.UserClaimKey{}).(models.UserClaims); ok {
				identifier = userClaims.UserID.String()
			}

			retryAfter, err := cache.GetRateLimit(identifier, requestsPerMinute)
			if err != nil {
				// Limiter failures never take the API down.
				zap.L().Error("Rate limit check failed", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if retryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				h.RespondWithError(w, http.StatusTooManyRequests, apierrors.ErrRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
