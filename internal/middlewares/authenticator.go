package middlewares

import (
	"context"
	"net/http"

	apierrors "api/internal/errors"
	"api/internal/helpers"
	"api/internal/models"
)

// Authenticate parses the bearer token into UserClaims and stores them in
// the request context. Token issuance belongs to the external auth
// service; this only verifies what the caller presents.
func Authenticate(jwtSecret string, trustedProxies []string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			accessToken := r.Header.Get("Authorization")
			userClaims, err := helpers.ParseAccessToken(jwtSecret, accessToken)
			if err != nil {
				helpers.RespondWithError(w, http.StatusUnauthorized, apierrors.ErrUnauthorized)
				return
			}

			userClaims.IP = helpers.ClientIP(r, trustedProxies)

			ctx := context.WithValue(r.Context(), models.UserClaimKey{}, userClaims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
