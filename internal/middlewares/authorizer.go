package middlewares

import (
	"net/http"

	apierrors "api/internal/errors"
	h "api/internal/helpers"
	"api/internal/models"
)

// AuthorizeAdmin rejects any caller whose verified claims lack the admin
// flag. This is the single admin gate for the whole admin API; handlers
// never re-check the flag themselves.
func AuthorizeAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(models.UserClaimKey{}).(models.UserClaims)
		if !ok {
			h.RespondWithError(w, http.StatusUnauthorized, apierrors.ErrUnauthorized)
			return
		}

		if !userClaims.IsAdmin {
			h.RespondWithError(w, http.StatusForbidden, apierrors.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
