package services

import (
	"net/http"

	"api/internal/activity"
	apierrors "api/internal/errors"
	"api/internal/models"
	"api/internal/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s AdminService) ListListings(
	_ *zap.Logger,
	_ models.UserClaims,
	_ uuid.UUIDs,
	queryParams models.ListingQueryParams,
) (models.Page[models.AdminListingListItem], error) {
	return sql.ListListings(s.DB, queryParams)
}

// DeleteListing soft-deletes only: the row stays for history and is
// excluded from subsequent listing queries.
func (s AdminService) DeleteListing(
	logger *zap.Logger,
	claims models.UserClaims,
	ids uuid.UUIDs,
) error {
	if len(ids) == 0 {
		return apierrors.NewAPIError(http.StatusBadRequest, apierrors.ErrValidationFailed)
	}

	if err := sql.SoftDeleteListing(s.DB, ids[0]); err != nil {
		return err
	}

	s.audit(logger, claims, activity.ListingDeleted, map[string]any{
		"listing_id": ids[0].String(),
	})

	return nil
}
