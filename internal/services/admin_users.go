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

func (s AdminService) ListUsers(
	_ *zap.Logger,
	_ models.UserClaims,
	_ uuid.UUIDs,
	queryParams models.UserQueryParams,
) (models.Page[models.AdminUserListItem], error) {
	return sql.ListUsers(s.DB, queryParams)
}

func (s AdminService) GetUser(
	_ *zap.Logger,
	_ models.UserClaims,
	ids uuid.UUIDs,
) (models.User, error) {
	if len(ids) == 0 {
		return models.User{}, apierrors.NewAPIError(http.StatusBadRequest, apierrors.ErrValidationFailed)
	}
	return sql.GetUserByID(s.DB, ids[0])
}

func (s AdminService) UpdateUser(
	logger *zap.Logger,
	claims models.UserClaims,
	ids uuid.UUIDs,
	body models.UserUpdateBody,
) (models.User, error) {
	if len(ids) == 0 {
		return models.User{}, apierrors.NewAPIError(http.StatusBadRequest, apierrors.ErrValidationFailed)
	}

	user, err := sql.UpdateUser(s.DB, ids[0], body)
	if err != nil {
		return models.User{}, err
	}

	s.audit(logger, claims, activity.UserUpdated, map[string]any{
		"user_id": ids[0].String(),
	})

	return user, nil
}

// DeleteUser soft-deletes the user's listings and removes the user row
// as one unit; a failure of either rolls back both.
func (s AdminService) DeleteUser(
	logger *zap.Logger,
	claims models.UserClaims,
	ids uuid.UUIDs,
) error {
	if len(ids) == 0 {
		return apierrors.NewAPIError(http.StatusBadRequest, apierrors.ErrValidationFailed)
	}

	if err := sql.DeleteUser(s.DB, ids[0]); err != nil {
		return err
	}

	s.audit(logger, claims, activity.UserDeleted, map[string]any{
		"user_id": ids[0].String(),
	})

	return nil
}

// audit records an admin action; failures are logged and swallowed, the
// primary operation has already succeeded.
func (s AdminService) audit(logger *zap.Logger, claims models.UserClaims, action string, details map[string]any) {
	entry := models.ActivityEntry{
		AdminID:   claims.UserID,
		Action:    action,
		Details:   details,
		IPAddress: claims.IP,
	}
	if err := s.ActivityLogger.Send(entry); err != nil {
		logger.Error("Failed to record admin action",
			zap.String("action", action),
			zap.Error(err))
	}
}
