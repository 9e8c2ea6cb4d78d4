package sql

import (
	"errors"

	"api/internal/configuration"
	apierrors "api/internal/errors"
	"api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// normalizePagination applies the default page/limit and derives the row
// offset. Range validation happens earlier at the HTTP boundary.
func normalizePagination(page, limit int) (int, int, int) {
	if page <= 0 {
		page = configuration.DefaultPage
	}
	if limit <= 0 {
		limit = configuration.DefaultLimit
	}
	if limit > configuration.MaxLimit {
		limit = configuration.MaxLimit
	}
	return page, limit, (page - 1) * limit
}

// applyUserFilters composes the shared WHERE clauses for the user list
// and its COUNT twin. Values are always bound as parameters, filter text
// is never assembled from user input.
func applyUserFilters(q *gorm.DB, params models.UserQueryParams) *gorm.DB {
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		q = q.Where("users.username ILIKE ? OR users.email ILIKE ?", pattern, pattern)
	}
	if params.Tier != "" {
		q = q.Where("users.subscription_tier = ?", params.Tier)
	}
	return q
}

// ListUsers returns one page of users enriched with listing and
// connected-account counts. Users with neither still appear with zeros.
func ListUsers(db *gorm.DB, params models.UserQueryParams) (models.Page[models.AdminUserListItem], error) {
	page, limit, offset := normalizePagination(params.Page, params.Limit)

	var total int64
	countQuery := applyUserFilters(db.Model(&models.User{}), params)
	if err := countQuery.Count(&total).Error; err != nil {
		return models.Page[models.AdminUserListItem]{}, err
	}

	var rows []models.AdminUserListItem
	pageQuery := applyUserFilters(db.Model(&models.User{}), params).
		Select(`users.id, users.username, users.email, users.subscription_tier,
			users.points, users.level, users.is_admin, users.created_at,
			COUNT(DISTINCT listings.id) AS listing_count,
			COUNT(DISTINCT marketplace_accounts.id) AS account_count`).
		Joins("LEFT JOIN listings ON listings.user_id = users.id AND listings.deleted_at IS NULL").
		Joins("LEFT JOIN marketplace_accounts ON marketplace_accounts.user_id = users.id AND marketplace_accounts.is_active").
		Group("users.id").
		Order("users.created_at DESC, users.id DESC").
		Limit(limit).
		Offset(offset)
	if err := pageQuery.Scan(&rows).Error; err != nil {
		return models.Page[models.AdminUserListItem]{}, err
	}

	return models.NewPage(rows, page, limit, total), nil
}

func GetUserByID(db *gorm.DB, userID uuid.UUID) (models.User, error) {
	var user models.User

	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apierrors.NewAPIError(404, apierrors.ErrUserNotFound)
		}
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser applies the provided fields in one UPDATE and returns the
// refreshed row. GORM touches updated_at on its own.
func UpdateUser(db *gorm.DB, userID uuid.UUID, body models.UserUpdateBody) (models.User, error) {
	updates := map[string]any{}
	if body.Username != nil {
		updates["username"] = *body.Username
	}
	if body.Email != nil {
		updates["email"] = *body.Email
	}
	if body.Tier != nil {
		updates["subscription_tier"] = *body.Tier
	}
	if body.Points != nil {
		updates["points"] = *body.Points
	}
	if body.Level != nil {
		updates["level"] = *body.Level
	}
	if body.IsAdmin != nil {
		updates["is_admin"] = *body.IsAdmin
	}

	if len(updates) > 0 {
		result := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
		if result.Error != nil {
			return models.User{}, result.Error
		}
		if result.RowsAffected == 0 {
			return models.User{}, apierrors.NewAPIError(404, apierrors.ErrUserNotFound)
		}
	}

	return GetUserByID(db, userID)
}

// DeleteUser soft-deletes all of the user's listings and then removes the
// user row, as one transaction. Either both happen or neither does.
func DeleteUser(db *gorm.DB, userID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Listing{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", userID).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apierrors.NewAPIError(404, apierrors.ErrUserNotFound)
		}

		return nil
	})
}
