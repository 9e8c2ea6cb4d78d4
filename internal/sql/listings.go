package sql

import (
	apierrors "api/internal/errors"
	"api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func applyListingFilters(q *gorm.DB, params models.ListingQueryParams) *gorm.DB {
	if params.Search != "" {
		q = q.Where("listings.title ILIKE ?", "%"+params.Search+"%")
	}
	if params.Status != "" {
		q = q.Where("listings.status = ?", params.Status)
	}
	return q
}

// ListListings returns one page of undeleted listings joined with their
// owner's username, newest first.
func ListListings(db *gorm.DB, params models.ListingQueryParams) (models.Page[models.AdminListingListItem], error) {
	page, limit, offset := normalizePagination(params.Page, params.Limit)

	var total int64
	countQuery := applyListingFilters(db.Model(&models.Listing{}), params)
	if err := countQuery.Count(&total).Error; err != nil {
		return models.Page[models.AdminListingListItem]{}, err
	}

	var rows []models.AdminListingListItem
	pageQuery := applyListingFilters(db.Model(&models.Listing{}), params).
		Select(`listings.id, listings.title, listings.status, listings.price,
			listings.category, listings.user_id, listings.created_at, users.username`).
		Joins("LEFT JOIN users ON users.id = listings.user_id").
		Order("listings.created_at DESC, listings.id DESC").
		Limit(limit).
		Offset(offset)
	if err := pageQuery.Scan(&rows).Error; err != nil {
		return models.Page[models.AdminListingListItem]{}, err
	}

	return models.NewPage(rows, page, limit, total), nil
}

// SoftDeleteListing marks the listing deleted. The row is kept for
// history; subsequent listing queries exclude it.
func SoftDeleteListing(db *gorm.DB, listingID uuid.UUID) error {
	result := db.Where("id = ?", listingID).Delete(&models.Listing{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apierrors.NewAPIError(404, apierrors.ErrListingNotFound)
	}
	return nil
}
