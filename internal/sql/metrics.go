package sql

import (
	"time"

	"api/internal/configuration"
	"api/internal/models"

	"gorm.io/gorm"
)

// Aggregate reads for the admin metrics report. Each read is independent
// and read-only; callers may fan them out concurrently. Soft-deleted
// listings are excluded from every listing aggregate.

func CountUsers(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func CountListings(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Listing{}).Count(&count).Error
	return count, err
}

// CountListingsByStatus buckets undeleted listings by status over the
// fixed enumeration: every known status is present, zero when empty.
func CountListingsByStatus(db *gorm.DB) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := db.Model(&models.Listing{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]int64, len(models.AllListingStatuses))
	for _, status := range models.AllListingStatuses {
		buckets[string(status)] = 0
	}
	for _, row := range rows {
		buckets[row.Status] = row.Count
	}
	return buckets, nil
}

// CountUsersByTier buckets users by subscription tier. Tiers absent from
// the data are absent from the mapping, deliberately not zero-filled.
func CountUsersByTier(db *gorm.DB) (map[string]int64, error) {
	var rows []struct {
		Tier  string
		Count int64
	}
	err := db.Model(&models.User{}).
		Select("subscription_tier AS tier, COUNT(*) AS count").
		Group("subscription_tier").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]int64, len(rows))
	for _, row := range rows {
		buckets[row.Tier] = row.Count
	}
	return buckets, nil
}

// CountRecentUsers counts users created inside the recent-signup window.
func CountRecentUsers(db *gorm.DB) (int64, error) {
	since := time.Now().AddDate(0, 0, -configuration.RecentUserWindowDays)
	var count int64
	err := db.Model(&models.User{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

// CountActiveUsers counts distinct users with at least one listing
// created inside the active-user window.
func CountActiveUsers(db *gorm.DB) (int64, error) {
	since := time.Now().AddDate(0, 0, -configuration.ActiveUserWindowDays)
	var count int64
	err := db.Model(&models.Listing{}).
		Where("created_at >= ?", since).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}

func CountActiveMarketplaceAccounts(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.MarketplaceAccount{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func CountMarketplaceListings(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.MarketplaceListing{}).Count(&count).Error
	return count, err
}

// TopUsersByListingCount ranks users by undeleted listing count
// descending, ties broken by primary key for a stable order. Users with
// zero listings still rank, last.
func TopUsersByListingCount(db *gorm.DB, limit int) ([]models.TopUser, error) {
	var rows []models.TopUser
	err := db.Model(&models.User{}).
		Select(`users.id, users.username, users.email, users.subscription_tier,
			COUNT(listings.id) AS listing_count`).
		Joins("LEFT JOIN listings ON listings.user_id = users.id AND listings.deleted_at IS NULL").
		Group("users.id").
		Order("listing_count DESC, users.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// SignupsByDay returns per-day user signup counts over the window.
func SignupsByDay(db *gorm.DB, days int) ([]models.TimeSeriesPoint, error) {
	startDate := time.Now().AddDate(0, 0, -days)

	var result []models.TimeSeriesPoint
	err := db.Model(&models.User{}).
		Select("TO_CHAR(users.created_at, 'YYYY-MM-DD') AS date, COUNT(*) AS count").
		Where("users.created_at >= ?", startDate).
		Group("TO_CHAR(users.created_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&result).Error
	return result, err
}

// ListingsByDay returns per-day listing creation counts over the window.
func ListingsByDay(db *gorm.DB, days int) ([]models.TimeSeriesPoint, error) {
	startDate := time.Now().AddDate(0, 0, -days)

	var result []models.TimeSeriesPoint
	err := db.Model(&models.Listing{}).
		Select("TO_CHAR(listings.created_at, 'YYYY-MM-DD') AS date, COUNT(*) AS count").
		Where("listings.created_at >= ?", startDate).
		Group("TO_CHAR(listings.created_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&result).Error
	return result, err
}
