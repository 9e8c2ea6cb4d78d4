package models

import (
	"math"

	"github.com/google/uuid"
)

// DashboardStats is the light overview returned by /admin/dashboard.
type DashboardStats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalListings  int64 `json:"total_listings"`
	RecentUsers    int64 `json:"recent_users"`
	ActiveUsers    int64 `json:"active_users"`
	ActiveAccounts int64 `json:"active_accounts"`
}

// MetricsOverview contains the headline counts of the full metrics report.
type MetricsOverview struct {
	TotalUsers     int64 `json:"total_users"`
	TotalListings  int64 `json:"total_listings"`
	RecentUsers    int64 `json:"recent_users"`
	ActiveUsers    int64 `json:"active_users"`
	ActiveAccounts int64 `json:"active_accounts"`
	PostedListings int64 `json:"posted_listings"`
}

// RevenueEstimate is a configuration-derived projection, not ground truth:
// it multiplies paying-tier headcounts by the configured unit prices.
type RevenueEstimate struct {
	Monthly float64 `json:"monthly"`
	Annual  float64 `json:"annual"`
}

// TopUser is one entry in the top-users-by-listing-count ranking.
type TopUser struct {
	ID               uuid.UUID        `json:"id"`
	Username         string           `json:"username"`
	Email            string           `json:"email"`
	SubscriptionTier SubscriptionTier `json:"subscription_tier"`
	ListingCount     int64            `json:"listing_count"`
}

// MetricsReport is the full admin metrics payload. ListingStatuses always
// carries every known status key; Tiers only carries tiers present in the
// data.
type MetricsReport struct {
	Overview        MetricsOverview  `json:"overview"`
	Tiers           map[string]int64 `json:"tiers"`
	ListingStatuses map[string]int64 `json:"listing_statuses"`
	Revenue         RevenueEstimate  `json:"revenue"`
	TopUsers        []TopUser        `json:"top_users"`
}

// TimeSeriesPoint represents a data point in a time series chart.
type TimeSeriesPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// AnalyticsQueryParams selects the per-day window for /admin/analytics.
type AnalyticsQueryParams struct {
	Days int `json:"days" validate:"omitempty,oneof=7 30 90"`
}

// AnalyticsReport contains per-day signup and listing-creation counts.
type AnalyticsReport struct {
	Days        int               `json:"days"`
	Signups     []TimeSeriesPoint `json:"signups"`
	NewListings []TimeSeriesPoint `json:"new_listings"`
}

// SystemHealth is the /admin/system payload.
type SystemHealth struct {
	Database string           `json:"database"`
	Tables   map[string]int64 `json:"tables"`
	Uptime   string           `json:"uptime"`
}

// Page wraps a result page with its pagination metadata.
type Page[T any] struct {
	Rows       []T   `json:"rows"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPage assembles pagination metadata for a result page.
// totalPages is ceil(total/limit).
func NewPage[T any](rows []T, page, limit int, total int64) Page[T] {
	if rows == nil {
		rows = []T{}
	}
	return Page[T]{
		Rows:       rows,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}
