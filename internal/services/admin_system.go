package services

import (
	"fmt"
	"time"

	"api/internal/configuration"
	"api/internal/models"
	"api/internal/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetSystemHealth reports store connectivity, table row counts and the
// process uptime.
func (s AdminService) GetSystemHealth(
	logger *zap.Logger,
	_ models.UserClaims,
	_ uuid.UUIDs,
) (models.SystemHealth, error) {
	health := models.SystemHealth{
		Database: "ok",
		Tables:   map[string]int64{},
		Uptime:   formatUptime(time.Since(s.StartedAt)),
	}

	sqlDB, err := s.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		logger.Error("Database health check failed", zap.Error(err))
		health.Database = "unreachable"
		return health, nil
	}

	counts := map[string]func() (int64, error){
		"users":                func() (int64, error) { return sql.CountUsers(s.DB) },
		"listings":             func() (int64, error) { return sql.CountListings(s.DB) },
		"marketplace_accounts": func() (int64, error) { return sql.CountActiveMarketplaceAccounts(s.DB) },
		"marketplace_listings": func() (int64, error) { return sql.CountMarketplaceListings(s.DB) },
	}
	for table, count := range counts {
		n, countErr := count()
		if countErr != nil {
			return models.SystemHealth{}, countErr
		}
		health.Tables[table] = n
	}

	return health, nil
}

func (s AdminService) GetAnalytics(
	_ *zap.Logger,
	_ models.UserClaims,
	_ uuid.UUIDs,
	queryParams models.AnalyticsQueryParams,
) (models.AnalyticsReport, error) {
	days := queryParams.Days
	if days == 0 {
		days = configuration.DefaultAnalyticsDays
	}

	signups, err := sql.SignupsByDay(s.DB, days)
	if err != nil {
		return models.AnalyticsReport{}, err
	}

	newListings, err := sql.ListingsByDay(s.DB, days)
	if err != nil {
		return models.AnalyticsReport{}, err
	}

	return models.AnalyticsReport{
		Days:        days,
		Signups:     signups,
		NewListings: newListings,
	}, nil
}

func (s AdminService) ListActivity(
	_ *zap.Logger,
	_ models.UserClaims,
	_ uuid.UUIDs,
	queryParams models.ActivityQueryParams,
) (models.Page[models.AdminActivityItem], error) {
	page := queryParams.Page
	if page <= 0 {
		page = configuration.DefaultPage
	}
	limit := queryParams.Limit
	if limit <= 0 {
		limit = configuration.DefaultLimit
	}

	return s.ActivityLogger.Recent(page, limit)
}

// formatUptime renders a duration as "<h>h <m>m".
func formatUptime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
