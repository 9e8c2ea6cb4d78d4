package services

import (
	"math"
	"time"

	"api/internal/activity"
	"api/internal/handlers"
	m "api/internal/middlewares"
	"api/internal/models"
	"api/internal/sql"

	"api/internal/configuration"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// AdminService serves the whole admin API. All routes sit behind the
// single admin gate; handlers never re-check the admin flag.
type AdminService struct {
	DB             *gorm.DB
	ActivityLogger activity.IActivityLogger
	Billing        models.BillingConfiguration
	StartedAt      time.Time
}

func (s AdminService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(m.AuthorizeAdmin)

	r.Get("/dashboard", handlers.GetHandler(s.GetDashboard))
	r.Get("/metrics", handlers.GetHandler(s.GetMetrics))

	r.With(m.ValidateQuery[models.UserQueryParams]).
		Get("/users", handlers.GetWithQueryHandler(s.ListUsers))

	r.Route("/users/{id0}", func(r chi.Router) {
		r.Get("/", handlers.GetHandler(s.GetUser))
		r.With(m.Validate[models.UserUpdateBody]).
			Put("/", handlers.UpdateHandler(s.UpdateUser))
		r.Delete("/", handlers.DeleteHandler(s.DeleteUser))
	})

	r.With(m.ValidateQuery[models.ListingQueryParams]).
		Get("/listings", handlers.GetWithQueryHandler(s.ListListings))
	r.Delete("/listings/{id0}", handlers.DeleteHandler(s.DeleteListing))

	r.Get("/system", handlers.GetHandler(s.GetSystemHealth))

	r.With(m.ValidateQuery[models.AnalyticsQueryParams]).
		Get("/analytics", handlers.GetWithQueryHandler(s.GetAnalytics))
	r.With(m.ValidateQuery[models.AnalyticsQueryParams]).
		Get("/stats", handlers.GetWithQueryHandler(s.GetAnalytics))

	r.With(m.ValidateQuery[models.ActivityQueryParams]).
		Get("/activity", handlers.GetWithQueryHandler(s.ListActivity))

	return r
}

// GetDashboard returns the light overview shown on the dashboard landing
// card. The full report, audit write included, lives in GetMetrics.
func (s AdminService) GetDashboard(
	_ *zap.Logger,
	_ models.UserClaims,
	_ uuid.UUIDs,
) (models.DashboardStats, error) {
	var stats models.DashboardStats
	var err error

	if stats.TotalUsers, err = sql.CountUsers(s.DB); err != nil {
		return models.DashboardStats{}, err
	}
	if stats.TotalListings, err = sql.CountListings(s.DB); err != nil {
		return models.DashboardStats{}, err
	}
	if stats.RecentUsers, err = sql.CountRecentUsers(s.DB); err != nil {
		return models.DashboardStats{}, err
	}
	if stats.ActiveUsers, err = sql.CountActiveUsers(s.DB); err != nil {
		return models.DashboardStats{}, err
	}
	if stats.ActiveAccounts, err = sql.CountActiveMarketplaceAccounts(s.DB); err != nil {
		return models.DashboardStats{}, err
	}

	return stats, nil
}

// GetMetrics assembles the full metrics report. The aggregate reads are
// independent, so they fan out concurrently; one failure fails the whole
// report, no partial result is returned. The audit write afterwards is
// best-effort and never fails the response.
func (s AdminService) GetMetrics(
	logger *zap.Logger,
	claims models.UserClaims,
	_ uuid.UUIDs,
) (models.MetricsReport, error) {
	var report models.MetricsReport

	var g errgroup.Group

	g.Go(func() (err error) {
		report.Overview.TotalUsers, err = sql.CountUsers(s.DB)
		return err
	})
	g.Go(func() (err error) {
		report.Overview.TotalListings, err = sql.CountListings(s.DB)
		return err
	})
	g.Go(func() (err error) {
		report.Overview.RecentUsers, err = sql.CountRecentUsers(s.DB)
		return err
	})
	g.Go(func() (err error) {
		report.Overview.ActiveUsers, err = sql.CountActiveUsers(s.DB)
		return err
	})
	g.Go(func() (err error) {
		report.Overview.ActiveAccounts, err = sql.CountActiveMarketplaceAccounts(s.DB)
		return err
	})
	g.Go(func() (err error) {
		report.Overview.PostedListings, err = sql.CountMarketplaceListings(s.DB)
		return err
	})
	g.Go(func() (err error) {
		report.Tiers, err = sql.CountUsersByTier(s.DB)
		return err
	})
	g.Go(func() (err error) {
		report.ListingStatuses, err = sql.CountListingsByStatus(s.DB)
		return err
	})
	g.Go(func() (err error) {
		report.TopUsers, err = sql.TopUsersByListingCount(s.DB, configuration.TopUsersLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.MetricsReport{}, err
	}

	report.Revenue = s.estimateRevenue(report.Tiers)

	entry := models.ActivityEntry{
		AdminID: claims.UserID,
		Action:  activity.ViewDashboard,
		Details: map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
		IPAddress: claims.IP,
	}
	if err := s.ActivityLogger.Send(entry); err != nil {
		logger.Error("Failed to record dashboard view", zap.Error(err))
	}

	return report, nil
}

// estimateRevenue projects subscription revenue from paying-tier
// headcounts and the configured unit prices. An estimate, not a number
// derived from real transactions.
func (s AdminService) estimateRevenue(tiers map[string]int64) models.RevenueEstimate {
	premium := float64(tiers[string(models.TierPremium)])
	premiumPlus := float64(tiers[string(models.TierPremiumPlus)])

	monthly := round2(premium*s.Billing.PremiumMonthlyPrice + premiumPlus*s.Billing.PremiumPlusMonthlyPrice)
	return models.RevenueEstimate{
		Monthly: monthly,
		Annual:  round2(monthly * 12),
	}
}

// round2 keeps revenue values at two fraction digits.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
