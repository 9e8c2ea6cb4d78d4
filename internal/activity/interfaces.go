package activity

import "api/internal/models"

// IActivityLogger records and reads back admin audit activity.
// Send is best-effort from the caller's perspective: services log a
// failure and keep going, the primary operation never fails on it.
type IActivityLogger interface {
	Send(entry models.ActivityEntry) error
	Recent(page, limit int) (models.Page[models.AdminActivityItem], error)
	Close() error
}
