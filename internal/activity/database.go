package activity

import (
	"encoding/json"
	"fmt"

	"api/internal/models"

	"gorm.io/gorm"
)

// DatabaseClient implements IActivityLogger on the application's
// relational store. Rows are append-only; nothing here updates them.
type DatabaseClient struct {
	db *gorm.DB
}

func NewDatabaseClient(db *gorm.DB) IActivityLogger {
	return &DatabaseClient{db: db}
}

func (c *DatabaseClient) Send(entry models.ActivityEntry) error {
	var details json.RawMessage
	if entry.Details != nil {
		b, err := json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("failed to marshal activity details: %w", err)
		}
		details = b
	}

	row := models.AdminActivityLog{
		AdminID:   entry.AdminID,
		Action:    entry.Action,
		Details:   details,
		IPAddress: entry.IPAddress,
	}

	if err := c.db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to append activity log: %w", err)
	}

	return nil
}

// Recent returns the newest audit rows joined with the acting admin's
// identity, newest first.
func (c *DatabaseClient) Recent(page, limit int) (models.Page[models.AdminActivityItem], error) {
	offset := (page - 1) * limit

	var total int64
	if err := c.db.Model(&models.AdminActivityLog{}).Count(&total).Error; err != nil {
		return models.Page[models.AdminActivityItem]{}, err
	}

	var items []models.AdminActivityItem
	err := c.db.Model(&models.AdminActivityLog{}).
		Select(`admin_activity_logs.id, admin_activity_logs.action, admin_activity_logs.details,
			admin_activity_logs.ip_address, admin_activity_logs.created_at,
			admin_activity_logs.admin_id, users.username, users.email`).
		Joins("LEFT JOIN users ON users.id = admin_activity_logs.admin_id").
		Order("admin_activity_logs.created_at DESC, admin_activity_logs.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&items).Error
	if err != nil {
		return models.Page[models.AdminActivityItem]{}, err
	}

	return models.NewPage(items, page, limit, total), nil
}

func (c *DatabaseClient) Close() error {
	return nil
}
