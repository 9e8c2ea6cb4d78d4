package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AdminActivityLog is an append-only audit row recording an admin action.
type AdminActivityLog struct {
	ID        uuid.UUID       `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	AdminID   uuid.UUID       `gorm:"type:uuid;not null;index"                       json:"admin_id"`
	Action    string          `gorm:"type:varchar(64);not null"                      json:"action"`
	Details   json.RawMessage `gorm:"type:jsonb"                                     json:"details"`
	IPAddress string          `gorm:"type:varchar(45)"                               json:"ip_address"`
	CreatedAt time.Time       `gorm:"index"                                          json:"created_at"`
}

// ActivityEntry is the shape handed to the activity logger by services.
// Details is serialized to the jsonb column on write.
type ActivityEntry struct {
	AdminID   uuid.UUID
	Action    string
	Details   map[string]any
	IPAddress string
}

// AdminActivityItem is an audit row joined with the acting admin identity.
type AdminActivityItem struct {
	ID        uuid.UUID       `json:"id"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details"`
	IPAddress string          `json:"ip_address"`
	CreatedAt time.Time       `json:"created_at"`
	AdminID   uuid.UUID       `json:"admin_id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
}

// ActivityQueryParams defines pagination for the activity feed.
type ActivityQueryParams struct {
	Page  int `json:"page"  validate:"omitempty,min=1"`
	Limit int `json:"limit" validate:"omitempty,min=1,max=200"`
}
