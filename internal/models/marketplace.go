package models

import (
	"time"

	"github.com/google/uuid"
)

// MarketplaceAccount is a user's connected external-marketplace credential.
type MarketplaceAccount struct {
	ID          uuid.UUID `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Marketplace string    `gorm:"type:varchar(32);not null"                      json:"marketplace"`
	IsActive    bool      `gorm:"not null;default:true"                          json:"is_active"`
	CreatedAt   time.Time `                                                      json:"created_at"`
	UpdatedAt   time.Time `                                                      json:"updated_at"`
}

// MarketplaceListing records a listing posted to an external marketplace.
type MarketplaceListing struct {
	ID          uuid.UUID `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	ListingID   uuid.UUID `gorm:"type:uuid;not null;index"                       json:"listing_id"`
	Marketplace string    `gorm:"type:varchar(32);not null"                      json:"marketplace"`
	ExternalID  string    `gorm:"type:varchar(128)"                              json:"external_id"`
	PostedAt    time.Time `gorm:"not null;default:now()"                         json:"posted_at"`
}
