package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListingStatus is the canonical listing lifecycle vocabulary.
type ListingStatus string

const (
	ListingStatusDraft    ListingStatus = "draft"
	ListingStatusActive   ListingStatus = "active"
	ListingStatusSold     ListingStatus = "sold"
	ListingStatusArchived ListingStatus = "archived"
)

// AllListingStatuses is the fixed enumeration used to zero-fill the
// status breakdown so every bucket is always present.
var AllListingStatuses = []ListingStatus{
	ListingStatusDraft,
	ListingStatusActive,
	ListingStatusSold,
	ListingStatusArchived,
}

type Listing struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index"                       json:"user_id"`
	User                User            `                                                      json:"-"`
	Title               string          `gorm:"not null;default:null"                          json:"title"   validate:"required"`
	Description         string          `                                                      json:"description"`
	Status              ListingStatus   `gorm:"type:varchar(16);not null;default:'draft'"      json:"status"`
	Price               float64         `gorm:"type:numeric(12,2);not null;default:0"          json:"price"`
	Category            string          `gorm:"type:varchar(64)"                               json:"category"`
	MarketplaceListings json.RawMessage `gorm:"type:jsonb"                                     json:"marketplace_listings"`
	CreatedAt           time.Time       `                                                      json:"created_at"`
	UpdatedAt           time.Time       `                                                      json:"updated_at"`
	DeletedAt           gorm.DeletedAt  `gorm:"index"                                          json:"deleted_at"`
}

// AdminListingListItem is a listing row enriched with its owner identity.
type AdminListingListItem struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Status    ListingStatus `json:"status"`
	Price     float64       `json:"price"`
	Category  string        `json:"category"`
	UserID    uuid.UUID     `json:"user_id"`
	Username  string        `json:"username"`
	CreatedAt time.Time     `json:"created_at"`
}

// ListingQueryParams defines pagination and filter parameters for the
// admin listing list. Search matches title case-insensitively.
type ListingQueryParams struct {
	Page   int    `json:"page"   validate:"omitempty,min=1"`
	Limit  int    `json:"limit"  validate:"omitempty,min=1,max=200"`
	Search string `json:"search" validate:"omitempty,max=100"`
	Status string `json:"status" validate:"omitempty,oneof=draft active sold archived"`
}
