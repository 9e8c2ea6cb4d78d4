package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionTier is the canonical tier vocabulary. Only premium and
// premium_plus carry a price in the revenue estimate.
type SubscriptionTier string

const (
	TierFree        SubscriptionTier = "free"
	TierStarter     SubscriptionTier = "starter"
	TierPro         SubscriptionTier = "pro"
	TierPremium     SubscriptionTier = "premium"
	TierPremiumPlus SubscriptionTier = "premium_plus"
	TierEnterprise  SubscriptionTier = "enterprise"
)

type User struct {
	ID               uuid.UUID        `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	Username         string           `gorm:"uniqueIndex;not null;default:null"              json:"username"       validate:"required"`
	Email            string           `gorm:"uniqueIndex;not null;default:null"              json:"email"          validate:"required,email"`
	HashedPassword   string           `gorm:"not null"                                       json:"-"`
	SubscriptionTier SubscriptionTier `gorm:"type:varchar(32);not null;default:'free'"       json:"subscription_tier"`
	Points           int              `gorm:"not null;default:0"                             json:"points"`
	Level            int              `gorm:"not null;default:1"                             json:"level"`
	IsAdmin          bool             `gorm:"not null;default:false"                         json:"is_admin"`
	CreatedAt        time.Time        `                                                      json:"created_at"`
	UpdatedAt        time.Time        `                                                      json:"updated_at"`
}

// AdminUserListItem is a user row enriched with per-user listing and
// connected marketplace account counts.
type AdminUserListItem struct {
	ID               uuid.UUID        `json:"id"`
	Username         string           `json:"username"`
	Email            string           `json:"email"`
	SubscriptionTier SubscriptionTier `json:"subscription_tier"`
	Points           int              `json:"points"`
	Level            int              `json:"level"`
	IsAdmin          bool             `json:"is_admin"`
	ListingCount     int64            `json:"listing_count"`
	AccountCount     int64            `json:"account_count"`
	CreatedAt        time.Time        `json:"created_at"`
}

// UserQueryParams defines pagination and filter parameters for the admin
// user list. Search matches username or email case-insensitively.
type UserQueryParams struct {
	Page   int    `json:"page"   validate:"omitempty,min=1"`
	Limit  int    `json:"limit"  validate:"omitempty,min=1,max=200"`
	Search string `json:"search" validate:"omitempty,max=100"`
	Tier   string `json:"tier"   validate:"omitempty,oneof=free starter pro premium premium_plus enterprise"`
}

// UserUpdateBody carries the partial field set an admin may change.
// Pointers distinguish "not provided" from zero values.
type UserUpdateBody struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=40"`
	Email    *string `json:"email"    validate:"omitempty,email,max=254"`
	Tier     *string `json:"tier"     validate:"omitempty,oneof=free starter pro premium premium_plus enterprise"`
	Points   *int    `json:"points"   validate:"omitempty,min=0"`
	Level    *int    `json:"level"    validate:"omitempty,min=1"`
	IsAdmin  *bool   `json:"is_admin"`
}
