package activity

// Action tags recorded in the audit log.
const (
	ViewDashboard  = "view_dashboard"
	UserUpdated    = "user_updated"
	UserDeleted    = "user_deleted"
	ListingDeleted = "listing_deleted"
)
