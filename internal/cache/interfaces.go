package cache

type ICache interface {
	// GetRateLimit increments the caller's minute window and returns the
	// retry-after seconds when the budget is exhausted, 0 otherwise.
	GetRateLimit(userIdentifier string, requestsPerMinute int) (int, error)

	// TryAcquireLock attempts to acquire a distributed worker lock.
	TryAcquireLock(key string, instanceID string, ttlSeconds int) (bool, error)
	// RefreshLock extends the TTL of a lock held by this instance.
	RefreshLock(key string, instanceID string, ttlSeconds int) (bool, error)

	Close() error
}
