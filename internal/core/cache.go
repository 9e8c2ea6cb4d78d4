package core

import (
	c "api/internal/cache"
	"api/internal/models"

	"go.uber.org/zap"
)

// NewCache builds the shared cache client, or nil when no cache is
// configured. Callers treat a nil cache as "feature disabled".
func NewCache(config models.CacheConfiguration) c.ICache {
	if config.Type == "" {
		zap.L().Info("Cache disabled")
		return nil
	}

	client, err := c.NewRueidisCache(
		config.Redis.Hosts,
		config.Redis.Password,
		config.Redis.TLSEnabled,
		config.Redis.TLSServerName,
	)
	if err != nil {
		zap.L().Fatal("Failed to initialize cache", zap.Error(err))
	}

	zap.L().Info("Cache initialized", zap.Strings("hosts", config.Redis.Hosts))
	return client
}
