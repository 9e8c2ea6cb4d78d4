package configuration

const AppName = "quicksell"

// JWT audience for admin API access tokens.
const AudienceAccessToken = "app:*"

const (
	CacheAppRateLimitKey      = "app:ratelimit:%s"
	CacheAppWorkerLockKey     = "app:worker:lock:%s" //nolint:gosec // not a credential
	CacheAppWorkerLockTTL     = 60
	CacheAppWorkerLockRefresh = 55
)

// Pagination defaults for the admin list endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 200
)

// Aggregation windows used by the metrics report.
const (
	RecentUserWindowDays = 7
	ActiveUserWindowDays = 30
	TopUsersLimit        = 10
	DefaultAnalyticsDays = 7
)

// ActivityPurgeBatchSize limits how many audit rows one retention cycle
// deletes per pass.
const ActivityPurgeBatchSize = 1000

var ArrayConfigFields = []string{
	"app.allowed_origins",
	"app.trusted_proxies",
	"cache.redis.hosts",
}

var ConfigFileSearchPaths = []string{
	"./config.yaml",
	"templates/config.yaml",
}
