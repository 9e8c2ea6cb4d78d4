package models

// Configuration is the root of all runtime configuration, loaded by the
// configuration package from defaults, an optional YAML file and env vars.
type Configuration struct {
	Profile  string                  `mapstructure:"profile"`
	App      AppConfiguration        `mapstructure:"app"`
	Database DatabaseConfiguration   `mapstructure:"database"`
	Cache    CacheConfiguration      `mapstructure:"cache"`
	Billing  BillingConfiguration    `mapstructure:"billing"`
	Activity ActivityRetentionConfig `mapstructure:"activity"`
}

type AppConfiguration struct {
	Port               int      `mapstructure:"port"`
	LogLevel           string   `mapstructure:"log_level"`
	JWTSecret          string   `mapstructure:"jwt_secret"     validate:"required,min=32"`
	AdminEmail         string   `mapstructure:"admin_email"    validate:"required,email"`
	AdminPassword      string   `mapstructure:"admin_password" validate:"required,min=8"`
	AllowedOrigins     []string `mapstructure:"allowed_origins"`
	TrustedProxies     []string `mapstructure:"trusted_proxies"`
	RateLimitPerMinute int      `mapstructure:"rate_limit_per_minute"`
}

type DatabaseConfiguration struct {
	Host               string `mapstructure:"host"     validate:"required"`
	Port               int32  `mapstructure:"port"`
	User               string `mapstructure:"user"     validate:"required"`
	Password           string `mapstructure:"password" validate:"required"`
	Name               string `mapstructure:"name"     validate:"required"`
	SSLMode            string `mapstructure:"ssl_mode"`
	StatementTimeoutMS int    `mapstructure:"statement_timeout_ms"`
	MaxOpenConns       int    `mapstructure:"max_open_conns"`
	MaxIdleConns       int    `mapstructure:"max_idle_conns"`
}

type CacheConfiguration struct {
	Type  string             `mapstructure:"type" validate:"omitempty,oneof=redis"`
	Redis RedisConfiguration `mapstructure:"redis"`
}

type RedisConfiguration struct {
	Hosts         []string `mapstructure:"hosts"`
	Password      string   `mapstructure:"password"`
	TLSEnabled    bool     `mapstructure:"tls_enabled"`
	TLSServerName string   `mapstructure:"tls_server_name"`
}

// BillingConfiguration carries the per-tier unit prices used by the
// revenue estimate. These are business-policy placeholders, not derived
// from real transactions.
type BillingConfiguration struct {
	PremiumMonthlyPrice     float64 `mapstructure:"premium_monthly_price"      validate:"gte=0"`
	PremiumPlusMonthlyPrice float64 `mapstructure:"premium_plus_monthly_price" validate:"gte=0"`
}

type ActivityRetentionConfig struct {
	RetentionDays    int `mapstructure:"retention_days"     validate:"gte=1"`
	RunIntervalHours int `mapstructure:"run_interval_hours" validate:"gte=1"`
}
