package config

import "time"

// Config is the root application configuration.
type Config struct {
	App       AppConfig       `yaml:"app"`
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	AI        AIConfig        `yaml:"ai"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// AppConfig holds deployment-wide settings.
type AppConfig struct {
	// Environment selects the feature flag table: local, integration, production.
	Environment string `yaml:"environment" env:"APP_ENV" env-default:"local"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds settings for verifying identities issued by the auth provider.
type AuthConfig struct {
	JWTSecret      string `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"`
	CookieName     string `yaml:"cookie_name"      env:"AUTH_COOKIE_NAME"      env-default:"sb-access-token"`
	LogoutRedirect string `yaml:"logout_redirect"  env:"AUTH_LOGOUT_REDIRECT"  env-default:"/login"`

	// DevUserID attaches a fixed identity to requests without credentials.
	// Placeholder for local development only; Validate rejects it elsewhere.
	DevUserID    string `yaml:"dev_user_id"    env:"AUTH_DEV_USER_ID"`
	DevUserEmail string `yaml:"dev_user_email" env:"AUTH_DEV_USER_EMAIL" env-default:"dev@localhost"`
}

// AIConfig holds settings for the AI text-generation provider.
type AIConfig struct {
	Provider          string        `yaml:"provider"            env:"AI_PROVIDER"            env-default:"openrouter"`
	APIKey            string        `yaml:"api_key"             env:"AI_API_KEY"`
	BaseURL           string        `yaml:"base_url"            env:"AI_BASE_URL"`
	DefaultModel      string        `yaml:"default_model"       env:"AI_DEFAULT_MODEL"       env-default:"openai/gpt-4o-mini"`
	Timeout           time.Duration `yaml:"timeout"             env:"AI_TIMEOUT"             env-default:"60s"`
	MaxTokens         int           `yaml:"max_tokens"          env:"AI_MAX_TOKENS"          env-default:"2048"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"AI_REQUESTS_PER_MINUTE" env-default:"30"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:3000"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled              bool `yaml:"enabled"                env:"RATE_LIMIT_ENABLED"                env-default:"true"`
	RequestsPerMinute    int  `yaml:"requests_per_minute"    env:"RATE_LIMIT_REQUESTS_PER_MINUTE"    env-default:"120"`
	GenerationsPerMinute int  `yaml:"generations_per_minute" env:"RATE_LIMIT_GENERATIONS_PER_MINUTE" env-default:"5"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
