package config

import (
	"time"

	"github.com/heartmarshall/infofinder-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Lookup    LookupConfig    `yaml:"lookup"`
	Session   SessionConfig   `yaml:"session"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Session-Id,X-Request-Id"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"X-Session-Id,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// LookupConfig holds the upstream lookup endpoints. Each URL receives the
// identifier as its category's query parameter.
type LookupConfig struct {
	UserAgent  string `yaml:"user_agent"  env:"LOOKUP_USER_AGENT"  env-default:"InfoFinder/1.0"`
	MobileURL  string `yaml:"mobile_url"  env:"LOOKUP_MOBILE_URL"  env-default:"https://ox.taitaninfo.workers.dev/"`
	AadharURL  string `yaml:"aadhar_url"  env:"LOOKUP_AADHAR_URL"  env-default:"https://ox.taitaninfo.workers.dev/"`
	VehicleURL string `yaml:"vehicle_url" env:"LOOKUP_VEHICLE_URL" env-default:"https://ox.taitaninfo.workers.dev/"`
	FamilyURL  string `yaml:"family_url"  env:"LOOKUP_FAMILY_URL"  env-default:"https://ox.taitaninfo.workers.dev/"`
	IFSCURL    string `yaml:"ifsc_url"    env:"LOOKUP_IFSC_URL"    env-default:"https://ifsc.taitaninfo.workers.dev/"`
}

// SessionConfig holds the in-memory session store settings.
type SessionConfig struct {
	Capacity int `yaml:"capacity" env:"SESSION_CAPACITY" env-default:"10000"`
}

// RateLimitConfig holds per-client rate limiting settings.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"60"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"1m"`
	IdleTTL           time.Duration `yaml:"idle_ttl"            env:"RATE_LIMIT_IDLE_TTL"            env-default:"10m"`
}

// MetricsConfig holds prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// BaseURLs maps each category to its configured endpoint.
func (c LookupConfig) BaseURLs() map[domain.Category]string {
	return map[domain.Category]string{
		domain.CategoryMobile:     c.MobileURL,
		domain.CategoryNationalID: c.AadharURL,
		domain.CategoryVehicle:    c.VehicleURL,
		domain.CategoryFamily:     c.FamilyURL,
		domain.CategoryBankCode:   c.IFSCURL,
	}
}
