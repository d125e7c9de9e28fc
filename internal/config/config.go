package config

import (
	"strings"
	"time"
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Storage    StorageConfig    `yaml:"storage"`
	Auth       AuthConfig       `yaml:"auth"`
	Gateways   GatewaysConfig   `yaml:"gateways"`
	Cache      CacheConfig      `yaml:"cache"`
	Assignment AssignmentConfig `yaml:"assignment"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-ID"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings. RateLimitPerMinute caps API
// requests per caller; zero disables it.
type ServerConfig struct {
	Host               string        `yaml:"host"                  env:"SERVER_HOST"                  env-default:"0.0.0.0"`
	Port               int           `yaml:"port"                  env:"SERVER_PORT"                  env-default:"8080"`
	ReadTimeout        time.Duration `yaml:"read_timeout"          env:"SERVER_READ_TIMEOUT"          env-default:"10s"`
	WriteTimeout       time.Duration `yaml:"write_timeout"         env:"SERVER_WRITE_TIMEOUT"         env-default:"30s"`
	IdleTimeout        time.Duration `yaml:"idle_timeout"          env:"SERVER_IDLE_TIMEOUT"          env-default:"60s"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"      env:"SERVER_SHUTDOWN_TIMEOUT"      env-default:"10s"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"600"`
}

// DatabaseConfig holds PostgreSQL connection settings. DSN is only
// required with the postgres storage driver.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"  env-default:"preconsultation"`
}

// StorageConfig selects the aggregate store.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
}

// AuthConfig holds caller token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"preconsultation"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// GatewaysConfig holds the external services the commands call.
// Notification templates are served by the notification service.
type GatewaysConfig struct {
	CaseRegistry GatewayConfig `yaml:"case_registry" env-prefix:"GATEWAY_CASE_REGISTRY_"`
	Directory    GatewayConfig `yaml:"directory"     env-prefix:"GATEWAY_DIRECTORY_"`
	Notification GatewayConfig `yaml:"notification"  env-prefix:"GATEWAY_NOTIFICATION_"`
}

// GatewayConfig holds the settings of one HTTP gateway.
type GatewayConfig struct {
	BaseURL    string        `yaml:"base_url"    env:"BASE_URL"`
	Token      string        `yaml:"token"       env:"TOKEN"`
	Timeout    time.Duration `yaml:"timeout"     env:"TIMEOUT"     env-default:"5s"`
	RetryCount int           `yaml:"retry_count" env:"RETRY_COUNT" env-default:"2"`
	RetryWait  time.Duration `yaml:"retry_wait"  env:"RETRY_WAIT"  env-default:"200ms"`
}

// CacheConfig holds the redis template cache settings.
// The cache is disabled when Addr is empty.
type CacheConfig struct {
	Addr        string        `yaml:"addr"         env:"CACHE_ADDR"`
	Password    string        `yaml:"password"     env:"CACHE_PASSWORD"`
	DB          int           `yaml:"db"           env:"CACHE_DB"           env-default:"0"`
	TemplateTTL time.Duration `yaml:"template_ttl" env:"CACHE_TEMPLATE_TTL" env-default:"10m"`
}

// Enabled reports whether a redis address is configured.
func (c CacheConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

// AssignmentConfig holds the officer selection settings.
type AssignmentConfig struct {
	OfficerRole   string `yaml:"officer_role"   env:"ASSIGNMENT_OFFICER_ROLE"   env-default:"MO"`
	DirectoryRole string `yaml:"directory_role" env:"ASSIGNMENT_DIRECTORY_ROLE" env-default:"app_mo"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
