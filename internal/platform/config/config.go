// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Database  DatabaseConfig  `koanf:"database"`
	Cache     CacheConfig     `koanf:"cache"`
	Authz     AuthzConfig     `koanf:"authz"`
	Client    ClientConfig    `koanf:"client"`
	Workflow  WorkflowConfig  `koanf:"workflow"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

// DatabaseConfig holds connection pool and transaction settings.
//
// Driver selects the database/sql driver: "pgx" (jackc/pgx stdlib),
// "postgres" (lib/pq), or "sqlite" (modernc.org/sqlite).
type DatabaseConfig struct {
	Driver          string        `koanf:"driver" validate:"oneof=pgx postgres sqlite"`
	DSN             string        `koanf:"dsn" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"min=0,ltefield=MaxOpenConns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	AcquireTimeout  time.Duration `koanf:"acquire_timeout" validate:"gt=0"`
	TxTimeout       time.Duration `koanf:"tx_timeout" validate:"min=0"`
	Isolation       string        `koanf:"isolation" validate:"omitempty,oneof=default read_committed repeatable_read serializable"`
	ApplySchema     bool          `koanf:"apply_schema"`
}

// CacheConfig holds the redis read cache settings. An empty URL or
// Enabled=false disables the cache.
type CacheConfig struct {
	Enabled     bool          `koanf:"enabled"`
	URL         string        `koanf:"url"`
	TTL         time.Duration `koanf:"ttl"`
	DialTimeout time.Duration `koanf:"dial_timeout"`
	OpTimeout   time.Duration `koanf:"op_timeout"`
	PoolSize    int           `koanf:"pool_size"`
}

// AuthzConfig selects how approvals are authorized. Mode "static" checks
// roles in-process; mode "remote" asks the policy service at client.base_url.
type AuthzConfig struct {
	Mode          string   `koanf:"mode" validate:"oneof=static remote"`
	ApproverRoles []string `koanf:"approver_roles"`
}

// ClientConfig holds downstream HTTP client settings for the policy service.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url" validate:"required,url"`
	Timeout        time.Duration        `koanf:"timeout" validate:"gt=0"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts" validate:"min=1"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier" validate:"gt=0"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures" validate:"min=1"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting. A zero rate disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// WorkflowConfig holds application-layer tuning.
type WorkflowConfig struct {
	BulkMaxWorkers int `koanf:"bulk_max_workers" validate:"min=1"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
