package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5

	defaultCachePoolSize = 10

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultBulkMaxWorkers = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":             "pgx",
		"database.dsn":                "",
		"database.dsn_file":           "",
		"database.max_open_conns":     defaultMaxOpenConns,
		"database.max_idle_conns":     defaultMaxIdleConns,
		"database.conn_max_lifetime":  "30m",
		"database.conn_max_idle_time": "5m",
		"database.acquire_timeout":    "2s",
		"database.tx_timeout":         "5s",
		"database.isolation":          "read_committed",
		"database.apply_schema":       false,

		"cache.enabled":      false,
		"cache.url":          "",
		"cache.url_file":     "",
		"cache.ttl":          "5m",
		"cache.dial_timeout": "500ms",
		"cache.op_timeout":   "200ms",
		"cache.pool_size":    defaultCachePoolSize,

		"authz.mode":           "static",
		"authz.approver_roles": []string{"manager", "admin"},

		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "5s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"workflow.bulk_max_workers": defaultBulkMaxWorkers,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "timekeeper",
	}
}
