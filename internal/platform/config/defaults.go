package config

const (
	defaultServerPort = 8080

	defaultMongoMaxPoolSize = 100

	defaultBreakerMaxFailures = 5
	defaultBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 100
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

		"mongo.uri":                     "mongodb://localhost:27017",
		"mongo.database":                "huntboard",
		"mongo.connect_timeout":         "10s",
		"mongo.max_pool_size":           defaultMongoMaxPoolSize,
		"mongo.breaker.max_failures":    defaultBreakerMaxFailures,
		"mongo.breaker.timeout":         "30s",
		"mongo.breaker.half_open_limit": defaultBreakerHalfOpen,

		"rate_limit.requests_per_second": defaultRateLimitRPS,
		"rate_limit.burst_size":          defaultRateLimitBurst,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
