// Package config centralizes environment-driven configuration so main stays
// lean. Every knob has a development default; production deployments override
// through VERIGATE_* variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full server configuration.
type Config struct {
	Addr          string
	JWTSigningKey string
	SessionTTL    time.Duration

	// Commute distance beyond which an on-site role fails the sanity check.
	MaxCommuteKm float64

	// Artificial latency for the simulated providers, so local runs feel
	// like the real integrations. Zero in tests.
	ProviderDelay time.Duration

	Redis    RedisConfig
	Postgres PostgresConfig
	Kafka    KafkaConfig
}

// RedisConfig configures the CEID cache connection.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig configures the address directory database.
type PostgresConfig struct {
	DSN string
}

// KafkaConfig configures the audit trail publisher.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	return Config{
		Addr:          envOr("VERIGATE_ADDR", ":8080"),
		JWTSigningKey: envOr("VERIGATE_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		SessionTTL:    envDuration("VERIGATE_SESSION_TTL", 30*time.Minute),
		MaxCommuteKm:  envFloat("VERIGATE_MAX_COMMUTE_KM", 150),
		ProviderDelay: envDuration("VERIGATE_PROVIDER_DELAY", 0),
		Redis: RedisConfig{
			URL:          os.Getenv("VERIGATE_REDIS_URL"),
			PoolSize:     envInt("VERIGATE_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("VERIGATE_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("VERIGATE_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("VERIGATE_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("VERIGATE_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: PostgresConfig{
			DSN: os.Getenv("VERIGATE_POSTGRES_DSN"),
		},
		Kafka: KafkaConfig{
			Brokers:    splitNonEmpty(os.Getenv("VERIGATE_KAFKA_BROKERS")),
			AuditTopic: envOr("VERIGATE_KAFKA_AUDIT_TOPIC", "verigate.audit"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitNonEmpty(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
