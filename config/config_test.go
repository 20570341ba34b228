package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/storefront_api/config"
)

// TestLoadWithPrefix_Defaults — проверка значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("ORDERS_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr: want :8080, got %q", c.HTTP.Addr)
	}
	if c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP.GinMode: want debug, got %q", c.HTTP.GinMode)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP.GracefulTimeout: want 5s, got %v", c.HTTP.GracefulTimeout)
	}

	// Metrics
	if c.Metrics.Addr != ":2112" {
		t.Fatalf("Metrics.Addr: want :2112, got %q", c.Metrics.Addr)
	}

	// Auth
	if c.Auth.ProviderURL == "" || c.Auth.CookieName != "session" {
		t.Fatalf("Auth defaults wrong: %+v", c.Auth)
	}
	if c.Auth.VerifyTimeout != 3*time.Second {
		t.Fatalf("Auth.VerifyTimeout: want 3s, got %v", c.Auth.VerifyTimeout)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "storefront-api" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Postgres
	if c.Postgres.DSN == "" {
		t.Fatalf("Postgres.DSN should have default, got empty")
	}
	if c.Postgres.MaxConns != 10 {
		t.Fatalf("Postgres.MaxConns: want 10, got %d", c.Postgres.MaxConns)
	}

	// Redis
	if c.Redis.Addr != "redis:6379" {
		t.Fatalf("Redis.Addr: want redis:6379, got %q", c.Redis.Addr)
	}

	// Kafka
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) {
		t.Fatalf("Kafka.Brokers: want [kafka:9092], got %v", c.Kafka.Brokers)
	}
	if c.Kafka.Topic != "online-orders" || c.Kafka.GroupID != "storefront-api" || c.Kafka.StartOffset != "last" {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}
	if c.Kafka.ProcessTimeout != 5*time.Second || c.Kafka.RetryInitial != 1*time.Second || c.Kafka.RetryMax != 30*time.Second {
		t.Fatalf("Kafka timeouts wrong: %+v", c.Kafka)
	}

	// Cache
	if c.Cache.Backend != "memory" || c.Cache.Capacity != 1000 || c.Cache.TTL != 5*time.Minute {
		t.Fatalf("Cache defaults wrong: %+v", c.Cache)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// TestLoadWithPrefix_Overrides — переопределение значений через окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "ORDERS_TEST_OVR"

	// HTTP
	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "2s")
	t.Setenv(p+"_HTTP_GRACEFUL_TIMEOUT", "7s")

	// Auth
	t.Setenv(p+"_AUTH_PROVIDER_URL", "http://idp.local:9000")
	t.Setenv(p+"_AUTH_VERIFY_TIMEOUT", "1500ms")
	t.Setenv(p+"_AUTH_COOKIE_NAME", "sid")

	// Cache
	t.Setenv(p+"_CACHE_BACKEND", "redis")
	t.Setenv(p+"_CACHE_TTL", "30s")

	// Kafka
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv(p+"_KAFKA_START_OFFSET", "first")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 2*time.Second || c.HTTP.GracefulTimeout != 7*time.Second {
		t.Fatalf("HTTP timeout overrides wrong: %+v", c.HTTP)
	}
	if c.Auth.ProviderURL != "http://idp.local:9000" || c.Auth.CookieName != "sid" {
		t.Fatalf("Auth overrides wrong: %+v", c.Auth)
	}
	if c.Auth.VerifyTimeout != 1500*time.Millisecond {
		t.Fatalf("Auth.VerifyTimeout: want 1.5s, got %v", c.Auth.VerifyTimeout)
	}
	if c.Cache.Backend != "redis" || c.Cache.TTL != 30*time.Second {
		t.Fatalf("Cache overrides wrong: %+v", c.Cache)
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9092"}) {
		t.Fatalf("Kafka.Brokers override wrong: %v", c.Kafka.Brokers)
	}
	if c.Kafka.StartOffset != "first" {
		t.Fatalf("Kafka.StartOffset: want first, got %q", c.Kafka.StartOffset)
	}
}
