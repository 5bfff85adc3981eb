package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	pstrings "ethub/pkg/platform/strings"
)

// Case store backends.
const (
	CaseStoreMemory   = "memory"
	CaseStorePostgres = "postgres"
)

// Config is the full service configuration.
type Config struct {
	Server       Server
	Redis        RedisConfig
	Postgres     PostgresConfig
	Kafka        KafkaConfig
	Auth         AuthConfig
	Features     FeaturesConfig
	CaseStore    string
	CaseCacheTTL time.Duration
	SeedDemoCase bool
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// RedisConfig configures the case cache. An empty URL disables caching.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig configures the case and audit stores.
type PostgresConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

// KafkaConfig configures publishing of hub status events. No brokers
// disables publishing.
type KafkaConfig struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// AuthConfig validates session tokens issued by the identity provider.
type AuthConfig struct {
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string
}

// FeaturesConfig holds static feature toggles.
type FeaturesConfig struct {
	WelshEnabled bool
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var p parser
	cfg := Config{
		Server: Server{
			Addr:            p.str("HUB_ADDR", ":8080"),
			RequestTimeout:  p.duration("HUB_REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout: p.duration("HUB_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     p.integer("REDIS_POOL_SIZE", 10),
			MinIdleConns: p.integer("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  p.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  p.duration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: p.duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: PostgresConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: p.integer("DATABASE_MAX_OPEN_CONNS", 10),
			MaxIdleConns: p.integer("DATABASE_MAX_IDLE_CONNS", 5),
		},
		Kafka: KafkaConfig{
			Brokers:  p.list("KAFKA_BROKERS"),
			Topic:    p.str("KAFKA_AUDIT_TOPIC", "ethub.hub-status-events"),
			ClientID: p.str("KAFKA_CLIENT_ID", "ethub"),
		},
		Auth: AuthConfig{
			// Use a default for development - should be overridden in production
			JWTSigningKey: p.str("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
			JWTIssuer:     p.str("JWT_ISSUER", "et-idam"),
			JWTAudience:   p.str("JWT_AUDIENCE", "et-respondent-hub"),
		},
		Features: FeaturesConfig{
			WelshEnabled: p.boolean("WELSH_ENABLED", true),
		},
		CaseStore:    p.str("CASE_STORE", CaseStoreMemory),
		CaseCacheTTL: p.duration("CASE_CACHE_TTL", 5*time.Minute),
		SeedDemoCase: p.boolean("SEED_DEMO_CASE", false),
	}
	if p.err != nil {
		return Config{}, p.err
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.CaseStore {
	case CaseStoreMemory:
	case CaseStorePostgres:
		if c.Postgres.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when CASE_STORE=%s", CaseStorePostgres)
		}
	default:
		return fmt.Errorf("CASE_STORE must be %q or %q, got %q", CaseStoreMemory, CaseStorePostgres, c.CaseStore)
	}
	if c.CaseCacheTTL <= 0 {
		return fmt.Errorf("CASE_CACHE_TTL must be positive")
	}
	return nil
}

// parser records the first malformed variable so FromEnv reports it once.
type parser struct {
	err error
}

func (p *parser) str(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (p *parser) list(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	return pstrings.DedupeAndTrim(strings.Split(v, ","))
}

func (p *parser) integer(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return n
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return d
}

func (p *parser) boolean(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return b
}

func (p *parser) fail(key string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
	}
}
