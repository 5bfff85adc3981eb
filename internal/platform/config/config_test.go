package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, CaseStoreMemory, cfg.CaseStore)
	assert.Equal(t, 5*time.Minute, cfg.CaseCacheTTL)
	assert.True(t, cfg.Features.WelshEnabled)
	assert.False(t, cfg.SeedDemoCase)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "ethub.hub-status-events", cfg.Kafka.Topic)
	assert.NotEmpty(t, cfg.Auth.JWTSigningKey)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HUB_ADDR", ":9090")
	t.Setenv("CASE_STORE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://ethub@localhost/ethub?sslmode=disable")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("REDIS_POOL_SIZE", "25")
	t.Setenv("CASE_CACHE_TTL", "90s")
	t.Setenv("WELSH_ENABLED", "false")
	t.Setenv("SEED_DEMO_CASE", "true")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092,")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, CaseStorePostgres, cfg.CaseStore)
	assert.Equal(t, 25, cfg.Redis.PoolSize)
	assert.Equal(t, 90*time.Second, cfg.CaseCacheTTL)
	assert.False(t, cfg.Features.WelshEnabled)
	assert.True(t, cfg.SeedDemoCase)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		msg  string
	}{
		{"bad duration", map[string]string{"CASE_CACHE_TTL": "soon"}, "CASE_CACHE_TTL"},
		{"bad bool", map[string]string{"WELSH_ENABLED": "maybe"}, "WELSH_ENABLED"},
		{"bad int", map[string]string{"REDIS_POOL_SIZE": "many"}, "REDIS_POOL_SIZE"},
		{"unknown store", map[string]string{"CASE_STORE": "dynamo"}, "CASE_STORE"},
		{"postgres without url", map[string]string{"CASE_STORE": "postgres"}, "DATABASE_URL"},
		{"zero ttl", map[string]string{"CASE_CACHE_TTL": "0s"}, "CASE_CACHE_TTL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
