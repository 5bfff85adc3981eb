package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"ethub/internal/audit"
	casestore "ethub/internal/cases/store"
	"ethub/internal/platform/config"
	"ethub/internal/platform/kafka"
	"ethub/internal/platform/postgres"
	"ethub/internal/platform/redis"
	"ethub/pkg/platform/tx"
)

// storeSet holds the persistence wired from configuration.
type storeSet struct {
	cases casestore.Store
	audit audit.Store
	db    *sql.DB
	redis *redis.Client
	kafka *kafka.Producer
}

func openStores(ctx context.Context, cfg config.Config, log *slog.Logger) (*storeSet, error) {
	s := &storeSet{}

	switch cfg.CaseStore {
	case config.CaseStorePostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		s.db = db
		cases := casestore.NewPostgres(db)
		events := audit.NewPostgresStore(db)
		err = tx.RunInTx(ctx, db, func(txCtx context.Context) error {
			if err := cases.Migrate(txCtx); err != nil {
				return err
			}
			return events.Migrate(txCtx)
		})
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		s.cases, s.audit = cases, events
	default:
		s.cases, s.audit = casestore.NewInMemory(), audit.NewInMemoryStore()
	}

	client, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		s.Close()
		return nil, err
	}
	if client != nil {
		s.redis = client
		s.cases = casestore.NewRedisCache(client.Client, s.cases, cfg.CaseCacheTTL, log)
		log.Info("case cache enabled", "ttl", cfg.CaseCacheTTL.String())
	}

	producer, err := kafka.NewProducer(ctx, cfg.Kafka)
	if err != nil {
		s.Close()
		return nil, err
	}
	if producer != nil {
		s.kafka = producer
		if err := producer.EnsureTopic(ctx, 3, 1); err != nil {
			s.Close()
			return nil, err
		}
		log.Info("publishing hub status events", "topic", cfg.Kafka.Topic)
	}
	return s, nil
}

// auditSink is the audit store, plus Kafka when configured.
func (s *storeSet) auditSink() audit.Sink {
	if s.kafka == nil {
		return s.audit
	}
	return audit.Fanout{s.audit, audit.NewKafkaSink(s.kafka)}
}

// Health reports whether the configured backends answer.
func (s *storeSet) Health(ctx context.Context) error {
	if s.db != nil {
		if err := s.db.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
	}
	if s.redis != nil {
		if err := s.redis.Health(ctx); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	if s.kafka != nil {
		if err := s.kafka.Health(ctx); err != nil {
			return fmt.Errorf("kafka: %w", err)
		}
	}
	return nil
}

func (s *storeSet) Close() {
	if s.kafka != nil {
		s.kafka.Close()
	}
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
}
