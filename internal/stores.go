package internal

import (
	"context"
	"fmt"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/config"
	"github.com/2beens/fitcoach/internal/db"
	"github.com/2beens/fitcoach/internal/kvstore"
)

type stores struct {
	records kvstore.Store
	caches  kvstore.Store

	dbPool        *pgxpool.Pool
	postgresStore *kvstore.PostgresStore

	// extra prometheus collectors the chosen backends bring along
	collectors []prometheus.Collector
}

// setupStores picks the record and cache backends named in the config.
// Onboarding records and caches may live in different backends.
func setupStores(
	ctx context.Context,
	cfg *config.Config,
	redisClient *redis.Client,
	tracingEnabled bool,
) (*stores, error) {
	s := &stores{}

	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			TracingEnabled: tracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}

		connString := db.ConnString(cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDBName)
		if err := db.RunMigrations(ctx, connString); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}

		s.dbPool = dbPool
		s.postgresStore = kvstore.NewPostgresStore(dbPool)
		s.records = s.postgresStore
		s.collectors = append(s.collectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	case config.StoreBackendRedis:
		s.records = kvstore.NewRedisStore(redisClient)
	case config.StoreBackendMemory:
		log.Warnln("onboarding records kept in memory, they will not survive a restart")
		s.records = kvstore.NewMemStore()
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}

	switch cfg.CacheBackend {
	case config.CacheBackendFree:
		s.caches = kvstore.NewFreecacheStore(cfg.FreecacheSizeMB)
	case config.CacheBackendRedis:
		s.caches = kvstore.NewRedisStore(redisClient)
	case config.CacheBackendMemory:
		s.caches = kvstore.NewMemStore()
	default:
		s.close()
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.CacheBackend)
	}

	log.Debugf("stores set up: records [%s], caches [%s]", cfg.StoreBackend, cfg.CacheBackend)

	return s, nil
}

func (s *stores) close() {
	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}
}
