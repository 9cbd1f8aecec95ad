// Package session holds what a running dashboard loads once and then only
// reads: the dataset (or the reason it is missing), the model provider and
// the view cache.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vctstats/cluster-dashboard/internal/cache"
	"github.com/vctstats/cluster-dashboard/internal/config"
	"github.com/vctstats/cluster-dashboard/internal/dataset"
	"github.com/vctstats/cluster-dashboard/internal/inference"
	"github.com/vctstats/cluster-dashboard/internal/metrics"
	"github.com/vctstats/cluster-dashboard/internal/models"
)

// Messages shown when a file is absent
const (
	DatasetMissingMessage = "Dataset not found. Please upload the correct file."
	ModelMissingMessage   = "Prediction model not found. Please upload the correct model file."
)

// Pinger reports whether a backing service is reachable
type Pinger func(ctx context.Context) error

type Session struct {
	dataset    *models.Dataset
	datasetErr error

	Models inference.Provider
	Cache  cache.Cache

	logger  *zap.SugaredLogger
	pingers map[string]Pinger
	closers []func()
}

// New opens the configured dataset source and loads it once. A missing or
// malformed dataset is kept as the session's dataset error; only connection
// settings that cannot be parsed fail New.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Session, error) {
	s := &Session{logger: logger.Sugar(), pingers: map[string]Pinger{}}

	opts := dataset.Options{FeatureStart: cfg.FeatureStart, FeatureEnd: cfg.FeatureEnd}
	var src dataset.Source
	switch cfg.DatasetSource {
	case config.SourcePostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("postgres pool: %w", err)
		}
		s.closers = append(s.closers, pool.Close)
		s.pingers["postgres"] = pool.Ping
		src = dataset.NewPostgresSource(pool, cfg.DatasetTable, opts)
	case config.SourceClickHouse:
		chOpts, err := clickhouse.ParseDSN(cfg.ClickHouseURL)
		if err != nil {
			return nil, fmt.Errorf("clickhouse dsn: %w", err)
		}
		conn, err := clickhouse.Open(chOpts)
		if err != nil {
			return nil, fmt.Errorf("clickhouse open: %w", err)
		}
		s.closers = append(s.closers, func() { conn.Close() })
		s.pingers["clickhouse"] = conn.Ping
		src = dataset.NewClickHouseSource(conn, cfg.DatasetTable, opts)
	case config.SourceMySQL:
		db, err := gorm.Open(gormmysql.Open(cfg.MySQLDSN), &gorm.Config{
			Logger:               gormlogger.Discard,
			DisableAutomaticPing: true,
		})
		if err != nil {
			return nil, fmt.Errorf("mysql open: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("mysql pool: %w", err)
		}
		s.closers = append(s.closers, func() { sqlDB.Close() })
		s.pingers["mysql"] = sqlDB.PingContext
		src = dataset.NewMySQLSource(db, cfg.DatasetTable, opts)
	case config.SourceSQLite:
		src = dataset.NewSQLiteSource(cfg.DatasetPath, cfg.DatasetTable, opts)
	default:
		csvSrc := dataset.NewCSVSource(cfg.DatasetPath, opts)
		csvSrc.Encoding = cfg.DatasetEncoding
		src = csvSrc
	}

	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("redis url: %w", err)
		}
		rdb := redis.NewClient(redisOpts)
		s.closers = append(s.closers, func() { rdb.Close() })
		s.pingers["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		s.Cache = cache.NewRedisCache(rdb, cfg.CacheTTL)
	} else {
		s.Cache = cache.NewLRUCache(cfg.CacheSize, cfg.CacheTTL)
	}

	if cfg.ModelCache {
		s.Models = inference.NewCachedProvider(cfg.ModelPath, nil, logger)
	} else {
		s.Models = inference.NewReloadingProvider(cfg.ModelPath, nil, logger)
	}

	s.load(ctx, src)
	return s, nil
}

// NewWithSource builds a session around an already opened source
func NewWithSource(ctx context.Context, src dataset.Source, provider inference.Provider, c cache.Cache, logger *zap.Logger) *Session {
	if c == nil {
		c = cache.Noop{}
	}
	s := &Session{Models: provider, Cache: c, logger: logger.Sugar(), pingers: map[string]Pinger{}}
	s.load(ctx, src)
	return s
}

func (s *Session) load(ctx context.Context, src dataset.Source) {
	start := time.Now()
	ds, err := src.Load(ctx)
	metrics.DatasetLoadDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.datasetErr = err
		if errors.Is(err, dataset.ErrNotFound) {
			s.logger.Warnw(DatasetMissingMessage, "error", err)
		} else {
			s.logger.Errorw("Failed to load dataset", "error", err)
		}
		return
	}

	s.dataset = ds
	metrics.DatasetRows.Set(float64(ds.Len()))
	s.logger.Infow("Dataset loaded",
		"rows", ds.Len(),
		"columns", len(ds.Schema.Columns),
		"features", len(ds.Schema.Features),
		"fingerprint", ds.Fingerprint,
	)
}

// Dataset returns the loaded dataset or the error that prevented loading it
func (s *Session) Dataset() (*models.Dataset, error) {
	if s.datasetErr != nil {
		return nil, s.datasetErr
	}
	return s.dataset, nil
}

// Checks pings every backing service and reports dataset availability
func (s *Session) Checks(ctx context.Context) map[string]bool {
	checks := map[string]bool{"dataset": s.datasetErr == nil}
	for name, ping := range s.pingers {
		checks[name] = ping(ctx) == nil
	}
	return checks
}

func (s *Session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
