package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"quiz-cli/internal/app"
	"quiz-cli/internal/config"
	"quiz-cli/internal/domain"
	"quiz-cli/internal/infra/file"
	"quiz-cli/internal/infra/memory"
	pgstore "quiz-cli/internal/infra/postgres"
	redisstore "quiz-cli/internal/infra/redis"
	"quiz-cli/internal/infra/sqlite"
	"quiz-cli/internal/logger"
)

// services is the wired application for one command invocation.
type services struct {
	quizzes *app.QuizService
	ranking *app.RankingService
	log     *logrus.Logger
	closers []func()
}

func (s *services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func buildServices(ctx context.Context, cfg config.Config, logOut io.Writer) (*services, error) {
	log, err := logger.New(cfg.Log.Level, logOut)
	if err != nil {
		return nil, err
	}
	svc := &services{log: log}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		svc.closers = append(svc.closers, func() { _ = redisClient.Close() })
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" && (cfg.Ranking.Backend == config.BackendPostgres || cfg.Questions.Source == config.BackendPostgres) {
		if err := runMigrationsWithConfig(ctx, cfg, log); err != nil {
			svc.Close()
			return nil, err
		}
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			svc.Close()
			return nil, err
		}
		svc.closers = append(svc.closers, pool.Close)
	}

	questions, err := buildQuestionRepository(cfg, redisClient, pool, log)
	if err != nil {
		svc.Close()
		return nil, err
	}
	store, err := buildRankingStore(ctx, cfg, redisClient, pool, log)
	if err != nil {
		svc.Close()
		return nil, err
	}
	if c, ok := store.(interface{ Close() error }); ok {
		svc.closers = append(svc.closers, func() { _ = c.Close() })
	}

	svc.quizzes = app.NewQuizService(questions, store, log)
	svc.ranking = app.NewRankingService(store)
	log.WithFields(logrus.Fields{
		"questions": cfg.Questions.Path,
		"source":    cfg.Questions.Source,
		"ranking":   cfg.Ranking.Backend,
	}).Debug("services ready")
	return svc, nil
}

func buildQuestionRepository(cfg config.Config, redisClient *redis.Client, pool *pgxpool.Pool, log logrus.FieldLogger) (app.QuestionRepository, error) {
	var loader memory.QuestionLoader
	switch cfg.Questions.Source {
	case "", config.BackendFile:
		loader = file.NewQuestionLoader(cfg.Questions.Path)
	case config.BackendPostgres:
		if pool == nil {
			return nil, fmt.Errorf("postgres url not configured")
		}
		loader = pgstore.NewQuestionLoader(pool)
	default:
		return nil, fmt.Errorf("%w: questions source %q", domain.ErrUnknownBackend, cfg.Questions.Source)
	}

	ttl := questionCacheTTL(cfg)
	if redisClient != nil {
		return redisstore.NewQuestionRepository(redisClient, loader, cfg.Redis.Prefix, ttl, log), nil
	}
	return memory.NewQuestionRepository(loader, ttl), nil
}

// questionCacheTTL keeps file banks uncached unless cache_ttl is set, so edits
// show up in the next session. Database banks default to a 30s cache.
func questionCacheTTL(cfg config.Config) time.Duration {
	fallback := 30 * time.Second
	if cfg.Questions.Source == "" || cfg.Questions.Source == config.BackendFile {
		fallback = 0
	}
	return config.TTLDuration(cfg.Questions.CacheTTL, fallback)
}

func buildRankingStore(ctx context.Context, cfg config.Config, redisClient *redis.Client, pool *pgxpool.Pool, log logrus.FieldLogger) (app.RankingStore, error) {
	switch cfg.Ranking.Backend {
	case "", config.BackendFile:
		return file.NewRankingStore(cfg.Ranking.Path, log), nil
	case config.BackendMemory:
		return memory.NewRankingStore(), nil
	case config.BackendRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("redis addr not configured")
		}
		return redisstore.NewRankingStore(redisClient, cfg.Redis.Prefix, log), nil
	case config.BackendPostgres:
		if pool == nil {
			return nil, fmt.Errorf("postgres url not configured")
		}
		return pgstore.NewRankingStore(pool), nil
	case config.BackendSQLite:
		store, err := sqlite.NewRankingStore(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite ranking: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: ranking backend %q", domain.ErrUnknownBackend, cfg.Ranking.Backend)
	}
}
