package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/actuallystonmai/course-finder/internal/catalog"
	"github.com/actuallystonmai/course-finder/internal/config"
	"github.com/actuallystonmai/course-finder/internal/handler"
	"github.com/actuallystonmai/course-finder/internal/inflight"
	"github.com/actuallystonmai/course-finder/internal/logger"
	"github.com/actuallystonmai/course-finder/internal/repository"
	"github.com/actuallystonmai/course-finder/internal/router"
	"github.com/actuallystonmai/course-finder/internal/service"
	"github.com/actuallystonmai/course-finder/internal/youtube"
	"github.com/actuallystonmai/course-finder/seeds"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ------------ Catalog (PostgreSQL optional) ---------------
	cat := catalog.Builtin()
	if cfg.DatabaseURL != "" {
		pool, err := connectDB(ctx, cfg)
		if err != nil {
			log.Fatal("failed to connect to database", "error", err)
		}
		defer pool.Close()

		// for migrate-down using CLI command
		if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
			if err := migrate(ctx, pool, "migrations/create_tables.down.sql"); err != nil {
				log.Fatal("failed to migrate down", "error", err)
			}
			log.Info("migrations dropped")
			return
		}

		if err := migrate(ctx, pool, "migrations/create_tables.up.sql"); err != nil {
			log.Fatal("failed to migrate up", "error", err)
		}

		repo := repository.NewRepository(pool)
		if err := checkSeed(ctx, repo, pool, log); err != nil {
			log.Fatal("failed to check seed", "error", err)
		}

		cat, err = loadCatalog(ctx, repo, log)
		if err != nil {
			log.Fatal("failed to load catalog", "error", err)
		}
		log.Info("catalog loaded from PostgreSQL")
	}

	// ------------ In-flight guard (Redis optional) ---------------
	var guard inflight.Guard = inflight.NewMemoryGuard(cfg.InFlightTTL)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal("failed to parse redis url", "error", err)
		}
		client := redis.NewClient(opts)
		defer client.Close()

		redisGuard := inflight.NewRedisGuard(client, cfg.InFlightTTL)
		if err := redisGuard.Ping(ctx); err != nil {
			log.Fatal("failed to connect to redis", "error", err)
		}
		guard = redisGuard
		log.Info("connected to Redis")
	}

	// ------------ External search (optional) ---------------
	var searcher service.Searcher
	if cfg.ExternalMode() {
		client, err := youtube.NewClient(ctx, youtube.Config{
			APIKey:   cfg.YouTubeAPIKey,
			Endpoint: cfg.YouTubeEndpoint,
			Timeout:  cfg.UpstreamTimeout,
		}, log)
		if err != nil {
			log.Fatal("failed to create youtube client", "error", err)
		}
		searcher = client
		log.Info("live YouTube search enabled")
	} else {
		log.Warn("no YOUTUBE_API_KEY configured, serving curated courses only")
	}

	// ---------------- Server --------------------
	svc := service.NewService(cat, searcher, guard, log)
	accessLog := log.Component("http").Writer()
	defer accessLog.Close()

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.Setup(handler.NewHandler(svc, log), router.Options{
			AccessLog:  accessLog,
			Timeout:    cfg.RequestTimeout,
			TrustProxy: cfg.TrustProxy,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	}()

	log.Info("server running", "addr", cfg.Addr())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server stopped", "error", err)
	}
	log.Info("server stopped")
}

func connectDB(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := waitForDB(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(1 * time.Second):
		}
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func migrate(ctx context.Context, pool *pgxpool.Pool, path string) error {
	sql, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	return nil
}

func checkSeed(ctx context.Context, repo *repository.Repository, pool *pgxpool.Pool, log *logger.Logger) error {
	count, err := repo.CountCourses(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("database already seeded, skipping", "courses", count)
		return nil
	}
	return seeds.Setup(ctx, pool, catalog.Builtin().Table(), log)
}

// loadCatalog reads the stored table once; categories the database lacks
// are served from the built-in table.
func loadCatalog(ctx context.Context, repo *repository.Repository, log *logger.Logger) (*catalog.Catalog, error) {
	table, err := repo.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	stored, err := catalog.New(table)
	if err != nil {
		return nil, err
	}
	if missing := stored.Missing(); len(missing) > 0 {
		log.Warn("categories missing from database, using built-in courses", "categories", missing)
	}
	return stored.WithFallback(catalog.Builtin()), nil
}
