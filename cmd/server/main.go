// @title           Blog System
// @version         1.0
// @description     Server-rendered blog with session authentication and admin moderation.
// @BasePath        /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/99minutos/blog-system/internal/api"
	"github.com/99minutos/blog-system/internal/api/handler"
	"github.com/99minutos/blog-system/internal/core/service"
	"github.com/99minutos/blog-system/internal/infrastructure/db/mongo"
	"github.com/99minutos/blog-system/internal/infrastructure/db/redis"
	"github.com/99minutos/blog-system/internal/pkg/config"
	"github.com/99minutos/blog-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "blog",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Document store ---
	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	userRepo := mongo.NewUserRepository(db)
	postRepo := mongo.NewPostRepository(db)
	if err := mongo.EnsureIndexes(ctx, userRepo, postRepo); err != nil {
		return err
	}

	checks := map[string]handler.PingFunc{"mongodb": handler.MongoPing(db)}

	// --- Sessions ---
	store, rdb, err := newSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Warn().Err(err).Msg("redis close")
			}
		}()
		checks["redis"] = handler.RedisPing(rdb)
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, logger.Component("auth"))
	postService := service.NewPostService(postRepo, logger.Component("posts"))

	if cfg.SeedDemoUsers {
		if err := authService.EnsureDemoUsers(ctx); err != nil {
			log.Error().Err(err).Msg("error creating demo users")
		}
	}

	var registry *prometheus.Registry
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	e, err := api.NewRouter(api.Dependencies{
		Auth:         authService,
		Posts:        postService,
		Sessions:     store,
		SessionName:  cfg.Session.Name,
		HealthChecks: checks,
		Metrics:      registry,
		Swagger:      cfg.IsDevelopment(),
		Log:          logger.Component("http"),
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("sessions", cfg.Session.Backend).Msg("server started")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}

// newSessionStore picks the configured backend. The Redis client is returned
// so the caller can close it and probe it for readiness.
func newSessionStore(ctx context.Context, cfg *config.Config) (sessions.Store, *goredis.Client, error) {
	if cfg.Session.Backend == config.SessionBackendFilesystem {
		return newFilesystemStore(cfg.Session), nil, nil
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	store := redis.NewSessionStore(rdb, redis.SessionOptions{
		Secret: cfg.Session.Secret,
		MaxAge: cfg.Session.MaxAge,
		Secure: cfg.Session.Secure,
	})
	return store, rdb, nil
}

// newFilesystemStore keeps the cookie and the securecookie codec on the same
// max age.
func newFilesystemStore(cfg config.SessionConfig) *sessions.FilesystemStore {
	fs := sessions.NewFilesystemStore(cfg.Dir, []byte(cfg.Secret))
	fs.Options = &sessions.Options{
		Path:     "/",
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	fs.MaxAge(int(cfg.MaxAge.Seconds()))
	return fs
}
