package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"rental_quotes/internal/adapter/http/handlers"
	"rental_quotes/internal/adapter/http/routes"
	"rental_quotes/internal/infrastructure/ratelimit"
	"rental_quotes/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the email outbox worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := buildApp(ctx, cfg, logger)
		if err != nil {
			return err
		}

		g, gctx := errgroup.WithContext(ctx)

		limiter := newPublicLimiter(gctx, g)
		router := routes.NewRouter(routes.Dependencies{
			Quotes:       handlers.NewQuoteHandler(a.quotes, logger),
			AdminQuotes:  handlers.NewAdminQuoteHandler(a.quotes, logger),
			EmailQueue:   handlers.NewEmailQueueHandler(a.outbox, cfg.OutboxBatch, logger),
			PublicLimit:  limiter,
			JwtSecret:    cfg.JwtSecret,
			CronSecret:   cfg.CronSecret,
			Logger:       logger,
			IsProduction: cfg.IsProduction(),
		})

		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		g.Go(func() error {
			logger.Info("http server listening", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			logger.Info("shutting down http server")
			return srv.Shutdown(shutdownCtx)
		})
		g.Go(func() error {
			return worker.NewOutboxWorker(a.outbox, cfg.OutboxInterval, cfg.OutboxBatch, logger).Run(gctx)
		})

		return g.Wait()
	},
}

// newPublicLimiter shares counters through Redis when REDIS_ADDR is set and
// keeps them in memory otherwise.
func newPublicLimiter(ctx context.Context, g *errgroup.Group) ratelimit.Limiter {
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, rate limiting fails open until it recovers", zap.Error(err))
		}
		g.Go(func() error {
			<-ctx.Done()
			return rdb.Close()
		})
		logger.Info("public rate limit backed by redis", zap.String("addr", cfg.RedisAddr))
		return ratelimit.NewRedisLimiter(rdb, "rl", cfg.PublicRateLimit, cfg.PublicRateWindow)
	}

	mem := ratelimit.NewMemoryLimiter(cfg.PublicRateLimit, cfg.PublicRateWindow)
	g.Go(func() error {
		mem.RunCleanup(ctx, 10*time.Minute, logger)
		return nil
	})
	return mem
}
