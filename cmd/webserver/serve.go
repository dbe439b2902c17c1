package main

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/pkg/errors"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/safariproxd/webserver/internal/config"
	"gitlab.ozon.dev/safariproxd/webserver/internal/infra"
	"gitlab.ozon.dev/safariproxd/webserver/internal/metrics"
	"gitlab.ozon.dev/safariproxd/webserver/internal/server"
	"gitlab.ozon.dev/safariproxd/webserver/internal/tracing"
	"gitlab.ozon.dev/safariproxd/webserver/internal/workerpool"
	"gitlab.ozon.dev/safariproxd/webserver/pkg/cache"
)

const shutdownTimeout = 5 * time.Second

func runServe(ctx context.Context, cfg *config.Config) error {
	provider := metrics.NewPrometheusProvider()
	observers := []workerpool.Observer{workerpool.NewLogObserver(slog.Default()), provider}

	if cfg.Tracing.Enabled {
		shutdownTracing, err := tracing.Init(ctx, tracing.Config{
			Endpoint:    cfg.Tracing.Endpoint,
			ServiceName: cfg.Tracing.ServiceName,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if err != nil {
			return errors.Wrap(err, "init tracing")
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := shutdownTracing(sctx); err != nil {
				slog.Error("tracing shutdown failed", "error", err)
			}
		}()
		observers = append(observers, tracing.NewJobTracer(nil))
	}

	ln, err := net.Listen("tcp", cfg.Server.Address)
	if err != nil {
		return errors.Wrap(err, "listen")
	}

	pages := server.NewPages(cfg.Content.Dir, cache.Config{
		MaxSize: cfg.Content.CacheSize,
		TTL:     cfg.Content.CacheTTL,
	}, provider)

	var lim *limiter.Limiter
	if cfg.Server.RateLimit > 0 {
		lim = limiter.New(memory.NewStore(), limiter.Rate{
			Period: cfg.Server.RatePeriod,
			Limit:  cfg.Server.RateLimit,
		})
		slog.Info("rate limit enabled", "limit", cfg.Server.RateLimit, "period", cfg.Server.RatePeriod)
	}

	// The pool is closed only after Serve has returned, so no connection is
	// submitted to a closed pool.
	return workerpool.Scoped(cfg.Pool.Workers, func(pool *workerpool.Pool) error {
		srv := server.New(ln, pool, pages, server.Options{
			IOTimeout: cfg.Server.IOTimeout,
			Limiter:   lim,
			Metrics:   provider,
		})

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return srv.Serve(gctx) })
		g.Go(func() error {
			reportStats(gctx, pool, pages, provider, cfg.Pool.StatsInterval)
			return nil
		})

		var onShutdown []func(context.Context) error
		if cfg.Admin.Enabled {
			admin := infra.NewAdmin(cfg.Admin.Address, pool, pages)
			g.Go(admin.Run)
			onShutdown = append(onShutdown, admin.Shutdown)
		}
		g.Go(func() error { return infra.Graceful(gctx, shutdownTimeout, onShutdown...) })

		return g.Wait()
	}, workerpool.WithObserver(observers...))
}

func reportStats(ctx context.Context, pool *workerpool.Pool, pages *server.Pages, provider metrics.MetricsProvider, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pages.CleanupExpired()
			stats := pool.Stats()
			provider.UpdateQueueSize(stats.Queued)

			slog.Debug("Worker pool stats",
				"active", stats.Active,
				"total", stats.Workers,
				"queue_size", stats.Queued,
				"completed", stats.Completed,
				"failed", stats.Failed,
				"page_cache", pages.CacheSize())
		}
	}
}
