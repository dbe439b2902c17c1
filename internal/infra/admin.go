package infra

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gitlab.ozon.dev/safariproxd/webserver/internal/workerpool"
)

type PoolStats interface {
	Stats() workerpool.Stats
}

type CacheManager interface {
	CacheSize() int
	CleanupExpired()
}

type AdminServer struct {
	srv          *http.Server
	pool         PoolStats
	cacheManager CacheManager
}

func NewAdmin(addr string, pool PoolStats, cacheManager CacheManager) *AdminServer {
	mux := chi.NewMux()
	as := &AdminServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
		},
		pool:         pool,
		cacheManager: cacheManager,
	}

	mux.Get("/healthz", as.handleHealth)
	mux.Get("/stats", as.handleStats)
	mux.Post("/cache/cleanup", as.handleCacheCleanup)
	mux.Handle("/metrics", promhttp.Handler())

	return as
}

func (a *AdminServer) Handler() http.Handler {
	return a.srv.Handler
}

func (a *AdminServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	if _, err := w.Write([]byte("ok")); err != nil {
		slog.Warn("admin write failed", "error", err)
	}
}

type statsResponse struct {
	Pool      workerpool.Stats `json:"pool"`
	PageCache int              `json:"page_cache"`
}

func (a *AdminServer) handleStats(w http.ResponseWriter, _ *http.Request) {
	resp := statsResponse{Pool: a.pool.Stats()}
	if a.cacheManager != nil {
		resp.PageCache = a.cacheManager.CacheSize()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode stats", "error", err)
		http.Error(w, "encoding error", http.StatusInternalServerError)
	}
}

func (a *AdminServer) handleCacheCleanup(w http.ResponseWriter, _ *http.Request) {
	if a.cacheManager == nil {
		http.Error(w, "cache not available", http.StatusServiceUnavailable)
		return
	}

	a.cacheManager.CleanupExpired()

	if _, err := w.Write([]byte("expired cache entries cleaned")); err != nil {
		slog.Warn("admin write failed", "error", err)
	}
}

// Run serves until Shutdown is called.
func (a *AdminServer) Run() error {
	slog.Info("admin HTTP listening", "addr", a.srv.Addr)
	if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *AdminServer) Shutdown(ctx context.Context) error {
	return a.srv.Shutdown(ctx)
}
