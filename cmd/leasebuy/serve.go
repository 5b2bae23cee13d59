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

	"github.com/rpgo/carlease-calculator/internal/api"
	"github.com/rpgo/carlease-calculator/internal/cache"
	"github.com/rpgo/carlease-calculator/internal/calculation"
	"github.com/rpgo/carlease-calculator/internal/store/sqlite"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr, dbPath, redisAddr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator API over HTTP",
		Long: `Serve the calculator API. Settings come from .env and LEASEBUY_*
environment variables; flags override both. Use --db ":memory:" for a
throwaway scenario store and --redis to share the projection cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := opts.settings
			if cmd.Flags().Changed("addr") {
				s.Addr = addr
			}
			if cmd.Flags().Changed("db") {
				s.DBPath = dbPath
			}
			if cmd.Flags().Changed("redis") {
				s.RedisAddr = redisAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, s.Addr, s.DBPath, s.RedisAddr, s.CacheTTL, opts.logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (LEASEBUY_ADDR)")
	cmd.Flags().StringVar(&dbPath, "db", ":memory:", "SQLite database path (LEASEBUY_DB)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for the projection cache (LEASEBUY_REDIS_ADDR)")
	return cmd
}

// newProjectionCache prefers Redis and falls back to the in-process cache
// when no address is set or the server does not answer.
func newProjectionCache(ctx context.Context, redisAddr string, ttl time.Duration, logger calculation.Logger) (cache.Cache, func() error) {
	if redisAddr != "" {
		rc := cache.NewRedisCache(redisAddr, ttl)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		err := rc.Ping(pingCtx)
		if err == nil {
			logger.Infof("projection cache: redis at %s", redisAddr)
			return rc, rc.Close
		}
		logger.Warnf("redis unavailable, using in-memory cache: %v", err)
		rc.Close()
	}
	logger.Infof("projection cache: in-memory (ttl %s)", ttl)
	return cache.NewMemoryCache(ttl), func() error { return nil }
}

func serve(ctx context.Context, addr, dbPath, redisAddr string, ttl time.Duration, logger calculation.Logger) error {
	store, err := sqlite.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer store.Close()

	projectionCache, closeCache := newProjectionCache(ctx, redisAddr, ttl, logger)
	defer closeCache()

	engine := calculation.NewEngine()
	engine.SetLogger(logger)
	handler := api.NewHandler(cache.NewCachedEngine(engine, projectionCache), store)

	server := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Infof("server starting on %s (db %s)", addr, dbPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Infof("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Infof("server stopped")
	return nil
}
