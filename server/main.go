package main

import (
	"context"
	"errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-money-parser/config"
	"go-money-parser/http"
	"go-money-parser/parser"
	"os"
	"os/signal"
	"syscall"

	nhttp "net/http"
)

func main() {
	os.Exit(run())
}

// run serves until the listener fails or a shutdown signal arrives and
// returns the process exit code.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
		_ = logger.Log("msg", "loading configuration", "err", err)
		return 1
	}
	logger := cfg.NewLogger(os.Stderr)
	logger = log.With(logger, "env", cfg.AppEnv)

	parserService := parser.NewService()
	parserService = parser.NewLoggingService(log.With(logger, "component", "parser"), parserService)

	handler := http.NewServer(parserService, log.With(logger, "component", "http"))
	srv := &nhttp.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		_ = level.Info(logger).Log("msg", "listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, nhttp.ErrServerClosed) {
			_ = level.Error(logger).Log("msg", "server stopped", "err", err)
			return 1
		}
	case <-ctx.Done():
		_ = level.Info(logger).Log("msg", "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = level.Error(logger).Log("msg", "shutdown", "err", err)
			return 1
		}
	}
	return 0
}
