package endpoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
)

const shutdownGrace = 10 * time.Second

// RunServer serves until the listener fails or the process receives an
// interrupt, then drains in-flight requests before returning.
func RunServer(addr string, server *http.Server) error {
	if server == nil {
		return errors.New("nil http server")
	}

	serveErr := make(chan error, 1)

	go func() {
		serveErr <- server.ListenAndServe()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	slog.Info("api listening", "addr", addr)

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve %s: %w", addr, err)
		}

		return nil
	case sig := <-signals:
		slog.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := server.Shutdown(ctx)

	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.Is(err, http.ErrServerClosed):
	case errors.Is(err, context.DeadlineExceeded):
		slog.Warn("drain window elapsed, closing outstanding connections", "addr", addr)

		if closeErr := server.Close(); closeErr != nil {
			slog.Error("close failed", "addr", addr, "error", closeErr)
		}
	default:
		return fmt.Errorf("shutdown %s: %w", addr, err)
	}

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", addr, err)
	}

	slog.Info("api stopped", "addr", addr)

	return nil
}

// ServerHandlerConfig carries everything needed to assemble the outermost
// HTTP handler.
type ServerHandlerConfig struct {
	Mux          http.Handler
	IsProduction bool
	DevHost      string
	Wrap         func(http.Handler) http.Handler
}

// NewServerHandler wraps the mux with permissive CORS outside production, so
// a locally served frontend can talk to the API, and with the Sentry handler
// when one is supplied.
func NewServerHandler(cfg ServerHandlerConfig) http.Handler {
	if cfg.Mux == nil {
		return http.NotFoundHandler()
	}

	handler := cfg.Mux

	if !cfg.IsProduction {
		origins := []string{"http://localhost:5173"}

		if cfg.DevHost != "" {
			origins = append(origins, cfg.DevHost)
		}

		handler = cors.New(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{
				http.MethodGet,
				http.MethodPost,
				http.MethodPut,
				http.MethodPatch,
				http.MethodDelete,
				http.MethodOptions,
			},
			AllowedHeaders: []string{
				"Accept",
				"Authorization",
				"Content-Type",
				"User-Agent",
				"X-Request-ID",
				"If-None-Match",
			},
			AllowCredentials: true,
			Debug:            true,
		}).Handler(handler)
	}

	if cfg.Wrap != nil {
		handler = cfg.Wrap(handler)
	}

	return handler
}
