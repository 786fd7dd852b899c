package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/notes/internal/config"
	"github.com/ferdiebergado/notes/internal/metrics"
	"github.com/ferdiebergado/notes/internal/middleware"
	"github.com/ferdiebergado/notes/internal/note"
)

type App struct {
	server          *http.Server
	config          *config.Config
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	provider        *Provider
	setupOnce       sync.Once
	handler         http.Handler
}

// Middlewares returns the global middlewares in registration order. The
// writer must be injected before anything reads the response status.
func Middlewares(rec metrics.Recorder) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		middleware.LogRequest,
		middleware.Instrument(rec),
		goexpress.RecoverFromPanic,
	}
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.provider.Router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	mountRootRoutes(a.provider.Router, a.config.Version, a.provider.Metrics.Handler())

	noteRepo := note.NewRepository(a.provider.Executor)
	noteHandler := note.NewHandler(noteRepo)
	mountNoteRoutes(a.provider.Router, noteHandler, a.provider.Validator, a.config.Server.MaxBodyBytes)
}

// Handler returns the fully wired HTTP handler. CORS sits in front of the
// router so that preflight requests are answered for every route.
func (a *App) Handler() http.Handler {
	a.setupOnce.Do(func() {
		a.registerMiddlewares()
		a.setupRoutes()
		a.handler = middleware.CORS(a.provider.Router)
	})
	return a.handler
}

func (a *App) Start(ctx context.Context) error {
	a.server.Handler = a.Handler()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr: fmt.Sprintf(":%d", serverCfg.Port),
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		IdleTimeout:  serverCfg.IdleTimeout,
	}

	return &App{
		config:          cfg,
		provider:        provider,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout,
	}
}
