package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"coindash/config"
	"coindash/internal/chart"
	"coindash/internal/dashboard"
	"coindash/internal/loader"
	"coindash/internal/view"
	"coindash/pkg/coinlore"

	"go.uber.org/zap"
)

type App struct {
	cfg    *config.Config
	logger *zap.Logger

	store      *dashboard.Store
	renderer   *view.Renderer
	loader     *loader.Loader
	controller *Controller
	handler    http.Handler
}

func New(cfg *config.Config, logger *zap.Logger) *App {
	return &App{cfg: cfg, logger: logger}
}

// Initialize builds the pipeline and the HTTP routes. It does no I/O.
func (a *App) Initialize() error {
	if a.cfg == nil {
		return errors.New("app: nil config")
	}

	client := coinlore.NewRESTClient(a.cfg.Coinlore.BaseURL, a.cfg.Coinlore.Timeout)

	a.store = dashboard.NewStore()
	a.renderer = view.NewRenderer(view.NewDocument(), chart.NewRegistry(), a.cfg.Dashboard.TopN, a.logger)
	a.loader = loader.New(client, a.store, a.renderer, a.logger)
	a.controller = NewController(a.store, a.renderer, a.loader)
	a.handler = a.routes()

	a.logger.Info("application initialized",
		zap.String("coinlore", a.cfg.Coinlore.BaseURL),
		zap.Duration("refresh_interval", a.cfg.Dashboard.RefreshInterval))
	return nil
}

func (a *App) Handler() http.Handler { return a.handler }

// Run serves HTTP and starts loading data. It returns when ctx is done
// (after a graceful shutdown) or when the listener fails.
func (a *App) Run(ctx context.Context) error {
	if a.handler == nil {
		return errors.New("app: Run called before Initialize")
	}

	server := &http.Server{
		Addr:    a.cfg.Server.Addr,
		Handler: a.handler,
	}

	scheduler := &loader.Scheduler{
		Load:     a.loader.Load,
		Interval: a.cfg.Dashboard.RefreshInterval,
		Logger:   a.logger,
	}
	go scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting server", zap.String("addr", a.cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	a.logger.Info("shutting down server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
