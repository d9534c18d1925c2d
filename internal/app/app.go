package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/kikuu-commerce/storefront/config"
	"github.com/kikuu-commerce/storefront/internal/adapter/classifier"
	"github.com/kikuu-commerce/storefront/internal/adapter/localstore"
	"github.com/kikuu-commerce/storefront/internal/adapter/rest"
	"github.com/kikuu-commerce/storefront/internal/adapter/sentimentfeed"
	"github.com/kikuu-commerce/storefront/internal/core/port"
	"github.com/kikuu-commerce/storefront/internal/core/state"
	"github.com/kikuu-commerce/storefront/pkg/retry"
)

type adapters struct {
	local      *localstore.Store
	gateway    port.Gateway
	classifier port.Classifier
	feed       port.SentimentFeed
}

type App struct {
	ctx      context.Context
	cfg      config.Config
	adapters adapters
	state    *state.Store
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initOutboundAdapters()
	app.initState()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	local, err := localstore.Open(app.ctx, app.cfg.StatePath)
	if err != nil {
		app.fallDown(op, err)
	}

	gateway := rest.New(
		app.cfg.Backend.BaseURL,
		local,
		rest.TimeoutOpt(app.cfg.Backend.Timeout),
	)

	sentiment := classifier.New(
		app.cfg.Classifier.Endpoint,
		classifier.TimeoutOpt(app.cfg.Classifier.Timeout),
	)

	app.adapters.local = local
	app.adapters.gateway = gateway
	app.adapters.classifier = sentiment
	app.adapters.feed = sentimentfeed.New()
}

func (app *App) initState() {
	app.state = state.New(
		app.adapters.gateway,
		app.adapters.local,
		app.adapters.classifier,
		app.adapters.feed,
	)
}

// State exposes the application state container to the presentation layer.
func (app *App) State() *state.Store {
	return app.state
}

// WaitReady blocks until the backend answers its health probe or the
// configured attempts are exhausted.
func (app *App) WaitReady(ctx context.Context) error {
	const op = "App.WaitReady"

	retryCfg := retry.RetryConfig{
		MaxAttempts: app.cfg.Backend.ReadinessAttempts,
	}
	err := retry.Do(ctx, retryCfg, func() error {
		return app.adapters.gateway.Health(ctx)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (app *App) Run() {
	const op = "App.Run"
	log := slog.With("op", op)

	if err := app.state.RestoreSession(app.ctx); err != nil {
		log.Warn("session not restored", "err", err)
	}
	if err := app.state.RestoreWishlist(app.ctx); err != nil {
		log.Warn("wishlist not restored", "err", err)
	}

	if err := app.state.FetchCategories(app.ctx); err != nil {
		log.Warn("categories prefetch failed", "err", err)
	}
	if err := app.state.FetchProducts(app.ctx); err != nil {
		log.Warn("products prefetch failed", "err", err)
	}
	log.Info("catalog ready",
		"categories", len(app.state.CategoriesState().Items),
		"visibleProducts", len(app.state.VisibleProducts()),
	)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	done := make(chan struct{})
	go func() {
		app.adapters.local.Close()
		close(done)
	}()

	select {
	case <-ctx.Done():
		slog.Warn("close deadline exceeded", "err", ctx.Err())
	case <-done:
		slog.Info("application is closed")
	}
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
