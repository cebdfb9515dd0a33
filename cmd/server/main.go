// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/batch-service/internal/adapters/http"
	"github.com/jsamuelsen11/batch-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/batch-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/batch-service/internal/adapters/notify"
	"github.com/jsamuelsen11/batch-service/internal/adapters/sanitize"
	"github.com/jsamuelsen11/batch-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/batch-service/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/batch-service/internal/app"
	"github.com/jsamuelsen11/batch-service/internal/platform/config"
	"github.com/jsamuelsen11/batch-service/internal/platform/health"
	"github.com/jsamuelsen11/batch-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/batch-service/internal/platform/logging"
	"github.com/jsamuelsen11/batch-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/batch-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	webhookClientName = "notify-webhook"

	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers and shutdown hooks after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[ports.HierarchyStore](injector)
	registry.Register(store)

	if cfg.Notify.Webhook.Enabled {
		webhook := do.MustInvoke[*notify.WebhookNotifier](injector)
		registry.Register(webhook)
		server.OnShutdown("notify-webhook", webhook.Close)
	}
	server.OnShutdown("store", func(context.Context) error { return store.Close() })

	// Warm the hierarchy view before accepting traffic.
	view := do.MustInvoke[*app.HierarchySync](injector)
	if _, err := view.Refresh(ctx); err != nil {
		return fmt.Errorf("loading hierarchy: %w", err)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.HierarchyStore, error) {
		return openStore(context.Background(), cfg.Store)
	})

	do.Provide(injector, func(i do.Injector) (*notify.WebhookNotifier, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Notify.Webhook.Client, webhookClientName, metrics, logger)
		return notify.NewWebhookNotifier(client, cfg.Notify.Webhook.Path, cfg.Notify.Webhook.Timeout, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Notifier, error) {
		notifiers := notify.Multi{notify.NewLogNotifier(logger)}
		if cfg.Notify.Webhook.Enabled {
			notifiers = append(notifiers, do.MustInvoke[*notify.WebhookNotifier](i))
		}
		return notifiers, nil
	})

	do.Provide(injector, func(i do.Injector) (*app.HierarchySync, error) {
		store := do.MustInvoke[ports.HierarchyStore](i)
		return app.NewHierarchySync(store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.LifecycleService, error) {
		store := do.MustInvoke[ports.HierarchyStore](i)
		view := do.MustInvoke[*app.HierarchySync](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewLifecycleService(store, view, app.Collaborators{
			Sanitizer: sanitize.New(),
			Notifier:  do.MustInvoke[ports.Notifier](i),
			Confirmer: handlers.RequestConfirmer{},
		}, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		svc := do.MustInvoke[ports.LifecycleService](i)
		view := do.MustInvoke[*app.HierarchySync](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return adapthttp.Handlers{
			Batch:     handlers.NewBatchHandler(svc, view),
			Course:    handlers.NewCourseHandler(svc, view),
			Month:     handlers.NewMonthHandler(svc, view),
			Hierarchy: handlers.NewHierarchyHandler(view),
			Health:    handlers.NewHealthHandler(registry, view),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, middleware.Standard(logger, metrics, cfg.Server.WriteTimeout)...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

func openStore(ctx context.Context, cfg config.StoreConfig) (ports.HierarchyStore, error) {
	switch cfg.Driver {
	case config.StoreSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return store, nil
	default:
		return memory.New(), nil
	}
}
