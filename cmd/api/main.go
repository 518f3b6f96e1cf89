package main

import (
	"context"
	"net/http"

	"github.com/Behyna/sms-relay/internal/api"
	v1 "github.com/Behyna/sms-relay/internal/api/v1"
	"github.com/Behyna/sms-relay/internal/config"
	"github.com/Behyna/sms-relay/internal/metrics"
	"github.com/Behyna/sms-relay/internal/service"
	"github.com/Behyna/sms-relay/pkg/httpclient"
	"github.com/Behyna/sms-relay/pkg/smsprovider"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewRegistry,
			metrics.NewMetrics,
			metrics.NewSystemCollector,
			NewHTTPClient,
			NewSMSProvider,
			service.NewRelayService,
			v1.NewHandler,
			api.NewApp,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, collector *metrics.SystemCollector, reg *prometheus.Registry,
	cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	if cfg.Metrics.Enable {
		api.SetupMetricsRoute(app, reg)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Metrics.Enable {
				collector.Start(cfg.Metrics.CollectInterval, version, commit, buildDate)
			}

			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("server stopped", zap.Error(err))
				}
			}()

			logger.Info("SMS relay running",
				zap.String("port", cfg.API.Port),
				zap.String("from", cfg.Provider.From),
				zap.Bool("provider_override", cfg.Provider.BaseURL != ""))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx, app, collector, cfg, logger)
		},
	})
}

// shutdown flushes the logger last so lines written while stopping are kept.
func shutdown(ctx context.Context, app *fiber.App, collector *metrics.SystemCollector, cfg *config.Config,
	logger *zap.Logger) error {
	if cfg.Metrics.Enable {
		collector.Stop()
	}

	err := app.ShutdownWithContext(ctx)
	logger.Info("SMS relay stopped", zap.Error(err))
	_ = logger.Sync()

	return err
}

// NewRegistry provides the registry both the collectors and /metrics use. It
// includes the Go runtime and process collectors.
func NewRegistry() (*prometheus.Registry, prometheus.Registerer) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg, reg
}

func NewHTTPClient(cfg *config.Config) (*http.Client, error) {
	return httpclient.NewHTTPClient(httpclient.Config{Timeout: cfg.Provider.Timeout, BaseURL: cfg.Provider.BaseURL})
}

func NewSMSProvider(cfg *config.Config, client *http.Client) smsprovider.Provider {
	return smsprovider.NewSMSProvider(cfg.Provider, client)
}
