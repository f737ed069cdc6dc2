package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// FXModule defines the Fx module for the metrics package.
// This module integrates the Prometheus metrics server into an Fx-based
// application by providing the Metrics factory and registering its
// lifecycle hooks.
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{
//	            Address:                 ":9090",
//	            ServiceName:             "document-index",
//	            EnableDefaultCollectors: true,
//	        }
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(NewMetrics),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle manages the startup and shutdown lifecycle
// of the Prometheus metrics HTTP server.
//
// OnStart launches the Prometheus HTTP server in a background goroutine;
// OnStop gracefully shuts it down.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting Prometheus metrics server", zap.String("address", m.Server.Addr))
				if err := m.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("metrics server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down Prometheus metrics server")
			return m.Server.Shutdown(ctx)
		},
	})
}
