package logger

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// FXModule defines the Fx module for the logger package.
// It provides the logger factory (and the bare *zap.Logger for components
// that depend on it directly) and registers a shutdown hook that flushes
// buffered log entries.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Info, ServiceName: "document-index"}
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
		func(l *Logger) *zap.Logger { return l.Zap },
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle handles cleanup (sync) of the Zap logger.
// The OnStop hook calls Sync() on the underlying Zap logger so that no log
// entries are lost if the application shuts down while entries are buffered.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// Sync on stderr returns an ENOTTY error on some platforms;
			// treat it as non-fatal.
			_ = client.Zap.Sync()
			return nil
		},
	})
}
