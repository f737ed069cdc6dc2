package qdrant

import (
	"context"

	"go.uber.org/fx"

	"github.com/vectorkit/retrieval/v1/vectordb"
)

// FXModule wires the Qdrant client and store into Fx.
//
// It provides:
//   - *Client          (NewClient; requires *Config and *zap.Logger)
//   - *Store           (NewStore)
//   - vectordb.Store   (the Store, as interface)
//   - Lifecycle hook   (RegisterClientLifecycle)
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    qdrant.FXModule,
//	    fx.Provide(qdrant.DefaultConfig),
//	    // other modules...
//	)
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewClient,
		NewStore,
		func(s *Store) vectordb.Store { return s },
	),
	fx.Invoke(RegisterClientLifecycle),
)

// RegisterClientLifecycle closes the gRPC connection on application shutdown.
func RegisterClientLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
