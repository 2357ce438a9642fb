package cli

import (
	"context"
	"fmt"

	"github.com/cortea-ai/wh-sweeper/internal/bq"
	"github.com/cortea-ai/wh-sweeper/internal/cleanup"
	"github.com/cortea-ai/wh-sweeper/internal/config"
	"github.com/cortea-ai/wh-sweeper/internal/db"
)

// warehouse bundles the three collaborators a sweep needs from one backend.
type warehouse struct {
	catalog  cleanup.Catalog
	executor cleanup.Executor
	renderer cleanup.Renderer
	close    func(ctx context.Context) error
}

func openWarehouse(ctx context.Context, conf *config.Config) (*warehouse, error) {
	switch conf.GetBackend() {
	case config.BackendBigQuery:
		client, err := bq.NewClient(ctx, conf.GetProject())
		if err != nil {
			return nil, err
		}
		return &warehouse{
			catalog:  client,
			executor: client,
			renderer: bq.Renderer{},
			close:    func(context.Context) error { return client.Close() },
		}, nil
	case config.BackendPostgres:
		conn, err := db.NewConn(ctx, conf.GetDBUrl())
		if err != nil {
			return nil, err
		}
		return &warehouse{
			catalog:  conn,
			executor: conn,
			renderer: db.Renderer{},
			close:    conn.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", conf.GetBackend())
	}
}
