package cli

import (
	"context"

	"github.com/cortea-ai/wh-sweeper/internal/config"
)

func Tables(ctx context.Context, conf *config.Config) error {
	wh, err := openWarehouse(ctx, conf)
	if err != nil {
		return err
	}
	defer wh.close(ctx)
	targets, err := wh.catalog.ListTables(ctx, conf.GetProject(), conf.GetDataset())
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		println("No tables in dataset", conf.GetDataset())
		return nil
	}
	println("Tables in dataset " + conf.GetDataset() + ":")
	for _, target := range targets {
		println(">", target.Table)
	}
	return nil
}
