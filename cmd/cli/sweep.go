package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/cortea-ai/wh-sweeper/internal/cleanup"
	"github.com/cortea-ai/wh-sweeper/internal/config"
)

type SweepOptions struct {
	Mode        string
	Tables      []string
	All         bool
	DryRun      bool
	AutoApprove bool
}

func Sweep(ctx context.Context, conf *config.Config, opts SweepOptions) error {
	op := cleanup.Operation(opts.Mode)
	if err := op.Validate(); err != nil {
		return err
	}
	if opts.All == (len(opts.Tables) > 0) {
		return errors.New("exactly one of --all or --table must be given")
	}
	if op.IncludesDrop() && !conf.GetAllowDrop() {
		return fmt.Errorf("allow_drop=false, refusing to drop tables in dataset %q", conf.GetDataset())
	}
	wh, err := openWarehouse(ctx, conf)
	if err != nil {
		return err
	}
	defer wh.close(ctx)
	req := cleanup.Request{
		ProjectID:  conf.GetProject(),
		DatasetID:  conf.GetDataset(),
		Filtered:   len(opts.Tables) > 0,
		TableNames: opts.Tables,
		Operation:  op,
		DryRun:     opts.DryRun,
	}
	if !opts.DryRun && !opts.AutoApprove {
		if err := promptForApproval(fmt.Sprintf("Run %s against dataset %q?", op, req.DatasetID)); err != nil {
			return err
		}
	}
	outcome, err := cleanup.Run(ctx, req, wh.catalog, wh.executor, wh.renderer)
	if err != nil {
		return err
	}
	if outcome.NoTargets != nil {
		fmt.Println(outcome.NoTargets.String())
		return nil
	}
	for _, line := range outcome.Report.Lines() {
		fmt.Println(line)
	}
	if !opts.DryRun {
		fmt.Printf("\n✅ Swept dataset %q\n", req.DatasetID)
	}
	return nil
}

func promptForApproval(msg string) error {
	print(msg + " [y/N]: ")
	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return err
	}
	if response != "y" && response != "Y" {
		return errors.New("sweep aborted")
	}
	return nil
}
