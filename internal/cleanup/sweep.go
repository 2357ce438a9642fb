package cleanup

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Executor runs one rendered statement against the warehouse and returns the
// engine's error on failure. Dry runs never touch it.
type Executor interface {
	Execute(ctx context.Context, sql string) error
}

// Outcome is the result of one sweep: exactly one of Report (dry-run or live
// pass) and NoTargets (resolver matched nothing) is set.
type Outcome struct {
	Report    *Report
	NoTargets *NoTargetsAdvisory
}

// Run executes one sweep: validate the operation, resolve targets, then walk
// them strictly in order. For each table the truncate phase always precedes
// the drop phase and both finish before the next table starts; there is no
// batching of all truncates followed by all drops.
//
// A statement failure aborts the remaining sequence immediately and is
// returned wrapped with the offending statement. Tables already processed are
// not rolled back; the caller must treat the run as partially applied.
func Run(ctx context.Context, req Request, catalog Catalog, executor Executor, renderer Renderer) (*Outcome, error) {
	if err := req.Operation.Validate(); err != nil {
		return nil, err
	}
	targets, err := ResolveTargets(ctx, catalog, req)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return &Outcome{NoTargets: &NoTargetsAdvisory{
			Dataset:  req.DatasetID,
			Filtered: req.Filtered,
			Names:    req.TableNames,
		}}, nil
	}
	report := &Report{}
	for _, target := range targets {
		pair := BuildStatements(target)
		if req.Operation.includesTruncate() {
			if err := runStatement(ctx, req.DryRun, pair.Truncate, executor, renderer, report); err != nil {
				return nil, err
			}
		}
		if req.Operation.IncludesDrop() {
			if err := runStatement(ctx, req.DryRun, pair.Drop, executor, renderer, report); err != nil {
				return nil, err
			}
		}
	}
	return &Outcome{Report: report}, nil
}

func runStatement(ctx context.Context, dryRun bool, stmt Statement, executor Executor, renderer Renderer, report *Report) error {
	sql := renderer.Render(stmt)
	if dryRun {
		report.wouldExecute(sql)
		return nil
	}
	if err := executor.Execute(ctx, sql); err != nil {
		return errors.Wrapf(err, "executing %q", sql)
	}
	report.executed(sql)
	return nil
}
