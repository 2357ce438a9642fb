package bq

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/cortea-ai/wh-sweeper/internal/cleanup"
	"google.golang.org/api/iterator"
)

// Client wraps a BigQuery connection and implements the catalog and executor
// sides of a sweep.
type Client struct {
	bq *bigquery.Client
}

func NewClient(ctx context.Context, projectID string) (*Client, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &Client{bq: client}, nil
}

func (c *Client) Close() error {
	return c.bq.Close()
}

// ListTables returns the dataset's tables in the order the BigQuery API
// yields them.
func (c *Client) ListTables(ctx context.Context, project, dataset string) ([]cleanup.TableTarget, error) {
	it := c.bq.DatasetInProject(project, dataset).Tables(ctx)
	var targets []cleanup.TableTarget
	for {
		table, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		targets = append(targets, cleanup.TableTarget{
			Project: table.ProjectID,
			Dataset: table.DatasetID,
			Table:   table.TableID,
		})
	}
	return targets, nil
}

// Execute runs one statement as a query job and waits for it to finish.
func (c *Client) Execute(ctx context.Context, sql string) error {
	job, err := c.bq.Query(sql).Run(ctx)
	if err != nil {
		return err
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return err
	}
	return status.Err()
}

// Renderer emits BigQuery standard SQL with backtick-quoted fully qualified
// names.
type Renderer struct{}

func (Renderer) Render(stmt cleanup.Statement) string {
	name := fmt.Sprintf("`%s.%s.%s`", stmt.Target.Project, stmt.Target.Dataset, stmt.Target.Table)
	if stmt.Phase == cleanup.PhaseDrop {
		return "DROP TABLE IF EXISTS " + name
	}
	return "TRUNCATE TABLE " + name
}
