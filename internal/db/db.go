package db

import (
	"context"
	"fmt"
	"time"

	"github.com/cortea-ai/wh-sweeper/internal/cleanup"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	defaultTimeout     = 90 * time.Second
	defaultLockTimeout = 60 * time.Second
)

// querier is the subset of *pgxpool.Pool the backend uses; tests substitute a
// pgxmock pool.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// Conn implements the catalog and executor sides of a sweep against a
// Postgres warehouse, where the dataset maps to a schema.
type Conn struct {
	db querier
}

func NewConn(ctx context.Context, url string) (*Conn, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	return &Conn{db: pool}, nil
}

func (c *Conn) Close(ctx context.Context) error {
	c.db.Close()
	return nil
}

// ListTables returns the schema's base tables. Ordered by name so one call is
// deterministic; views and foreign tables are not sweep targets.
func (c *Conn) ListTables(ctx context.Context, project, dataset string) ([]cleanup.TableTarget, error) {
	rows, err := c.db.Query(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		ORDER BY table_name;`, dataset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var targets []cleanup.TableTarget
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		targets = append(targets, cleanup.TableTarget{
			Project: project,
			Dataset: dataset,
			Table:   name,
		})
	}
	return targets, rows.Err()
}

// Execute runs one destructive statement in its own transaction.
//
// TRUNCATE takes an ACCESS EXCLUSIVE lock, so a lock_timeout keeps a sweep
// from queueing indefinitely behind long-running readers. SET LOCAL scopes
// both timeouts to the transaction, which avoids the session-reset problem a
// pooled connection would otherwise have.
func (c *Conn) Execute(ctx context.Context, sql string) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) // No-op if committed successfully
	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = %d", defaultTimeout.Milliseconds())); err != nil {
		return fmt.Errorf("setting statement timeout: %w", err)
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = %d", defaultLockTimeout.Milliseconds())); err != nil {
		return fmt.Errorf("setting lock timeout: %w", err)
	}
	if _, err := tx.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to execute statement: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Renderer emits Postgres SQL with quoted schema-qualified names. The project
// identifier has no Postgres equivalent and is omitted.
type Renderer struct{}

func (Renderer) Render(stmt cleanup.Statement) string {
	name := fmt.Sprintf("%q.%q", stmt.Target.Dataset, stmt.Target.Table)
	if stmt.Phase == cleanup.PhaseDrop {
		return "DROP TABLE IF EXISTS " + name
	}
	return "TRUNCATE TABLE " + name
}
