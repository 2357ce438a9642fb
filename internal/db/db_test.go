package db

import (
	"context"
	"errors"
	"testing"

	"github.com/cortea-ai/wh-sweeper/internal/cleanup"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTables(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT table_name FROM information_schema\.tables`).
		WithArgs("analytics").
		WillReturnRows(pgxmock.NewRows([]string{"table_name"}).
			AddRow("events").
			AddRow("users"))

	conn := &Conn{db: mock}
	targets, err := conn.ListTables(context.Background(), "warehouse", "analytics")

	require.NoError(t, err)
	assert.Equal(t, []cleanup.TableTarget{
		{Project: "warehouse", Dataset: "analytics", Table: "events"},
		{Project: "warehouse", Dataset: "analytics", Table: "users"},
	}, targets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteRunsInTransactionWithTimeouts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("SET LOCAL statement_timeout").
		WillReturnResult(pgxmock.NewResult("SET", 0))
	mock.ExpectExec("SET LOCAL lock_timeout").
		WillReturnResult(pgxmock.NewResult("SET", 0))
	mock.ExpectExec(`TRUNCATE TABLE "analytics"\."events"`).
		WillReturnResult(pgxmock.NewResult("TRUNCATE TABLE", 0))
	mock.ExpectCommit()

	conn := &Conn{db: mock}
	err = conn.Execute(context.Background(), `TRUNCATE TABLE "analytics"."events"`)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteFailureRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("SET LOCAL statement_timeout").
		WillReturnResult(pgxmock.NewResult("SET", 0))
	mock.ExpectExec("SET LOCAL lock_timeout").
		WillReturnResult(pgxmock.NewResult("SET", 0))
	mock.ExpectExec(`DROP TABLE IF EXISTS "analytics"\."events"`).
		WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	conn := &Conn{db: mock}
	err = conn.Execute(context.Background(), `DROP TABLE IF EXISTS "analytics"."events"`)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenderer(t *testing.T) {
	target := cleanup.TableTarget{Project: "warehouse", Dataset: "analytics", Table: "events"}
	pair := cleanup.BuildStatements(target)

	r := Renderer{}
	assert.Equal(t, `TRUNCATE TABLE "analytics"."events"`, r.Render(pair.Truncate))
	assert.Equal(t, `DROP TABLE IF EXISTS "analytics"."events"`, r.Render(pair.Drop))
}
