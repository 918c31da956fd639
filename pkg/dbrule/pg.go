package dbrule

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/formkit"
)

// RowQuerier is the slice of pgx a rule needs. pgxpool.Pool satisfies it.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// identRegex limits table and column names to plain identifiers. Names are
// interpolated into SQL because placeholders cannot carry identifiers, so
// anything fancier is rejected outright.
var identRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func validIdent(names ...string) bool {
	for _, name := range names {
		if !identRegex.MatchString(name) {
			return false
		}
	}
	return true
}

// UniqueInTable builds a rule that fails when the value already exists in
// table.column. Declare it after the cheap shape rules so the database is
// only consulted for plausible values.
func UniqueInTable(q RowQuerier, table, column string) formkit.RuleFunc {
	return func(ctx context.Context, in formkit.Input) error {
		if !validIdent(table, column) {
			return ErrInvalidIdentifier
		}

		var exists bool
		query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", table, column)
		if err := q.QueryRow(ctx, query, in.Value).Scan(&exists); err != nil {
			return errors.Join(ErrQueryFailed, err)
		}
		if exists {
			return formkit.Fail("validation.unique", "is already taken", map[string]any{
				"field": in.Field,
			})
		}
		return nil
	}
}

// ExistsInTable builds a rule that fails unless the value is present in
// table.column, for foreign-key style checks on user input.
func ExistsInTable(q RowQuerier, table, column string) formkit.RuleFunc {
	return func(ctx context.Context, in formkit.Input) error {
		if !validIdent(table, column) {
			return ErrInvalidIdentifier
		}

		var exists bool
		query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", table, column)
		if err := q.QueryRow(ctx, query, in.Value).Scan(&exists); err != nil {
			return errors.Join(ErrQueryFailed, err)
		}
		if !exists {
			return formkit.Fail("validation.exists", "does not exist", map[string]any{
				"field": in.Field,
			})
		}
		return nil
	}
}

// PGConfig configures the postgres connection for rules owned here.
type PGConfig struct {
	ConnectionString string        `env:"PG_CONN_URL,required"`              // ConnectionString is the connection string to the database.
	MaxOpenConns     int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"` // MaxOpenConns is the maximum number of open connections.
	MaxIdleConns     int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`  // MaxIdleConns is the minimum number of idle connections kept.
	RetryAttempts    int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`  // RetryAttempts is the number of connection attempts.
	RetryInterval    time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"` // RetryInterval is the base interval between attempts.
}

// ConnectPG establishes a postgres pool with linear backoff between retries,
// verifying each attempt with a ping.
func ConnectPG(ctx context.Context, cfg PGConfig) (*pgxpool.Pool, error) {
	connConfig, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}
	connConfig.MaxConns = cfg.MaxOpenConns
	connConfig.MinConns = cfg.MaxIdleConns

	for i := range cfg.RetryAttempts {
		pool, err := pgxpool.NewWithConfig(ctx, connConfig)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrFailedToOpenDBConnection, ctx.Err())
		case <-time.After(time.Duration(i+1) * cfg.RetryInterval):
		}
	}

	return nil, ErrFailedToOpenDBConnection
}
