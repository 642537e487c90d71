package db

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"

	"github.com/jackc/pgx/v5"
)

// Executor is the query surface the domain services depend on.
// *Conn is the PostgreSQL implementation.
type Executor interface {
	// ExecuteUpdate runs an INSERT, UPDATE, DELETE or DDL statement.
	ExecuteUpdate(ctx context.Context, sql string, args ...any) error

	// ExecuteQueryAndPrint writes a tab-separated header once, then every row,
	// and returns the number of rows written.
	ExecuteQueryAndPrint(ctx context.Context, w io.Writer, sql string, args ...any) (int, error)

	// ExecuteQueryAndCollect returns every row as its stringified column values.
	ExecuteQueryAndCollect(ctx context.Context, sql string, args ...any) ([][]string, error)

	// ExecuteQueryCount returns 1 if the query yields at least one row, else 0.
	// It is an existence check, not a row count.
	ExecuteQueryCount(ctx context.Context, sql string, args ...any) (int, error)

	// CurrentSequenceValue returns currval of the named sequence, or -1 when
	// the query yields no row.
	CurrentSequenceValue(ctx context.Context, sequence string) (int64, error)
}

// Params identifies the database to connect to.
type Params struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

// URL returns the full connection string including credentials.
func (p Params) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   net.JoinHostPort(p.Host, p.Port),
		Path:   "/" + p.Database,
	}
	return u.String()
}

// DisplayURL returns the connection string without credentials, safe to print.
func (p Params) DisplayURL() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(p.Host, p.Port),
		Path:   "/" + p.Database,
	}
	return u.String()
}

// Conn owns the single live database connection of a session.
type Conn struct {
	conn *pgx.Conn
}

var _ Executor = (*Conn)(nil)

// Connect opens a connection described by p.
func Connect(ctx context.Context, p Params) (*Conn, error) {
	return Open(ctx, p.URL())
}

// Open opens a connection from a PostgreSQL connection string and verifies it.
func Open(ctx context.Context, connStr string) (*Conn, error) {
	config, err := pgx.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	conn, err := pgx.ConnectConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &Conn{conn: conn}, nil
}

func (c *Conn) ExecuteUpdate(ctx context.Context, sql string, args ...any) error {
	if _, err := c.conn.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to execute statement: %w", err)
	}
	return nil
}

func (c *Conn) ExecuteQueryAndPrint(ctx context.Context, w io.Writer, sql string, args ...any) (int, error) {
	rows, err := c.query(ctx, sql, args)
	if err != nil {
		return 0, err
	}
	return printResult(w, rows)
}

func (c *Conn) ExecuteQueryAndCollect(ctx context.Context, sql string, args ...any) ([][]string, error) {
	rows, err := c.query(ctx, sql, args)
	if err != nil {
		return nil, err
	}
	return collectResult(rows)
}

func (c *Conn) ExecuteQueryCount(ctx context.Context, sql string, args ...any) (int, error) {
	rows, err := c.query(ctx, sql, args)
	if err != nil {
		return 0, err
	}
	return existsResult(rows)
}

func (c *Conn) CurrentSequenceValue(ctx context.Context, sequence string) (int64, error) {
	var value int64
	err := c.conn.QueryRow(ctx, "SELECT currval($1::text::regclass)", sequence).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return -1, nil
		}
		return 0, fmt.Errorf("failed to read sequence %s: %w", sequence, err)
	}
	return value, nil
}

// Close releases the connection. Safe to call more than once or on a nil *Conn.
func (c *Conn) Close() {
	if c == nil || c.conn == nil {
		return
	}
	_ = c.conn.Close(context.Background())
	c.conn = nil
}

// query requests every column in text format so values print exactly as the
// server renders them.
func (c *Conn) query(ctx context.Context, sql string, args []any) (pgx.Rows, error) {
	queryArgs := make([]any, 0, len(args)+1)
	queryArgs = append(queryArgs, pgx.QueryResultFormats{pgx.TextFormatCode})
	queryArgs = append(queryArgs, args...)

	rows, err := c.conn.Query(ctx, sql, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return rows, nil
}
