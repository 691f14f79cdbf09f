// Package postgres is the Repository implementation backed by
// database/sql over github.com/jackc/pgx/v5/stdlib, with query building via
// github.com/doug-martin/goqu/v9. Schema management is out of scope (see
// schema.sql, kept as reference DDL only); New assumes the tables it
// addresses already exist.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
)

var (
	ConnMaxLifetime = 15 * time.Minute
	MaxIdleConns    = 5
	MaxOpenConns    = 10
)

// Postgres is the Repository implementation over a single database/sql
// connection pool.
type Postgres struct {
	db   *sql.DB
	goqu *goqu.Database

	tableExperiments   exp.IdentifierExpression
	tableModels        exp.IdentifierExpression
	tableModelVersions exp.IdentifierExpression
	tableMetadata      exp.IdentifierExpression
	tableFiles         exp.IdentifierExpression
	tableEvents        exp.IdentifierExpression
	tableMetrics       exp.IdentifierExpression
	tableMutations     exp.IdentifierExpression
}

// Config is the subset of internal/config's database fields this store
// needs; New builds the DSN itself so callers never assemble one by hand.
type Config struct {
	Host     string
	Name     string
	Username string
	Password string
}

func dsn(cfg Config) string {
	return fmt.Sprintf("postgres://%s/%s?user=%s&password=%s", cfg.Host, cfg.Name, cfg.Username, cfg.Password)
}

// New opens the connection pool, pings it, and returns a ready Postgres.
func New(ctx context.Context, cfg Config) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db.SetConnMaxLifetime(ConnMaxLifetime)
	db.SetMaxIdleConns(MaxIdleConns)
	db.SetMaxOpenConns(MaxOpenConns)

	slog.Info("connected to postgres store", "host", cfg.Host, "database", cfg.Name)

	dbGoqu := goqu.New("postgres", db)

	return &Postgres{
		db:                 db,
		goqu:               dbGoqu,
		tableExperiments:   goqu.T("experiments"),
		tableModels:        goqu.T("models"),
		tableModelVersions: goqu.T("model_versions"),
		tableMetadata:      goqu.T("metadata"),
		tableFiles:         goqu.T("files"),
		tableEvents:        goqu.T("events"),
		tableMetrics:       goqu.T("metrics"),
		tableMutations:     goqu.T("mutations"),
	}, nil
}

func (p *Postgres) Close() error {
	if p.db == nil {
		return nil
	}
	if err := p.db.Close(); err != nil {
		return fmt.Errorf("close postgres store: %w", err)
	}
	return nil
}

// isNoRows reports whether err is sql.ErrNoRows, the only "not found" signal
// database/sql gives us directly.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
