package postgres

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/tensorland/modelbox/internal/domain"
)

func newTestPostgres(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &Postgres{
		db:                 db,
		goqu:               goqu.New("postgres", db),
		tableExperiments:   goqu.T("experiments"),
		tableModels:        goqu.T("models"),
		tableModelVersions: goqu.T("model_versions"),
		tableMetadata:      goqu.T("metadata"),
		tableFiles:         goqu.T("files"),
		tableEvents:        goqu.T("events"),
		tableMetrics:       goqu.T("metrics"),
		tableMutations:     goqu.T("mutations"),
	}, mock
}

func TestCreateExperimentDuplicateReportsExists(t *testing.T) {
	p, mock := newTestPostgres(t)
	ctx := context.Background()

	e := domain.Experiment{ID: "exp-1", Name: "resnet", Owner: "alice", Namespace: "vision", CreatedAt: time.Now(), UpdatedAt: time.Now()}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO \"mutations\"").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO \"experiments\"").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	res, err := p.CreateExperiment(ctx, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Exists {
		t.Fatalf("expected exists=true when zero rows affected")
	}
	if res.ID != e.ID {
		t.Fatalf("expected id %q, got %q", e.ID, res.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateExperimentFreshCommits(t *testing.T) {
	p, mock := newTestPostgres(t)
	ctx := context.Background()

	e := domain.Experiment{ID: "exp-2", Name: "resnet50", Owner: "bob", Namespace: "vision", CreatedAt: time.Now(), UpdatedAt: time.Now()}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO \"mutations\"").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO \"experiments\"").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	res, err := p.CreateExperiment(ctx, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Exists {
		t.Fatalf("expected exists=false on first insert")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetExperimentNotFoundReturnsNil(t *testing.T) {
	p, mock := newTestPostgres(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM \"experiments\"").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "external_id", "owner", "namespace", "ml_framework", "created_at", "updated_at"}),
	)

	got, err := p.GetExperiment(ctx, "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown id, got %+v", got)
	}
}
