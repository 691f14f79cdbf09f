package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/tensorland/modelbox/internal/domain"
	"github.com/tensorland/modelbox/internal/store"
)

type metricRow struct {
	ID          int64  `db:"id"`
	ObjectID    string `db:"object_id"`
	Name        string `db:"name"`
	Tensor      sql.NullString
	DoubleValue sql.NullFloat64
	Step        sql.NullInt64
	WallClock   sql.NullTime
	CreatedAt   sql.NullTime
}

// LogMetrics is an insert-many with the store assigning the auto-increment
// id; samples are append-only.
func (p *Postgres) LogMetrics(ctx context.Context, samples []domain.MetricSample) error {
	if len(samples) == 0 {
		return nil
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return store.NewDatabaseError("begin transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, s := range samples {
		record := goqu.Record{
			"object_id":  s.ObjectID,
			"name":       s.Name,
			"created_at": time.Now().UTC(),
		}
		if s.HasTensor {
			record["tensor"] = s.Tensor
		}
		if s.HasDouble {
			record["double_value"] = s.DoubleValue
		}
		if s.HasStep {
			record["step"] = s.Step
		}
		if s.HasWallClock {
			record["wall_clock"] = s.WallClock
		}

		query, _, err := p.goqu.Insert(p.tableMetrics).Rows(record).ToSQL()
		if err != nil {
			return store.NewDatabaseError("build log_metrics query", err)
		}
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return store.NewDatabaseError("insert metric sample", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return store.NewDatabaseError("commit transaction", err)
	}
	return nil
}

func (p *Postgres) Metrics(ctx context.Context, objectID string) ([]domain.MetricSample, error) {
	query, _, err := p.goqu.From(p.tableMetrics).
		Select("id", "object_id", "name", "tensor", "double_value", "step", "wall_clock", "created_at").
		Where(goqu.I("object_id").Eq(objectID)).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, store.NewDatabaseError("build metrics query", err)
	}

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, store.NewDatabaseError("metrics", err)
	}
	defer rows.Close()

	var out []domain.MetricSample
	for rows.Next() {
		var row metricRow
		if err := rows.Scan(&row.ID, &row.ObjectID, &row.Name, &row.Tensor, &row.DoubleValue,
			&row.Step, &row.WallClock, &row.CreatedAt); err != nil {
			return nil, store.NewDatabaseError("scan metric row", err)
		}
		out = append(out, domain.MetricSample{
			ID: row.ID, ObjectID: row.ObjectID, Name: row.Name,
			Tensor: row.Tensor.String, HasTensor: row.Tensor.Valid,
			DoubleValue: row.DoubleValue.Float64, HasDouble: row.DoubleValue.Valid,
			Step: row.Step.Int64, HasStep: row.Step.Valid,
			WallClock: row.WallClock.Time, HasWallClock: row.WallClock.Valid,
			CreatedAt: row.CreatedAt.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewDatabaseError("iterate metric rows", err)
	}
	return out, nil
}
