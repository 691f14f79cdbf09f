package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/tensorland/modelbox/internal/domain"
	"github.com/tensorland/modelbox/internal/store"
)

type experimentRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	ExternalID  string `db:"external_id"`
	Owner       string `db:"owner"`
	Namespace   string `db:"namespace"`
	MlFramework int32  `db:"ml_framework"`
	CreatedAt   sql.NullTime
	UpdatedAt   sql.NullTime
}

func (p *Postgres) CreateExperiment(ctx context.Context, e domain.Experiment) (store.CreateResult, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return store.CreateResult{}, store.NewJsonError("marshal experiment payload", err)
	}

	return p.createWithChangeLog(ctx, e.ID, e.Namespace, domain.ObjectTypeExperiment, payload,
		func(ctx context.Context, tx *sql.Tx) (sql.Result, error) {
			query, _, err := p.goqu.Insert(p.tableExperiments).Rows(
				goqu.Record{
					"id":           e.ID,
					"name":         e.Name,
					"external_id":  e.ExternalID,
					"owner":        e.Owner,
					"namespace":    e.Namespace,
					"ml_framework": e.MlFramework,
					"created_at":   e.CreatedAt,
					"updated_at":   e.UpdatedAt,
				},
			).OnConflict(goqu.DoNothing()).ToSQL()
			if err != nil {
				return nil, fmt.Errorf("build insert query: %w", err)
			}
			return tx.ExecContext(ctx, query)
		},
	)
}

func (p *Postgres) GetExperiment(ctx context.Context, id string) (*domain.Experiment, error) {
	query, _, err := p.goqu.From(p.tableExperiments).
		Select("id", "name", "external_id", "owner", "namespace", "ml_framework", "created_at", "updated_at").
		Where(goqu.I("id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, store.NewDatabaseError("build get_experiment query", err)
	}

	var row experimentRow
	err = p.db.QueryRowContext(ctx, query).Scan(
		&row.ID, &row.Name, &row.ExternalID, &row.Owner, &row.Namespace,
		&row.MlFramework, &row.CreatedAt, &row.UpdatedAt,
	)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, store.NewDatabaseError("get_experiment", err)
	}

	e := experimentFromRow(row)
	return &e, nil
}

func (p *Postgres) ListExperiments(ctx context.Context, namespace string) ([]domain.Experiment, error) {
	sel := p.goqu.From(p.tableExperiments).
		Select("id", "name", "external_id", "owner", "namespace", "ml_framework", "created_at", "updated_at").
		Order(goqu.I("name").Asc())
	if namespace != "" {
		sel = sel.Where(goqu.I("namespace").Eq(namespace))
	}
	query, _, err := sel.ToSQL()
	if err != nil {
		return nil, store.NewDatabaseError("build list_experiments query", err)
	}

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, store.NewDatabaseError("list_experiments", err)
	}
	defer rows.Close()

	var out []domain.Experiment
	for rows.Next() {
		var row experimentRow
		if err := rows.Scan(&row.ID, &row.Name, &row.ExternalID, &row.Owner, &row.Namespace,
			&row.MlFramework, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, store.NewDatabaseError("scan experiment row", err)
		}
		out = append(out, experimentFromRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewDatabaseError("iterate experiment rows", err)
	}
	return out, nil
}

func experimentFromRow(row experimentRow) domain.Experiment {
	return domain.Experiment{
		ID:          row.ID,
		Name:        row.Name,
		ExternalID:  row.ExternalID,
		Owner:       row.Owner,
		Namespace:   row.Namespace,
		MlFramework: row.MlFramework,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
