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

type modelRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Owner       string `db:"owner"`
	Namespace   string `db:"namespace"`
	Task        string `db:"task"`
	Description string `db:"description"`
	CreatedAt   sql.NullTime
	UpdatedAt   sql.NullTime
}

func (p *Postgres) CreateModel(ctx context.Context, m domain.Model) (store.CreateResult, error) {
	payload, err := json.Marshal(m)
	if err != nil {
		return store.CreateResult{}, store.NewJsonError("marshal model payload", err)
	}

	return p.createWithChangeLog(ctx, m.ID, m.Namespace, domain.ObjectTypeModel, payload,
		func(ctx context.Context, tx *sql.Tx) (sql.Result, error) {
			query, _, err := p.goqu.Insert(p.tableModels).Rows(
				goqu.Record{
					"id":          m.ID,
					"name":        m.Name,
					"owner":       m.Owner,
					"namespace":   m.Namespace,
					"task":        m.Task,
					"description": m.Description,
					"created_at":  m.CreatedAt,
					"updated_at":  m.UpdatedAt,
				},
			).OnConflict(goqu.DoNothing()).ToSQL()
			if err != nil {
				return nil, fmt.Errorf("build insert query: %w", err)
			}
			return tx.ExecContext(ctx, query)
		},
	)
}

func (p *Postgres) ModelsByNamespace(ctx context.Context, namespace string) ([]domain.Model, error) {
	sel := p.goqu.From(p.tableModels).
		Select("id", "name", "owner", "namespace", "task", "description", "created_at", "updated_at").
		Order(goqu.I("name").Asc())
	if namespace != "" {
		sel = sel.Where(goqu.I("namespace").Eq(namespace))
	}
	query, _, err := sel.ToSQL()
	if err != nil {
		return nil, store.NewDatabaseError("build models_by_namespace query", err)
	}

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, store.NewDatabaseError("models_by_namespace", err)
	}
	defer rows.Close()

	var out []domain.Model
	for rows.Next() {
		var row modelRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Owner, &row.Namespace, &row.Task,
			&row.Description, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, store.NewDatabaseError("scan model row", err)
		}
		out = append(out, domain.Model{
			ID: row.ID, Name: row.Name, Owner: row.Owner, Namespace: row.Namespace,
			Task: row.Task, Description: row.Description,
			CreatedAt: row.CreatedAt.Time, UpdatedAt: row.UpdatedAt.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewDatabaseError("iterate model rows", err)
	}
	return out, nil
}
