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

type modelVersionRow struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	ModelID      string `db:"model_id"`
	ExperimentID string `db:"experiment_id"`
	Namespace    string `db:"namespace"`
	Version      string `db:"version"`
	Description  string `db:"description"`
	MlFramework  int32  `db:"ml_framework"`
	UniqueTags   []byte `db:"unique_tags"`
	CreatedAt    sql.NullTime
	UpdatedAt    sql.NullTime
}

func (p *Postgres) CreateModelVersion(ctx context.Context, v domain.ModelVersion) (store.CreateResult, error) {
	tagsJSON, err := domain.EncodeModelVersionTags(v.UniqueTags)
	if err != nil {
		return store.CreateResult{}, store.NewJsonError("encode unique_tags", err)
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return store.CreateResult{}, store.NewJsonError("marshal model_version payload", err)
	}

	return p.createWithChangeLog(ctx, v.ID, v.Namespace, domain.ObjectTypeModelVersion, payload,
		func(ctx context.Context, tx *sql.Tx) (sql.Result, error) {
			query, _, err := p.goqu.Insert(p.tableModelVersions).Rows(
				goqu.Record{
					"id":            v.ID,
					"name":          v.Name,
					"model_id":      v.ModelID,
					"experiment_id": v.ExperimentID,
					"namespace":     v.Namespace,
					"version":       v.Version,
					"description":   v.Description,
					"ml_framework":  v.MlFramework,
					"unique_tags":   tagsJSON,
					"created_at":    v.CreatedAt,
					"updated_at":    v.UpdatedAt,
				},
			).OnConflict(goqu.DoNothing()).ToSQL()
			if err != nil {
				return nil, fmt.Errorf("build insert query: %w", err)
			}
			return tx.ExecContext(ctx, query)
		},
	)
}

func (p *Postgres) ModelVersionsForModel(ctx context.Context, modelID string) ([]domain.ModelVersion, error) {
	query, _, err := p.goqu.From(p.tableModelVersions).
		Select("id", "name", "model_id", "experiment_id", "namespace", "version", "description",
			"ml_framework", "unique_tags", "created_at", "updated_at").
		Where(goqu.I("model_id").Eq(modelID)).
		Order(goqu.I("version").Asc()).
		ToSQL()
	if err != nil {
		return nil, store.NewDatabaseError("build model_versions_for_model query", err)
	}

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, store.NewDatabaseError("model_versions_for_model", err)
	}
	defer rows.Close()

	var out []domain.ModelVersion
	for rows.Next() {
		var row modelVersionRow
		if err := rows.Scan(&row.ID, &row.Name, &row.ModelID, &row.ExperimentID, &row.Namespace,
			&row.Version, &row.Description, &row.MlFramework, &row.UniqueTags,
			&row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, store.NewDatabaseError("scan model_version row", err)
		}
		tags, err := domain.DecodeModelVersionTags(row.UniqueTags)
		if err != nil {
			return nil, store.NewJsonError("decode unique_tags", err)
		}
		out = append(out, domain.ModelVersion{
			ID: row.ID, Name: row.Name, ModelID: row.ModelID, ExperimentID: row.ExperimentID,
			Namespace: row.Namespace, Version: row.Version, Description: row.Description,
			MlFramework: row.MlFramework, UniqueTags: tags,
			CreatedAt: row.CreatedAt.Time, UpdatedAt: row.UpdatedAt.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewDatabaseError("iterate model_version rows", err)
	}
	return out, nil
}
