package postgres

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	"github.com/tensorland/modelbox/internal/domain"
	"github.com/tensorland/modelbox/internal/store"
)

type metadataRow struct {
	ID       string `db:"id"`
	ParentID string `db:"parent_id"`
	Name     string `db:"name"`
	Meta     []byte `db:"meta"`
	CreatedAt sql.NullTime
	UpdatedAt sql.NullTime
}

// UpdateMetadata upserts each entry on id, replacing meta and updated_at
// when the row already exists. A later entry in the same call for the same
// (parent_id, name) wins, since entries share an id and are applied in
// order within one transaction.
func (p *Postgres) UpdateMetadata(ctx context.Context, entries []domain.MetadataEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return store.NewDatabaseError("begin transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, e := range entries {
		query, _, err := p.goqu.Insert(p.tableMetadata).Rows(
			goqu.Record{
				"id":         e.ID,
				"parent_id":  e.ParentID,
				"name":       e.Name,
				"meta":       e.Meta,
				"created_at": e.CreatedAt,
				"updated_at": e.UpdatedAt,
			},
		).OnConflict(
			goqu.DoUpdate("id", goqu.Record{"meta": e.Meta, "updated_at": e.UpdatedAt}),
		).ToSQL()
		if err != nil {
			return store.NewDatabaseError("build update_metadata query", err)
		}
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return store.NewDatabaseError("upsert metadata entry", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return store.NewDatabaseError("commit transaction", err)
	}
	return nil
}

func (p *Postgres) GetMetadata(ctx context.Context, parentID string) ([]domain.MetadataEntry, error) {
	query, _, err := p.goqu.From(p.tableMetadata).
		Select("id", "parent_id", "name", "meta", "created_at", "updated_at").
		Where(goqu.I("parent_id").Eq(parentID)).
		Order(goqu.I("name").Asc()).
		ToSQL()
	if err != nil {
		return nil, store.NewDatabaseError("build get_metadata query", err)
	}

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, store.NewDatabaseError("get_metadata", err)
	}
	defer rows.Close()

	var out []domain.MetadataEntry
	for rows.Next() {
		var row metadataRow
		if err := rows.Scan(&row.ID, &row.ParentID, &row.Name, &row.Meta, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, store.NewDatabaseError("scan metadata row", err)
		}
		out = append(out, domain.MetadataEntry{
			ID: row.ID, ParentID: row.ParentID, Name: row.Name, Meta: row.Meta,
			CreatedAt: row.CreatedAt.Time, UpdatedAt: row.UpdatedAt.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewDatabaseError("iterate metadata rows", err)
	}
	return out, nil
}
