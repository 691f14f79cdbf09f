package postgres

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	"github.com/tensorland/modelbox/internal/domain"
	"github.com/tensorland/modelbox/internal/store"
)

type eventRow struct {
	ID        string `db:"id"`
	ParentID  string `db:"parent_id"`
	Name      string `db:"name"`
	Source    string `db:"source"`
	Metadata  []byte `db:"metadata"`
	WallClock sql.NullTime
}

// CreateEvents is a plain insert-many; events are append-only and carry no
// conflict policy.
func (p *Postgres) CreateEvents(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return store.NewDatabaseError("begin transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, e := range events {
		query, _, err := p.goqu.Insert(p.tableEvents).Rows(
			goqu.Record{
				"id":         e.ID,
				"parent_id":  e.ParentID,
				"name":       e.Name,
				"source":     e.Source,
				"metadata":   e.Metadata,
				"wall_clock": e.WallClock,
			},
		).ToSQL()
		if err != nil {
			return store.NewDatabaseError("build create_events query", err)
		}
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return store.NewDatabaseError("insert event", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return store.NewDatabaseError("commit transaction", err)
	}
	return nil
}

func (p *Postgres) EventsForObject(ctx context.Context, parentID string) ([]domain.Event, error) {
	query, _, err := p.goqu.From(p.tableEvents).
		Select("id", "parent_id", "name", "source", "metadata", "wall_clock").
		Where(goqu.I("parent_id").Eq(parentID)).
		Order(goqu.I("wall_clock").Asc()).
		ToSQL()
	if err != nil {
		return nil, store.NewDatabaseError("build events_for_object query", err)
	}

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, store.NewDatabaseError("events_for_object", err)
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		var row eventRow
		if err := rows.Scan(&row.ID, &row.ParentID, &row.Name, &row.Source, &row.Metadata, &row.WallClock); err != nil {
			return nil, store.NewDatabaseError("scan event row", err)
		}
		out = append(out, domain.Event{
			ID: row.ID, ParentID: row.ParentID, Name: row.Name, Source: row.Source,
			Metadata: row.Metadata, WallClock: row.WallClock.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewDatabaseError("iterate event rows", err)
	}
	return out, nil
}
