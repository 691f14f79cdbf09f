package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/tensorland/modelbox/internal/domain"
	"github.com/tensorland/modelbox/internal/store"
)

// createWithChangeLog implements the one-transaction-per-create protocol
// named in §4.4: insert the mutation-event row, then attempt the entity
// insert with ON CONFLICT (id) DO NOTHING. Zero rows affected means the ID
// already existed; the whole transaction is rolled back (including the
// mutation-event insert) and the create is reported as idempotent.
func (p *Postgres) createWithChangeLog(
	ctx context.Context,
	objectID, namespace string,
	objectType domain.ObjectType,
	payload []byte,
	insertEntity func(ctx context.Context, tx *sql.Tx) (sql.Result, error),
) (store.CreateResult, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return store.CreateResult{}, store.NewDatabaseError("begin transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck

	record := goqu.Record{
		"object_id":     objectID,
		"object_type":   int32(objectType),
		"mutation_type": int32(domain.MutationTypeCreate),
		"namespace":     namespace,
		"created_at":    time.Now().UTC(),
	}
	switch objectType {
	case domain.ObjectTypeExperiment:
		record["experiment_payload"] = payload
	case domain.ObjectTypeModel:
		record["model_payload"] = payload
	case domain.ObjectTypeModelVersion:
		record["model_version_payload"] = payload
	}

	mutationQuery, _, err := p.goqu.Insert(p.tableMutations).Rows(record).ToSQL()
	if err != nil {
		return store.CreateResult{}, store.NewDatabaseError("build mutation insert", err)
	}
	if _, err := tx.ExecContext(ctx, mutationQuery); err != nil {
		return store.CreateResult{}, store.NewDatabaseError("insert mutation event", err)
	}

	res, err := insertEntity(ctx, tx)
	if err != nil {
		return store.CreateResult{}, store.NewDatabaseError("insert entity", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return store.CreateResult{}, store.NewDatabaseError("rows affected", err)
	}
	if affected == 0 {
		// RecordNotInserted is the sentinel documented on store.RecordNotInserted;
		// it is recovered right here and never propagated further.
		_ = fmt.Errorf("%w: %s", store.RecordNotInserted, objectID)
		return store.CreateResult{ID: objectID, Exists: true}, nil
	}

	if err := tx.Commit(); err != nil {
		return store.CreateResult{}, store.NewDatabaseError("commit transaction", err)
	}

	return store.CreateResult{ID: objectID, Exists: false}, nil
}
