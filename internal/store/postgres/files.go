package postgres

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	"github.com/tensorland/modelbox/internal/domain"
	"github.com/tensorland/modelbox/internal/store"
)

type fileRow struct {
	ID           string `db:"id"`
	ParentID     string `db:"parent_id"`
	SrcPath      string `db:"src_path"`
	UploadPath   sql.NullString
	FileType     string `db:"file_type"`
	Metadata     []byte `db:"metadata"`
	ArtifactName string `db:"artifact_name"`
	ArtifactID   string `db:"artifact_id"`
	CreatedAt    sql.NullTime
	UpdatedAt    sql.NullTime
}

// CreateFiles upserts each row on id, updating upload_path, metadata, and
// updated_at on conflict. UploadFile calls it once per upload, before the
// blob is written, with upload_path already set.
func (p *Postgres) CreateFiles(ctx context.Context, files []domain.File) error {
	if len(files) == 0 {
		return nil
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return store.NewDatabaseError("begin transaction", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, f := range files {
		query, _, err := p.goqu.Insert(p.tableFiles).Rows(
			goqu.Record{
				"id":            f.ID,
				"parent_id":     f.ParentID,
				"src_path":      f.SrcPath,
				"upload_path":   nullableString(f.UploadPath),
				"file_type":     f.FileType,
				"metadata":      f.Metadata,
				"artifact_name": f.ArtifactName,
				"artifact_id":   f.ArtifactID,
				"created_at":    f.CreatedAt,
				"updated_at":    f.UpdatedAt,
			},
		).OnConflict(
			goqu.DoUpdate("id", goqu.Record{
				"upload_path": nullableString(f.UploadPath),
				"metadata":    f.Metadata,
				"updated_at":  f.UpdatedAt,
			}),
		).ToSQL()
		if err != nil {
			return store.NewDatabaseError("build create_files query", err)
		}
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return store.NewDatabaseError("upsert file", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return store.NewDatabaseError("commit transaction", err)
	}
	return nil
}

func (p *Postgres) GetFiles(ctx context.Context, parentID string) ([]domain.File, error) {
	query, _, err := p.goqu.From(p.tableFiles).
		Select("id", "parent_id", "src_path", "upload_path", "file_type", "metadata",
			"artifact_name", "artifact_id", "created_at", "updated_at").
		Where(goqu.I("parent_id").Eq(parentID)).
		Order(goqu.I("src_path").Asc()).
		ToSQL()
	if err != nil {
		return nil, store.NewDatabaseError("build get_files query", err)
	}

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, store.NewDatabaseError("get_files", err)
	}
	defer rows.Close()

	var out []domain.File
	for rows.Next() {
		var row fileRow
		if err := rows.Scan(&row.ID, &row.ParentID, &row.SrcPath, &row.UploadPath, &row.FileType,
			&row.Metadata, &row.ArtifactName, &row.ArtifactID, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, store.NewDatabaseError("scan file row", err)
		}
		out = append(out, domain.File{
			ID: row.ID, ParentID: row.ParentID, SrcPath: row.SrcPath,
			UploadPath: row.UploadPath.String, FileType: row.FileType, Metadata: row.Metadata,
			ArtifactName: row.ArtifactName, ArtifactID: row.ArtifactID,
			CreatedAt: row.CreatedAt.Time, UpdatedAt: row.UpdatedAt.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewDatabaseError("iterate file rows", err)
	}
	return out, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
