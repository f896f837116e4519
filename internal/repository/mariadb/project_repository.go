package mariadb

import (
	"context"
	"database/sql"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/fhuszti/studio-ms-go/internal/port"
	"github.com/fhuszti/studio-ms-go/internal/uuid"
)

type ProjectRepository struct {
	db *sql.DB
}

// compile-time check: *ProjectRepository must satisfy port.ProjectRepository
var _ port.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Save inserts the snapshot or overwrites the previous one for the same id.
func (r *ProjectRepository) Save(ctx context.Context, p *model.SavedProject) error {
	logger.Infof(ctx, "saving project #%s at revision %d...", p.ID, p.Revision)

	const query = `
      INSERT INTO projects (id, revision, snapshot)
      VALUES (?, ?, ?)
      ON DUPLICATE KEY UPDATE
        revision = VALUES(revision),
        snapshot = VALUES(snapshot)
    `
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Revision, p.Snapshot)
	if err != nil {
		return err
	}

	return nil
}

// GetByID returns sql.ErrNoRows when nothing was saved under id.
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.SavedProject, error) {
	logger.Infof(ctx, "fetching saved project #%s from the database...", id)

	const query = `
      SELECT id, revision, snapshot, created_at, updated_at
      FROM projects
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, id)
	var p model.SavedProject
	if err := row.Scan(&p.ID, &p.Revision, &p.Snapshot, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Infof(ctx, "deleting saved project #%s from the database...", id)

	const query = `DELETE FROM projects WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return err
	}
	return nil
}

// ListSavedBefore returns the saved projects last written before cutoff,
// oldest first.
func (r *ProjectRepository) ListSavedBefore(ctx context.Context, cutoff time.Time) ([]*model.SavedProject, error) {
	logger.Infof(ctx, "listing projects saved before %s...", cutoff.Format(time.RFC3339))

	const query = `
      SELECT id, revision, snapshot, created_at, updated_at
      FROM projects
      WHERE updated_at < ?
      ORDER BY updated_at
    `
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.SavedProject
	for rows.Next() {
		var p model.SavedProject
		if err := rows.Scan(&p.ID, &p.Revision, &p.Snapshot, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
