package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/emre/advisehub/internal/app/models"
	"github.com/emre/advisehub/internal/db"
	"github.com/emre/advisehub/internal/engine"
	"github.com/emre/advisehub/internal/pkg/apperrors"
)

// SnapshotRepository handles catalog and progress snapshot persistence.
// Snapshots are immutable: inserted once, read many times, never updated.
type SnapshotRepository struct {
	db *db.PostgresDB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(database *db.PostgresDB) *SnapshotRepository {
	return &SnapshotRepository{db: database}
}

// SaveCatalog inserts a catalog snapshot
func (r *SnapshotRepository) SaveCatalog(ctx context.Context, snapshot *models.CatalogSnapshot) error {
	payload, err := json.Marshal(snapshot.Courses)
	if err != nil {
		return fmt.Errorf("error encoding catalog payload: %w", err)
	}

	query := `
		INSERT INTO catalog_snapshots (id, name, payload)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}

	err = r.db.Pool.QueryRow(ctx, query, snapshot.ID, snapshot.Name, payload).Scan(&snapshot.CreatedAt)
	if err != nil {
		return fmt.Errorf("error saving catalog snapshot: %w", err)
	}
	return nil
}

// GetCatalog retrieves a catalog snapshot with its courses
func (r *SnapshotRepository) GetCatalog(ctx context.Context, id uuid.UUID) (*models.CatalogSnapshot, error) {
	query := `
		SELECT id, name, created_at, payload
		FROM catalog_snapshots
		WHERE id = $1
	`

	var snapshot models.CatalogSnapshot
	var payload []byte
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&snapshot.ID,
		&snapshot.Name,
		&snapshot.CreatedAt,
		&payload,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCatalogNotFound
		}
		return nil, fmt.Errorf("error retrieving catalog snapshot: %w", err)
	}

	if err := json.Unmarshal(payload, &snapshot.Courses); err != nil {
		return nil, fmt.Errorf("error decoding catalog payload: %w", err)
	}
	return &snapshot, nil
}

// ListCatalogs retrieves catalog snapshot metadata, newest first
func (r *SnapshotRepository) ListCatalogs(ctx context.Context) ([]*models.CatalogSnapshot, error) {
	query := `
		SELECT id, name, created_at
		FROM catalog_snapshots
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*models.CatalogSnapshot
	for rows.Next() {
		var snapshot models.CatalogSnapshot
		if err := rows.Scan(&snapshot.ID, &snapshot.Name, &snapshot.CreatedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, &snapshot)
	}
	return snapshots, rows.Err()
}

// SaveProgress inserts a progress snapshot after verifying its catalog
// exists; both steps run in one transaction.
func (r *SnapshotRepository) SaveProgress(ctx context.Context, snapshot *models.ProgressSnapshot) error {
	payload, err := json.Marshal(snapshot.Students)
	if err != nil {
		return fmt.Errorf("error encoding progress payload: %w", err)
	}
	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM catalog_snapshots WHERE id = $1)`,
			snapshot.CatalogID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking catalog existence: %w", err)
		}
		if !exists {
			return apperrors.ErrCatalogNotFound
		}

		query := `
			INSERT INTO progress_snapshots (id, catalog_id, payload)
			VALUES ($1, $2, $3)
			RETURNING created_at
		`
		if err := tx.QueryRow(ctx, query, snapshot.ID, snapshot.CatalogID, payload).Scan(&snapshot.CreatedAt); err != nil {
			return fmt.Errorf("error saving progress snapshot: %w", err)
		}
		return nil
	})
}

// GetProgress retrieves a progress snapshot with its student rows
func (r *SnapshotRepository) GetProgress(ctx context.Context, id uuid.UUID) (*models.ProgressSnapshot, error) {
	query := `
		SELECT id, catalog_id, created_at, payload
		FROM progress_snapshots
		WHERE id = $1
	`

	var snapshot models.ProgressSnapshot
	var payload []byte
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&snapshot.ID,
		&snapshot.CatalogID,
		&snapshot.CreatedAt,
		&payload,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgressNotFound
		}
		return nil, fmt.Errorf("error retrieving progress snapshot: %w", err)
	}

	var students []*engine.StudentProgress
	if err := json.Unmarshal(payload, &students); err != nil {
		return nil, fmt.Errorf("error decoding progress payload: %w", err)
	}
	snapshot.Students = students
	return &snapshot, nil
}
