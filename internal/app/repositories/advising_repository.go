package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/emre/advisehub/internal/app/models"
	"github.com/emre/advisehub/internal/db"
	"github.com/emre/advisehub/internal/pkg/apperrors"
)

// uniqueViolation is the postgres error code for unique constraint breaks
const uniqueViolation = "23505"

// AdvisingRepository handles advising periods and per-student selections
type AdvisingRepository struct {
	db *db.PostgresDB
}

// NewAdvisingRepository creates a new advising repository
func NewAdvisingRepository(database *db.PostgresDB) *AdvisingRepository {
	return &AdvisingRepository{db: database}
}

// CreatePeriod creates a named advising period
func (r *AdvisingRepository) CreatePeriod(ctx context.Context, period *models.AdvisingPeriod) error {
	if period.ID == uuid.Nil {
		period.ID = uuid.New()
	}

	query := `
		INSERT INTO advising_periods (id, name)
		VALUES ($1, $2)
		RETURNING created_at
	`
	err := r.db.Pool.QueryRow(ctx, query, period.ID, period.Name).Scan(&period.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrPeriodAlreadyExists
		}
		return fmt.Errorf("error creating advising period: %w", err)
	}
	return nil
}

// GetPeriod retrieves an advising period by ID
func (r *AdvisingRepository) GetPeriod(ctx context.Context, id uuid.UUID) (*models.AdvisingPeriod, error) {
	query := `
		SELECT id, name, created_at
		FROM advising_periods
		WHERE id = $1
	`

	var period models.AdvisingPeriod
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(&period.ID, &period.Name, &period.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPeriodNotFound
		}
		return nil, fmt.Errorf("error retrieving advising period: %w", err)
	}
	return &period, nil
}

// ListPeriods retrieves all advising periods, newest first
func (r *AdvisingRepository) ListPeriods(ctx context.Context) ([]*models.AdvisingPeriod, error) {
	query := `
		SELECT id, name, created_at
		FROM advising_periods
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []*models.AdvisingPeriod
	for rows.Next() {
		var period models.AdvisingPeriod
		if err := rows.Scan(&period.ID, &period.Name, &period.CreatedAt); err != nil {
			return nil, err
		}
		periods = append(periods, &period)
	}
	return periods, rows.Err()
}

// UpsertSelection replaces a student's selection for a period
func (r *AdvisingRepository) UpsertSelection(ctx context.Context, selection *models.AdvisingSelection) error {
	query := `
		INSERT INTO advising_selections (period_id, student_id, advised, optional, repeat_codes, note, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (period_id, student_id) DO UPDATE
		SET advised = EXCLUDED.advised,
		    optional = EXCLUDED.optional,
		    repeat_codes = EXCLUDED.repeat_codes,
		    note = EXCLUDED.note,
		    updated_at = NOW()
		RETURNING updated_at
	`
	err := r.db.Pool.QueryRow(ctx, query,
		selection.PeriodID,
		selection.StudentID,
		selection.Advised,
		selection.Optional,
		selection.Repeat,
		selection.Note,
	).Scan(&selection.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error saving advising selection: %w", err)
	}
	return nil
}

// GetSelection retrieves one student's selection for a period
func (r *AdvisingRepository) GetSelection(ctx context.Context, periodID uuid.UUID, studentID string) (*models.AdvisingSelection, error) {
	query := `
		SELECT period_id, student_id, advised, optional, repeat_codes, note, updated_at
		FROM advising_selections
		WHERE period_id = $1 AND student_id = $2
	`

	var selection models.AdvisingSelection
	err := r.db.Pool.QueryRow(ctx, query, periodID, studentID).Scan(
		&selection.PeriodID,
		&selection.StudentID,
		&selection.Advised,
		&selection.Optional,
		&selection.Repeat,
		&selection.Note,
		&selection.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSelectionNotFound
		}
		return nil, fmt.Errorf("error retrieving advising selection: %w", err)
	}
	return &selection, nil
}
