package repositories

import (
	"context"
	"fmt"

	"github.com/emre/advisehub/internal/app/models"
	"github.com/emre/advisehub/internal/db"
	"github.com/emre/advisehub/internal/pkg/apperrors"
)

// BypassRepository handles requisite bypass persistence
type BypassRepository struct {
	db *db.PostgresDB
}

// NewBypassRepository creates a new bypass repository
func NewBypassRepository(database *db.PostgresDB) *BypassRepository {
	return &BypassRepository{db: database}
}

// Grant records a bypass, replacing any existing one for the same course
func (r *BypassRepository) Grant(ctx context.Context, bypass *models.StudentBypass) error {
	query := `
		INSERT INTO bypasses (student_id, course_code, note, advisor, granted_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (student_id, course_code) DO UPDATE
		SET note = EXCLUDED.note,
		    advisor = EXCLUDED.advisor,
		    granted_at = NOW()
		RETURNING granted_at
	`
	err := r.db.Pool.QueryRow(ctx, query,
		bypass.StudentID,
		bypass.CourseCode,
		bypass.Note,
		bypass.Advisor,
	).Scan(&bypass.GrantedAt)
	if err != nil {
		return fmt.Errorf("error granting bypass: %w", err)
	}
	return nil
}

// Revoke removes a bypass
func (r *BypassRepository) Revoke(ctx context.Context, studentID, courseCode string) error {
	query := `DELETE FROM bypasses WHERE student_id = $1 AND course_code = $2`

	cmdTag, err := r.db.Pool.Exec(ctx, query, studentID, courseCode)
	if err != nil {
		return fmt.Errorf("error revoking bypass: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBypassNotFound
	}
	return nil
}

// ListByStudent retrieves all bypasses granted to a student
func (r *BypassRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.StudentBypass, error) {
	query := `
		SELECT student_id, course_code, note, advisor, granted_at
		FROM bypasses
		WHERE student_id = $1
		ORDER BY granted_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bypasses []*models.StudentBypass
	for rows.Next() {
		var bypass models.StudentBypass
		if err := rows.Scan(
			&bypass.StudentID,
			&bypass.CourseCode,
			&bypass.Note,
			&bypass.Advisor,
			&bypass.GrantedAt,
		); err != nil {
			return nil, err
		}
		bypasses = append(bypasses, &bypass)
	}
	return bypasses, rows.Err()
}
