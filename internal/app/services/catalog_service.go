package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emre/advisehub/internal/app/models"
	"github.com/emre/advisehub/internal/app/repositories"
	"github.com/emre/advisehub/internal/engine"
	"github.com/emre/advisehub/internal/pkg/apperrors"
)

// CatalogService handles catalog and progress snapshot uploads. Uploads are
// validated through the engine loader before anything is persisted, so a
// stored snapshot is always loadable.
type CatalogService struct {
	snapshotRepo *repositories.SnapshotRepository
	logger       zerolog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(snapshotRepo *repositories.SnapshotRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		snapshotRepo: snapshotRepo,
		logger:       logger,
	}
}

// UploadCatalog validates and stores a catalog table as a new snapshot
func (s *CatalogService) UploadCatalog(ctx context.Context, name string, rows []engine.CourseRow) (*models.CatalogSnapshot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &apperrors.CustomError{Err: apperrors.ErrCatalogInvalid, Message: "catalog name cannot be empty"}
	}

	if _, err := engine.LoadCatalog(rows); err != nil {
		return nil, &apperrors.CustomError{Err: apperrors.ErrCatalogInvalid, Message: err.Error()}
	}

	snapshot := &models.CatalogSnapshot{Name: name, Courses: rows}
	if err := s.snapshotRepo.SaveCatalog(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("error storing catalog snapshot: %w", err)
	}

	s.logger.Info().
		Str("catalogId", snapshot.ID.String()).
		Str("name", name).
		Int("courses", len(rows)).
		Msg("Catalog snapshot stored")
	return snapshot, nil
}

// GetCatalog loads a stored snapshot into an engine catalog
func (s *CatalogService) GetCatalog(ctx context.Context, id uuid.UUID) (*models.CatalogSnapshot, *engine.Catalog, error) {
	snapshot, err := s.snapshotRepo.GetCatalog(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	catalog, err := engine.LoadCatalog(snapshot.Courses)
	if err != nil {
		// Snapshots are validated on upload; a failure here means the
		// stored payload was tampered with or corrupted.
		return nil, nil, fmt.Errorf("stored catalog %s no longer loads: %w", id, err)
	}
	return snapshot, catalog, nil
}

// ListCatalogs retrieves catalog snapshot metadata
func (s *CatalogService) ListCatalogs(ctx context.Context) ([]*models.CatalogSnapshot, error) {
	return s.snapshotRepo.ListCatalogs(ctx)
}

// UploadProgress validates and stores a progress table for a catalog
func (s *CatalogService) UploadProgress(ctx context.Context, catalogID uuid.UUID, students []*engine.StudentProgress) (*models.ProgressSnapshot, error) {
	if len(students) == 0 {
		return nil, &apperrors.CustomError{Err: apperrors.ErrProgressInvalid, Message: "progress table has no student rows"}
	}

	seen := make(map[string]bool, len(students))
	for i, student := range students {
		id := strings.TrimSpace(student.ID)
		if id == "" {
			return nil, &apperrors.CustomError{
				Err:     apperrors.ErrProgressInvalid,
				Message: fmt.Sprintf("student row %d is missing an ID", i+1),
			}
		}
		if seen[id] {
			return nil, &apperrors.CustomError{
				Err:     apperrors.ErrProgressInvalid,
				Message: fmt.Sprintf("duplicate student ID %s (row %d)", id, i+1),
			}
		}
		seen[id] = true
		student.ID = id
	}

	snapshot := &models.ProgressSnapshot{CatalogID: catalogID, Students: students}
	if err := s.snapshotRepo.SaveProgress(ctx, snapshot); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("progressId", snapshot.ID.String()).
		Str("catalogId", catalogID.String()).
		Int("students", len(students)).
		Msg("Progress snapshot stored")
	return snapshot, nil
}

// GetProgress retrieves a progress snapshot
func (s *CatalogService) GetProgress(ctx context.Context, id uuid.UUID) (*models.ProgressSnapshot, error) {
	return s.snapshotRepo.GetProgress(ctx, id)
}
