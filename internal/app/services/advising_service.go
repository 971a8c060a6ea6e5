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

// AdvisingService handles advising periods, selections and bypasses
type AdvisingService struct {
	advisingRepo *repositories.AdvisingRepository
	bypassRepo   *repositories.BypassRepository
	logger       zerolog.Logger
}

// NewAdvisingService creates a new advising service instance
func NewAdvisingService(advisingRepo *repositories.AdvisingRepository, bypassRepo *repositories.BypassRepository, logger zerolog.Logger) *AdvisingService {
	return &AdvisingService{
		advisingRepo: advisingRepo,
		bypassRepo:   bypassRepo,
		logger:       logger,
	}
}

// CreatePeriod creates a named advising period
func (s *AdvisingService) CreatePeriod(ctx context.Context, name string) (*models.AdvisingPeriod, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("period name cannot be empty")
	}

	period := &models.AdvisingPeriod{Name: name}
	if err := s.advisingRepo.CreatePeriod(ctx, period); err != nil {
		return nil, err
	}
	return period, nil
}

// ListPeriods retrieves all advising periods
func (s *AdvisingService) ListPeriods(ctx context.Context) ([]*models.AdvisingPeriod, error) {
	return s.advisingRepo.ListPeriods(ctx)
}

// SaveSelection replaces a student's selection for a period. Codes are
// deduplicated on write: a code advised and also marked optional or repeat
// stays only in the higher-priority category (advised > optional > repeat).
func (s *AdvisingService) SaveSelection(ctx context.Context, periodID uuid.UUID, studentID string, selection *models.AdvisingSelection) (*models.AdvisingSelection, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, apperrors.NewValidationError("student ID cannot be empty")
	}

	if _, err := s.advisingRepo.GetPeriod(ctx, periodID); err != nil {
		return nil, err
	}

	taken := make(map[string]bool)
	selection.PeriodID = periodID
	selection.StudentID = studentID
	selection.Advised = dedupeCodes(selection.Advised, taken)
	selection.Optional = dedupeCodes(selection.Optional, taken)
	selection.Repeat = dedupeCodes(selection.Repeat, taken)

	if err := s.advisingRepo.UpsertSelection(ctx, selection); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("periodId", periodID.String()).
		Str("studentId", studentID).
		Int("advised", len(selection.Advised)).
		Msg("Advising selection saved")
	return selection, nil
}

// GetSelection retrieves one student's selection for a period
func (s *AdvisingService) GetSelection(ctx context.Context, periodID uuid.UUID, studentID string) (*models.AdvisingSelection, error) {
	return s.advisingRepo.GetSelection(ctx, periodID, studentID)
}

// GrantBypass records a requisite bypass for a student's course. The
// advisor name from a validated identity token wins over the request body.
func (s *AdvisingService) GrantBypass(ctx context.Context, studentID, courseCode, note, advisor string) (*models.StudentBypass, error) {
	studentID = strings.TrimSpace(studentID)
	courseCode = strings.TrimSpace(courseCode)
	if studentID == "" || courseCode == "" {
		return nil, apperrors.NewValidationError("student ID and course code are required")
	}

	bypass := &models.StudentBypass{
		StudentID:  studentID,
		CourseCode: courseCode,
		Note:       strings.TrimSpace(note),
		Advisor:    strings.TrimSpace(advisor),
	}
	if err := s.bypassRepo.Grant(ctx, bypass); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("studentId", studentID).
		Str("course", courseCode).
		Str("advisor", bypass.Advisor).
		Msg("Bypass granted")
	return bypass, nil
}

// RevokeBypass removes a bypass
func (s *AdvisingService) RevokeBypass(ctx context.Context, studentID, courseCode string) error {
	if err := s.bypassRepo.Revoke(ctx, studentID, courseCode); err != nil {
		return err
	}
	s.logger.Info().Str("studentId", studentID).Str("course", courseCode).Msg("Bypass revoked")
	return nil
}

// ListBypasses retrieves all bypasses granted to a student
func (s *AdvisingService) ListBypasses(ctx context.Context, studentID string) ([]*models.StudentBypass, error) {
	return s.bypassRepo.ListByStudent(ctx, studentID)
}

// BypassMap builds the evaluator's bypass map for a student
func (s *AdvisingService) BypassMap(ctx context.Context, studentID string) (map[string]engine.Bypass, error) {
	bypasses, err := s.bypassRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error loading bypasses: %w", err)
	}

	byCourse := make(map[string]engine.Bypass, len(bypasses))
	for _, b := range bypasses {
		byCourse[b.CourseCode] = engine.Bypass{
			Note:      b.Note,
			Advisor:   b.Advisor,
			GrantedAt: b.GrantedAt,
		}
	}
	return byCourse, nil
}

// dedupeCodes trims and deduplicates codes, skipping any already claimed by
// a higher-priority category.
func dedupeCodes(codes []string, taken map[string]bool) []string {
	var out []string
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" || taken[code] {
			continue
		}
		taken[code] = true
		out = append(out, code)
	}
	return out
}
