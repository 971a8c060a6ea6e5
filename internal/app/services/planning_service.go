package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emre/advisehub/internal/app/models/dto"
	"github.com/emre/advisehub/internal/engine"
	"github.com/emre/advisehub/internal/pkg/apperrors"
)

// PlanningService runs the engine over stored snapshots: eligibility
// checks, dependency graph views, semester projections and cohort demand
// forecasts. Derived views (graph, mutual pairs) are rebuilt from the
// catalog on every call; nothing derived is cached across requests.
type PlanningService struct {
	catalogService  *CatalogService
	advisingService *AdvisingService
	limits          engine.Limits
	forecastHorizon int
	logger          zerolog.Logger
}

// NewPlanningService creates a new planning service instance
func NewPlanningService(catalogService *CatalogService, advisingService *AdvisingService, limits engine.Limits, forecastHorizon int, logger zerolog.Logger) *PlanningService {
	return &PlanningService{
		catalogService:  catalogService,
		advisingService: advisingService,
		limits:          limits,
		forecastHorizon: forecastHorizon,
		logger:          logger,
	}
}

// evalInputs are the loaded snapshots and context for one student's checks
type evalInputs struct {
	catalog *engine.Catalog
	student *engine.StudentProgress
	opts    engine.EvalOptions
}

// loadEvalInputs assembles everything Evaluate needs for one student. A
// missing selection is not an error: the student simply has no advised
// courses yet.
func (s *PlanningService) loadEvalInputs(ctx context.Context, catalogID, progressID uuid.UUID, studentID string, periodID *uuid.UUID) (*evalInputs, error) {
	_, catalog, err := s.catalogService.GetCatalog(ctx, catalogID)
	if err != nil {
		return nil, err
	}

	progress, err := s.catalogService.GetProgress(ctx, progressID)
	if err != nil {
		return nil, err
	}
	if progress.CatalogID != catalogID {
		return nil, apperrors.ErrSnapshotMismatch
	}

	student, found := progress.FindStudent(studentID)
	if !found {
		return nil, apperrors.ErrStudentNotFound
	}

	opts := engine.EvalOptions{MutualPairs: engine.MutualPairs(catalog)}

	if periodID != nil {
		selection, err := s.advisingService.GetSelection(ctx, *periodID, studentID)
		switch {
		case err == nil:
			opts.Advised = append(selection.Advised, selection.Optional...)
		case errors.Is(err, apperrors.ErrSelectionNotFound):
			// no selection yet
		default:
			return nil, err
		}
	}

	opts.Bypasses, err = s.advisingService.BypassMap(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &evalInputs{catalog: catalog, student: student, opts: opts}, nil
}

// CheckEligibility evaluates one course for a student
func (s *PlanningService) CheckEligibility(ctx context.Context, catalogID, progressID uuid.UUID, studentID, courseCode string, periodID *uuid.UUID) (*dto.EligibilityResponse, error) {
	in, err := s.loadEvalInputs(ctx, catalogID, progressID, studentID, periodID)
	if err != nil {
		return nil, err
	}

	result := engine.Evaluate(in.student, courseCode, in.catalog, in.opts)
	return &dto.EligibilityResponse{
		CourseCode:    courseCode,
		Status:        string(result.Status),
		Justification: result.Justification,
	}, nil
}

// CheckAllEligibility evaluates every catalog course for a student
func (s *PlanningService) CheckAllEligibility(ctx context.Context, catalogID, progressID uuid.UUID, studentID string, periodID *uuid.UUID) ([]dto.EligibilityResponse, error) {
	in, err := s.loadEvalInputs(ctx, catalogID, progressID, studentID, periodID)
	if err != nil {
		return nil, err
	}

	results := make([]dto.EligibilityResponse, 0, in.catalog.Len())
	for _, code := range in.catalog.Codes() {
		result := engine.Evaluate(in.student, code, in.catalog, in.opts)
		results = append(results, dto.EligibilityResponse{
			CourseCode:    code,
			Status:        string(result.Status),
			Justification: result.Justification,
		})
	}
	return results, nil
}

// GraphView builds the dependency graph payload for a catalog
func (s *PlanningService) GraphView(ctx context.Context, catalogID uuid.UUID) (*dto.GraphResponse, error) {
	_, catalog, err := s.catalogService.GetCatalog(ctx, catalogID)
	if err != nil {
		return nil, err
	}

	graph := engine.BuildGraph(catalog)
	scores := graph.BottleneckScores()

	nodes := make([]dto.GraphNode, 0, catalog.Len())
	for _, code := range catalog.Codes() {
		course, _ := catalog.Course(code)
		nodes = append(nodes, dto.GraphNode{
			Code:            code,
			Title:           course.Title,
			Credits:         course.Credits,
			Offered:         course.IsOffered(),
			BottleneckScore: scores[code],
			DependentCount:  graph.DependentCount(code),
		})
	}

	return &dto.GraphResponse{
		CatalogID: catalogID.String(),
		Nodes:     nodes,
		Edges:     graph.Edges(),
	}, nil
}

// MutualPairsView returns the catalog's mutual-requirement map
func (s *PlanningService) MutualPairsView(ctx context.Context, catalogID uuid.UUID) (map[string][]string, error) {
	_, catalog, err := s.catalogService.GetCatalog(ctx, catalogID)
	if err != nil {
		return nil, err
	}
	return engine.MutualPairs(catalog), nil
}

// ProjectSchedule computes a student's semester projection
func (s *PlanningService) ProjectSchedule(ctx context.Context, catalogID, progressID uuid.UUID, studentID string, periodID *uuid.UUID) (*dto.ProjectionResponse, error) {
	in, err := s.loadEvalInputs(ctx, catalogID, progressID, studentID, periodID)
	if err != nil {
		return nil, err
	}

	plan := engine.ProjectSchedule(in.student, in.catalog, in.opts.Advised, s.limits)
	return &dto.ProjectionResponse{
		StudentID:          studentID,
		Plan:               plan,
		RemainingSemesters: engine.LongestPath(in.student, in.catalog),
	}, nil
}

// Forecast projects cohort-wide per-course demand
func (s *PlanningService) Forecast(ctx context.Context, catalogID, progressID uuid.UUID, horizon int) (*dto.ForecastResponse, error) {
	if horizon < 0 {
		return nil, apperrors.ErrInvalidForecastParams
	}
	if horizon == 0 {
		horizon = s.forecastHorizon
	}

	_, catalog, err := s.catalogService.GetCatalog(ctx, catalogID)
	if err != nil {
		return nil, err
	}

	progress, err := s.catalogService.GetProgress(ctx, progressID)
	if err != nil {
		return nil, err
	}
	if progress.CatalogID != catalogID {
		return nil, apperrors.ErrSnapshotMismatch
	}

	s.logger.Debug().
		Int("students", len(progress.Students)).
		Int("horizon", horizon).
		Msg("Running demand forecast")

	demand := engine.ForecastDemand(catalog, progress.Students, horizon, s.limits)
	return &dto.ForecastResponse{Horizon: horizon, Semesters: demand}, nil
}
