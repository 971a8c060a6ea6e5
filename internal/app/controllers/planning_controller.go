package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/emre/advisehub/internal/app/models/dto"
	"github.com/emre/advisehub/internal/app/services"
	"github.com/emre/advisehub/internal/middleware"
)

// PlanningController exposes the engine views: eligibility checks, the
// dependency graph, semester projections and demand forecasts.
type PlanningController struct {
	planningService *services.PlanningService
}

// NewPlanningController creates a new PlanningController
func NewPlanningController(planningService *services.PlanningService) *PlanningController {
	return &PlanningController{
		planningService: planningService,
	}
}

// parsePeriodQuery reads the optional periodId query parameter. The bool
// reports whether the request can proceed.
func parsePeriodQuery(ctx *gin.Context) (*uuid.UUID, bool) {
	raw := ctx.Query("periodId")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid periodId")
		errorDetail = errorDetail.WithDetails("periodId must be a valid UUID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, false
	}
	return &id, true
}

// GetGraph returns the catalog's dependency graph
// @Summary Get dependency graph
// @Description Builds the prerequisite graph for a catalog with bottleneck scores and dependent counts per course
// @Tags planning
// @Produce json
// @Param id path string true "Catalog ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.GraphResponse} "Graph built successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid catalog ID"
// @Failure 404 {object} dto.ErrorResponse "Catalog not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /catalogs/{id}/graph [get]
func (c *PlanningController) GetGraph(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	graph, err := c.planningService.GraphView(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      graph,
		Timestamp: time.Now(),
	})
}

// GetMutualPairs returns the catalog's mutual-requirement pairs
// @Summary Get mutual pairs
// @Description Lists courses that name each other as concurrent or corequisite requirements
// @Tags planning
// @Produce json
// @Param id path string true "Catalog ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=map[string][]string} "Mutual pairs retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid catalog ID"
// @Failure 404 {object} dto.ErrorResponse "Catalog not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /catalogs/{id}/mutual-pairs [get]
func (c *PlanningController) GetMutualPairs(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	pairs, err := c.planningService.MutualPairsView(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      pairs,
		Timestamp: time.Now(),
	})
}

// CheckEligibility evaluates course eligibility for a student
// @Summary Check course eligibility
// @Description Evaluates eligibility for one course when the course query parameter is set, otherwise for every course in the catalog
// @Tags planning
// @Produce json
// @Param id path string true "Catalog ID" Format(uuid)
// @Param progressId path string true "Progress ID" Format(uuid)
// @Param studentId path string true "Student ID"
// @Param course query string false "Course code; omit to evaluate the whole catalog"
// @Param periodId query string false "Advising period whose selection counts as advised courses" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=[]dto.EligibilityResponse} "Eligibility evaluated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters or snapshot mismatch"
// @Failure 404 {object} dto.ErrorResponse "Catalog, progress or student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /catalogs/{id}/progress/{progressId}/students/{studentId}/eligibility [get]
func (c *PlanningController) CheckEligibility(ctx *gin.Context) {
	catalogID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	progressID, ok := parseUUIDParam(ctx, "progressId")
	if !ok {
		return
	}
	periodID, ok := parsePeriodQuery(ctx)
	if !ok {
		return
	}

	studentID := ctx.Param("studentId")

	if course := ctx.Query("course"); course != "" {
		result, err := c.planningService.CheckEligibility(ctx, catalogID, progressID, studentID, course, periodID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data:      result,
			Timestamp: time.Now(),
		})
		return
	}

	results, err := c.planningService.CheckAllEligibility(ctx, catalogID, progressID, studentID, periodID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      results,
		Timestamp: time.Now(),
	})
}

// GetProjection computes a student's semester projection
// @Summary Project remaining semesters
// @Description Assigns every uncompleted course a projected semester label for a student
// @Tags planning
// @Produce json
// @Param id path string true "Catalog ID" Format(uuid)
// @Param progressId path string true "Progress ID" Format(uuid)
// @Param studentId path string true "Student ID"
// @Param periodId query string false "Advising period whose selection counts as advised courses" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.ProjectionResponse} "Projection computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters or snapshot mismatch"
// @Failure 404 {object} dto.ErrorResponse "Catalog, progress or student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /catalogs/{id}/progress/{progressId}/students/{studentId}/projection [get]
func (c *PlanningController) GetProjection(ctx *gin.Context) {
	catalogID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	progressID, ok := parseUUIDParam(ctx, "progressId")
	if !ok {
		return
	}
	periodID, ok := parsePeriodQuery(ctx)
	if !ok {
		return
	}

	projection, err := c.planningService.ProjectSchedule(ctx, catalogID, progressID, ctx.Param("studentId"), periodID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      projection,
		Timestamp: time.Now(),
	})
}

// GetForecast computes cohort-wide demand
// @Summary Forecast course demand
// @Description Simulates every student's path through the catalog and aggregates per-course demand per future semester
// @Tags planning
// @Produce json
// @Param id path string true "Catalog ID" Format(uuid)
// @Param progressId path string true "Progress ID" Format(uuid)
// @Param horizon query int false "Number of semesters to forecast; defaults to the configured horizon"
// @Success 200 {object} dto.APIResponse{data=dto.ForecastResponse} "Forecast computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters or snapshot mismatch"
// @Failure 404 {object} dto.ErrorResponse "Catalog or progress not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /catalogs/{id}/progress/{progressId}/forecast [get]
func (c *PlanningController) GetForecast(ctx *gin.Context) {
	catalogID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	progressID, ok := parseUUIDParam(ctx, "progressId")
	if !ok {
		return
	}

	horizon := 0
	if raw := ctx.Query("horizon"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid horizon")
			errorDetail = errorDetail.WithDetails("horizon must be an integer")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		horizon = parsed
	}

	forecast, err := c.planningService.Forecast(ctx, catalogID, progressID, horizon)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      forecast,
		Timestamp: time.Now(),
	})
}
