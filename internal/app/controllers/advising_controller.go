package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emre/advisehub/internal/app/models"
	"github.com/emre/advisehub/internal/app/models/dto"
	"github.com/emre/advisehub/internal/app/services"
	"github.com/emre/advisehub/internal/middleware"
)

// AdvisingController handles advising periods, selections and bypasses
type AdvisingController struct {
	advisingService *services.AdvisingService
}

// NewAdvisingController creates a new AdvisingController
func NewAdvisingController(advisingService *services.AdvisingService) *AdvisingController {
	return &AdvisingController{
		advisingService: advisingService,
	}
}

// resolveAdvisor picks the advisor name for a bypass grant. A name from a
// validated identity token wins over the one in the request body.
func resolveAdvisor(ctx *gin.Context, fromBody string) string {
	if name := middleware.AdvisorName(ctx); name != "" {
		return name
	}
	return fromBody
}

// CreatePeriod creates a named advising period
// @Summary Create an advising period
// @Description Creates a new named advising period
// @Tags advising
// @Accept json
// @Produce json
// @Param request body dto.CreatePeriodRequest true "Period information"
// @Success 201 {object} dto.APIResponse{data=models.AdvisingPeriod} "Period created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Period already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /periods [post]
func (c *AdvisingController) CreatePeriod(ctx *gin.Context) {
	var req dto.CreatePeriodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid period data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	period, err := c.advisingService.CreatePeriod(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      period,
		Timestamp: time.Now(),
	})
}

// ListPeriods lists all advising periods
// @Summary List advising periods
// @Description Retrieves all advising periods, newest first
// @Tags advising
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.AdvisingPeriod} "Periods retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /periods [get]
func (c *AdvisingController) ListPeriods(ctx *gin.Context) {
	periods, err := c.advisingService.ListPeriods(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      periods,
		Timestamp: time.Now(),
	})
}

// SaveSelection replaces a student's selection for a period
// @Summary Save an advising selection
// @Description Replaces the advised, optional and repeat course lists for a student in a period
// @Tags advising
// @Accept json
// @Produce json
// @Param periodId path string true "Period ID" Format(uuid)
// @Param studentId path string true "Student ID"
// @Param request body dto.SaveSelectionRequest true "Selection lists"
// @Success 200 {object} dto.APIResponse{data=models.AdvisingSelection} "Selection saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid selection data"
// @Failure 404 {object} dto.ErrorResponse "Period not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /periods/{periodId}/selections/{studentId} [put]
func (c *AdvisingController) SaveSelection(ctx *gin.Context) {
	periodID, ok := parseUUIDParam(ctx, "periodId")
	if !ok {
		return
	}

	var req dto.SaveSelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid selection data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	selection := &models.AdvisingSelection{
		Advised:  req.Advised,
		Optional: req.Optional,
		Repeat:   req.Repeat,
		Note:     req.Note,
	}
	saved, err := c.advisingService.SaveSelection(ctx, periodID, ctx.Param("studentId"), selection)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      saved,
		Timestamp: time.Now(),
	})
}

// GetSelection retrieves a student's selection for a period
// @Summary Get an advising selection
// @Description Retrieves the stored selection for a student in a period
// @Tags advising
// @Produce json
// @Param periodId path string true "Period ID" Format(uuid)
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.AdvisingSelection} "Selection retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid period ID"
// @Failure 404 {object} dto.ErrorResponse "Selection not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /periods/{periodId}/selections/{studentId} [get]
func (c *AdvisingController) GetSelection(ctx *gin.Context) {
	periodID, ok := parseUUIDParam(ctx, "periodId")
	if !ok {
		return
	}

	selection, err := c.advisingService.GetSelection(ctx, periodID, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      selection,
		Timestamp: time.Now(),
	})
}

// GrantBypass grants a requisite bypass to a student
// @Summary Grant a bypass
// @Description Records a requisite bypass for a student's course. With a valid advisor token the grant is attributed to the token's advisor name.
// @Tags advising
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param request body dto.GrantBypassRequest true "Bypass information"
// @Success 201 {object} dto.APIResponse{data=models.StudentBypass} "Bypass granted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid bypass data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{studentId}/bypasses [post]
func (c *AdvisingController) GrantBypass(ctx *gin.Context) {
	var req dto.GrantBypassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid bypass data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	advisor := resolveAdvisor(ctx, req.Advisor)

	bypass, err := c.advisingService.GrantBypass(ctx, ctx.Param("studentId"), req.CourseCode, req.Note, advisor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      bypass,
		Timestamp: time.Now(),
	})
}

// RevokeBypass removes a bypass
// @Summary Revoke a bypass
// @Description Removes a previously granted bypass for a student's course
// @Tags advising
// @Produce json
// @Param studentId path string true "Student ID"
// @Param courseCode path string true "Course code"
// @Success 204 "Bypass revoked successfully"
// @Failure 404 {object} dto.ErrorResponse "Bypass not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{studentId}/bypasses/{courseCode} [delete]
func (c *AdvisingController) RevokeBypass(ctx *gin.Context) {
	err := c.advisingService.RevokeBypass(ctx, ctx.Param("studentId"), ctx.Param("courseCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}

// ListBypasses lists a student's bypasses
// @Summary List bypasses
// @Description Retrieves all bypasses granted to a student
// @Tags advising
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.StudentBypass} "Bypasses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{studentId}/bypasses [get]
func (c *AdvisingController) ListBypasses(ctx *gin.Context) {
	bypasses, err := c.advisingService.ListBypasses(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      bypasses,
		Timestamp: time.Now(),
	})
}
