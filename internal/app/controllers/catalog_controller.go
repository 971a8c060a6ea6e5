package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/emre/advisehub/internal/app/models/dto"
	"github.com/emre/advisehub/internal/app/services"
	"github.com/emre/advisehub/internal/middleware"
)

// CatalogController handles catalog and progress snapshot operations
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// parseUUIDParam reads a UUID path parameter, writing a 400 response when
// the value does not parse. The bool reports whether parsing succeeded.
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a valid UUID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return uuid.Nil, false
	}
	return id, true
}

// UploadCatalog stores a new catalog snapshot
// @Summary Upload a course catalog
// @Description Validates a catalog table and stores it as an immutable snapshot
// @Tags catalogs
// @Accept json
// @Produce json
// @Param request body dto.UploadCatalogRequest true "Catalog table"
// @Success 201 {object} dto.APIResponse{data=models.CatalogSnapshot} "Catalog stored successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid catalog data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /catalogs [post]
func (c *CatalogController) UploadCatalog(ctx *gin.Context) {
	var req dto.UploadCatalogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid catalog data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	snapshot, err := c.catalogService.UploadCatalog(ctx, req.Name, req.Courses)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      snapshot,
		Timestamp: time.Now(),
	})
}

// ListCatalogs lists stored catalog snapshots
// @Summary List catalog snapshots
// @Description Retrieves metadata for all stored catalog snapshots
// @Tags catalogs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CatalogSnapshot} "Catalogs retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /catalogs [get]
func (c *CatalogController) ListCatalogs(ctx *gin.Context) {
	catalogs, err := c.catalogService.ListCatalogs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      catalogs,
		Timestamp: time.Now(),
	})
}

// GetCatalog retrieves one catalog snapshot
// @Summary Get catalog by ID
// @Description Retrieves a stored catalog snapshot including its course rows
// @Tags catalogs
// @Produce json
// @Param id path string true "Catalog ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.CatalogSnapshot} "Catalog retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid catalog ID"
// @Failure 404 {object} dto.ErrorResponse "Catalog not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /catalogs/{id} [get]
func (c *CatalogController) GetCatalog(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	snapshot, _, err := c.catalogService.GetCatalog(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      snapshot,
		Timestamp: time.Now(),
	})
}

// UploadProgress stores a progress snapshot for a catalog
// @Summary Upload student progress
// @Description Validates a progress table and stores it as a snapshot bound to a catalog
// @Tags catalogs
// @Accept json
// @Produce json
// @Param id path string true "Catalog ID" Format(uuid)
// @Param request body dto.UploadProgressRequest true "Progress table"
// @Success 201 {object} dto.APIResponse{data=models.ProgressSnapshot} "Progress stored successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid progress data"
// @Failure 404 {object} dto.ErrorResponse "Catalog not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /catalogs/{id}/progress [post]
func (c *CatalogController) UploadProgress(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UploadProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid progress data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	snapshot, err := c.catalogService.UploadProgress(ctx, id, req.Students)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      snapshot,
		Timestamp: time.Now(),
	})
}

// GetProgress retrieves one progress snapshot
// @Summary Get progress snapshot by ID
// @Description Retrieves a stored progress snapshot including student rows
// @Tags catalogs
// @Produce json
// @Param id path string true "Progress ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.ProgressSnapshot} "Progress retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid progress ID"
// @Failure 404 {object} dto.ErrorResponse "Progress not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /progress/{id} [get]
func (c *CatalogController) GetProgress(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	snapshot, err := c.catalogService.GetProgress(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      snapshot,
		Timestamp: time.Now(),
	})
}
