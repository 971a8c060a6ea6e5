package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emre/advisehub/internal/app/models/dto"
	"github.com/emre/advisehub/internal/pkg/apperrors"
	"github.com/emre/advisehub/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses in one place so
// controllers stay free of status-code switches.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err,
		apperrors.ErrCatalogNotFound,
		apperrors.ErrProgressNotFound,
		apperrors.ErrPeriodNotFound,
		apperrors.ErrSelectionNotFound,
		apperrors.ErrBypassNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err)

	case apperrors.Is(err, apperrors.ErrPeriodAlreadyExists, apperrors.ErrResourceAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err)

	case apperrors.Is(err,
		apperrors.ErrCatalogInvalid,
		apperrors.ErrProgressInvalid,
		apperrors.ErrSnapshotMismatch,
		apperrors.ErrInvalidForecastParams,
		apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err)

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
			Timestamp: time.Now(),
		})
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, err error) {
	c.JSON(status, dto.APIResponse{
		Error:     dto.NewErrorDetail(code, err.Error()),
		Timestamp: time.Now(),
	})
}
