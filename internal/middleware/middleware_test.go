package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/advisehub/internal/app/models/dto"
	"github.com/emre/advisehub/internal/pkg/apperrors"
	"github.com/emre/advisehub/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"catalog not found", apperrors.ErrCatalogNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"wrapped not found", apperrors.NewResourceNotFoundError("gone"), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"period conflict", apperrors.ErrPeriodAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"invalid catalog", &apperrors.CustomError{Err: apperrors.ErrCatalogInvalid, Message: "row 2 missing code"}, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"snapshot mismatch", apperrors.ErrSnapshotMismatch, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad forecast params", apperrors.ErrInvalidForecastParams, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown error", assertableErr("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(rec)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(ctx, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body dto.APIResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

type assertableErr string

func (e assertableErr) Error() string { return string(e) }

func TestValidateRequest(t *testing.T) {
	router := gin.New()
	var req dto.CreatePeriodRequest
	router.POST("/periods", ValidateRequest(&req), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"name": req.Name})
	})

	t.Run("valid body passes through", func(t *testing.T) {
		rec := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/periods", strings.NewReader(`{"name":"2026 Fall"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, request)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing required field rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/periods", strings.NewReader(`{}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, request)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("name below minimum rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/periods", strings.NewReader(`{"name":"ab"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, request)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdvisorMiddlewareIdentify(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "advisehub-test",
	})

	router := gin.New()
	router.Use(NewAdvisorMiddleware(jwtService).Identify())
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"advisor": AdvisorName(c)})
	})

	serve := func(authorization string) map[string]string {
		rec := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if authorization != "" {
			request.Header.Set("Authorization", authorization)
		}
		router.ServeHTTP(rec, request)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body
	}

	t.Run("valid token attaches advisor name", func(t *testing.T) {
		token, err := jwtService.GenerateAdvisorToken("Dr. Kaya")
		require.NoError(t, err)

		body := serve("Bearer " + token)
		assert.Equal(t, "Dr. Kaya", body["advisor"])
	})

	t.Run("missing token still serves request", func(t *testing.T) {
		body := serve("")
		assert.Equal(t, "", body["advisor"])
	})

	t.Run("invalid token ignored", func(t *testing.T) {
		body := serve("Bearer garbage")
		assert.Equal(t, "", body["advisor"])
	})
}
