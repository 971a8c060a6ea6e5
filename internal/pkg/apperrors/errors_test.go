package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesAnyTarget(t *testing.T) {
	assert.True(t, Is(ErrCatalogNotFound, ErrProgressNotFound, ErrCatalogNotFound))
	assert.False(t, Is(ErrCatalogNotFound, ErrProgressNotFound, ErrPeriodNotFound))
	assert.False(t, Is(nil, ErrCatalogNotFound))
}

func TestCustomErrorUnwraps(t *testing.T) {
	err := &CustomError{Err: ErrCatalogInvalid, Message: "row 3 is missing a course code"}

	assert.Equal(t, "row 3 is missing a course code", err.Error())
	assert.ErrorIs(t, err, ErrCatalogInvalid)

	wrapped := fmt.Errorf("upload failed: %w", err)
	assert.ErrorIs(t, wrapped, ErrCatalogInvalid)
}

func TestCustomErrorFallbackMessages(t *testing.T) {
	assert.Equal(t, ErrBadRequest.Error(), (&CustomError{Err: ErrBadRequest}).Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}

func TestConstructorsWrapSentinels(t *testing.T) {
	assert.True(t, errors.Is(NewResourceNotFoundError("x"), ErrResourceNotFound))
	assert.True(t, errors.Is(NewConflictError("x"), ErrResourceAlreadyExists))
	assert.True(t, errors.Is(NewBadRequestError("x"), ErrBadRequest))
	assert.True(t, errors.Is(NewValidationError("x"), ErrValidationFailed))
}
