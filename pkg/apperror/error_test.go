package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lifemate-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

var errCause = errors.New("cause")

func TestAppErrorUnwrap(t *testing.T) {
	err := apperror.New(http.StatusInternalServerError, "Failed", fmt.Errorf("wrapped: %w", errCause))

	assert.True(t, errors.Is(err, errCause))
	assert.Equal(t, "Failed", err.Error())

	var appErr *apperror.AppError
	assert.True(t, errors.As(fmt.Errorf("outer: %w", err), &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}

func TestValidation(t *testing.T) {
	err := apperror.Validation([]apperror.FieldError{{Field: "title", Message: "title is required"}})

	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Len(t, err.Fields, 1)
	assert.Equal(t, "title", err.Fields[0].Field)
}
