package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails("vendor_token is required")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrAddressSyncFailed)
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "input validation failed: vendor_token is required", err.Error())
}

func TestBaseError_WrapMessageIsUnwrappable(t *testing.T) {
	err := ErrAddressWriteRejected.WrapMessage("missing region")

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "ADDRESS_WRITE_REJECTED", appErr.ErrorCode())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to update address")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to update address", err.Details())
}
