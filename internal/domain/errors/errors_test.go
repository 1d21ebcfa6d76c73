package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsSurvivesWithDetails(t *testing.T) {
	err := ErrProductNotFound.WithDetails("p999")

	assert.True(t, stderrors.Is(err, ErrProductNotFound))
	assert.False(t, stderrors.Is(err, ErrOrderNotFound))
	assert.Equal(t, "p999", err.Details())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrCartEmpty.WrapMessage("place order")

	var appErr AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
	assert.Equal(t, "CART_EMPTY", appErr.ErrorCode())
}

func TestStorageError(t *testing.T) {
	cause := pkgerrors.New("disk full")
	err := NewStorageError(cause, "save cart")

	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "STORAGE_FAILED", err.ErrorCode())
	assert.True(t, stderrors.Is(err, cause))
}

func TestFromAppError(t *testing.T) {
	resp := FromAppError(ErrAssistantBusy)

	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, "ASSISTANT_BUSY", resp.Error.Code)
}
