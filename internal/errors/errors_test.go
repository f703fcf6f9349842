package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByCode(t *testing.T) {
	err := NotFoundf("outfit %s not found", "outfit-1")

	assert.True(t, Is(err, ErrNotFound))
	assert.False(t, Is(err, ErrValidation))
	assert.Equal(t, "outfit outfit-1 not found", err.Error())
}

func TestStoreWrite_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := StoreWrite(cause, "wardrobe_outfits")

	assert.True(t, Is(err, ErrStoreWrite))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to save wardrobe_outfits: disk full", err.Error())
	assert.Equal(t, http.StatusInsufficientStorage, err.HTTPStatus())
}

func TestError_WrappedInFmtErrorf(t *testing.T) {
	err := fmt.Errorf("create item: %w", ValidationWithDetails("name is required", nil))

	var domainErr *Error
	assert.True(t, As(err, &domainErr))
	assert.Equal(t, CodeValidation, domainErr.Code)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())
}

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeValidation, http.StatusBadRequest},
		{CodeStoreWrite, http.StatusInsufficientStorage},
		{CodeInternal, http.StatusInternalServerError},
		{Code("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestValidationWithDetails(t *testing.T) {
	err := ValidationWithDetails("name is required", map[string]string{"name": "is required"})

	assert.Equal(t, map[string]string{"name": "is required"}, err.Details)
	assert.True(t, Is(err, ErrValidation))
}

func TestWrap_KeepsCauseAndCode(t *testing.T) {
	cause := fmt.Errorf("entropy unavailable")
	err := Wrap(cause, CodeInternal, "failed to generate item id")

	assert.True(t, Is(err, ErrInternal))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to generate item id: entropy unavailable", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
}
