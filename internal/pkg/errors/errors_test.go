package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WithDetails(t *testing.T) {
	err := ErrInvalidEGRID.WithDetails(map[string]interface{}{"egrid": "CH1"})

	assert.Equal(t, "CH1", err.Details["egrid"])
	assert.Empty(t, ErrInvalidEGRID.Details)
	assert.ErrorIs(t, err, ErrInvalidEGRID)
	assert.NotErrorIs(t, err, ErrInvalidTopic)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", ErrRealEstateNotFound)

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNoContent, appErr.StatusCode)

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}
