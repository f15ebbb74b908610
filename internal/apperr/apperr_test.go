package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusOf(InvalidRequest("prompt is required")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(Configuration("FLUX_API_KEY environment variable not set")))
	assert.Equal(t, http.StatusTooManyRequests, StatusOf(Upstream(http.StatusTooManyRequests, "image generation failed")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(Storage("upload failed", errors.New("boom"))))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("not classified")))
}

func TestDetailOf(t *testing.T) {
	assert.Equal(t, "prompt is required", DetailOf(InvalidRequest("prompt is required")))
	// Unclassified errors must not leak their message to the caller.
	assert.Equal(t, "internal server error", DetailOf(errors.New("pool exhausted")))
}

func TestKindOf_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("upload image: %w", Storage("upload failed", errors.New("dial tcp")))
	assert.Equal(t, KindStorage, KindOf(err))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
	assert.Equal(t, "upload failed", DetailOf(err))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Storage("upload failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}
