package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxgen/service/internal/apperr"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestJSON_SetsContentTypeAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, map[string]string{"image_url": "https://images.example.com/x.png"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"image_url":"https://images.example.com/x.png"}`, rec.Body.String())
}

func TestFromError_ClassifiedError(t *testing.T) {
	rec := httptest.NewRecorder()
	FromError(rec, apperr.Upstream(http.StatusPaymentRequired, "image generation failed: quota exceeded"))

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, "image generation failed: quota exceeded", decodeBody(t, rec).Detail)
}

func TestFromError_UnclassifiedErrorIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	FromError(rec, errors.New("nil pointer dereference"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeBody(t, rec).Detail)
}
