package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCustomErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", ErrCatalogUnavailable.Wrap(errors.New("timeout")))

	assert.True(t, errors.Is(wrapped, ErrCatalogUnavailable))
	assert.False(t, errors.Is(wrapped, ErrCatalogEmpty))
	assert.Contains(t, wrapped.Error(), "timeout")
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"custom", ErrRecipeNotFound, http.StatusNotFound, "RECIPE_NOT_FOUND"},
		{"wrapped custom", ErrProfileStore.Wrap(errors.New("redis down")), http.StatusServiceUnavailable, "PROFILE_STORE_ERROR"},
		{"validation", NewValidationError("bad"), http.StatusBadRequest, ErrCodeInvalidRequest},
		{"plain", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			WriteError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.True(t, c.IsAborted())

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestParseJSON(t *testing.T) {
	var v map[string]interface{}
	require.NoError(t, ParseJSON(`{"a":1}`, &v))
	assert.Equal(t, json.Number("1"), v["a"])

	assert.Error(t, ParseJSON(`{"a":1} {"b":2}`, &v))
	assert.Error(t, ParseJSONBytes([]byte(`[1,`), &v))
}

func TestUserIDAndRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Equal(t, GuestUserID, UserID(c))

	id := RequestID(c)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, RequestID(c))

	c.Request.Header.Set("X-User-ID", "  u-7 ")
	c.Request.Header.Set("X-Request-ID", "req-1")
	assert.Equal(t, "u-7", UserID(c))
	assert.Equal(t, "req-1", RequestID(c))
}
