package response

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithRequestID(t *testing.T, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		seen = RequestID(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("X-Request-ID", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, seen
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("incoming id is reused", func(t *testing.T) {
		w, seen := serveWithRequestID(t, "class-12b-run-7")
		assert.Equal(t, "class-12b-run-7", seen)
		assert.Equal(t, "class-12b-run-7", w.Header().Get("X-Request-ID"))
	})

	t.Run("missing id is generated", func(t *testing.T) {
		w, seen := serveWithRequestID(t, "")
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
	})

	t.Run("oversized id is replaced", func(t *testing.T) {
		long := strings.Repeat("a", maxRequestIDLen+1)
		_, seen := serveWithRequestID(t, long)
		assert.NotEqual(t, long, seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})

	t.Run("id with spaces is replaced", func(t *testing.T) {
		_, seen := serveWithRequestID(t, "two words")
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})
}
