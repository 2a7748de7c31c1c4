package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/portfolio/internal/auth"
	"github.com/yoockh/portfolio/internal/logger"
	"github.com/yoockh/portfolio/internal/models"
)

func init() { gin.SetMode(gin.TestMode) }

func protected(tokens *auth.TokenIssuer) *gin.Engine {
	r := gin.New()
	r.GET("/admin", JWTAuth(tokens), RequireAdmin(), func(c *gin.Context) {
		id, _ := c.Get(CtxAccountID)
		c.JSON(http.StatusOK, gin.H{"account_id": id})
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", "portfolio", time.Hour)
	r := protected(tokens)

	staff, _, err := tokens.Issue(&models.Account{ID: 4, Username: "admin", IsStaff: true})
	require.NoError(t, err)
	plain, _, err := tokens.Issue(&models.Account{ID: 5, Username: "user"})
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"non staff", "Bearer " + plain, http.StatusForbidden},
		{"staff", "Bearer " + staff, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestJWTAuthWithoutSecret(t *testing.T) {
	r := protected(auth.NewTokenIssuer("", "", time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer x")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestInvalidateOnWrite(t *testing.T) {
	calls := 0
	r := gin.New()
	r.Use(InvalidateOnWrite(func(context.Context) { calls++ }))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.PUT("/x", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.DELETE("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, m := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(m, "/x", nil))
	}
	assert.Equal(t, 2, calls)
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS("/", []string{"https://admin.example.com"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMediaHeaders(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "icon.svg"), []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`), 0o644))

	r := gin.New()
	r.Group("/media", MediaHeaders()).Static("/", dir)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/media/icon.svg", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "sandbox")
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'none'")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(logger.NewWithOutput(&buf, "info", "json")))
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/3", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	assert.Contains(t, buf.String(), `"path":"/items/:id"`)
	assert.Contains(t, buf.String(), `"level":"warning"`)
}
