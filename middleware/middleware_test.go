package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"tostreak/services"
	"tostreak/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key"

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subject": c.GetString("subject")})
}

func TestAuthMiddleware(t *testing.T) {
	router := testutils.NewTestRouter()
	router.GET("/protected", AuthMiddleware(testSecret), okHandler)

	valid, err := services.GenerateAccessToken(testSecret, "desk", time.Hour)
	require.NoError(t, err)
	expired, err := services.GenerateAccessToken(testSecret, "desk", -time.Hour)
	require.NoError(t, err)
	foreign, err := services.GenerateAccessToken("other", "desk", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"other secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers [][2]string
			if tt.header != "" {
				headers = append(headers, [2]string{"Authorization", tt.header})
			}
			w := testutils.PerformRequest(router, http.MethodGet, "/protected", nil, headers...)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"desk"`)
			}
		})
	}
}

func TestRequestTracingMiddleware(t *testing.T) {
	router := testutils.NewTestRouter()
	router.Use(RequestTracingMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := testutils.PerformRequest(router, http.MethodGet, "/", nil)
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	w = testutils.PerformRequest(router, http.MethodGet, "/", nil, [2]string{RequestIDHeader, "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORSMiddleware(t *testing.T) {
	router := testutils.NewTestRouter()
	router.Use(CORSMiddleware("http://localhost:5173"))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := testutils.PerformRequest(router, http.MethodOptions, "/", nil, [2]string{"Origin", "http://localhost:5173"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = testutils.PerformRequest(router, http.MethodGet, "/", nil, [2]string{"Origin", "http://evil.example"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSMiddlewareOpenWithoutCredentials(t *testing.T) {
	router := testutils.NewTestRouter()
	router.Use(CORSMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := testutils.PerformRequest(router, http.MethodGet, "/", nil, [2]string{"Origin", "http://evil.example"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://evil.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRequestSizeLimiter(t *testing.T) {
	router := testutils.NewTestRouter()
	router.Use(RequestSizeLimiter(16))
	router.POST("/", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	w := testutils.PerformRequest(router, http.MethodPost, "/", `{"a":1}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutils.PerformRequest(router, http.MethodPost, "/", `{"a":"`+strings.Repeat("x", 64)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	router := testutils.NewTestRouter()
	router.Use(EnhancedRecoveryMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := testutils.PerformRequest(router, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestMetricsHandler(t *testing.T) {
	router := testutils.NewTestRouter()
	router.Use(MetricsMiddleware())
	router.GET("/tasks/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", MetricsHandler())

	testutils.PerformRequest(router, http.MethodGet, "/tasks/42", nil)

	w := testutils.PerformRequest(router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",path="/tasks/:id",status="200"}`)
}

func TestSecurityAndCacheHeaders(t *testing.T) {
	router := testutils.NewTestRouter()
	router.Use(SecurityHeaders(), CacheControlMiddleware("no-store"))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := testutils.PerformRequest(router, http.MethodGet, "/", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}
