package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPingHandler(t *testing.T) {
	t.Run("Default ping handler", func(t *testing.T) {
		t.Setenv("GIT_COMMIT", "")
		t.Setenv("BUILD_TIME", "")

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec)

		err := NewPingHandler("mylink", "")(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response BuildInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "mylink", response.ServiceName)
		assert.Equal(t, "development", response.Version)
		assert.Equal(t, "unknown", response.GitCommit)
		assert.Equal(t, "unknown", response.BuildTime)
		assert.Equal(t, runtime.Version(), response.GoVersion)
		assert.NotEmpty(t, response.Hostname)
		assert.False(t, response.ServerTime.IsZero())
	})

	t.Run("Ping handler with build metadata", func(t *testing.T) {
		t.Setenv("GIT_COMMIT", "def456")
		t.Setenv("BUILD_TIME", "2024-06-01T12:00:00Z")

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec)

		require.NoError(t, NewPingHandler("mylink", "2.0.0")(c))

		var response BuildInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "2.0.0", response.Version)
		assert.Equal(t, "def456", response.GitCommit)
		assert.Equal(t, "2024-06-01T12:00:00Z", response.BuildTime)
	})

	t.Run("Multiple calls return updated server time", func(t *testing.T) {
		e := echo.New()
		handler := NewPingHandler("mylink", "1.0.0")

		rec1 := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec1)))
		time.Sleep(10 * time.Millisecond)
		rec2 := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec2)))

		var response1, response2 BuildInfo
		require.NoError(t, json.Unmarshal(rec1.Body.Bytes(), &response1))
		require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &response2))
		assert.True(t, response2.ServerTime.After(response1.ServerTime))
	})
}

func TestService_CheckAll(t *testing.T) {
	svc := NewService()
	svc.AddChecker("postgres", CheckerFunc(func(ctx context.Context) error { return nil }))
	svc.AddChecker("redis", CheckerFunc(func(ctx context.Context) error { return errors.New("connection refused") }))

	response := svc.CheckAll(context.Background())

	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
	assert.Equal(t, "unhealthy", response.Dependencies["redis"].Status)
	assert.Equal(t, "connection refused", response.Dependencies["redis"].Error)
}

func TestRegisterHealthEndpoints(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		redisErr     error
		expectedCode int
	}{
		{name: "health", path: "/health", expectedCode: http.StatusOK},
		{name: "healthz", path: "/healthz", expectedCode: http.StatusOK},
		{name: "ping", path: "/ping", expectedCode: http.StatusOK},
		{name: "ready with healthy dependencies", path: "/ready", expectedCode: http.StatusOK},
		{name: "ready with failing redis", path: "/ready", redisErr: errors.New("down"), expectedCode: http.StatusServiceUnavailable},
		{name: "unknown path", path: "/nope", expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			svc := NewService()
			redisErr := tt.redisErr
			svc.AddChecker("redis", CheckerFunc(func(ctx context.Context) error { return redisErr }))

			e := echo.New()
			RegisterHealthEndpoints(e, "mylink", "1.0.0", svc)

			rec := httptest.NewRecorder()

			// Act
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			// Assert
			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.path == "/ready" {
				var response Response
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
				assert.Equal(t, "mylink", response.Service)
				assert.Contains(t, response.Dependencies, "redis")
			}
		})
	}
}
