package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/mylink/internal/pkg/logger"
	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestLogger() (*logger.ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return logger.NewFromZap(zap.New(core), "mylink"), logs
}

func TestNewGracefulServer(t *testing.T) {
	tests := []struct {
		name            string
		config          models.ServerConfig
		expectedAddr    string
		expectedTimeout time.Duration
	}{
		{
			name:            "Configured timeout",
			config:          models.ServerConfig{Host: "0.0.0.0", Port: 8000, ShutdownTimeout: 10, ReadTimeout: 5, WriteTimeout: 15},
			expectedAddr:    "0.0.0.0:8000",
			expectedTimeout: 10 * time.Second,
		},
		{
			name:            "Default timeout",
			config:          models.ServerConfig{Port: 9090},
			expectedAddr:    ":9090",
			expectedTimeout: defaultShutdownTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zapLogger, _ := newTestLogger()
			e := echo.New()

			gs := NewGracefulServer(e, zapLogger, tt.config)

			assert.Equal(t, tt.expectedAddr, gs.addr)
			assert.Equal(t, tt.expectedTimeout, gs.shutdownTimeout)
			assert.Equal(t, time.Duration(tt.config.ReadTimeout)*time.Second, e.Server.ReadTimeout)
		})
	}
}

func TestGracefulServer_ShutdownRunsCleanup(t *testing.T) {
	zapLogger, logs := newTestLogger()
	gs := NewGracefulServer(echo.New(), zapLogger, models.ServerConfig{Port: 0})

	var order []string
	gs.OnShutdown(func(ctx context.Context) error {
		order = append(order, "redis")
		return nil
	})
	gs.OnShutdown(func(ctx context.Context) error {
		order = append(order, "postgres")
		return nil
	})

	err := gs.Shutdown()

	assert.NoError(t, err)
	assert.Equal(t, []string{"redis", "postgres"}, order)
	assert.Equal(t, 1, logs.FilterMessage("Server shutdown completed").Len())
}

func TestShutdownManager_Shutdown(t *testing.T) {
	t.Run("continues after a failing function", func(t *testing.T) {
		zapLogger, logs := newTestLogger()
		sm := NewShutdownManager(zapLogger)
		var results []string

		sm.Register(func(ctx context.Context) error {
			results = append(results, "cleanup1")
			return errors.New("close failed")
		})
		sm.Register(func(ctx context.Context) error {
			results = append(results, "cleanup2")
			return nil
		})

		sm.Shutdown(context.Background())

		assert.Equal(t, []string{"cleanup1", "cleanup2"}, results)
		assert.Equal(t, 1, logs.FilterMessage("Error during component shutdown").Len())
	})

	t.Run("nil functions are ignored", func(t *testing.T) {
		zapLogger, _ := newTestLogger()
		sm := NewShutdownManager(zapLogger)

		assert.NotPanics(t, func() {
			sm.Register(nil)
			sm.Shutdown(context.Background())
		})
		assert.Empty(t, sm.functions)
	})
}
