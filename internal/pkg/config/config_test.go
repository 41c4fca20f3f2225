package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	configs := InitConfig("")

	assert.Equal(t, "mylink", configs.App.Name)
	assert.Equal(t, 8000, configs.Server.Port)
	assert.Equal(t, "redis", configs.Cache.Driver)
	assert.Equal(t, "https://notify.eskiz.uz/api", configs.SMS.BaseURL)
	assert.Equal(t, "4546", configs.SMS.From)
	assert.Equal(t, 10, configs.SMS.Timeout)
	assert.False(t, configs.SMS.DevFallback)

	assert.Equal(t, 300, configs.OTP.CodeTTL)
	assert.Equal(t, 3, configs.OTP.MaxRequests)
	assert.Equal(t, 3600, configs.OTP.RequestWindow)
	assert.Equal(t, 60, configs.OTP.Cooldown)
	assert.Equal(t, 5, configs.OTP.MaxFailures)
	assert.Equal(t, 1800, configs.OTP.LockoutDuration)

	assert.Equal(t, 10, configs.RateLimit.OTPPerHour)
	assert.Equal(t, 20, configs.RateLimit.LoginPerHour)
	assert.Equal(t, "none", configs.Events.Driver)
}

func TestInitConfig_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ESKIZ_EMAIL", "ops@mylink.asia")
	t.Setenv("ESKIZ_PASSWORD", "secret")
	t.Setenv("ESKIZ_BASE_URL", "http://eskiz.local/api/")
	t.Setenv("SMS_DEV_FALLBACK", "true")
	t.Setenv("EVENTS_DRIVER", "nsq")

	configs := InitConfig("")

	assert.Equal(t, 9090, configs.Server.Port)
	assert.True(t, configs.SMS.HasCredentials())
	assert.Equal(t, "http://eskiz.local/api", configs.SMS.BaseURL)
	assert.True(t, configs.SMS.DevFallback)
	assert.Equal(t, "nsq", configs.Events.Driver)
}

func TestInitConfig_DevFallbackRefusedInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SMS_DEV_FALLBACK", "true")

	configs := InitConfig("")

	assert.True(t, configs.App.IsProduction())
	assert.False(t, configs.SMS.DevFallback)
}

func TestInitConfig_LoadsDotEnvWhenLocal(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "mylink.env")
	require.NoError(t, os.WriteFile(envFile, []byte("REDIS_PORT=6380\nCACHE_DRIVER=memory\n"), 0600))

	t.Setenv("APP_ENV", "local")
	// godotenv never overrides variables that are already set, register cleanup for the ones it adds
	t.Cleanup(func() {
		os.Unsetenv("REDIS_PORT")
		os.Unsetenv("CACHE_DRIVER")
	})

	configs := InitConfig(envFile)

	assert.Equal(t, 6380, configs.Redis.Port)
	assert.Equal(t, "memory", configs.Cache.Driver)
}
