package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the .env file for local runs and builds the config from the environment
func InitConfig(configPath string) *models.Config {
	v := newViper()

	if v.GetString("APP_ENV") == "local" && configPath != "" {
		// Load config from file
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "mylink")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8000)
	v.SetDefault("SERVER_READ_TIMEOUT", 5)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_DATABASE", "mylink")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("CACHE_DRIVER", "redis")

	v.SetDefault("ESKIZ_BASE_URL", "https://notify.eskiz.uz/api")
	v.SetDefault("ESKIZ_FROM", "4546")
	v.SetDefault("ESKIZ_TIMEOUT", 10)
	v.SetDefault("SMS_DEV_FALLBACK", false)

	v.SetDefault("OTP_CODE_TTL", 300)
	v.SetDefault("OTP_MAX_REQUESTS", 3)
	v.SetDefault("OTP_REQUEST_WINDOW", 3600)
	v.SetDefault("OTP_COOLDOWN", 60)
	v.SetDefault("OTP_MAX_FAILURES", 5)
	v.SetDefault("OTP_LOCKOUT", 1800)

	v.SetDefault("RATE_LIMIT_OTP_PER_HOUR", 10)
	v.SetDefault("RATE_LIMIT_LOGIN_PER_HOUR", 20)

	v.SetDefault("EVENTS_DRIVER", "none")
	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("NEW_RELIC_APP_NAME", "mylink")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
	v.SetDefault("LOG_TYPE", "console")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.Cache.Driver = v.GetString("CACHE_DRIVER")

	// SMS provider config
	configs.SMS.Email = v.GetString("ESKIZ_EMAIL")
	configs.SMS.Password = v.GetString("ESKIZ_PASSWORD")
	configs.SMS.BaseURL = strings.TrimRight(v.GetString("ESKIZ_BASE_URL"), "/")
	configs.SMS.From = v.GetString("ESKIZ_FROM")
	configs.SMS.Timeout = v.GetInt("ESKIZ_TIMEOUT")
	configs.SMS.DevFallback = v.GetBool("SMS_DEV_FALLBACK")

	// OTP config
	configs.OTP.CodeTTL = v.GetInt("OTP_CODE_TTL")
	configs.OTP.MaxRequests = v.GetInt("OTP_MAX_REQUESTS")
	configs.OTP.RequestWindow = v.GetInt("OTP_REQUEST_WINDOW")
	configs.OTP.Cooldown = v.GetInt("OTP_COOLDOWN")
	configs.OTP.MaxFailures = v.GetInt("OTP_MAX_FAILURES")
	configs.OTP.LockoutDuration = v.GetInt("OTP_LOCKOUT")

	// Per client address throttles
	configs.RateLimit.OTPPerHour = v.GetInt("RATE_LIMIT_OTP_PER_HOUR")
	configs.RateLimit.LoginPerHour = v.GetInt("RATE_LIMIT_LOGIN_PER_HOUR")

	// Events config
	configs.Events.Driver = v.GetString("EVENTS_DRIVER")
	configs.Events.NSQAddress = v.GetString("NSQ_ADDRESS")
	configs.Events.NATSURL = v.GetString("NATS_URL")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LogsEnabled = v.GetBool("NEW_RELIC_LOGS_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.Type = v.GetString("LOG_TYPE")

	// The dev fallback prints codes to the log, never allow it in production
	if configs.SMS.DevFallback && configs.App.IsProduction() {
		log.Println("Warning: SMS_DEV_FALLBACK is ignored in production")
		configs.SMS.DevFallback = false
	}

	return configs
}
