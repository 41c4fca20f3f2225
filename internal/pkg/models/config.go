package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	SMS       SMSConfig
	OTP       OTPConfig
	RateLimit RateLimitConfig
	Events    EventsConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// IsProduction reports whether the app runs with a production environment name
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production" || a.Environment == "prod"
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// CacheConfig selects the key-value backend used for OTP state
type CacheConfig struct {
	Driver string // "redis" or "memory"
}

// SMSConfig contains Eskiz SMS provider configuration
type SMSConfig struct {
	Email       string
	Password    string
	BaseURL     string
	From        string
	Timeout     int // in seconds
	DevFallback bool
}

// HasCredentials reports whether both provider credentials are set
func (s SMSConfig) HasCredentials() bool {
	return s.Email != "" && s.Password != ""
}

// OTPConfig contains OTP issuance and verification limits
type OTPConfig struct {
	CodeTTL         int // in seconds
	MaxRequests     int
	RequestWindow   int // in seconds
	Cooldown        int // in seconds
	MaxFailures     int
	LockoutDuration int // in seconds
}

// RateLimitConfig contains per client address request throttles
type RateLimitConfig struct {
	OTPPerHour   int
	LoginPerHour int
}

// EventsConfig selects the broker used for domain events
type EventsConfig struct {
	Driver     string // "none", "nsq" or "nats"
	NSQAddress string
	NATSURL    string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
