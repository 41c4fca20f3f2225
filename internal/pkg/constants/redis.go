package constants

import "time"

// Cache key formats
const (
	// OTP flow
	KeyOTP         = "otp_%s"          // Format: otp_{phone}
	KeyOTPRate     = "otp_rate_%s"     // Format: otp_rate_{phone}
	KeyOTPCooldown = "otp_cooldown_%s" // Format: otp_cooldown_{phone}
	KeyOTPFail     = "otp_fail_%s"     // Format: otp_fail_{phone}

	// SMS provider
	KeyEskizToken = "eskiz_auth_token"

	// Rate Limiting
	KeyRateLimitIP = "rate:ip" // Format: rate:ip:{route}:{ip}
)

// Default expiry windows
const (
	OTPCodeTTL        = 300 * time.Second
	OTPRateWindow     = 3600 * time.Second
	OTPCooldownTTL    = 60 * time.Second
	OTPLockoutTTL     = 1800 * time.Second
	EskizTokenTTL     = 29 * 24 * time.Hour
	OTPMaxRequests    = 3
	OTPMaxFailures    = 5
	RateLimitWindow   = time.Hour
	OTPCodeMin        = 10000
	OTPCodeMax        = 99999
	SMSDefaultSender  = "4546"
	SMSDefaultBaseURL = "https://notify.eskiz.uz/api"
)
