package usecase

import (
	"strconv"
	"time"

	"github.com/piresc/mylink/internal/pkg/cache"
	"github.com/piresc/mylink/internal/pkg/constants"
	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/piresc/mylink/internal/utils"
	"github.com/piresc/mylink/services/auth"
)

// otpPolicy holds the limits of the code flow
type otpPolicy struct {
	codeTTL       time.Duration
	rateWindow    time.Duration
	cooldown      time.Duration
	lockout       time.Duration
	maxRequests   int64
	maxFailures   int64
	devFallback   bool
	messageFormat string
}

// AuthUC implements auth.AuthUC
type AuthUC struct {
	authRepo auth.AuthRepo
	smsGW    auth.SMSGW
	eventGW  auth.EventGW
	store    cache.Store
	cfg      *models.Config
	policy   otpPolicy

	generateCode func() (string, error)
	now          func() time.Time
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	smsGW auth.SMSGW,
	eventGW auth.EventGW,
	store cache.Store,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		authRepo:     authRepo,
		smsGW:        smsGW,
		eventGW:      eventGW,
		store:        store,
		cfg:          cfg,
		policy:       newOTPPolicy(cfg),
		generateCode: randomCode,
		now:          time.Now,
	}
}

func newOTPPolicy(cfg *models.Config) otpPolicy {
	return otpPolicy{
		codeTTL:       seconds(cfg.OTP.CodeTTL, constants.OTPCodeTTL),
		rateWindow:    seconds(cfg.OTP.RequestWindow, constants.OTPRateWindow),
		cooldown:      seconds(cfg.OTP.Cooldown, constants.OTPCooldownTTL),
		lockout:       seconds(cfg.OTP.LockoutDuration, constants.OTPLockoutTTL),
		maxRequests:   positive(cfg.OTP.MaxRequests, constants.OTPMaxRequests),
		maxFailures:   positive(cfg.OTP.MaxFailures, constants.OTPMaxFailures),
		devFallback:   cfg.SMS.DevFallback && !cfg.App.IsProduction(),
		messageFormat: "MyLink platformasiga kirish uchun tasdiqlash kodi: %s",
	}
}

func seconds(v int, fallback time.Duration) time.Duration {
	if v <= 0 {
		return fallback
	}
	return time.Duration(v) * time.Second
}

func positive(v int, fallback int64) int64 {
	if v <= 0 {
		return fallback
	}
	return int64(v)
}

// randomCode returns a uniformly distributed five digit code
func randomCode() (string, error) {
	n, err := utils.RandomIntInRange(constants.OTPCodeMin, constants.OTPCodeMax)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n, 10), nil
}
