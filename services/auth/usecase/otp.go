package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/piresc/mylink/internal/pkg/constants"
	"github.com/piresc/mylink/internal/pkg/logger"
	"github.com/piresc/mylink/internal/pkg/middleware"
	"github.com/piresc/mylink/internal/pkg/models"
	nrpkg "github.com/piresc/mylink/internal/pkg/newrelic"
	"github.com/piresc/mylink/internal/utils"
	"github.com/piresc/mylink/services/auth"
)

func otpKey(phone string) string      { return fmt.Sprintf(constants.KeyOTP, phone) }
func rateKey(phone string) string     { return fmt.Sprintf(constants.KeyOTPRate, phone) }
func cooldownKey(phone string) string { return fmt.Sprintf(constants.KeyOTPCooldown, phone) }
func failKey(phone string) string     { return fmt.Sprintf(constants.KeyOTPFail, phone) }

// counter reads an integer counter, zero when absent
func (u *AuthUC) counter(ctx context.Context, key string) (int64, error) {
	val, found, err := u.store.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("counter %s holds %q: %w", key, val, err)
	}
	return n, nil
}

// RequestCode issues a new code for phone and sends it by SMS.
// Issuance state is not rolled back when delivery fails.
func (u *AuthUC) RequestCode(ctx context.Context, phone string) error {
	return nrpkg.WithSegment(ctx, "OTP.RequestCode", func() error {
		return u.requestCode(ctx, phone)
	})
}

func (u *AuthUC) requestCode(ctx context.Context, phone string) error {
	count, err := u.counter(ctx, rateKey(phone))
	if err != nil {
		return fmt.Errorf("failed to read request counter: %w", err)
	}
	if count >= u.policy.maxRequests {
		logger.WarnCtx(ctx, "OTP request limit reached", logger.String("phone", utils.MaskPhoneNumber(phone)))
		return auth.ErrRateLimited
	}

	cooling, err := u.store.Exists(ctx, cooldownKey(phone))
	if err != nil {
		return fmt.Errorf("failed to read cooldown: %w", err)
	}
	if cooling {
		return auth.ErrCooldown
	}

	code, err := u.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	if err := u.store.Set(ctx, otpKey(phone), code, u.policy.codeTTL); err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}
	if _, err := u.store.Incr(ctx, rateKey(phone), u.policy.rateWindow); err != nil {
		return fmt.Errorf("failed to increment request counter: %w", err)
	}
	if err := u.store.Set(ctx, cooldownKey(phone), "1", u.policy.cooldown); err != nil {
		return fmt.Errorf("failed to set cooldown: %w", err)
	}

	if u.policy.devFallback {
		if _, ok := u.smsGW.GetToken(ctx); !ok {
			logger.WarnCtx(ctx, "SMS provider unavailable, verification code logged for development",
				logger.String("phone", phone),
				logger.String("code", code))
			u.publishOTPRequested(ctx, phone, false)
			return nil
		}
	}

	delivered := u.smsGW.SendMessage(ctx, phone, fmt.Sprintf(u.policy.messageFormat, code))
	u.publishOTPRequested(ctx, phone, delivered)
	if !delivered {
		logger.ErrorCtx(ctx, "Failed to deliver verification code", logger.String("phone", utils.MaskPhoneNumber(phone)))
		return auth.ErrDeliveryFailed
	}

	logger.InfoCtx(ctx, "Verification code sent", logger.String("phone", utils.MaskPhoneNumber(phone)))
	return nil
}

// VerifyCode checks code for phone and returns the user's session token
func (u *AuthUC) VerifyCode(ctx context.Context, phone, code string) (*models.LoginResponse, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "OTP.VerifyCode", func() (*models.LoginResponse, error) {
		return u.verifyCode(ctx, phone, code)
	})
}

func (u *AuthUC) verifyCode(ctx context.Context, phone, code string) (*models.LoginResponse, error) {
	failures, err := u.counter(ctx, failKey(phone))
	if err != nil {
		return nil, fmt.Errorf("failed to read failure counter: %w", err)
	}
	if failures >= u.policy.maxFailures {
		logger.WarnCtx(ctx, "OTP verification locked", logger.String("phone", utils.MaskPhoneNumber(phone)))
		return nil, auth.ErrLockedOut
	}

	stored, found, err := u.store.Get(ctx, otpKey(phone))
	if err != nil {
		return nil, fmt.Errorf("failed to read code: %w", err)
	}
	if !found || stored != code {
		if _, err := u.store.Incr(ctx, failKey(phone), u.policy.lockout); err != nil {
			return nil, fmt.Errorf("failed to increment failure counter: %w", err)
		}
		return nil, auth.ErrInvalidCode
	}

	if err := u.store.Delete(ctx, otpKey(phone), failKey(phone)); err != nil {
		return nil, fmt.Errorf("failed to consume code: %w", err)
	}

	user, created, err := u.authRepo.ObtainOrCreateUser(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain user: %w", err)
	}

	token, err := u.authRepo.ObtainOrCreateToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain token: %w", err)
	}

	if created {
		logger.InfoCtx(ctx, "New user registered", logger.String("user_id", user.ID.String()))
		event := models.UserRegisteredEvent{
			UserID:      user.ID.String(),
			PhoneNumber: user.PhoneNumber,
			OccurredAt:  u.now(),
		}
		if err := u.eventGW.PublishUserRegistered(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish user registered event", logger.Err(err))
		}
	}

	return &models.LoginResponse{
		Token:       token,
		PhoneNumber: user.PhoneNumber,
	}, nil
}

// GetUserByToken resolves a session token, reporting unknown tokens as middleware.ErrTokenNotFound
func (u *AuthUC) GetUserByToken(ctx context.Context, key string) (*models.User, error) {
	user, err := u.authRepo.GetUserByToken(ctx, key)
	if errors.Is(err, auth.ErrUserNotFound) {
		return nil, middleware.ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}
	return user, nil
}

func (u *AuthUC) publishOTPRequested(ctx context.Context, phone string, delivered bool) {
	event := models.OTPRequestedEvent{
		PhoneNumber: utils.MaskPhoneNumber(phone),
		Delivered:   delivered,
		OccurredAt:  u.now(),
	}
	if err := u.eventGW.PublishOTPRequested(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish OTP requested event", logger.Err(err))
	}
}
