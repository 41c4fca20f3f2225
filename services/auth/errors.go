package auth

import "errors"

var (
	// ErrRateLimited means the phone already received the maximum number of codes in the window
	ErrRateLimited = errors.New("too many requests")
	// ErrCooldown means a code was sent to the phone less than a cooldown ago
	ErrCooldown = errors.New("cooldown active")
	// ErrLockedOut means too many wrong codes were submitted for the phone
	ErrLockedOut = errors.New("too many failed attempts")
	// ErrDeliveryFailed means the SMS provider did not accept the message
	ErrDeliveryFailed = errors.New("failed to send sms")
	// ErrInvalidCode means the code is wrong, expired or was never issued
	ErrInvalidCode = errors.New("invalid or expired code")

	ErrUserNotFound = errors.New("user not found")
)
