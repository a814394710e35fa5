package service

import "errors"

// Sentinel errors shared across services. Handlers translate these
// into HTTP statuses and user-facing messages.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPhoneNotVerified   = errors.New("phone not verified")
	ErrPhoneRequired      = errors.New("phone required")
	ErrPhoneMismatch      = errors.New("phone mismatch")
	ErrOTPInvalid         = errors.New("otp invalid")
	ErrOTPExpired         = errors.New("otp expired")
	ErrInvalidInput       = errors.New("invalid input")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrCaptchaRequired    = errors.New("captcha required")
	ErrCaptchaInvalid     = errors.New("captcha invalid")
)
