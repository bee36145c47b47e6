// Package common defines shared constants and sentinel errors used across
// gateway and service layers of the account service. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Account access errors.
	ErrorEmailInUse        = errors.New("email already in use")
	ErrorWrongCredentials  = errors.New("email or password incorrect")
	ErrorAccountClosed     = errors.New("account closed")
	ErrorAccountTerminated = errors.New("account terminated")
	ErrorAccountLocked     = errors.New("account temporarily locked")
	ErrorAlreadyVerified   = errors.New("email already verified")
	ErrorEmailUndelivered  = errors.New("verification email undeliverable")

	// OTP errors. ErrorOTPExpired means the ticket aged out of the cache
	// and the caller should trigger a resend.
	ErrorOTPInvalid = errors.New("invalid otp code")
	ErrorOTPExpired = errors.New("otp code timed out")

	// Session errors.
	ErrorSessionExpired  = errors.New("session expired or never existed")
	ErrorSessionNoData   = errors.New("session has no user data")
	ErrorSessionMismatch = errors.New("session does not belong to this account")

	// Auth errors (invalid or malformed service token).
	ErrInvalidToken = errors.New("invalid token")
)
