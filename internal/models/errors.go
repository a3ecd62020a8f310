package models

import "errors"

// Sentinel errors shared by the repository, service and handler layers.
// Handlers map them to HTTP status codes with errors.Is.
var (
	// ErrNotFound indicates the requested record does not exist (or is not
	// owned by the requesting user).
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates rejected input; wrap with a user-presentable
	// detail message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials covers both unknown username and wrong password,
	// deliberately indistinguishable to prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrProfileIncomplete indicates the account has no email address to
	// deliver an OTP to.
	ErrProfileIncomplete = errors.New("no email address on account")

	// ErrOtpExpired indicates the OTP session is unknown or past its TTL.
	ErrOtpExpired = errors.New("otp session expired")

	// ErrOtpInvalid indicates the submitted code did not match; the session
	// survives and may be retried until it expires.
	ErrOtpInvalid = errors.New("invalid otp")

	// ErrDelivery indicates the OTP email could not be sent; the session is
	// rolled back and login must be retried.
	ErrDelivery = errors.New("failed to deliver otp email")
)
