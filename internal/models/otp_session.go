package models

import "time"

// OtpSession is an ephemeral single-use OTP challenge created at login.
// It is deleted on successful verification, on lazy expiry cleanup, or
// when delivering the code fails.
type OtpSession struct {
	SessionID string    `json:"session_id"`
	UserID    int64     `json:"user_id"`
	Otp       string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session's validity window has passed.
func (s *OtpSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
