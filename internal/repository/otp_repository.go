package repository

import (
	"database/sql"
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateOtpSession persists a new OTP session
func (r *Repository) CreateOtpSession(session *models.OtpSession) error {
	query := `
		INSERT INTO books.otp_sessions (session_id, user_id, otp, expires_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(query, session.SessionID, session.UserID, session.Otp, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to create otp session: %w", err)
	}
	return nil
}

// FindOtpSession retrieves an OTP session by its opaque id
func (r *Repository) FindOtpSession(sessionID string) (*models.OtpSession, error) {
	session := &models.OtpSession{}
	query := `
		SELECT session_id, user_id, otp, expires_at
		FROM books.otp_sessions
		WHERE session_id = $1`
	err := r.db.QueryRow(query, sessionID).
		Scan(&session.SessionID, &session.UserID, &session.Otp, &session.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find otp session: %w", err)
	}
	return session, nil
}

// DeleteOtpSession removes an OTP session. Deleting a session that is
// already gone is not an error.
func (r *Repository) DeleteOtpSession(sessionID string) error {
	query := `DELETE FROM books.otp_sessions WHERE session_id = $1`
	if _, err := r.db.Exec(query, sessionID); err != nil {
		return fmt.Errorf("failed to delete otp session: %w", err)
	}
	return nil
}
