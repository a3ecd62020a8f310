package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/darshan/books-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewRepository(db), mock
}

func TestCreateUser(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO books\.users`).
		WithArgs("darshan", "d@example.com", "hashed").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created))

	user := &models.User{Username: "darshan", Email: "d@example.com", PasswordHash: "hashed"}
	require.NoError(t, repo.CreateUser(user))
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, created, user.CreatedAt)
}

func TestFindUserByUsername(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at\s+FROM books\.users\s+WHERE username = \$1`).
		WithArgs("darshan").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
			AddRow(int64(7), "darshan", "d@example.com", "hashed", created))

	user, err := repo.FindUserByUsername("darshan")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "d@example.com", user.Email)
}

func TestFindUserByUsernameNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at\s+FROM books\.users\s+WHERE username = \$1`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}))

	_, err := repo.FindUserByUsername("nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestFindUserByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, username, email, password_hash, created_at\s+FROM books\.users\s+WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}))

	_, err := repo.FindUserByID(99)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestOtpSessionLifecycle(t *testing.T) {
	repo, mock := newMockRepo(t)
	expires := time.Date(2024, 6, 1, 10, 5, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO books\.otp_sessions`).
		WithArgs("abc123", int64(7), "415926", expires).
		WillReturnResult(sqlmock.NewResult(0, 1))

	session := &models.OtpSession{SessionID: "abc123", UserID: 7, Otp: "415926", ExpiresAt: expires}
	require.NoError(t, repo.CreateOtpSession(session))

	mock.ExpectQuery(`SELECT session_id, user_id, otp, expires_at\s+FROM books\.otp_sessions`).
		WithArgs("abc123").
		WillReturnRows(sqlmock.NewRows([]string{"session_id", "user_id", "otp", "expires_at"}).
			AddRow("abc123", int64(7), "415926", expires))

	got, err := repo.FindOtpSession("abc123")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	mock.ExpectExec(`DELETE FROM books\.otp_sessions WHERE session_id = \$1`).
		WithArgs("abc123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteOtpSession("abc123"))
}

func TestFindOtpSessionNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT session_id, user_id, otp, expires_at\s+FROM books\.otp_sessions`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"session_id", "user_id", "otp", "expires_at"}))

	_, err := repo.FindOtpSession("missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteOtpSessionAlreadyGone(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM books\.otp_sessions WHERE session_id = \$1`).
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteOtpSession("gone"))
}
