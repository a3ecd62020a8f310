package service

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/darshan/books-service/internal/config"
	"github.com/darshan/books-service/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUserStore) CreateUser(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserStore) FindUserByUsername(username string) (*models.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserStore) FindUserByID(id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

type fakeOtpStore struct {
	sessions map[string]*models.OtpSession
}

func newFakeOtpStore() *fakeOtpStore {
	return &fakeOtpStore{sessions: map[string]*models.OtpSession{}}
}

func (f *fakeOtpStore) CreateOtpSession(session *models.OtpSession) error {
	f.sessions[session.SessionID] = session
	return nil
}

func (f *fakeOtpStore) FindOtpSession(sessionID string) (*models.OtpSession, error) {
	if s, ok := f.sessions[sessionID]; ok {
		return s, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeOtpStore) DeleteOtpSession(sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

type otpMail struct {
	to  string
	otp string
}

type fakeOtpMailer struct {
	enabled bool
	failFor map[string]error // keyed by recipient
	sent    []otpMail
}

func (f *fakeOtpMailer) Enabled() bool { return f.enabled }

func (f *fakeOtpMailer) SendOtp(to, username, otp string) error {
	if err := f.failFor[to]; err != nil {
		return err
	}
	f.sent = append(f.sent, otpMail{to: to, otp: otp})
	return nil
}

type authFixture struct {
	svc    *AuthService
	users  *fakeUserStore
	otps   *fakeOtpStore
	mailer *fakeOtpMailer
	cfg    *config.Config
	now    time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	f := &authFixture{
		users:  newFakeUserStore(),
		otps:   newFakeOtpStore(),
		mailer: &fakeOtpMailer{enabled: true, failFor: map[string]error{}},
		cfg: &config.Config{
			JWTSecret:   "test-secret",
			JWTTTLHours: 24,
		},
		now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	f.svc = NewAuthService(f.users, f.otps, f.mailer, f.cfg, log)
	f.svc.now = func() time.Time { return f.now }
	return f
}

func (f *authFixture) addUser(t *testing.T, username, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{Username: username, Email: email, PasswordHash: string(hash)}
	require.NoError(t, f.users.CreateUser(user))
	return user
}

// lastOtp returns the code sent to the first recipient of the latest login.
func (f *authFixture) lastOtp(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.mailer.sent)
	return f.mailer.sent[len(f.mailer.sent)-1].otp
}

func TestRegisterValidation(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Register("ab", "a@example.com", "secret12")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = f.svc.Register("darshan", "a@example.com", "short")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = f.svc.Register("darshan", "A@Example.com ", "secret12")
	require.NoError(t, err)

	user, err := f.users.FindUserByUsername("darshan")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret12")))

	_, err = f.svc.Register("darshan", "b@example.com", "secret12")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestLoginIssuesChallenge(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "darshan", "d@example.com", "secret12")

	challenge, err := f.svc.Login("darshan", "secret12")

	require.NoError(t, err)
	assert.Equal(t, 300, challenge.ExpiresIn)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), challenge.SessionID)

	session, err := f.otps.FindOtpSession(challenge.SessionID)
	require.NoError(t, err)
	assert.Equal(t, f.now.Add(5*time.Minute), session.ExpiresAt)
	assert.Regexp(t, regexp.MustCompile(`^[1-9][0-9]{5}$`), session.Otp)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "d@example.com", f.mailer.sent[0].to)
	assert.Equal(t, session.Otp, f.mailer.sent[0].otp)
}

func TestLoginInvalidCredentialsAreIndistinguishable(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "darshan", "d@example.com", "secret12")

	_, errUnknown := f.svc.Login("nobody", "secret12")
	_, errWrongPass := f.svc.Login("darshan", "wrongpass")

	assert.ErrorIs(t, errUnknown, models.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, models.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	assert.Empty(t, f.otps.sessions)
}

func TestLoginProfileIncomplete(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "darshan", "", "secret12")

	_, err := f.svc.Login("darshan", "secret12")

	assert.ErrorIs(t, err, models.ErrProfileIncomplete)
	assert.Empty(t, f.otps.sessions)
}

func TestLoginWithoutMailer(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "darshan", "d@example.com", "secret12")
	f.mailer.enabled = false

	_, err := f.svc.Login("darshan", "secret12")

	assert.ErrorIs(t, err, models.ErrDelivery)
	assert.Empty(t, f.otps.sessions)
}

func TestLoginDeliveryFailureRollsBackSession(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "darshan", "d@example.com", "secret12")
	f.mailer.failFor["d@example.com"] = errors.New("smtp timeout")

	_, err := f.svc.Login("darshan", "secret12")

	assert.ErrorIs(t, err, models.ErrDelivery)
	assert.Empty(t, f.otps.sessions, "no session may outlive a failed delivery")
}

func TestOtpRoutingPolicy(t *testing.T) {
	tests := []struct {
		name          string
		reminderEmail string
		reminderOnly  bool
		wantTo        []string
	}{
		{"account address only", "", false, []string{"d@example.com"}},
		{"override replaces account", "books@example.com", true, []string{"books@example.com"}},
		{"differing override gets a copy", "books@example.com", false, []string{"d@example.com", "books@example.com"}},
		{"same address no duplicate", "D@Example.com", false, []string{"d@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			f.addUser(t, "darshan", "d@example.com", "secret12")
			f.cfg.ReminderEmail = tt.reminderEmail
			f.cfg.OTPToReminderOnly = tt.reminderOnly

			_, err := f.svc.Login("darshan", "secret12")
			require.NoError(t, err)

			var got []string
			for _, m := range f.mailer.sent {
				got = append(got, m.to)
			}
			assert.Equal(t, tt.wantTo, got)
		})
	}
}

func TestLoginSurvivesFailedDuplicateCopy(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "darshan", "d@example.com", "secret12")
	f.cfg.ReminderEmail = "books@example.com"
	f.mailer.failFor["books@example.com"] = errors.New("smtp timeout")

	challenge, err := f.svc.Login("darshan", "secret12")

	require.NoError(t, err)
	_, err = f.otps.FindOtpSession(challenge.SessionID)
	assert.NoError(t, err)
}

func TestVerifySuccessConsumesSession(t *testing.T) {
	f := newAuthFixture(t)
	user := f.addUser(t, "darshan", "d@example.com", "secret12")

	challenge, err := f.svc.Login("darshan", "secret12")
	require.NoError(t, err)

	token, got, err := f.svc.Verify(challenge.SessionID, f.lastOtp(t))
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	claims := &AccessClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, tok.Method)
		return []byte(f.cfg.JWTSecret), nil
	}, jwt.WithTimeFunc(func() time.Time { return f.now }))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d", user.ID), claims.Subject)
	assert.Equal(t, "darshan", claims.Username)
	assert.Equal(t, f.now.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())

	// Single use: a second attempt with the same session must fail.
	_, _, err = f.svc.Verify(challenge.SessionID, f.lastOtp(t))
	assert.ErrorIs(t, err, models.ErrOtpExpired)
}

func TestVerifyWrongCodeKeepsSession(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "darshan", "d@example.com", "secret12")

	challenge, err := f.svc.Login("darshan", "secret12")
	require.NoError(t, err)

	otp := f.lastOtp(t)
	wrong := "000000"
	require.NotEqual(t, otp, wrong)

	for i := 0; i < 3; i++ {
		_, _, err := f.svc.Verify(challenge.SessionID, wrong)
		assert.ErrorIs(t, err, models.ErrOtpInvalid)
	}

	// The correct code still works after the failed attempts.
	_, _, err = f.svc.Verify(challenge.SessionID, otp)
	assert.NoError(t, err)
}

func TestVerifyExpiredSessionIsCleanedUp(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "darshan", "d@example.com", "secret12")

	challenge, err := f.svc.Login("darshan", "secret12")
	require.NoError(t, err)

	f.now = f.now.Add(5*time.Minute + time.Second)

	_, _, err = f.svc.Verify(challenge.SessionID, f.lastOtp(t))
	assert.ErrorIs(t, err, models.ErrOtpExpired)
	assert.Empty(t, f.otps.sessions, "expired session must be removed lazily")
}

func TestVerifyTrimsOtpWhitespace(t *testing.T) {
	f := newAuthFixture(t)
	f.addUser(t, "darshan", "d@example.com", "secret12")

	challenge, err := f.svc.Login("darshan", "secret12")
	require.NoError(t, err)

	_, _, err = f.svc.Verify(challenge.SessionID, "  "+f.lastOtp(t)+" ")
	assert.NoError(t, err)
}

func TestVerifyUnknownSession(t *testing.T) {
	f := newAuthFixture(t)

	_, _, err := f.svc.Verify("deadbeef", "123456")
	assert.ErrorIs(t, err, models.ErrOtpExpired)
}

func TestGenerateOtpRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		otp, err := generateOtp()
		require.NoError(t, err)
		require.Len(t, otp, 6)
		require.GreaterOrEqual(t, otp, "100000")
		require.LessOrEqual(t, otp, "999999")
	}
}
