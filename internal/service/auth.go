package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/darshan/books-service/internal/config"
	"github.com/darshan/books-service/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// otpTTL is the fixed validity window of a login OTP.
const otpTTL = 5 * time.Minute

// sessionIDBytes gives 128 bits of entropy, hex encoded.
const sessionIDBytes = 16

// UserStore is the account storage the auth flow needs.
type UserStore interface {
	CreateUser(user *models.User) error
	FindUserByUsername(username string) (*models.User, error)
	FindUserByID(id int64) (*models.User, error)
}

// OtpStore is the OTP session storage the auth flow needs.
type OtpStore interface {
	CreateOtpSession(session *models.OtpSession) error
	FindOtpSession(sessionID string) (*models.OtpSession, error)
	DeleteOtpSession(sessionID string) error
}

// OtpMailer delivers OTP codes.
type OtpMailer interface {
	Enabled() bool
	SendOtp(to, username, otp string) error
}

// AccessClaims are the JWT claims carried by an access token.
type AccessClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// LoginChallenge is returned after a successful credential check. The OTP
// itself is only ever delivered by email, never in this response.
type LoginChallenge struct {
	SessionID string `json:"session_id"`
	ExpiresIn int    `json:"expires_in"`
}

// AuthService implements registration and the two-step OTP login flow
type AuthService struct {
	users  UserStore
	otps   OtpStore
	mailer OtpMailer
	cfg    *config.Config
	log    *logrus.Logger

	// now is swapped out in tests.
	now func() time.Time
}

// NewAuthService initializes the auth service
func NewAuthService(users UserStore, otps OtpStore, mailer OtpMailer, cfg *config.Config, log *logrus.Logger) *AuthService {
	return &AuthService{
		users:  users,
		otps:   otps,
		mailer: mailer,
		cfg:    cfg,
		log:    log,
		now:    time.Now,
	}
}

// Register creates a new user with a hashed password
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, fmt.Errorf("%w: username must be at least 3 characters", models.ErrValidation)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", models.ErrValidation)
	}

	if _, err := s.users.FindUserByUsername(username); err == nil {
		return nil, fmt.Errorf("%w: username already exists", models.ErrValidation)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hashedPassword),
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Username)
	return user, nil
}

// Login checks the credentials and, when they hold, issues an OTP session
// and emails the code. No session survives a failed delivery, so a failed
// login can always be retried from scratch.
func (s *AuthService) Login(username, password string) (*LoginChallenge, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", models.ErrValidation)
	}

	user, err := s.users.FindUserByUsername(username)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}
	if user.Email == "" {
		return nil, models.ErrProfileIncomplete
	}
	if s.mailer == nil || !s.mailer.Enabled() {
		return nil, fmt.Errorf("%w: smtp not configured", models.ErrDelivery)
	}

	otp, err := generateOtp()
	if err != nil {
		return nil, err
	}
	sessionID, err := generateSessionID()
	if err != nil {
		return nil, err
	}

	session := &models.OtpSession{
		SessionID: sessionID,
		UserID:    user.ID,
		Otp:       otp,
		ExpiresAt: s.now().Add(otpTTL),
	}
	if err := s.otps.CreateOtpSession(session); err != nil {
		return nil, err
	}

	primary, secondary := s.otpRecipients(user.Email)
	if err := s.mailer.SendOtp(primary, user.Username, otp); err != nil {
		// Roll back so no dangling session outlives a failed delivery.
		if delErr := s.otps.DeleteOtpSession(sessionID); delErr != nil {
			s.log.Errorf("Failed to roll back otp session %s: %v", sessionID, delErr)
		}
		return nil, fmt.Errorf("%w: %v", models.ErrDelivery, err)
	}
	if secondary != "" {
		// Best effort duplicate copy; never fails the login.
		if err := s.mailer.SendOtp(secondary, user.Username, otp); err != nil {
			s.log.Warnf("Failed to send otp copy to %s: %v", secondary, err)
		}
	}

	s.log.Infof("OTP issued for user %s", user.Username)
	return &LoginChallenge{
		SessionID: sessionID,
		ExpiresIn: int(otpTTL.Seconds()),
	}, nil
}

// otpRecipients resolves the delivery routing policy: with the
// reminder-only flag set, the configured reminder address replaces the
// account address entirely; otherwise the account address is primary and
// a differing reminder address gets a duplicate copy.
func (s *AuthService) otpRecipients(accountEmail string) (primary, secondary string) {
	override := strings.TrimSpace(s.cfg.ReminderEmail)
	if override != "" && s.cfg.OTPToReminderOnly {
		return override, ""
	}
	if override != "" && !strings.EqualFold(override, accountEmail) {
		return accountEmail, override
	}
	return accountEmail, ""
}

// Verify resolves an OTP session. A correct code consumes the session and
// yields a signed access token; a wrong code leaves the session intact so
// the user may retry until it expires. Missing and expired sessions are
// indistinguishable to the caller, and expired rows are deleted lazily
// here.
func (s *AuthService) Verify(sessionID, otp string) (string, *models.User, error) {
	otp = strings.TrimSpace(otp)
	if sessionID == "" || otp == "" {
		return "", nil, fmt.Errorf("%w: session id and otp are required", models.ErrValidation)
	}

	session, err := s.otps.FindOtpSession(sessionID)
	if errors.Is(err, models.ErrNotFound) {
		return "", nil, models.ErrOtpExpired
	}
	if err != nil {
		return "", nil, err
	}
	if session.Expired(s.now()) {
		if delErr := s.otps.DeleteOtpSession(sessionID); delErr != nil {
			s.log.Errorf("Failed to clean up expired otp session %s: %v", sessionID, delErr)
		}
		return "", nil, models.ErrOtpExpired
	}
	if session.Otp != otp {
		return "", nil, models.ErrOtpInvalid
	}

	// Single use: the session is gone before a token is issued.
	if err := s.otps.DeleteOtpSession(sessionID); err != nil {
		return "", nil, err
	}

	user, err := s.users.FindUserByID(session.UserID)
	if errors.Is(err, models.ErrNotFound) {
		return "", nil, models.ErrNotFound
	}
	if err != nil {
		return "", nil, err
	}

	token, err := s.signToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Infof("User logged in: %s", user.Username)
	return token, user, nil
}

// CurrentUser resolves the authenticated user from the request context
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.users.FindUserByID(userID)
}

func (s *AuthService) signToken(user *models.User) (string, error) {
	now := s.now()
	ttl := time.Duration(s.cfg.JWTTTLHours) * time.Hour
	claims := AccessClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// generateOtp draws a uniform 6-digit code from 100000 to 999999.
func generateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

// generateSessionID returns an unguessable opaque session identifier.
func generateSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
