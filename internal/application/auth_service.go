package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/habitflow/habitflow-api/internal/domain/entity"
	"github.com/habitflow/habitflow-api/internal/domain/repository"
	"github.com/habitflow/habitflow-api/pkg/helpers"
	"github.com/habitflow/habitflow-api/pkg/mailer"
	tpl "github.com/habitflow/habitflow-api/pkg/mailer/templates"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrCodeMismatch       = errors.New("verification code mismatch")
	ErrCodeExpired        = errors.New("verification code expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService implements registration with deferred email verification,
// code validation, and login with session token issuance.
type AuthService struct {
	Users       repository.UserRepository
	JWT         *helpers.JWTManager
	Pub         *helpers.RabbitPublisher
	Logger      *logrus.Logger
	CodeTTL     time.Duration
	MailEnabled bool
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, pub *helpers.RabbitPublisher, logger *logrus.Logger, codeTTL time.Duration, mailEnabled bool) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Pub: pub, Logger: logger, CodeTTL: codeTTL, MailEnabled: mailEnabled}
}

// Register creates a pending-verification account, or refreshes an existing
// unverified one. Re-registering an unverified email overwrites the stored
// password hash and issues a new code on the same record; a verified email
// is rejected. The verification email is enqueued best-effort.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (*entity.User, error) {
	// Resolve the conflict before hashing so a rejected registration does
	// not burn a bcrypt work factor.
	u, err := s.Users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if u.IsVerified {
			return nil, ErrEmailTaken
		}
	case errors.Is(err, repository.ErrNotFound):
		u = nil
	default:
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	code, err := helpers.GenVerificationCode()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(s.CodeTTL)

	if u != nil {
		u.PasswordHash = hash
		u.SetVerificationCode(code, expiresAt)
		if err := s.Users.Update(ctx, u); err != nil {
			return nil, err
		}
	} else {
		u = &entity.User{Email: email, Username: username, PasswordHash: hash}
		u.SetVerificationCode(code, expiresAt)
		if err := s.Users.Create(ctx, u); err != nil {
			return nil, err
		}
	}

	s.sendVerificationEmail(ctx, u, code)
	return u, nil
}

// Verify checks the submitted code against the stored one. Equality is
// checked before expiry, so a wrong code on an expired entry reports a
// mismatch. On success the code is cleared and the user marked verified.
func (s *AuthService) Verify(ctx context.Context, email, code string, now time.Time) error {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if u.VerificationCode == nil || *u.VerificationCode != code {
		return ErrCodeMismatch
	}
	if u.VerificationCodeExpiresAt == nil || !now.Before(*u.VerificationCodeExpiresAt) {
		return ErrCodeExpired
	}

	u.MarkVerified()
	return s.Users.Update(ctx, u)
}

// Login authenticates email/password and issues a session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID, u.Email, u.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}

func (s *AuthService) sendVerificationEmail(ctx context.Context, u *entity.User, code string) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: tpl.VerifyCode,
		Data: map[string]any{
			"Username":         u.Username,
			"Code":             code,
			"ExpiresInMinutes": int(s.CodeTTL.Minutes()),
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("failed to enqueue verification email")
	}
}
