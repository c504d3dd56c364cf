package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ProfJake/lab10/internal/domain/entity"
	repo "github.com/ProfJake/lab10/internal/domain/repository"
	"github.com/ProfJake/lab10/internal/session"
	"github.com/ProfJake/lab10/pkg/helpers"
)

// ErrInvalidCredentials covers both an unknown user and a wrong password.
// The caller sees one shape, so login cannot be used to enumerate handles.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService verifies login attempts and manages the session bindings of
// authenticated identities. Signup is a separate one-shot operation that
// never authenticates.
type AuthService struct {
	Users    repo.UserRepository
	Sessions session.Store
	Logger   *logrus.Logger
}

func NewAuthService(users repo.UserRepository, sessions session.Store, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Sessions: sessions, Logger: logger}
}

// LoginResult is handed back to the delivery layer on success.
type LoginResult struct {
	Token       string
	DisplayName string
}

// Login fingerprints the password and compares it against the stored
// credential. On success it issues a fresh token bound to the identity.
func (s *AuthService) Login(ctx context.Context, userID, password string) (*LoginResult, error) {
	fingerprint := helpers.Fingerprint(password)

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("login user lookup failed")
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	if !helpers.FingerprintEqual(fingerprint, u.Password) {
		return nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	identity := session.Identity{UserID: u.ID, DisplayName: u.ID}
	if err := s.Sessions.Put(ctx, token, identity); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("session store failed")
		}
		return nil, fmt.Errorf("store session: %w", err)
	}

	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("login succeeded")
	}
	return &LoginResult{Token: token, DisplayName: identity.DisplayName}, nil
}

// Identity resolves a session token for the delivery layer. An unknown
// token yields session.ErrNoSession.
func (s *AuthService) Identity(ctx context.Context, token string) (session.Identity, error) {
	return s.Sessions.Get(ctx, token)
}

// Logout drops the token's binding. Dropping an unknown token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Delete(ctx, token)
}

// Signup validates the submission and inserts a new unverified user with a
// fingerprinted password. An already-registered email rejects the signup
// without touching the stored record; a nil return signals "proceed to
// login".
func (s *AuthService) Signup(ctx context.Context, fields map[string]string) error {
	in, err := ParseSignupInput(fields)
	if err != nil {
		return err
	}

	if _, err := s.Users.GetByEmail(ctx, in.Email); err == nil {
		return repo.ErrAlreadyExists
	} else if !errors.Is(err, repo.ErrNotFound) {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", in.Email).Error("signup email lookup failed")
		}
		return fmt.Errorf("check email: %w", err)
	}

	u := &entity.User{
		ID:            in.UserID,
		Name:          in.Name,
		Email:         in.Email,
		Age:           in.Age,
		Password:      helpers.Fingerprint(in.Password),
		EmailVerified: false,
	}
	if err := s.Users.CreateIfAbsent(ctx, u); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return err
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", in.UserID).Error("signup insert failed")
		}
		return fmt.Errorf("insert user: %w", err)
	}

	if s.Logger != nil {
		s.Logger.WithField("user_id", in.UserID).Info("signup succeeded")
	}
	return nil
}
