package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vespera/internal/auth"
	apperrors "vespera/internal/errors"
	"vespera/internal/model"
	"vespera/internal/repository"
)

// AuthService handles registration, credential verification and the session
// lifecycle (Anonymous -> Authenticated -> Anonymous).
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, identity *model.Identity, err error)
	Logout(ctx context.Context, token string) error
	Current(ctx context.Context, token string) (*model.Identity, error)
}

type authService struct {
	users    repository.UserRepository
	sessions auth.SessionStore
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, sessions auth.SessionStore) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
	}
}

// Register validates the draft, hashes the password and inserts the user.
// The pre-insert lookup gives the friendly duplicate notice; the unique
// index on email is what actually enforces uniqueness, so a concurrent
// duplicate insert still comes back as ErrEmailTaken.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperrors.ErrMissingFields
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check user existence: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and creates a session. An unknown email
// and a wrong password both return ErrInvalidCredentials so the response
// never reveals which factor failed.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.Identity, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	identity := model.Identity{UserID: user.ID, Name: user.Name}
	token, err := s.sessions.Create(ctx, identity)
	if err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	return token, &identity, nil
}

// Logout destroys the session. The caller is expected to clear the cookie
// and redirect regardless of the returned error.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// Current resolves a session token to its identity, or nil when the token
// is unknown or expired.
func (s *authService) Current(ctx context.Context, token string) (*model.Identity, error) {
	return s.sessions.Get(ctx, token)
}
