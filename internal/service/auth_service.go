package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pantry/internal/auth"
	apperrors "pantry/internal/errors"
	"pantry/internal/model"
	"pantry/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and the session lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, password, confirmation string) (*model.User, error)
	Login(ctx context.Context, presentedToken, username, password string) (token string, user *model.User, err error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID uint) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	sessions   auth.SessionStoreInterface
	sessionTTL time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, sessions auth.SessionStoreInterface, sessionTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new user with a bcrypt-hashed password. The plaintext is
// never stored.
func (s *authService) Register(ctx context.Context, username, password, confirmation string) (*model.User, error) {
	if username == "" {
		return nil, apperrors.NewValidationError("missing username")
	}
	if password == "" {
		return nil, apperrors.NewValidationError("missing password")
	}
	if password != confirmation {
		return nil, apperrors.NewValidationError("passwords don't match")
	}

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateUsername
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index is the real guard against a racing registration;
		// the pre-check above only makes the common case cheap.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login authenticates and binds a fresh session. Any session presented with
// the request is ended first, before credentials are even looked at, so a
// failed attempt always leaves the caller anonymous.
func (s *authService) Login(ctx context.Context, presentedToken, username, password string) (string, *model.User, error) {
	if presentedToken != "" {
		if err := s.sessions.End(ctx, presentedToken); err != nil {
			return "", nil, fmt.Errorf("clear session: %w", err)
		}
	}

	if username == "" {
		return "", nil, apperrors.NewValidationError("missing username")
	}
	if password == "" {
		return "", nil, apperrors.NewValidationError("missing password")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	// bcrypt's comparison is constant-time; plain string equality would leak.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token := auth.NewSessionToken()
	if err := s.sessions.Start(ctx, token, user.ID, user.Username, s.sessionTTL); err != nil {
		return "", nil, fmt.Errorf("start session: %w", err)
	}
	return token, user, nil
}

// Logout ends the session. Ending an already-absent session succeeds.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.End(ctx, token)
}

// CurrentUser loads the user record behind a resolved session. A session
// whose user row has vanished is treated as no session at all.
func (s *authService) CurrentUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
