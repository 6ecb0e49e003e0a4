package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/petcarehq/petcare-backend/internal/apperrors"
	"github.com/petcarehq/petcare-backend/internal/core/domain"
	portsrepo "github.com/petcarehq/petcare-backend/internal/core/ports/repositories"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/petcarehq/petcare-backend/internal/middleware"
	"github.com/petcarehq/petcare-backend/internal/platform/config"
	"github.com/petcarehq/petcare-backend/internal/utils"
)

const resetTokenTTL = 30 * time.Minute

type resetToken struct {
	userID    string
	expiresAt time.Time
}

// UserService manages dashboard operator accounts and login.
type UserService struct {
	UserRepository portsrepo.UserRepository
	cfg            *config.Config

	mu          sync.Mutex
	resetTokens map[string]resetToken
}

func NewUserService(repo portsrepo.UserRepository, cfg *config.Config) *UserService {
	return &UserService{
		UserRepository: repo,
		cfg:            cfg,
		resetTokens:    make(map[string]resetToken),
	}
}

func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}

	if err := s.UserRepository.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("User created", slog.String("user_id", user.UserID))
	return &user, nil
}

// Login verifies credentials and returns a signed access token. The same
// unauthorized error covers unknown email and bad password.
func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.UserRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.DeletedAt != nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", nil, apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign access token", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return "", nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	return token, user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.UserRepository.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.DeletedAt != nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

// IssueToken signs an access token for an already authenticated user, such
// as one arriving through Google sign-in.
func (s *UserService) IssueToken(user *domain.User) (string, error) {
	return utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}

// FindOrCreateGoogleUser maps a verified Google profile onto a local
// account, creating one on first sign-in.
func (s *UserService) FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.UserRepository.FindUserByEmail(ctx, info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	// First sign-in with this Google account. No usable password hash is
	// stored, so password login stays disabled for it.
	now := time.Now()
	newUser := domain.User{
		UserID: uuid.NewString(),
		Email:  info.Email,
		Name:   info.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "google-oauth",
			LastUpdatedAt: now,
			LastUpdatedBy: "google-oauth",
		},
	}
	if err := s.UserRepository.SaveUser(ctx, newUser); err != nil {
		logger.Error("Failed to save Google user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("User created via Google sign-in", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}

// RequestPasswordReset issues a short-lived single-use token. The token is
// returned to the caller for delivery; unknown emails get no error so the
// endpoint does not leak which addresses are registered.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.UserRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	s.mu.Lock()
	s.resetTokens[token] = resetToken{userID: user.UserID, expiresAt: time.Now().Add(resetTokenTTL)}
	s.mu.Unlock()

	logger.Info("Password reset requested", slog.String("user_id", user.UserID))
	return token, nil
}

// ConfirmPasswordReset consumes a reset token and sets the new password.
func (s *UserService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	entry, ok := s.resetTokens[token]
	if ok {
		delete(s.resetTokens, token)
	}
	s.mu.Unlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return fmt.Errorf("%w: invalid or expired reset token", apperrors.ErrUnauthorized)
	}

	user, err := s.UserRepository.FindUserByID(ctx, entry.userID)
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = user.UserID

	if err := s.UserRepository.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to update password", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return fmt.Errorf("failed to update password: %w", err)
	}

	logger.Info("Password reset completed", slog.String("user_id", user.UserID))
	return nil
}
