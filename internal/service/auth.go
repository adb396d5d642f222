package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
	"library-backend/internal/security"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo   repository.UserRepository
	tokens     security.TokenManager
	refreshTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager, refreshExpiryMinutes int) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		refreshTTL: time.Duration(refreshExpiryMinutes) * time.Minute,
	}
}

func (s *authService) Register(ctx context.Context, email, firstName, lastName, password string) (*domain.User, string, string, error) {
	if email == "" || password == "" {
		return nil, "", "", domain.NewError(domain.KindInvalidArgument, "email and password are required")
	}
	if len(password) < 8 {
		return nil, "", "", domain.NewError(domain.KindInvalidArgument, "password must be at least 8 characters")
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", "", domain.Errorf(domain.KindConflict, "email %q is already registered", email)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, "", "", domain.WrapInternal("failed to check email", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", domain.WrapInternal("failed to hash password", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hash),
		Role:         domain.UserRoleMember,
		CreatedOn:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", domain.WrapInternal("failed to create user", err)
	}

	access, refresh, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}

	logger.Info("User registered", "user_id", user.ID, "email", email)
	return user, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	if email == "" || password == "" {
		return "", "", domain.NewError(domain.KindInvalidArgument, "email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", domain.NewError(domain.KindUnauthorized, "invalid email or password")
		}
		return "", "", domain.WrapInternal("failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", domain.NewError(domain.KindUnauthorized, "invalid email or password")
	}

	access, refresh, err := s.issueTokens(ctx, user)
	if err != nil {
		return "", "", err
	}

	logger.Info("User logged in", "user_id", user.ID)
	return access, refresh, nil
}

// RefreshToken rotates the refresh token: the presented token must match the
// one stored for the user, and a new one replaces it.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", domain.NewError(domain.KindUnauthorized, "invalid refresh token")
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", domain.NewError(domain.KindUnauthorized, "invalid refresh token")
	}

	user, err := s.userRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", domain.NewError(domain.KindUnauthorized, "refresh token is not recognized")
		}
		return "", "", domain.WrapInternal("failed to look up refresh token", err)
	}
	if user.RefreshTokenExpiry != nil && user.RefreshTokenExpiry.Before(time.Now()) {
		return "", "", domain.NewError(domain.KindUnauthorized, "refresh token has expired")
	}

	access, refresh, err := s.issueTokens(ctx, user)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	user, err := s.userRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Already logged out; nothing to do.
			return nil
		}
		return domain.WrapInternal("failed to look up refresh token", err)
	}

	user.RefreshToken = ""
	user.RefreshTokenExpiry = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return domain.WrapInternal("failed to clear refresh token", err)
	}

	logger.Info("User logged out", "user_id", user.ID)
	return nil
}

func (s *authService) issueTokens(ctx context.Context, user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", "", domain.WrapInternal("failed to generate access token", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", domain.WrapInternal("failed to generate refresh token", err)
	}

	expiry := time.Now().Add(s.refreshTTL)
	user.RefreshToken = refresh
	user.RefreshTokenExpiry = &expiry
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", "", domain.WrapInternal("failed to store refresh token", err)
	}

	return access, refresh, nil
}
