package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/security"
	"library-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const authTestSecret = "unit-test-secret-0123456789abcdefghij"

func newAuthService(userRepo *MockUserRepo) service.AuthService {
	tm := security.NewTokenManager(authTestSecret, 60, 60*24*7)
	return service.NewAuthService(userRepo, tm, 60*24*7)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		userRepo.On("GetByEmail", ctx, "new@example.com").Return(nil, sql.ErrNoRows).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID != "" && u.Email == "new@example.com" && u.Role == domain.UserRoleMember &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2hunter2")) == nil
		})).Return(nil).Once()
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.RefreshToken != "" && u.RefreshTokenExpiry != nil
		})).Return(nil).Once()

		user, access, refresh, err := svc.Register(ctx, "new@example.com", "New", "Member", "hunter2hunter2")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, domain.UserRoleMember, user.Role)
		userRepo.AssertExpectations(t)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		userRepo.On("GetByEmail", ctx, "taken@example.com").
			Return(&domain.User{ID: "u-1", Email: "taken@example.com"}, nil).Once()

		_, _, _, err := svc.Register(ctx, "taken@example.com", "A", "B", "hunter2hunter2")
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("ShortPassword", func(t *testing.T) {
		svc := newAuthService(new(MockUserRepo))

		_, _, _, err := svc.Register(ctx, "new@example.com", "A", "B", "short")
		assert.True(t, domain.IsInvalidArgument(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		userRepo.On("GetByEmail", ctx, "m@example.com").
			Return(&domain.User{ID: "u-1", Email: "m@example.com", PasswordHash: string(hash), Role: domain.UserRoleMember}, nil).Once()
		userRepo.On("Update", ctx, mock.Anything).Return(nil).Once()

		access, refresh, err := svc.Login(ctx, "m@example.com", "hunter2hunter2")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		userRepo.On("GetByEmail", ctx, "m@example.com").
			Return(&domain.User{ID: "u-1", PasswordHash: string(hash)}, nil).Once()

		_, _, err := svc.Login(ctx, "m@example.com", "wrong-password")
		assert.True(t, domain.IsKind(err, domain.KindUnauthorized))
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		// Same response as a wrong password, so callers cannot probe emails.
		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, sql.ErrNoRows).Once()

		_, _, err := svc.Login(ctx, "nobody@example.com", "whatever-password")
		assert.True(t, domain.IsKind(err, domain.KindUnauthorized))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	issue := func(userRepo *MockUserRepo) (service.AuthService, string, *domain.User) {
		svc := newAuthService(userRepo)
		user := &domain.User{ID: "u-1", Email: "m@example.com", Role: domain.UserRoleMember}

		userRepo.On("GetByEmail", ctx, "m@example.com").Return(nil, sql.ErrNoRows).Once()
		userRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			user.RefreshToken = u.RefreshToken
			user.RefreshTokenExpiry = u.RefreshTokenExpiry
			return true
		})).Return(nil)

		_, _, refresh, err := svc.Register(ctx, "m@example.com", "Mina", "Member", "hunter2hunter2")
		assert.NoError(t, err)
		return svc, refresh, user
	}

	t.Run("RotatesToken", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc, refresh, user := issue(userRepo)

		userRepo.On("GetByRefreshToken", ctx, refresh).Return(user, nil).Once()

		access, newRefresh, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("RejectsAccessTokenAsRefresh", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		tm := security.NewTokenManager(authTestSecret, 60, 60)
		access, err := tm.GenerateAccessToken("u-1", "m@example.com", "MEMBER")
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.True(t, domain.IsKind(err, domain.KindUnauthorized))
	})

	t.Run("UnrecognizedToken", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		tm := security.NewTokenManager(authTestSecret, 60, 60)
		refresh, err := tm.GenerateRefreshToken("u-1")
		assert.NoError(t, err)

		// Token validates but was already rotated away server-side.
		userRepo.On("GetByRefreshToken", ctx, refresh).Return(nil, sql.ErrNoRows).Once()

		_, _, err = svc.RefreshToken(ctx, refresh)
		assert.True(t, domain.IsKind(err, domain.KindUnauthorized))
	})

	t.Run("ExpiredStoredToken", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		tm := security.NewTokenManager(authTestSecret, 60, 60)
		refresh, err := tm.GenerateRefreshToken("u-1")
		assert.NoError(t, err)

		past := time.Now().Add(-time.Hour)
		userRepo.On("GetByRefreshToken", ctx, refresh).
			Return(&domain.User{ID: "u-1", RefreshToken: refresh, RefreshTokenExpiry: &past}, nil).Once()

		_, _, err = svc.RefreshToken(ctx, refresh)
		assert.True(t, domain.IsKind(err, domain.KindUnauthorized))
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("ClearsStoredToken", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		expiry := time.Now().Add(time.Hour)
		userRepo.On("GetByRefreshToken", ctx, "some-refresh-token").
			Return(&domain.User{ID: "u-1", RefreshToken: "some-refresh-token", RefreshTokenExpiry: &expiry}, nil).Once()
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.RefreshToken == "" && u.RefreshTokenExpiry == nil
		})).Return(nil).Once()

		err := svc.Logout(ctx, "some-refresh-token")
		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("AlreadyLoggedOut", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAuthService(userRepo)

		userRepo.On("GetByRefreshToken", ctx, "stale-token").Return(nil, sql.ErrNoRows).Once()

		err := svc.Logout(ctx, "stale-token")
		assert.NoError(t, err)
	})
}
