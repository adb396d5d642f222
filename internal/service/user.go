package service

import (
	"context"
	"database/sql"
	"errors"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "user id must not be empty")
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindNotFound, "user %s not found", id)
		}
		return nil, domain.WrapInternal("failed to look up user", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "email must not be empty")
	}
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindNotFound, "no user with email %q", email)
		}
		return nil, domain.WrapInternal("failed to look up user", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, int32, error) {
	users, count, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, domain.WrapInternal("failed to list users", err)
	}
	return users, count, nil
}
