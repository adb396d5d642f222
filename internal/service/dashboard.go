package service

import (
	"context"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type dashboardService struct {
	bookRepo repository.BookRepository
	userRepo repository.UserRepository
	loanRepo repository.LoanRepository
}

func NewDashboardService(
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
	loanRepo repository.LoanRepository,
) DashboardService {
	return &dashboardService{
		bookRepo: bookRepo,
		userRepo: userRepo,
		loanRepo: loanRepo,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	books, err := s.bookRepo.Count(ctx)
	if err != nil {
		return nil, domain.WrapInternal("failed to count books", err)
	}
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, domain.WrapInternal("failed to count users", err)
	}
	loaned, err := s.loanRepo.CountActive(ctx)
	if err != nil {
		return nil, domain.WrapInternal("failed to count active loans", err)
	}
	overdue, err := s.loanRepo.CountOverdue(ctx, time.Now())
	if err != nil {
		return nil, domain.WrapInternal("failed to count overdue loans", err)
	}

	return &domain.DashboardStats{
		TotalBookCount:   books,
		UserCount:        users,
		LoanedBookCount:  loaned,
		OverdueLoanCount: overdue,
	}, nil
}
