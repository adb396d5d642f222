package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
	"library-backend/internal/utils"
)

type fineService struct {
	fineRepo     repository.FineRepository
	fineTypeRepo repository.FineTypeRepository
	userRepo     repository.UserRepository
	emailSvc     EmailService
	lateFineType string
}

// NewFineService builds the fine engine. lateFineType names the fine type
// row used for automatic overdue fines; it comes from configuration and its
// presence in the database is a deployment precondition.
func NewFineService(
	fineRepo repository.FineRepository,
	fineTypeRepo repository.FineTypeRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	lateFineType string,
) FineService {
	return &fineService{
		fineRepo:     fineRepo,
		fineTypeRepo: fineTypeRepo,
		userRepo:     userRepo,
		emailSvc:     emailSvc,
		lateFineType: lateFineType,
	}
}

func (s *fineService) ProcessLateReturn(ctx context.Context, loan *domain.Loan) (*domain.Fine, error) {
	if loan == nil {
		return nil, domain.NewError(domain.KindInvalidArgument, "loan must not be nil")
	}
	if loan.ActualReturnDate == nil {
		return nil, domain.NewError(domain.KindFailedPrecondition, "fine cannot be computed before the book is returned")
	}
	if loan.ID <= 0 || loan.UserID == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "loan id and user id are required")
	}

	overdueDays := utils.OverdueDays(loan.ExpectedReturnDate, *loan.ActualReturnDate)
	if overdueDays <= 0 {
		return nil, nil
	}

	fineType, err := s.fineTypeRepo.GetByName(ctx, s.lateFineType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindFailedPrecondition,
				"fine type %q is not configured in the database", s.lateFineType)
		}
		return nil, domain.WrapInternal("failed to look up fine type", err)
	}

	loanID := loan.ID
	fine := &domain.Fine{
		UserID:      loan.UserID,
		LoanID:      &loanID,
		FineTypeID:  fineType.ID,
		AmountCents: utils.FineAmountCents(overdueDays, fineType.DailyRateCents),
		Description: fmt.Sprintf("Fine for %d overdue day(s).", overdueDays),
		Status:      domain.FineStatusUnpaid,
		IsActive:    true,
		IssuedDate:  time.Now(),
	}

	if err := s.fineRepo.Create(ctx, fine); err != nil {
		return nil, domain.WrapInternal("failed to create fine", err)
	}

	logger.Info("Overdue fine issued", "fine_id", fine.ID, "loan_id", loan.ID,
		"user_id", loan.UserID, "overdue_days", overdueDays, "amount_cents", fine.AmountCents)

	s.notifyFine(ctx, fine)

	return fine, nil
}

func (s *fineService) AddFine(ctx context.Context, userID string, fineTypeID int32, amountCents int64, reason string) (*domain.Fine, error) {
	if userID == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "user id must not be empty")
	}
	if amountCents <= 0 {
		return nil, domain.NewError(domain.KindInvalidArgument, "fine amount must be greater than zero")
	}

	fineType, err := s.fineTypeRepo.GetByID(ctx, fineTypeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindNotFound, "fine type %d not found", fineTypeID)
		}
		return nil, domain.WrapInternal("failed to look up fine type", err)
	}

	fine := &domain.Fine{
		UserID:      userID,
		FineTypeID:  fineType.ID,
		AmountCents: amountCents,
		Description: reason,
		Status:      domain.FineStatusUnpaid,
		IsActive:    true,
		IssuedDate:  time.Now(),
	}

	if err := s.fineRepo.Create(ctx, fine); err != nil {
		return nil, domain.WrapInternal("failed to create fine", err)
	}

	logger.Info("Manual fine issued", "fine_id", fine.ID, "user_id", userID,
		"fine_type", fineType.Name, "amount_cents", amountCents)

	s.notifyFine(ctx, fine)

	return fine, nil
}

// PayFine settles a fine on behalf of the member. Settling an already-paid
// fine is a no-op that returns the settled row.
func (s *fineService) PayFine(ctx context.Context, fineID int32) (*domain.Fine, error) {
	fine, err := s.settle(ctx, fineID)
	if err != nil {
		return nil, err
	}
	logger.Info("Fine paid", "fine_id", fineID, "user_id", fine.UserID)
	return fine, nil
}

// RevokeFine is the administrator-initiated waiver; the field effect matches
// PayFine but the two are logged and exposed as distinct operations.
func (s *fineService) RevokeFine(ctx context.Context, fineID int32) (*domain.Fine, error) {
	fine, err := s.settle(ctx, fineID)
	if err != nil {
		return nil, err
	}
	logger.Info("Fine revoked", "fine_id", fineID, "user_id", fine.UserID)
	return fine, nil
}

func (s *fineService) settle(ctx context.Context, fineID int32) (*domain.Fine, error) {
	fine, err := s.fineRepo.Settle(ctx, fineID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindNotFound, "fine %d not found", fineID)
		}
		return nil, domain.WrapInternal("failed to settle fine", err)
	}
	return fine, nil
}

func (s *fineService) GetUserFinesByUserID(ctx context.Context, userID string) ([]domain.FineDetail, error) {
	if userID == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "user id must not be empty")
	}
	fines, err := s.fineRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.WrapInternal("failed to list fines", err)
	}
	return fines, nil
}

func (s *fineService) GetUserFinesByEmail(ctx context.Context, email string) ([]domain.FineDetail, error) {
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
	return s.GetUserFinesByUserID(ctx, user.ID)
}

// notifyFine sends a best-effort email notice; a delivery failure never
// blocks the lending path.
func (s *fineService) notifyFine(ctx context.Context, fine *domain.Fine) {
	user, err := s.userRepo.GetByID(ctx, fine.UserID)
	if err != nil {
		logger.Warn("Could not resolve user for fine notice", "user_id", fine.UserID, "error", err)
		return
	}
	name := user.FirstName + " " + user.LastName
	if err := s.emailSvc.SendFineNotice(ctx, user.Email, name, fine.Description, fine.AmountCents); err != nil {
		logger.Warn("Failed to send fine notice", "fine_id", fine.ID, "error", err)
	}
}
