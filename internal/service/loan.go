package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
	"library-backend/internal/utils"
)

type loanService struct {
	loanRepo repository.LoanRepository
	copyRepo repository.CopyRepository
	fineRepo repository.FineRepository
	fineSvc  FineService
}

func NewLoanService(
	loanRepo repository.LoanRepository,
	copyRepo repository.CopyRepository,
	fineRepo repository.FineRepository,
	fineSvc FineService,
) LoanService {
	return &loanService{
		loanRepo: loanRepo,
		copyRepo: copyRepo,
		fineRepo: fineRepo,
		fineSvc:  fineSvc,
	}
}

func (s *loanService) CanUserBorrow(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, domain.NewError(domain.KindInvalidArgument, "user id must not be empty")
	}
	hasActive, err := s.fineRepo.HasActiveFines(ctx, userID)
	if err != nil {
		return false, domain.WrapInternal("failed to check active fines", err)
	}
	return !hasActive, nil
}

func (s *loanService) CreateLoan(ctx context.Context, userID, barcode string, loanDays int32) (*domain.Loan, error) {
	if userID == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "user id must not be empty")
	}
	if barcode == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "barcode must not be empty")
	}
	if loanDays <= 0 {
		return nil, domain.NewError(domain.KindInvalidArgument, "loan days must be greater than zero")
	}

	copy, err := s.copyRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindNotFound, "no book copy with barcode %q", barcode)
		}
		return nil, domain.WrapInternal("failed to look up book copy", err)
	}
	if !copy.IsAvailable {
		return nil, domain.NewError(domain.KindConflict, "book copy is already on loan")
	}

	now := time.Now()
	expectedReturn := utils.ExpectedReturnDate(now, loanDays)
	if expectedReturn.Before(utils.Midnight(now)) {
		return nil, domain.NewError(domain.KindInvalidArgument, "expected return date cannot be in the past")
	}

	loan := &domain.Loan{
		UserID:             userID,
		BookCopyID:         copy.ID,
		LoanDate:           now,
		ExpectedReturnDate: expectedReturn,
	}

	if err := s.loanRepo.CreateWithCopyClaim(ctx, loan); err != nil {
		if errors.Is(err, repository.ErrCopyUnavailable) {
			// Lost the race against a concurrent borrower.
			return nil, domain.NewError(domain.KindConflict, "book copy is already on loan")
		}
		return nil, domain.WrapInternal("failed to create loan", err)
	}

	logger.Info("Loan created", "loan_id", loan.ID, "user_id", userID, "barcode", barcode,
		"expected_return", expectedReturn.Format("2006-01-02"))
	return loan, nil
}

func (s *loanService) UpdateLoan(ctx context.Context, loanID int32, newExpectedReturnDate time.Time) (*domain.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindNotFound, "loan %d not found", loanID)
		}
		return nil, domain.WrapInternal("failed to look up loan", err)
	}

	if loan.ActualReturnDate != nil {
		return nil, domain.NewError(domain.KindConflict, "loan is already returned")
	}
	if utils.Midnight(newExpectedReturnDate).Before(utils.Midnight(time.Now())) {
		return nil, domain.NewError(domain.KindInvalidArgument, "new expected return date cannot be before today")
	}
	// Extensions are forward only: no backdating, no shortening.
	if utils.Midnight(newExpectedReturnDate).Before(utils.Midnight(loan.ExpectedReturnDate)) {
		return nil, domain.NewError(domain.KindConflict, "new expected return date cannot be before the current one")
	}

	if err := s.loanRepo.UpdateExpectedReturnDate(ctx, loanID, newExpectedReturnDate); err != nil {
		return nil, domain.WrapInternal("failed to update loan", err)
	}

	loan.ExpectedReturnDate = newExpectedReturnDate
	logger.Info("Loan extended", "loan_id", loanID, "new_expected_return", newExpectedReturnDate.Format("2006-01-02"))
	return loan, nil
}

func (s *loanService) ReturnBook(ctx context.Context, barcode string) (*domain.ReturnSummary, error) {
	if barcode == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "barcode must not be empty")
	}

	detail, err := s.loanRepo.MarkReturnedByBarcode(ctx, barcode, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindNotFound, "no active loan for barcode %q", barcode)
		}
		return nil, domain.WrapInternal("failed to record return", err)
	}

	late := detail.ActualReturnDate.After(detail.ExpectedReturnDate)
	summary := &domain.ReturnSummary{
		LoanID:       detail.ID,
		BookTitle:    detail.BookTitle,
		ReturnedDate: *detail.ActualReturnDate,
		Late:         late,
		Message:      "Book returned on-time.",
	}
	if late {
		summary.Message = "Book returned late. An overdue fine may have been issued."
	}

	// The return is already recorded; a fine failure must still surface so
	// operators can reconcile, which is why the summary is returned with it.
	if _, err := s.fineSvc.ProcessLateReturn(ctx, &detail.Loan); err != nil {
		logger.Error("Fine processing failed after return was recorded",
			"loan_id", detail.ID, "barcode", barcode, "error", err)
		return summary, domain.WrapInternal("return recorded but fine processing failed", err)
	}

	logger.Info("Book returned", "loan_id", detail.ID, "barcode", barcode, "late", late)
	return summary, nil
}

func (s *loanService) GetLoanByID(ctx context.Context, id int32) (*domain.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindNotFound, "loan %d not found", id)
		}
		return nil, domain.WrapInternal("failed to look up loan", err)
	}
	return loan, nil
}

func (s *loanService) GetAllLoansByUser(ctx context.Context, userID string) ([]domain.LoanDetail, error) {
	if userID == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "user id must not be empty")
	}
	loans, err := s.loanRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.WrapInternal("failed to list loans", err)
	}
	return loans, nil
}
