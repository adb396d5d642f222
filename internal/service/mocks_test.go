package service_test

import (
	"context"
	"time"

	"library-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockLoanRepo
type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) CreateWithCopyClaim(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) UpdateExpectedReturnDate(ctx context.Context, id int32, date time.Time) error {
	args := m.Called(ctx, id, date)
	return args.Error(0)
}
func (m *MockLoanRepo) MarkReturnedByBarcode(ctx context.Context, barcode string, returnedAt time.Time) (*domain.LoanDetail, error) {
	args := m.Called(ctx, barcode, returnedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanDetail), args.Error(1)
}
func (m *MockLoanRepo) ListByUser(ctx context.Context, userID string) ([]domain.LoanDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanDetail), args.Error(1)
}
func (m *MockLoanRepo) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockLoanRepo) CountOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Error(1)
}

// MockFineRepo
type MockFineRepo struct {
	mock.Mock
}

func (m *MockFineRepo) Create(ctx context.Context, fine *domain.Fine) error {
	args := m.Called(ctx, fine)
	return args.Error(0)
}
func (m *MockFineRepo) GetByID(ctx context.Context, id int32) (*domain.Fine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fine), args.Error(1)
}
func (m *MockFineRepo) Settle(ctx context.Context, id int32) (*domain.Fine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fine), args.Error(1)
}
func (m *MockFineRepo) HasActiveFines(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockFineRepo) ListByUser(ctx context.Context, userID string) ([]domain.FineDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FineDetail), args.Error(1)
}

// MockFineTypeRepo
type MockFineTypeRepo struct {
	mock.Mock
}

func (m *MockFineTypeRepo) Create(ctx context.Context, ft *domain.FineType) error {
	args := m.Called(ctx, ft)
	return args.Error(0)
}
func (m *MockFineTypeRepo) GetByID(ctx context.Context, id int32) (*domain.FineType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FineType), args.Error(1)
}
func (m *MockFineTypeRepo) GetByName(ctx context.Context, name string) (*domain.FineType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FineType), args.Error(1)
}
func (m *MockFineTypeRepo) Update(ctx context.Context, ft *domain.FineType) error {
	args := m.Called(ctx, ft)
	return args.Error(0)
}
func (m *MockFineTypeRepo) List(ctx context.Context) ([]domain.FineType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FineType), args.Error(1)
}

// MockCopyRepo
type MockCopyRepo struct {
	mock.Mock
}

func (m *MockCopyRepo) Create(ctx context.Context, copy *domain.BookCopy) error {
	args := m.Called(ctx, copy)
	return args.Error(0)
}
func (m *MockCopyRepo) GetByID(ctx context.Context, id int32) (*domain.BookCopy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookCopy), args.Error(1)
}
func (m *MockCopyRepo) GetByBarcode(ctx context.Context, barcode string) (*domain.BookCopy, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookCopy), args.Error(1)
}
func (m *MockCopyRepo) ListByBook(ctx context.Context, bookID int32) ([]domain.BookCopy, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookCopy), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByRefreshToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int32, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int32), args.Error(2)
}
func (m *MockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOverdueReminder(ctx context.Context, email, name, bookTitle string, daysOverdue int32) error {
	args := m.Called(ctx, email, name, bookTitle, daysOverdue)
	return args.Error(0)
}
func (m *MockEmailService) SendFineNotice(ctx context.Context, email, name, description string, amountCents int64) error {
	args := m.Called(ctx, email, name, description, amountCents)
	return args.Error(0)
}

// MockFineService
type MockFineService struct {
	mock.Mock
}

func (m *MockFineService) ProcessLateReturn(ctx context.Context, loan *domain.Loan) (*domain.Fine, error) {
	args := m.Called(ctx, loan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fine), args.Error(1)
}
func (m *MockFineService) AddFine(ctx context.Context, userID string, fineTypeID int32, amountCents int64, reason string) (*domain.Fine, error) {
	args := m.Called(ctx, userID, fineTypeID, amountCents, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fine), args.Error(1)
}
func (m *MockFineService) PayFine(ctx context.Context, fineID int32) (*domain.Fine, error) {
	args := m.Called(ctx, fineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fine), args.Error(1)
}
func (m *MockFineService) RevokeFine(ctx context.Context, fineID int32) (*domain.Fine, error) {
	args := m.Called(ctx, fineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fine), args.Error(1)
}
func (m *MockFineService) GetUserFinesByUserID(ctx context.Context, userID string) ([]domain.FineDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FineDetail), args.Error(1)
}
func (m *MockFineService) GetUserFinesByEmail(ctx context.Context, email string) ([]domain.FineDetail, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FineDetail), args.Error(1)
}
