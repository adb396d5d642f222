package service_test

import (
	"context"
	"database/sql"
	"testing"

	"library-backend/internal/domain"
	"library-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFineTypeService_AddFineType(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		fineTypeRepo := new(MockFineTypeRepo)
		svc := service.NewFineTypeService(fineTypeRepo)

		fineTypeRepo.On("GetByName", ctx, "damaged-book").Return(nil, sql.ErrNoRows).Once()
		fineTypeRepo.On("Create", ctx, mock.MatchedBy(func(ft *domain.FineType) bool {
			return ft.Name == "damaged-book" && ft.DailyRateCents == 100
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.FineType).ID = 2
		}).Return(nil).Once()

		ft, err := svc.AddFineType(ctx, "damaged-book", 100)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), ft.ID)
		fineTypeRepo.AssertExpectations(t)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		fineTypeRepo := new(MockFineTypeRepo)
		svc := service.NewFineTypeService(fineTypeRepo)

		fineTypeRepo.On("GetByName", ctx, "late-return").
			Return(&domain.FineType{ID: 3, Name: "late-return", DailyRateCents: 50}, nil).Once()

		_, err := svc.AddFineType(ctx, "late-return", 50)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("NonPositiveRate", func(t *testing.T) {
		svc := service.NewFineTypeService(new(MockFineTypeRepo))

		_, err := svc.AddFineType(ctx, "freebie", 0)
		assert.True(t, domain.IsInvalidArgument(err))
	})
}

func TestFineTypeService_UpdateFineType(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialUpdate", func(t *testing.T) {
		fineTypeRepo := new(MockFineTypeRepo)
		svc := service.NewFineTypeService(fineTypeRepo)

		fineTypeRepo.On("GetByID", ctx, int32(3)).
			Return(&domain.FineType{ID: 3, Name: "late-return", DailyRateCents: 50}, nil).Once()
		fineTypeRepo.On("Update", ctx, mock.MatchedBy(func(ft *domain.FineType) bool {
			// Empty name keeps the old one; the new rate sticks.
			return ft.Name == "late-return" && ft.DailyRateCents == 75
		})).Return(nil).Once()

		ft, err := svc.UpdateFineType(ctx, 3, "", 75)
		assert.NoError(t, err)
		assert.Equal(t, int64(75), ft.DailyRateCents)
	})

	t.Run("NotFound", func(t *testing.T) {
		fineTypeRepo := new(MockFineTypeRepo)
		svc := service.NewFineTypeService(fineTypeRepo)

		fineTypeRepo.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.UpdateFineType(ctx, 99, "x", 10)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestDashboardService_GetStats(t *testing.T) {
	ctx := context.Background()

	bookRepo := new(MockBookRepo)
	userRepo := new(MockUserRepo)
	loanRepo := new(MockLoanRepo)
	svc := service.NewDashboardService(bookRepo, userRepo, loanRepo)

	bookRepo.On("Count", ctx).Return(int64(120), nil).Once()
	userRepo.On("Count", ctx).Return(int64(45), nil).Once()
	loanRepo.On("CountActive", ctx).Return(int64(17), nil).Once()
	loanRepo.On("CountOverdue", ctx, mock.AnythingOfType("time.Time")).Return(int64(4), nil).Once()

	stats, err := svc.GetStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalBookCount)
	assert.Equal(t, int64(45), stats.UserCount)
	assert.Equal(t, int64(17), stats.LoanedBookCount)
	assert.Equal(t, int64(4), stats.OverdueLoanCount)
}

// MockBookRepo implements only what the dashboard needs plus the interface
// surface.
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) GetDetailByID(ctx context.Context, id int32) (*domain.BookDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookDetail), args.Error(1)
}
func (m *MockBookRepo) List(ctx context.Context, filter domain.BookFilter) ([]domain.BookDetail, int32, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.BookDetail), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookRepo) AddBookAuthor(ctx context.Context, bookID, authorID int32) error {
	args := m.Called(ctx, bookID, authorID)
	return args.Error(0)
}
func (m *MockBookRepo) IsBookAuthorExists(ctx context.Context, bookID, authorID int32) (bool, error) {
	args := m.Called(ctx, bookID, authorID)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
