package service

import (
	"context"
	"time"

	"library-backend/internal/domain"
)

type LoanService interface {
	// CanUserBorrow reports whether the user has no active fines. Advisory:
	// CreateLoan does not re-check it, the API boundary does.
	CanUserBorrow(ctx context.Context, userID string) (bool, error)
	CreateLoan(ctx context.Context, userID, barcode string, loanDays int32) (*domain.Loan, error)
	UpdateLoan(ctx context.Context, loanID int32, newExpectedReturnDate time.Time) (*domain.Loan, error)
	// ReturnBook records the return and processes any overdue fine. When
	// fine processing fails after the return is recorded, the summary is
	// returned together with the error so the failure is never hidden.
	ReturnBook(ctx context.Context, barcode string) (*domain.ReturnSummary, error)
	GetLoanByID(ctx context.Context, id int32) (*domain.Loan, error)
	GetAllLoansByUser(ctx context.Context, userID string) ([]domain.LoanDetail, error)
}

type FineService interface {
	ProcessLateReturn(ctx context.Context, loan *domain.Loan) (*domain.Fine, error)
	AddFine(ctx context.Context, userID string, fineTypeID int32, amountCents int64, reason string) (*domain.Fine, error)
	PayFine(ctx context.Context, fineID int32) (*domain.Fine, error)
	RevokeFine(ctx context.Context, fineID int32) (*domain.Fine, error)
	GetUserFinesByUserID(ctx context.Context, userID string) ([]domain.FineDetail, error)
	GetUserFinesByEmail(ctx context.Context, email string) ([]domain.FineDetail, error)
}

type FineTypeService interface {
	AddFineType(ctx context.Context, name string, dailyRateCents int64) (*domain.FineType, error)
	UpdateFineType(ctx context.Context, id int32, name string, dailyRateCents int64) (*domain.FineType, error)
	GetFineTypeByID(ctx context.Context, id int32) (*domain.FineType, error)
	ListFineTypes(ctx context.Context) ([]domain.FineType, error)
}

// AddBookInput carries a new book plus references to its author, category
// and publisher. Each reference is either an existing id or a name to
// get-or-create.
type AddBookInput struct {
	Title           string
	ISBN            string
	PageCount       int32
	PublicationYear int32
	Language        string

	AuthorID        int32
	AuthorFirstName string
	AuthorLastName  string

	CategoryID   int32
	CategoryName string

	PublisherID   int32
	PublisherName string
}

type AddCopyInput struct {
	BookID  int32
	ShelfID int32
	Barcode string // generated when empty
}

type BookService interface {
	AddBook(ctx context.Context, input AddBookInput) (*domain.BookDetail, error)
	GetBookByID(ctx context.Context, id int32) (*domain.BookDetail, error)
	ListBooks(ctx context.Context, filter domain.BookFilter) ([]domain.BookDetail, int32, error)
	AddCopy(ctx context.Context, input AddCopyInput) (*domain.BookCopy, error)
	GetCopyByBarcode(ctx context.Context, barcode string) (*domain.BookCopy, error)
	ListCopiesByBook(ctx context.Context, bookID int32) ([]domain.BookCopy, error)
	ListAuthors(ctx context.Context) ([]domain.Author, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListPublishers(ctx context.Context) ([]domain.Publisher, error)
}

type LocationService interface {
	AddRoom(ctx context.Context, name string) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	AddShelf(ctx context.Context, roomID int32, name string) (*domain.Shelf, error)
	ListShelvesByRoom(ctx context.Context, roomID int32) ([]domain.Shelf, error)
}

type UserService interface {
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, int32, error)
}

type AuthService interface {
	Register(ctx context.Context, email, firstName, lastName, password string) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type DashboardService interface {
	GetStats(ctx context.Context) (*domain.DashboardStats, error)
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, email, name, bookTitle string, daysOverdue int32) error
	SendFineNotice(ctx context.Context, email, name, description string, amountCents int64) error
}
