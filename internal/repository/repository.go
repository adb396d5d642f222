package repository

import (
	"context"
	"errors"
	"time"

	"library-backend/internal/domain"
)

// ErrCopyUnavailable is returned by LoanRepository.CreateWithCopyClaim when
// the conditional availability update affects no rows, meaning the copy is
// already on loan.
var ErrCopyUnavailable = errors.New("book copy is not available")

type LoanRepository interface {
	// CreateWithCopyClaim inserts the loan and claims the copy's
	// availability flag in one transaction. The claim is a conditional
	// update (set unavailable where available); when it affects no rows the
	// whole transaction rolls back and ErrCopyUnavailable is returned, so
	// two concurrent borrowers of one barcode cannot both succeed.
	CreateWithCopyClaim(ctx context.Context, loan *domain.Loan) error

	GetByID(ctx context.Context, id int32) (*domain.Loan, error)
	UpdateExpectedReturnDate(ctx context.Context, id int32, date time.Time) error

	// MarkReturnedByBarcode finds the unique active loan for the barcode,
	// stamps its actual return date, and flips the copy back to available,
	// all in one transaction. Returns sql.ErrNoRows (wrapped) when no
	// active loan exists for the barcode; a concurrent double return loses
	// that race and observes the same.
	MarkReturnedByBarcode(ctx context.Context, barcode string, returnedAt time.Time) (*domain.LoanDetail, error)

	ListByUser(ctx context.Context, userID string) ([]domain.LoanDetail, error)
	CountActive(ctx context.Context) (int64, error)
	CountOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

type FineRepository interface {
	Create(ctx context.Context, fine *domain.Fine) error
	GetByID(ctx context.Context, id int32) (*domain.Fine, error)

	// Settle marks the fine paid and inactive, returning the settled row.
	// The update is unconditional, so settling an already-settled fine is a
	// no-op that returns the current state.
	Settle(ctx context.Context, id int32) (*domain.Fine, error)

	HasActiveFines(ctx context.Context, userID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]domain.FineDetail, error)
}

type FineTypeRepository interface {
	Create(ctx context.Context, ft *domain.FineType) error
	GetByID(ctx context.Context, id int32) (*domain.FineType, error)
	GetByName(ctx context.Context, name string) (*domain.FineType, error)
	Update(ctx context.Context, ft *domain.FineType) error
	List(ctx context.Context) ([]domain.FineType, error)
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	GetDetailByID(ctx context.Context, id int32) (*domain.BookDetail, error)
	List(ctx context.Context, filter domain.BookFilter) ([]domain.BookDetail, int32, error)
	AddBookAuthor(ctx context.Context, bookID, authorID int32) error
	IsBookAuthorExists(ctx context.Context, bookID, authorID int32) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type CopyRepository interface {
	Create(ctx context.Context, copy *domain.BookCopy) error
	GetByID(ctx context.Context, id int32) (*domain.BookCopy, error)
	GetByBarcode(ctx context.Context, barcode string) (*domain.BookCopy, error)
	ListByBook(ctx context.Context, bookID int32) ([]domain.BookCopy, error)
}

type AuthorRepository interface {
	Create(ctx context.Context, author *domain.Author) error
	GetByID(ctx context.Context, id int32) (*domain.Author, error)
	GetByName(ctx context.Context, firstName, lastName string) (*domain.Author, error)
	List(ctx context.Context) ([]domain.Author, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id int32) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type PublisherRepository interface {
	Create(ctx context.Context, publisher *domain.Publisher) error
	GetByID(ctx context.Context, id int32) (*domain.Publisher, error)
	GetByName(ctx context.Context, name string) (*domain.Publisher, error)
	List(ctx context.Context) ([]domain.Publisher, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int32) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
}

type ShelfRepository interface {
	Create(ctx context.Context, shelf *domain.Shelf) error
	GetByID(ctx context.Context, id int32) (*domain.Shelf, error)
	ListByRoom(ctx context.Context, roomID int32) ([]domain.Shelf, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByRefreshToken(ctx context.Context, token string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int32, error)
	Count(ctx context.Context) (int64, error)
}
