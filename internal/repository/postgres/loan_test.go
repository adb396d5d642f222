package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
	"library-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestLoanRepository_CreateWithCopyClaim(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewLoanRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		loan := &domain.Loan{
			UserID:             "u-1",
			BookCopyID:         7,
			LoanDate:           now,
			ExpectedReturnDate: now.AddDate(0, 0, 14),
		}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE book_copies SET is_available = FALSE").
			WithArgs(int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO loans").
			WithArgs("u-1", int32(7), loan.LoanDate, loan.ExpectedReturnDate).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
		mock.ExpectCommit()

		err := repo.CreateWithCopyClaim(ctx, loan)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), loan.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CopyAlreadyClaimed", func(t *testing.T) {
		loan := &domain.Loan{
			UserID:             "u-2",
			BookCopyID:         7,
			LoanDate:           now,
			ExpectedReturnDate: now.AddDate(0, 0, 14),
		}

		// The conditional update matches no rows, so no loan row is written.
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE book_copies SET is_available = FALSE").
			WithArgs(int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.CreateWithCopyClaim(ctx, loan)
		assert.ErrorIs(t, err, repository.ErrCopyUnavailable)
		assert.Zero(t, loan.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertFailureRollsBack", func(t *testing.T) {
		loan := &domain.Loan{
			UserID:             "u-3",
			BookCopyID:         7,
			LoanDate:           now,
			ExpectedReturnDate: now.AddDate(0, 0, 14),
		}

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE book_copies SET is_available = FALSE").
			WithArgs(int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO loans").
			WillReturnError(errors.New("insert failed"))
		mock.ExpectRollback()

		err := repo.CreateWithCopyClaim(ctx, loan)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoanRepository_MarkReturnedByBarcode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewLoanRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		loanDate := now.AddDate(0, 0, -14)
		expected := now.AddDate(0, 0, -2)

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE loans SET actual_return_date").
			WithArgs(now, "BC-100").
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "user_id", "book_copy_id", "loan_date", "expected_return_date", "actual_return_date"}).
				AddRow(1, "u-1", 7, loanDate, expected, now))
		mock.ExpectExec("UPDATE book_copies SET is_available = TRUE").
			WithArgs(int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT bc.barcode_number, b.title").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"barcode_number", "title"}).
				AddRow("BC-100", "The Go Programming Language"))
		mock.ExpectCommit()

		detail, err := repo.MarkReturnedByBarcode(ctx, "BC-100", now)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), detail.ID)
		assert.Equal(t, "BC-100", detail.Barcode)
		assert.NotNil(t, detail.ActualReturnDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoActiveLoan", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE loans SET actual_return_date").
			WithArgs(now, "BC-100").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		detail, err := repo.MarkReturnedByBarcode(ctx, "BC-100", now)
		assert.Nil(t, detail)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoanRepository_Counts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewLoanRepository(db)
	ctx := context.Background()

	t.Run("CountActive", func(t *testing.T) {
		mock.ExpectQuery(`SELECT count\(\*\) FROM loans WHERE actual_return_date IS NULL`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.CountActive(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("CountOverdue", func(t *testing.T) {
		asOf := time.Now()
		mock.ExpectQuery("AND expected_return_date <").
			WithArgs(asOf).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		count, err := repo.CountOverdue(ctx, asOf)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
