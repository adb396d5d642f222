package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestFineRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewFineRepository(db)
	ctx := context.Background()

	loanID := int32(1)
	fine := &domain.Fine{
		UserID:      "u-1",
		LoanID:      &loanID,
		FineTypeID:  3,
		AmountCents: 150,
		Description: "Fine for 3 overdue day(s).",
		Status:      domain.FineStatusUnpaid,
		IsActive:    true,
		IssuedDate:  time.Now(),
	}

	mock.ExpectQuery("INSERT INTO fines").
		WithArgs(fine.UserID, fine.LoanID, fine.FineTypeID, fine.AmountCents,
			fine.Description, fine.Status, fine.IsActive, fine.IssuedDate).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	err = repo.Create(ctx, fine)
	assert.NoError(t, err)
	assert.Equal(t, int32(11), fine.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFineRepository_Settle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewFineRepository(db)
	ctx := context.Background()
	issued := time.Now()

	settledRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "user_id", "loan_id", "fine_type_id", "amount_cents",
			"description", "status", "is_active", "issued_date"}).
			AddRow(5, "u-1", nil, 3, 150, "Fine for 3 overdue day(s).", "PAID", false, issued)
	}

	t.Run("Settles", func(t *testing.T) {
		mock.ExpectQuery("UPDATE fines SET status").
			WithArgs(domain.FineStatusPaid, int32(5)).
			WillReturnRows(settledRow())

		fine, err := repo.Settle(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, domain.FineStatusPaid, fine.Status)
		assert.False(t, fine.IsActive)
	})

	t.Run("RepeatSettleReturnsSameState", func(t *testing.T) {
		mock.ExpectQuery("UPDATE fines SET status").
			WithArgs(domain.FineStatusPaid, int32(5)).
			WillReturnRows(settledRow())

		fine, err := repo.Settle(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, domain.FineStatusPaid, fine.Status)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery("UPDATE fines SET status").
			WithArgs(domain.FineStatusPaid, int32(404)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Settle(ctx, 404)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestFineRepository_HasActiveFines(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewFineRepository(db)
	ctx := context.Background()

	t.Run("HasFines", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("u-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		has, err := repo.HasActiveFines(ctx, "u-1")
		assert.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("Clean", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("u-2").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		has, err := repo.HasActiveFines(ctx, "u-2")
		assert.NoError(t, err)
		assert.False(t, has)
	})
}

func TestFineRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewFineRepository(db)
	ctx := context.Background()
	issued := time.Now()

	title := "The Go Programming Language"
	barcode := "BC-100"
	mock.ExpectQuery("FROM fines f").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "loan_id", "fine_type_id", "amount_cents",
			"description", "status", "is_active", "issued_date", "name", "title", "barcode_number"}).
			AddRow(5, "u-1", 1, 3, 150, "Fine for 3 overdue day(s).", "UNPAID", true, issued, "late-return", title, barcode).
			AddRow(6, "u-1", nil, 2, 2500, "Water damage", "PAID", false, issued, "damaged-book", nil, nil))

	fines, err := repo.ListByUser(ctx, "u-1")
	assert.NoError(t, err)
	assert.Len(t, fines, 2)
	assert.Equal(t, "late-return", fines[0].FineTypeName)
	assert.Equal(t, title, *fines[0].BookTitle)
	assert.Nil(t, fines[1].BookTitle)
	assert.Nil(t, fines[1].LoanID)
}
