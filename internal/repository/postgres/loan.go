package postgres

import (
	"context"
	"database/sql"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type loanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) CreateWithCopyClaim(ctx context.Context, loan *domain.Loan) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Conditional claim: affects zero rows when the copy is already on loan.
	res, err := tx.ExecContext(ctx,
		`UPDATE book_copies SET is_available = FALSE WHERE id = $1 AND is_available = TRUE`,
		loan.BookCopyID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrCopyUnavailable
	}

	query := `INSERT INTO loans (user_id, book_copy_id, loan_date, expected_return_date)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	if err := tx.QueryRowContext(ctx, query,
		loan.UserID, loan.BookCopyID, loan.LoanDate, loan.ExpectedReturnDate).Scan(&loan.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *loanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	loan := &domain.Loan{}
	query := `SELECT id, user_id, book_copy_id, loan_date, expected_return_date, actual_return_date
	          FROM loans WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&loan.ID, &loan.UserID, &loan.BookCopyID, &loan.LoanDate, &loan.ExpectedReturnDate, &loan.ActualReturnDate)
	if err != nil {
		return nil, err
	}
	return loan, nil
}

func (r *loanRepository) UpdateExpectedReturnDate(ctx context.Context, id int32, date time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE loans SET expected_return_date = $1 WHERE id = $2`, date, id)
	return err
}

func (r *loanRepository) MarkReturnedByBarcode(ctx context.Context, barcode string, returnedAt time.Time) (*domain.LoanDetail, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// The subselect locks the active loan row; a concurrent return of the
	// same barcode finds no active loan and observes sql.ErrNoRows.
	detail := &domain.LoanDetail{}
	query := `UPDATE loans SET actual_return_date = $1
	          WHERE id = (
	              SELECT l.id FROM loans l
	              JOIN book_copies bc ON bc.id = l.book_copy_id
	              WHERE bc.barcode_number = $2 AND l.actual_return_date IS NULL
	              FOR UPDATE OF l
	          )
	          RETURNING id, user_id, book_copy_id, loan_date, expected_return_date, actual_return_date`
	err = tx.QueryRowContext(ctx, query, returnedAt, barcode).Scan(
		&detail.ID, &detail.UserID, &detail.BookCopyID, &detail.LoanDate, &detail.ExpectedReturnDate, &detail.ActualReturnDate)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE book_copies SET is_available = TRUE WHERE id = $1`, detail.BookCopyID); err != nil {
		return nil, err
	}

	err = tx.QueryRowContext(ctx,
		`SELECT bc.barcode_number, b.title FROM book_copies bc JOIN books b ON b.id = bc.book_id WHERE bc.id = $1`,
		detail.BookCopyID).Scan(&detail.Barcode, &detail.BookTitle)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return detail, nil
}

func (r *loanRepository) ListByUser(ctx context.Context, userID string) ([]domain.LoanDetail, error) {
	query := `SELECT l.id, l.user_id, l.book_copy_id, l.loan_date, l.expected_return_date, l.actual_return_date,
	                 bc.barcode_number, b.title
	          FROM loans l
	          JOIN book_copies bc ON bc.id = l.book_copy_id
	          JOIN books b ON b.id = bc.book_id
	          WHERE l.user_id = $1
	          ORDER BY l.loan_date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []domain.LoanDetail
	for rows.Next() {
		var d domain.LoanDetail
		if err := rows.Scan(&d.ID, &d.UserID, &d.BookCopyID, &d.LoanDate, &d.ExpectedReturnDate, &d.ActualReturnDate,
			&d.Barcode, &d.BookTitle); err != nil {
			return nil, err
		}
		loans = append(loans, d)
	}
	return loans, rows.Err()
}

func (r *loanRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM loans WHERE actual_return_date IS NULL`).Scan(&count)
	return count, err
}

func (r *loanRepository) CountOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM loans WHERE actual_return_date IS NULL AND expected_return_date < $1`,
		asOf).Scan(&count)
	return count, err
}
