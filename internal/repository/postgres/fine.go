package postgres

import (
	"context"
	"database/sql"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type fineRepository struct {
	db *sql.DB
}

func NewFineRepository(db *sql.DB) repository.FineRepository {
	return &fineRepository{db: db}
}

func (r *fineRepository) Create(ctx context.Context, fine *domain.Fine) error {
	query := `INSERT INTO fines (user_id, loan_id, fine_type_id, amount_cents, description, status, is_active, issued_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		fine.UserID, fine.LoanID, fine.FineTypeID, fine.AmountCents, fine.Description,
		fine.Status, fine.IsActive, fine.IssuedDate).Scan(&fine.ID)
}

func (r *fineRepository) GetByID(ctx context.Context, id int32) (*domain.Fine, error) {
	fine := &domain.Fine{}
	query := `SELECT id, user_id, loan_id, fine_type_id, amount_cents, description, status, is_active, issued_date
	          FROM fines WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&fine.ID, &fine.UserID, &fine.LoanID, &fine.FineTypeID, &fine.AmountCents,
		&fine.Description, &fine.Status, &fine.IsActive, &fine.IssuedDate)
	if err != nil {
		return nil, err
	}
	return fine, nil
}

func (r *fineRepository) Settle(ctx context.Context, id int32) (*domain.Fine, error) {
	fine := &domain.Fine{}
	query := `UPDATE fines SET status = $1, is_active = FALSE WHERE id = $2
	          RETURNING id, user_id, loan_id, fine_type_id, amount_cents, description, status, is_active, issued_date`
	err := r.db.QueryRowContext(ctx, query, domain.FineStatusPaid, id).Scan(
		&fine.ID, &fine.UserID, &fine.LoanID, &fine.FineTypeID, &fine.AmountCents,
		&fine.Description, &fine.Status, &fine.IsActive, &fine.IssuedDate)
	if err != nil {
		return nil, err
	}
	return fine, nil
}

func (r *fineRepository) HasActiveFines(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM fines WHERE user_id = $1 AND is_active = TRUE)`,
		userID).Scan(&exists)
	return exists, err
}

func (r *fineRepository) ListByUser(ctx context.Context, userID string) ([]domain.FineDetail, error) {
	query := `SELECT f.id, f.user_id, f.loan_id, f.fine_type_id, f.amount_cents, f.description, f.status, f.is_active, f.issued_date,
	                 ft.name, b.title, bc.barcode_number
	          FROM fines f
	          JOIN fine_types ft ON ft.id = f.fine_type_id
	          LEFT JOIN loans l ON l.id = f.loan_id
	          LEFT JOIN book_copies bc ON bc.id = l.book_copy_id
	          LEFT JOIN books b ON b.id = bc.book_id
	          WHERE f.user_id = $1
	          ORDER BY f.issued_date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fines []domain.FineDetail
	for rows.Next() {
		var d domain.FineDetail
		if err := rows.Scan(&d.ID, &d.UserID, &d.LoanID, &d.FineTypeID, &d.AmountCents,
			&d.Description, &d.Status, &d.IsActive, &d.IssuedDate,
			&d.FineTypeName, &d.BookTitle, &d.Barcode); err != nil {
			return nil, err
		}
		fines = append(fines, d)
	}
	return fines, rows.Err()
}
