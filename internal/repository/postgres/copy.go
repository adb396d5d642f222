package postgres

import (
	"context"
	"database/sql"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type copyRepository struct {
	db *sql.DB
}

func NewCopyRepository(db *sql.DB) repository.CopyRepository {
	return &copyRepository{db: db}
}

func (r *copyRepository) Create(ctx context.Context, copy *domain.BookCopy) error {
	query := `INSERT INTO book_copies (barcode_number, is_available, book_id, shelf_id)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		copy.BarcodeNumber, copy.IsAvailable, copy.BookID, copy.ShelfID).Scan(&copy.ID)
}

func (r *copyRepository) GetByID(ctx context.Context, id int32) (*domain.BookCopy, error) {
	copy := &domain.BookCopy{}
	query := `SELECT id, barcode_number, is_available, book_id, shelf_id FROM book_copies WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&copy.ID, &copy.BarcodeNumber, &copy.IsAvailable, &copy.BookID, &copy.ShelfID)
	if err != nil {
		return nil, err
	}
	return copy, nil
}

func (r *copyRepository) GetByBarcode(ctx context.Context, barcode string) (*domain.BookCopy, error) {
	copy := &domain.BookCopy{}
	query := `SELECT id, barcode_number, is_available, book_id, shelf_id FROM book_copies WHERE barcode_number = $1`
	err := r.db.QueryRowContext(ctx, query, barcode).Scan(
		&copy.ID, &copy.BarcodeNumber, &copy.IsAvailable, &copy.BookID, &copy.ShelfID)
	if err != nil {
		return nil, err
	}
	return copy, nil
}

func (r *copyRepository) ListByBook(ctx context.Context, bookID int32) ([]domain.BookCopy, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, barcode_number, is_available, book_id, shelf_id FROM book_copies WHERE book_id = $1 ORDER BY id`,
		bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var copies []domain.BookCopy
	for rows.Next() {
		var c domain.BookCopy
		if err := rows.Scan(&c.ID, &c.BarcodeNumber, &c.IsAvailable, &c.BookID, &c.ShelfID); err != nil {
			return nil, err
		}
		copies = append(copies, c)
	}
	return copies, rows.Err()
}
