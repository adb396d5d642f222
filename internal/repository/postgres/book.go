package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *domain.Book) error {
	query := `INSERT INTO books (title, isbn, page_count, publication_year, language, category_id, publisher_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		book.Title, book.ISBN, book.PageCount, book.PublicationYear, book.Language,
		book.CategoryID, book.PublisherID).Scan(&book.ID)
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	book := &domain.Book{}
	query := `SELECT id, title, isbn, page_count, publication_year, language, category_id, publisher_id
	          FROM books WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID, &book.Title, &book.ISBN, &book.PageCount, &book.PublicationYear,
		&book.Language, &book.CategoryID, &book.PublisherID)
	if err != nil {
		return nil, err
	}
	return book, nil
}

func (r *bookRepository) GetDetailByID(ctx context.Context, id int32) (*domain.BookDetail, error) {
	detail := &domain.BookDetail{}
	query := `SELECT b.id, b.title, b.isbn, b.page_count, b.publication_year, b.language,
	                 b.category_id, b.publisher_id, c.name, p.name
	          FROM books b
	          JOIN categories c ON c.id = b.category_id
	          JOIN publishers p ON p.id = b.publisher_id
	          WHERE b.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&detail.ID, &detail.Title, &detail.ISBN, &detail.PageCount, &detail.PublicationYear,
		&detail.Language, &detail.CategoryID, &detail.PublisherID,
		&detail.CategoryName, &detail.PublisherName)
	if err != nil {
		return nil, err
	}

	authors, err := r.listAuthorsForBook(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Authors = authors
	return detail, nil
}

func (r *bookRepository) listAuthorsForBook(ctx context.Context, bookID int32) ([]domain.Author, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.id, a.first_name, a.last_name
		 FROM authors a JOIN book_authors ba ON ba.author_id = a.id
		 WHERE ba.book_id = $1 ORDER BY a.last_name`, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []domain.Author
	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *bookRepository) List(ctx context.Context, filter domain.BookFilter) ([]domain.BookDetail, int32, error) {
	base := `SELECT b.id, b.title, b.isbn, b.page_count, b.publication_year, b.language,
	                b.category_id, b.publisher_id, c.name, p.name
	         FROM books b
	         JOIN categories c ON c.id = b.category_id
	         JOIN publishers p ON p.id = b.publisher_id
	         WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if filter.Title != "" {
		base += fmt.Sprintf(" AND b.title ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Title+"%")
		argIdx++
	}
	if filter.ISBN != "" {
		base += fmt.Sprintf(" AND b.isbn = $%d", argIdx)
		args = append(args, filter.ISBN)
		argIdx++
	}
	if filter.CategoryID > 0 {
		base += fmt.Sprintf(" AND b.category_id = $%d", argIdx)
		args = append(args, filter.CategoryID)
		argIdx++
	}
	if filter.AuthorID > 0 {
		base += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM book_authors ba WHERE ba.book_id = b.id AND ba.author_id = $%d)", argIdx)
		args = append(args, filter.AuthorID)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + base + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	base += fmt.Sprintf(" ORDER BY b.title LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, base, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var books []domain.BookDetail
	for rows.Next() {
		var d domain.BookDetail
		if err := rows.Scan(&d.ID, &d.Title, &d.ISBN, &d.PageCount, &d.PublicationYear,
			&d.Language, &d.CategoryID, &d.PublisherID, &d.CategoryName, &d.PublisherName); err != nil {
			return nil, 0, err
		}
		books = append(books, d)
	}
	return books, count, rows.Err()
}

func (r *bookRepository) AddBookAuthor(ctx context.Context, bookID, authorID int32) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO book_authors (book_id, author_id) VALUES ($1, $2)`, bookID, authorID)
	return err
}

func (r *bookRepository) IsBookAuthorExists(ctx context.Context, bookID, authorID int32) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM book_authors WHERE book_id = $1 AND author_id = $2)`,
		bookID, authorID).Scan(&exists)
	return exists, err
}

func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM books`).Scan(&count)
	return count, err
}
