package service

import (
	"context"
	"database/sql"
	"errors"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"

	"github.com/google/uuid"
)

type bookService struct {
	bookRepo      repository.BookRepository
	copyRepo      repository.CopyRepository
	authorRepo    repository.AuthorRepository
	categoryRepo  repository.CategoryRepository
	publisherRepo repository.PublisherRepository
	shelfRepo     repository.ShelfRepository
}

func NewBookService(
	bookRepo repository.BookRepository,
	copyRepo repository.CopyRepository,
	authorRepo repository.AuthorRepository,
	categoryRepo repository.CategoryRepository,
	publisherRepo repository.PublisherRepository,
	shelfRepo repository.ShelfRepository,
) BookService {
	return &bookService{
		bookRepo:      bookRepo,
		copyRepo:      copyRepo,
		authorRepo:    authorRepo,
		categoryRepo:  categoryRepo,
		publisherRepo: publisherRepo,
		shelfRepo:     shelfRepo,
	}
}

func (s *bookService) AddBook(ctx context.Context, input AddBookInput) (*domain.BookDetail, error) {
	if input.Title == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "book title must not be empty")
	}

	author, err := s.getOrCreateAuthor(ctx, input)
	if err != nil {
		return nil, err
	}
	category, err := s.getOrCreateCategory(ctx, input)
	if err != nil {
		return nil, err
	}
	publisher, err := s.getOrCreatePublisher(ctx, input)
	if err != nil {
		return nil, err
	}

	book := &domain.Book{
		Title:           input.Title,
		ISBN:            input.ISBN,
		PageCount:       input.PageCount,
		PublicationYear: input.PublicationYear,
		Language:        input.Language,
		CategoryID:      category.ID,
		PublisherID:     publisher.ID,
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, domain.WrapInternal("failed to create book", err)
	}

	if author != nil {
		exists, err := s.bookRepo.IsBookAuthorExists(ctx, book.ID, author.ID)
		if err != nil {
			return nil, domain.WrapInternal("failed to check book-author link", err)
		}
		if !exists {
			if err := s.bookRepo.AddBookAuthor(ctx, book.ID, author.ID); err != nil {
				return nil, domain.WrapInternal("failed to link book author", err)
			}
		}
	}

	logger.Info("Book added", "book_id", book.ID, "title", book.Title, "isbn", book.ISBN)
	return s.GetBookByID(ctx, book.ID)
}

func (s *bookService) getOrCreateAuthor(ctx context.Context, input AddBookInput) (*domain.Author, error) {
	if input.AuthorID > 0 {
		author, err := s.authorRepo.GetByID(ctx, input.AuthorID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, domain.Errorf(domain.KindNotFound, "author %d not found", input.AuthorID)
			}
			return nil, domain.WrapInternal("failed to look up author", err)
		}
		return author, nil
	}
	if input.AuthorFirstName == "" && input.AuthorLastName == "" {
		return nil, nil
	}

	author, err := s.authorRepo.GetByName(ctx, input.AuthorFirstName, input.AuthorLastName)
	if err == nil {
		return author, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, domain.WrapInternal("failed to look up author", err)
	}

	author = &domain.Author{FirstName: input.AuthorFirstName, LastName: input.AuthorLastName}
	if err := s.authorRepo.Create(ctx, author); err != nil {
		return nil, domain.WrapInternal("failed to create author", err)
	}
	return author, nil
}

func (s *bookService) getOrCreateCategory(ctx context.Context, input AddBookInput) (*domain.Category, error) {
	if input.CategoryID > 0 {
		category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, domain.Errorf(domain.KindNotFound, "category %d not found", input.CategoryID)
			}
			return nil, domain.WrapInternal("failed to look up category", err)
		}
		return category, nil
	}
	if input.CategoryName == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "category id or name is required")
	}

	category, err := s.categoryRepo.GetByName(ctx, input.CategoryName)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, domain.WrapInternal("failed to look up category", err)
	}

	category = &domain.Category{Name: input.CategoryName}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, domain.WrapInternal("failed to create category", err)
	}
	return category, nil
}

func (s *bookService) getOrCreatePublisher(ctx context.Context, input AddBookInput) (*domain.Publisher, error) {
	if input.PublisherID > 0 {
		publisher, err := s.publisherRepo.GetByID(ctx, input.PublisherID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, domain.Errorf(domain.KindNotFound, "publisher %d not found", input.PublisherID)
			}
			return nil, domain.WrapInternal("failed to look up publisher", err)
		}
		return publisher, nil
	}
	if input.PublisherName == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "publisher id or name is required")
	}

	publisher, err := s.publisherRepo.GetByName(ctx, input.PublisherName)
	if err == nil {
		return publisher, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, domain.WrapInternal("failed to look up publisher", err)
	}

	publisher = &domain.Publisher{Name: input.PublisherName}
	if err := s.publisherRepo.Create(ctx, publisher); err != nil {
		return nil, domain.WrapInternal("failed to create publisher", err)
	}
	return publisher, nil
}

func (s *bookService) GetBookByID(ctx context.Context, id int32) (*domain.BookDetail, error) {
	detail, err := s.bookRepo.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindNotFound, "book %d not found", id)
		}
		return nil, domain.WrapInternal("failed to look up book", err)
	}
	return detail, nil
}

func (s *bookService) ListBooks(ctx context.Context, filter domain.BookFilter) ([]domain.BookDetail, int32, error) {
	books, count, err := s.bookRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, domain.WrapInternal("failed to list books", err)
	}
	return books, count, nil
}

func (s *bookService) AddCopy(ctx context.Context, input AddCopyInput) (*domain.BookCopy, error) {
	if _, err := s.bookRepo.GetByID(ctx, input.BookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindNotFound, "book %d not found", input.BookID)
		}
		return nil, domain.WrapInternal("failed to look up book", err)
	}
	if _, err := s.shelfRepo.GetByID(ctx, input.ShelfID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindNotFound, "shelf %d not found", input.ShelfID)
		}
		return nil, domain.WrapInternal("failed to look up shelf", err)
	}

	barcode := input.Barcode
	if barcode == "" {
		barcode = uuid.NewString()
	} else {
		if _, err := s.copyRepo.GetByBarcode(ctx, barcode); err == nil {
			return nil, domain.Errorf(domain.KindConflict, "barcode %q is already in use", barcode)
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapInternal("failed to check barcode", err)
		}
	}

	copy := &domain.BookCopy{
		BarcodeNumber: barcode,
		IsAvailable:   true,
		BookID:        input.BookID,
		ShelfID:       input.ShelfID,
	}
	if err := s.copyRepo.Create(ctx, copy); err != nil {
		return nil, domain.WrapInternal("failed to create book copy", err)
	}

	logger.Info("Book copy added", "copy_id", copy.ID, "book_id", copy.BookID, "barcode", copy.BarcodeNumber)
	return copy, nil
}

func (s *bookService) GetCopyByBarcode(ctx context.Context, barcode string) (*domain.BookCopy, error) {
	if barcode == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "barcode must not be empty")
	}
	copy, err := s.copyRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindNotFound, "no book copy with barcode %q", barcode)
		}
		return nil, domain.WrapInternal("failed to look up book copy", err)
	}
	return copy, nil
}

func (s *bookService) ListCopiesByBook(ctx context.Context, bookID int32) ([]domain.BookCopy, error) {
	copies, err := s.copyRepo.ListByBook(ctx, bookID)
	if err != nil {
		return nil, domain.WrapInternal("failed to list book copies", err)
	}
	return copies, nil
}

func (s *bookService) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	authors, err := s.authorRepo.List(ctx)
	if err != nil {
		return nil, domain.WrapInternal("failed to list authors", err)
	}
	return authors, nil
}

func (s *bookService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, domain.WrapInternal("failed to list categories", err)
	}
	return categories, nil
}

func (s *bookService) ListPublishers(ctx context.Context) ([]domain.Publisher, error) {
	publishers, err := s.publisherRepo.List(ctx)
	if err != nil {
		return nil, domain.WrapInternal("failed to list publishers", err)
	}
	return publishers, nil
}
