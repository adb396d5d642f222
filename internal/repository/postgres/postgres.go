package postgres

import (
	"database/sql"

	"library-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.LoanRepository
	repository.FineRepository
	repository.FineTypeRepository
	repository.BookRepository
	repository.CopyRepository
	repository.AuthorRepository
	repository.CategoryRepository
	repository.PublisherRepository
	repository.RoomRepository
	repository.ShelfRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		LoanRepository:      NewLoanRepository(db),
		FineRepository:      NewFineRepository(db),
		FineTypeRepository:  NewFineTypeRepository(db),
		BookRepository:      NewBookRepository(db),
		CopyRepository:      NewCopyRepository(db),
		AuthorRepository:    NewAuthorRepository(db),
		CategoryRepository:  NewCategoryRepository(db),
		PublisherRepository: NewPublisherRepository(db),
		RoomRepository:      NewRoomRepository(db),
		ShelfRepository:     NewShelfRepository(db),
		UserRepository:      NewUserRepository(db),
	}
}
