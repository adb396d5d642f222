package postgres

import (
	"context"
	"database/sql"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type authorRepository struct {
	db *sql.DB
}

func NewAuthorRepository(db *sql.DB) repository.AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, author *domain.Author) error {
	query := `INSERT INTO authors (first_name, last_name) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, author.FirstName, author.LastName).Scan(&author.ID)
}

func (r *authorRepository) GetByID(ctx context.Context, id int32) (*domain.Author, error) {
	author := &domain.Author{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name FROM authors WHERE id = $1`, id).Scan(
		&author.ID, &author.FirstName, &author.LastName)
	if err != nil {
		return nil, err
	}
	return author, nil
}

func (r *authorRepository) GetByName(ctx context.Context, firstName, lastName string) (*domain.Author, error) {
	author := &domain.Author{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name FROM authors WHERE first_name = $1 AND last_name = $2`,
		firstName, lastName).Scan(&author.ID, &author.FirstName, &author.LastName)
	if err != nil {
		return nil, err
	}
	return author, nil
}

func (r *authorRepository) List(ctx context.Context) ([]domain.Author, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, first_name, last_name FROM authors ORDER BY last_name`)
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

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	return r.db.QueryRowContext(ctx, query, category.Name).Scan(&category.ID)
}

func (r *categoryRepository) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM categories WHERE id = $1`, id).Scan(&category.ID, &category.Name)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM categories WHERE name = $1`, name).Scan(&category.ID, &category.Name)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

type publisherRepository struct {
	db *sql.DB
}

func NewPublisherRepository(db *sql.DB) repository.PublisherRepository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) Create(ctx context.Context, publisher *domain.Publisher) error {
	query := `INSERT INTO publishers (name) VALUES ($1) RETURNING id`
	return r.db.QueryRowContext(ctx, query, publisher.Name).Scan(&publisher.ID)
}

func (r *publisherRepository) GetByID(ctx context.Context, id int32) (*domain.Publisher, error) {
	publisher := &domain.Publisher{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM publishers WHERE id = $1`, id).Scan(&publisher.ID, &publisher.Name)
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

func (r *publisherRepository) GetByName(ctx context.Context, name string) (*domain.Publisher, error) {
	publisher := &domain.Publisher{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM publishers WHERE name = $1`, name).Scan(&publisher.ID, &publisher.Name)
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

func (r *publisherRepository) List(ctx context.Context) ([]domain.Publisher, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM publishers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var publishers []domain.Publisher
	for rows.Next() {
		var p domain.Publisher
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		publishers = append(publishers, p)
	}
	return publishers, rows.Err()
}
