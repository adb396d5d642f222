package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, first_name, last_name, password_hash, role, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.FirstName, user.LastName, user.PasswordHash, user.Role, time.Now())
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *userRepository) GetByRefreshToken(ctx context.Context, token string) (*domain.User, error) {
	return r.getBy(ctx, "refresh_token", token)
}

func (r *userRepository) getBy(ctx context.Context, column, value string) (*domain.User, error) {
	user := &domain.User{}
	query := fmt.Sprintf(
		`SELECT id, email, first_name, last_name, password_hash, role, refresh_token, refresh_token_expiry, created_on
		 FROM users WHERE %s = $1`, column)
	var refreshToken sql.NullString
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash,
		&user.Role, &refreshToken, &user.RefreshTokenExpiry, &user.CreatedOn)
	if err != nil {
		return nil, err
	}
	user.RefreshToken = refreshToken.String
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET email = $1, first_name = $2, last_name = $3, password_hash = $4,
	          role = $5, refresh_token = $6, refresh_token_expiry = $7 WHERE id = $8`
	_, err := r.db.ExecContext(ctx, query,
		user.Email, user.FirstName, user.LastName, user.PasswordHash,
		user.Role, sql.NullString{String: user.RefreshToken, Valid: user.RefreshToken != ""},
		user.RefreshTokenExpiry, user.ID)
	return err
}

func (r *userRepository) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int32, error) {
	base := `SELECT id, email, first_name, last_name, password_hash, role, created_on FROM users WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if filter.Email != "" {
		base += fmt.Sprintf(" AND email ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Email+"%")
		argIdx++
	}
	if filter.Name != "" {
		base += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Name+"%")
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
	base += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, base, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.Role, &u.CreatedOn); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, count, rows.Err()
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&count)
	return count, err
}
