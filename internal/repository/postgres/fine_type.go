package postgres

import (
	"context"
	"database/sql"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type fineTypeRepository struct {
	db *sql.DB
}

func NewFineTypeRepository(db *sql.DB) repository.FineTypeRepository {
	return &fineTypeRepository{db: db}
}

func (r *fineTypeRepository) Create(ctx context.Context, ft *domain.FineType) error {
	query := `INSERT INTO fine_types (name, daily_rate_cents) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, ft.Name, ft.DailyRateCents).Scan(&ft.ID)
}

func (r *fineTypeRepository) GetByID(ctx context.Context, id int32) (*domain.FineType, error) {
	ft := &domain.FineType{}
	query := `SELECT id, name, daily_rate_cents FROM fine_types WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ft.ID, &ft.Name, &ft.DailyRateCents)
	if err != nil {
		return nil, err
	}
	return ft, nil
}

func (r *fineTypeRepository) GetByName(ctx context.Context, name string) (*domain.FineType, error) {
	ft := &domain.FineType{}
	query := `SELECT id, name, daily_rate_cents FROM fine_types WHERE name = $1`
	err := r.db.QueryRowContext(ctx, query, name).Scan(&ft.ID, &ft.Name, &ft.DailyRateCents)
	if err != nil {
		return nil, err
	}
	return ft, nil
}

func (r *fineTypeRepository) Update(ctx context.Context, ft *domain.FineType) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE fine_types SET name = $1, daily_rate_cents = $2 WHERE id = $3`,
		ft.Name, ft.DailyRateCents, ft.ID)
	return err
}

func (r *fineTypeRepository) List(ctx context.Context) ([]domain.FineType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, daily_rate_cents FROM fine_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.FineType
	for rows.Next() {
		var ft domain.FineType
		if err := rows.Scan(&ft.ID, &ft.Name, &ft.DailyRateCents); err != nil {
			return nil, err
		}
		types = append(types, ft)
	}
	return types, rows.Err()
}
