package postgres

import (
	"context"
	"database/sql"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (name) VALUES ($1) RETURNING id`
	return r.db.QueryRowContext(ctx, query, room.Name).Scan(&room.ID)
}

func (r *roomRepository) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	room := &domain.Room{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM rooms WHERE id = $1`, id).Scan(&room.ID, &room.Name)
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (r *roomRepository) List(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM rooms ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.Name); err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

type shelfRepository struct {
	db *sql.DB
}

func NewShelfRepository(db *sql.DB) repository.ShelfRepository {
	return &shelfRepository{db: db}
}

func (r *shelfRepository) Create(ctx context.Context, shelf *domain.Shelf) error {
	query := `INSERT INTO shelves (name, room_id) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, shelf.Name, shelf.RoomID).Scan(&shelf.ID)
}

func (r *shelfRepository) GetByID(ctx context.Context, id int32) (*domain.Shelf, error) {
	shelf := &domain.Shelf{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, room_id FROM shelves WHERE id = $1`, id).Scan(
		&shelf.ID, &shelf.Name, &shelf.RoomID)
	if err != nil {
		return nil, err
	}
	return shelf, nil
}

func (r *shelfRepository) ListByRoom(ctx context.Context, roomID int32) ([]domain.Shelf, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, room_id FROM shelves WHERE room_id = $1 ORDER BY name`, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shelves []domain.Shelf
	for rows.Next() {
		var s domain.Shelf
		if err := rows.Scan(&s.ID, &s.Name, &s.RoomID); err != nil {
			return nil, err
		}
		shelves = append(shelves, s)
	}
	return shelves, rows.Err()
}
