package service

import (
	"context"
	"database/sql"
	"errors"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type locationService struct {
	roomRepo  repository.RoomRepository
	shelfRepo repository.ShelfRepository
}

func NewLocationService(roomRepo repository.RoomRepository, shelfRepo repository.ShelfRepository) LocationService {
	return &locationService{roomRepo: roomRepo, shelfRepo: shelfRepo}
}

func (s *locationService) AddRoom(ctx context.Context, name string) (*domain.Room, error) {
	if name == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "room name must not be empty")
	}
	room := &domain.Room{Name: name}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, domain.WrapInternal("failed to create room", err)
	}
	return room, nil
}

func (s *locationService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, domain.WrapInternal("failed to list rooms", err)
	}
	return rooms, nil
}

func (s *locationService) AddShelf(ctx context.Context, roomID int32, name string) (*domain.Shelf, error) {
	if name == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "shelf name must not be empty")
	}
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindNotFound, "room %d not found", roomID)
		}
		return nil, domain.WrapInternal("failed to look up room", err)
	}
	shelf := &domain.Shelf{Name: name, RoomID: roomID}
	if err := s.shelfRepo.Create(ctx, shelf); err != nil {
		return nil, domain.WrapInternal("failed to create shelf", err)
	}
	return shelf, nil
}

func (s *locationService) ListShelvesByRoom(ctx context.Context, roomID int32) ([]domain.Shelf, error) {
	shelves, err := s.shelfRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, domain.WrapInternal("failed to list shelves", err)
	}
	return shelves, nil
}
