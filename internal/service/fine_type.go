package service

import (
	"context"
	"database/sql"
	"errors"

	"library-backend/internal/domain"
	"library-backend/internal/repository"
)

type fineTypeService struct {
	fineTypeRepo repository.FineTypeRepository
}

func NewFineTypeService(fineTypeRepo repository.FineTypeRepository) FineTypeService {
	return &fineTypeService{fineTypeRepo: fineTypeRepo}
}

func (s *fineTypeService) AddFineType(ctx context.Context, name string, dailyRateCents int64) (*domain.FineType, error) {
	if name == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "fine type name must not be empty")
	}
	if dailyRateCents <= 0 {
		return nil, domain.NewError(domain.KindInvalidArgument, "daily rate must be greater than zero")
	}

	if _, err := s.fineTypeRepo.GetByName(ctx, name); err == nil {
		return nil, domain.Errorf(domain.KindConflict, "fine type %q already exists", name)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, domain.WrapInternal("failed to check fine type name", err)
	}

	ft := &domain.FineType{Name: name, DailyRateCents: dailyRateCents}
	if err := s.fineTypeRepo.Create(ctx, ft); err != nil {
		return nil, domain.WrapInternal("failed to create fine type", err)
	}
	return ft, nil
}

func (s *fineTypeService) UpdateFineType(ctx context.Context, id int32, name string, dailyRateCents int64) (*domain.FineType, error) {
	ft, err := s.fineTypeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindNotFound, "fine type %d not found", id)
		}
		return nil, domain.WrapInternal("failed to look up fine type", err)
	}

	if name != "" {
		ft.Name = name
	}
	if dailyRateCents > 0 {
		ft.DailyRateCents = dailyRateCents
	}

	if err := s.fineTypeRepo.Update(ctx, ft); err != nil {
		return nil, domain.WrapInternal("failed to update fine type", err)
	}
	return ft, nil
}

func (s *fineTypeService) GetFineTypeByID(ctx context.Context, id int32) (*domain.FineType, error) {
	ft, err := s.fineTypeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Errorf(domain.KindNotFound, "fine type %d not found", id)
		}
		return nil, domain.WrapInternal("failed to look up fine type", err)
	}
	return ft, nil
}

func (s *fineTypeService) ListFineTypes(ctx context.Context) ([]domain.FineType, error) {
	types, err := s.fineTypeRepo.List(ctx)
	if err != nil {
		return nil, domain.WrapInternal("failed to list fine types", err)
	}
	return types, nil
}
