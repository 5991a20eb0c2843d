package catalog

import (
	"context"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type RoomStore interface {
	GetAll(ctx context.Context) ([]domain.Room, error)
	Search(ctx context.Context, f repository.RoomFilters) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type Service struct {
	rooms RoomStore
}

func NewService(rooms RoomStore) *Service {
	return &Service{rooms: rooms}
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.GetAll(ctx)
}

func (s *Service) SearchRooms(ctx context.Context, f repository.RoomFilters) ([]domain.Room, error) {
	return s.rooms.Search(ctx, f)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}
