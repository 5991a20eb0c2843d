package admin

import (
	"context"

	"hotelbooking/internal/domain"
)

type UserRepository interface {
	GetAll(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) error
}

type ReservationRepository interface {
	GetAll(ctx context.Context, limit, offset int) ([]domain.Reservation, int64, error)
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}
