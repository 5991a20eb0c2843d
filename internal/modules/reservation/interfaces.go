package reservation

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

// ReservationRepository defines the persistence operations the engine needs.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	CheckAvailability(ctx context.Context, roomID int64, start, end time.Time) (bool, error)
	Cancel(ctx context.Context, id int64) error
	ListByUserWithRooms(ctx context.Context, userID int64) ([]repository.UserReservationDetails, error)
}

// RoomReader resolves rooms for the availability-flag check.
type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// EventSender pushes reservation lifecycle events to listeners (live admin
// feed). A nil sender disables events.
type EventSender interface {
	ReservationCreated(res *domain.Reservation)
	ReservationCancelled(res *domain.Reservation)
}
