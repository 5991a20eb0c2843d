package reservation

import (
	"context"
	"errors"

	"hotelbooking/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	reservations ReservationRepository
	rooms        RoomReader
	events       EventSender
	locks        *roomLocks
}

func NewService(reservations ReservationRepository, rooms RoomReader, events EventSender) *Service {
	return &Service{
		reservations: reservations,
		rooms:        rooms,
		events:       events,
		locks:        newRoomLocks(),
	}
}

// CreateReservation validates the requested stay and commits it as booked.
// Checks run in a fixed order and each failure short-circuits: room existence,
// availability flag, date range, then the conflict scan as the last gate
// before the insert. The scan and insert run under a per-room lock.
func (s *Service) CreateReservation(ctx context.Context, userID int64, req CreateReservationRequest) (*domain.Reservation, error) {
	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if !room.Availability {
		return nil, ErrRoomUnavailable
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() || !req.StartDate.Before(req.EndDate) {
		return nil, ErrInvalidDateRange
	}

	unlock := s.locks.lock(req.RoomID)
	defer unlock()

	free, err := s.reservations.CheckAvailability(ctx, req.RoomID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrDateConflict
	}

	res := &domain.Reservation{
		UserID:           userID,
		RoomID:           req.RoomID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Status:           domain.ReservationBooked,
		ConfirmationCode: uuid.NewString(),
	}

	if err := s.reservations.Create(ctx, res); err != nil {
		// Постгресовый страховочный слой: exclusion/unique constraint на
		// (room_id, daterange) ловит гонку, которую не покрыл скан.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if (pgErr.Code == "23P01" || pgErr.Code == "23505") && pgErr.ConstraintName == "idx_no_double_booking" {
				return nil, ErrDateConflict
			}
		}
		return nil, err
	}

	if s.events != nil {
		s.events.ReservationCreated(res)
	}

	return res, nil
}

// CancelReservation moves a reservation to cancelled. Cancelling an already
// cancelled reservation is an idempotent success returning the record as-is.
func (s *Service) CancelReservation(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if res.Status == domain.ReservationCancelled {
		return res, nil
	}

	if err := s.reservations.Cancel(ctx, reservationID); err != nil {
		return nil, err
	}

	updated, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.ReservationCancelled(updated)
	}

	return updated, nil
}

// GetHistory returns the user's reservations joined with room data, in
// insertion order.
func (s *Service) GetHistory(ctx context.Context, userID int64) ([]ReservationDetails, error) {
	rows, err := s.reservations.ListByUserWithRooms(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]ReservationDetails, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReservationDetails{
			ID:               r.ID,
			Status:           r.Status,
			StartDate:        r.StartDate,
			EndDate:          r.EndDate,
			ConfirmationCode: r.ConfirmationCode,
			RoomID:           r.RoomID,
			RoomType:         r.RoomType,
			PricePerNight:    r.PricePerNight,
		})
	}
	return out, nil
}

// GetByID retrieves a reservation by ID
func (s *Service) GetByID(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}
