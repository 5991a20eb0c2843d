package admin

import (
	"context"
	"errors"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type Service struct {
	users        UserRepository
	rooms        RoomRepository
	reservations ReservationRepository
}

func NewService(users UserRepository, rooms RoomRepository, reservations ReservationRepository) *Service {
	return &Service{
		users:        users,
		rooms:        rooms,
		reservations: reservations,
	}
}

// -------------------- Users --------------------

func (s *Service) GetUsers(ctx context.Context, page, limit int) ([]domain.User, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	users, total, err := s.users.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, total, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Role != "" {
		user.Role = domain.UserRole(req.Role)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// -------------------- Rooms --------------------

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	availability := true
	if req.Availability != nil {
		availability = *req.Availability
	}

	room := &domain.Room{
		Type:          req.Type,
		Description:   req.Description,
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		Amenities:     req.Amenities,
		Photos:        req.Photos,
		Availability:  availability,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Type != nil {
		room.Type = *req.Type
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.PricePerNight != nil {
		room.PricePerNight = *req.PricePerNight
	}
	if req.Amenities != nil {
		room.Amenities = req.Amenities
	}
	if req.Photos != nil {
		room.Photos = req.Photos
	}
	if req.Availability != nil {
		room.Availability = *req.Availability
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// -------------------- Reservations --------------------

func (s *Service) GetReservations(ctx context.Context, page, limit int) ([]domain.Reservation, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	return s.reservations.GetAll(ctx, limit, offset)
}

// UpdateReservation applies an unconditional field update. This is the
// administrative override path: it can move a cancelled reservation back to
// booked and does not run the lifecycle engine's conflict checks.
func (s *Service) UpdateReservation(ctx context.Context, id int64, req UpdateReservationRequest) (*domain.Reservation, error) {
	fields := map[string]any{}
	if req.RoomID != nil {
		fields["room_id"] = *req.RoomID
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	res, err := s.reservations.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (s *Service) DeleteReservation(ctx context.Context, id int64) error {
	if err := s.reservations.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
