package notify

import (
	"time"

	"hotelbooking/internal/domain"
)

type reservationEvent struct {
	Event     string    `json:"event"`
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	RoomID    int64     `json:"room_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
}

// Sender adapts the hub to the reservation engine's EventSender seam.
type Sender struct {
	hub *Hub
}

func NewSender(hub *Hub) *Sender {
	return &Sender{hub: hub}
}

func (s *Sender) ReservationCreated(res *domain.Reservation) {
	s.hub.Broadcast(reservationEvent{
		Event:     "reservation.created",
		ID:        res.ID,
		UserID:    res.UserID,
		RoomID:    res.RoomID,
		StartDate: res.StartDate,
		EndDate:   res.EndDate,
		Status:    string(res.Status),
	})
}

func (s *Sender) ReservationCancelled(res *domain.Reservation) {
	s.hub.Broadcast(reservationEvent{
		Event:     "reservation.cancelled",
		ID:        res.ID,
		UserID:    res.UserID,
		RoomID:    res.RoomID,
		StartDate: res.StartDate,
		EndDate:   res.EndDate,
		Status:    string(res.Status),
	})
}
