package reservation

import "time"

type CreateReservationRequest struct {
	RoomID    int64     `json:"room_id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

// ReservationDetails is a reservation joined with its room's display data.
type ReservationDetails struct {
	ID               int64     `json:"id"`
	Status           string    `json:"status"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	ConfirmationCode string    `json:"confirmation_code"`

	RoomID        int64   `json:"room_id"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
}
