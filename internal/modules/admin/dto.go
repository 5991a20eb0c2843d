package admin

import "time"

type UpdateUserRequest struct {
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty" binding:"omitempty,oneof=user admin"`
}

type CreateRoomRequest struct {
	Type          string   `json:"type" binding:"required"`
	Description   string   `json:"description"`
	Capacity      int      `json:"capacity" binding:"omitempty,gt=0"`
	PricePerNight float64  `json:"price_per_night" binding:"gte=0"`
	Amenities     []string `json:"amenities"`
	Photos        []string `json:"photos"`
	Availability  *bool    `json:"availability"`
}

type UpdateRoomRequest struct {
	Type          *string  `json:"type,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Capacity      *int     `json:"capacity,omitempty" binding:"omitempty,gt=0"`
	PricePerNight *float64 `json:"price_per_night,omitempty" binding:"omitempty,gte=0"`
	Amenities     []string `json:"amenities,omitempty"`
	Photos        []string `json:"photos,omitempty"`
	Availability  *bool    `json:"availability,omitempty"`
}

// UpdateReservationRequest is the unconditional administrative update. It may
// set status back to booked; no conflict scan runs on this path.
type UpdateReservationRequest struct {
	RoomID    *int64     `json:"room_id,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Status    *string    `json:"status,omitempty" binding:"omitempty,oneof=booked cancelled"`
}
