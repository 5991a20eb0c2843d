package domain

import "time"

type ReservationStatus string

const (
	ReservationBooked    ReservationStatus = "booked"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation binds a user, a room and a half-open date range [StartDate, EndDate).
// A checkout date equal to another reservation's check-in date does not conflict.
type Reservation struct {
	ID               int64             `json:"id"`
	UserID           int64             `json:"user_id" validate:"required"`
	RoomID           int64             `json:"room_id" validate:"required"`
	StartDate        time.Time         `json:"start_date" validate:"required"`
	EndDate          time.Time         `json:"end_date" validate:"required"`
	Status           ReservationStatus `json:"status"`
	ConfirmationCode string            `json:"confirmation_code,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	CancelledAt      *time.Time        `json:"cancelled_at,omitempty"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

// Overlaps reports whether two half-open ranges intersect:
// [s1,e1) and [s2,e2) overlap iff s1 < e2 && s2 < e1.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartDate.Before(end) && start.Before(r.EndDate)
}
