package domain

import "time"

type Room struct {
	ID            int64     `json:"id"`
	Type          string    `json:"type" validate:"required"`
	Description   string    `json:"description,omitempty"`
	Capacity      int       `json:"capacity,omitempty"`
	PricePerNight float64   `json:"price_per_night" validate:"required,gte=0"`
	Amenities     []string  `json:"amenities,omitempty" gorm:"serializer:json"`
	Photos        []string  `json:"photos,omitempty" gorm:"serializer:json"`
	// Administrative on/off switch, independent of date-based booking state.
	Availability bool      `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
