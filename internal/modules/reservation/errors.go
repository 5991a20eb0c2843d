package reservation

import "errors"

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRoomUnavailable     = errors.New("room is unavailable")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrDateConflict        = errors.New("reservation dates conflict")
)
