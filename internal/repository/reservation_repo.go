package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID               int64      `gorm:"column:id;primaryKey"`
	UserID           int64      `gorm:"column:user_id"`
	RoomID           int64      `gorm:"column:room_id"`
	StartDate        time.Time  `gorm:"column:start_date"`
	EndDate          time.Time  `gorm:"column:end_date"`
	Status           string     `gorm:"column:status"`
	ConfirmationCode string     `gorm:"column:confirmation_code"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
	CancelledAt      *time.Time `gorm:"column:cancelled_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	return &domain.Reservation{
		ID:               m.ID,
		UserID:           m.UserID,
		RoomID:           m.RoomID,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		Status:           domain.ReservationStatus(m.Status),
		ConfirmationCode: m.ConfirmationCode,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		CancelledAt:      m.CancelledAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	return reservationModel{
		ID:               r.ID,
		UserID:           r.UserID,
		RoomID:           r.RoomID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		Status:           string(r.Status),
		ConfirmationCode: r.ConfirmationCode,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		CancelledAt:      r.CancelledAt,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

// CheckAvailability reports whether [start, end) is free of booked
// reservations for the room. Half-open ranges: two ranges overlap iff
// start1 < end2 AND end1 > start2, so a checkout equal to another
// check-in does not count as a conflict.
func (r *ReservationRepository) CheckAvailability(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("room_id = ?", roomID).
		Where("status = ?", string(domain.ReservationBooked)).
		Where("start_date < ? AND end_date > ?", end, start).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

// Cancel marks the reservation cancelled. Cancelling an already-cancelled
// reservation is a no-op at this level.
func (r *ReservationRepository) Cancel(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	tx := r.db.WithContext(ctx).
		Table("reservations").
		Where("id = ?", id).
		Where("status <> ?", string(domain.ReservationCancelled)).
		Updates(map[string]any{
			"status":       string(domain.ReservationCancelled),
			"cancelled_at": now,
			"updated_at":   now,
		})
	return tx.Error
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	tx := r.db.WithContext(ctx).
		Table("reservations").
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	return tx.Error
}

type UserReservationDetails struct {
	ID               int64     `gorm:"column:id"`
	Status           string    `gorm:"column:status"`
	StartDate        time.Time `gorm:"column:start_date"`
	EndDate          time.Time `gorm:"column:end_date"`
	ConfirmationCode string    `gorm:"column:confirmation_code"`

	RoomID        int64   `gorm:"column:room_id"`
	RoomType      string  `gorm:"column:room_type"`
	PricePerNight float64 `gorm:"column:price_per_night"`
}

// ListByUserWithRooms returns the user's reservations joined with room data,
// oldest first (insertion order).
func (r *ReservationRepository) ListByUserWithRooms(ctx context.Context, userID int64) ([]UserReservationDetails, error) {
	var rows []UserReservationDetails
	q := `
SELECT
  res.id,
  res.status,
  res.start_date,
  res.end_date,
  res.confirmation_code,
  res.room_id,
  rm.type AS room_type,
  rm.price_per_night
FROM reservations res
JOIN rooms rm ON rm.id = res.room_id
WHERE res.user_id = ?
ORDER BY res.id
`
	tx := r.db.WithContext(ctx).Raw(q, userID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *ReservationRepository) GetAll(ctx context.Context, limit, offset int) ([]domain.Reservation, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&reservationModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []reservationModel
	tx := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&models)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.Reservation, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainReservation(m))
	}
	return out, total, nil
}

// UpdateFields applies an unconditional partial update. This is the
// administrative path and may move a reservation back from cancelled to
// booked; it bypasses the lifecycle engine on purpose.
func (r *ReservationRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*domain.Reservation, error) {
	if len(fields) > 0 {
		fields["updated_at"] = time.Now().UTC()
		tx := r.db.WithContext(ctx).
			Table("reservations").
			Where("id = ?", id).
			Updates(fields)
		if tx.Error != nil {
			return nil, tx.Error
		}
		if tx.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&reservationModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
