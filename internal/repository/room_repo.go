package repository

import (
	"context"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// RoomFilters narrows the catalog search. Zero values mean "no filter".
type RoomFilters struct {
	Type         string
	MaxPrice     float64
	Availability *bool
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).First(&room, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &room, nil
}

func (r *RoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	tx := r.db.WithContext(ctx).Order("id").Find(&rooms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rooms, nil
}

func (r *RoomRepository) Search(ctx context.Context, f RoomFilters) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Model(&domain.Room{})

	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price_per_night <= ?", f.MaxPrice)
	}
	if f.Availability != nil {
		q = q.Where("availability = ?", *f.Availability)
	}

	var rooms []domain.Room
	if err := q.Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	tx := r.db.WithContext(ctx).Save(room)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Room{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
