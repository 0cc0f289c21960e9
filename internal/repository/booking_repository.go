package repository

import (
	"context"

	"gorm.io/gorm"

	"roomchoice/internal/model"
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByIDAndUser(ctx context.Context, id, userID uint) (*model.Booking, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Booking, error)
	Delete(ctx context.Context, id uint) error
	// WithTransaction executes fn with booking and room repositories bound
	// to the same database transaction, so a booking row and its room's
	// status always commit or roll back together.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, bookings BookingRepository, rooms RoomRepository) error) error
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// FindByIDAndUser scopes the lookup to the owning user: a booking that
// exists but belongs to someone else reads as not found.
func (r *bookingRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListByUser returns the user's bookings with room details, newest first.
func (r *bookingRepository) ListByUser(ctx context.Context, userID uint) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Booking{}, id).Error
}

func (r *bookingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, bookings BookingRepository, rooms RoomRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &bookingRepository{db: tx}, &roomRepository{db: tx})
	})
}
