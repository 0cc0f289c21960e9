package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"roomchoice/internal/cache"
	"roomchoice/internal/errors"
	"roomchoice/internal/model"
	"roomchoice/internal/repository"
)

// BookingService owns the booking lifecycle: creating a booking moves its
// room from available to pending, cancelling moves it back, and each
// transition commits atomically with the booking row.
type BookingService interface {
	CreateBooking(ctx context.Context, user *model.User, roomID uint, startDate, endDate time.Time) (*model.Booking, error)
	ListBookings(ctx context.Context, user *model.User) ([]model.Booking, error)
	CancelBooking(ctx context.Context, user *model.User, bookingID uint) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	cache       *cache.Client
}

// NewBookingService creates a new booking service.
func NewBookingService(bookingRepo repository.BookingRepository, cache *cache.Client) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		cache:       cache,
	}
}

// CreateBooking reserves a room for the user. The room status transition
// is a conditional update keyed on the status the transaction read, so two
// racing creates cannot both claim the same room: the loser matches zero
// rows and gets the same conflict error as an observed non-available room.
func (s *bookingService) CreateBooking(ctx context.Context, user *model.User, roomID uint, startDate, endDate time.Time) (*model.Booking, error) {
	booking := &model.Booking{
		RoomID:    roomID,
		UserID:    user.ID,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    model.BookingStatusPending,
	}

	err := s.bookingRepo.WithTransaction(ctx, func(ctx context.Context, bookings repository.BookingRepository, rooms repository.RoomRepository) error {
		room, err := rooms.FindByID(ctx, roomID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrRoomNotFound
			}
			return fmt.Errorf("find room: %w", err)
		}

		if room.Status != model.RoomStatusAvailable {
			return errors.ErrRoomNotAvailable
		}

		rows, err := rooms.UpdateStatusFrom(ctx, roomID, model.RoomStatusAvailable, model.RoomStatusPending)
		if err != nil {
			return fmt.Errorf("update room status: %w", err)
		}
		if rows == 0 {
			return errors.ErrRoomNotAvailable
		}

		if err := bookings.Create(ctx, booking); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, roomsCacheKey)
	return booking, nil
}

// ListBookings returns the caller's bookings with room details, newest first.
func (s *bookingService) ListBookings(ctx context.Context, user *model.User) ([]model.Booking, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// CancelBooking returns the room to available and removes the booking in
// one transaction. A booking owned by another user reads as not found.
func (s *bookingService) CancelBooking(ctx context.Context, user *model.User, bookingID uint) error {
	err := s.bookingRepo.WithTransaction(ctx, func(ctx context.Context, bookings repository.BookingRepository, rooms repository.RoomRepository) error {
		booking, err := bookings.FindByIDAndUser(ctx, bookingID, user.ID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrBookingNotFound
			}
			return fmt.Errorf("find booking: %w", err)
		}

		if err := rooms.UpdateStatus(ctx, booking.RoomID, model.RoomStatusAvailable); err != nil {
			return fmt.Errorf("update room status: %w", err)
		}

		if err := bookings.Delete(ctx, booking.ID); err != nil {
			return fmt.Errorf("delete booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, roomsCacheKey)
	return nil
}
