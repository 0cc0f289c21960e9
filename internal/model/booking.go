package model

import (
	"time"

	"gorm.io/gorm"
)

// BookingStatus represents the status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of a room by a user. Creating a booking
// transitions the room out of available; cancelling it transitions the room
// back, both inside one transaction.
type Booking struct {
	ID        uint           `json:"booking_id" gorm:"primaryKey"`
	RoomID    uint           `json:"room_id" gorm:"not null;index"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	StartDate time.Time      `json:"start_date" gorm:"type:date;not null"`
	EndDate   time.Time      `json:"end_date" gorm:"type:date;not null"`
	Status    BookingStatus  `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Room Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	User User `json:"-" gorm:"foreignKey:UserID"`
}
