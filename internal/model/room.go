package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RoomStatus represents the availability state of a room. It is mutated
// only by the booking lifecycle (and admin edits); a room holds at most
// one active booking driving a non-available status.
type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available"
	RoomStatusPending   RoomStatus = "pending"
	RoomStatusBooked    RoomStatus = "booked"
)

// Room represents a bookable unit.
type Room struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	RoomNumber  string          `json:"room_number" gorm:"uniqueIndex;size:50;not null"`
	RoomType    string          `json:"room_type" gorm:"size:50"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Status      RoomStatus      `json:"status" gorm:"type:varchar(20);not null;default:'available';index"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`

	// Layout is nil until a position is first assigned.
	Layout *RoomLayout `json:"layout,omitempty" gorm:"foreignKey:RoomID"`
}

// RoomLayout places a room on the fixed-size floor-plan grid.
// At most one layout exists per room; it is created lazily on the first
// position assignment.
type RoomLayout struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	RoomID    uint      `json:"-" gorm:"uniqueIndex;not null"`
	PositionX int       `json:"position_x"`
	PositionY int       `json:"position_y"`
	Width     int       `json:"width" gorm:"default:1"`
	Height    int       `json:"height" gorm:"default:1"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
