package model

import (
	"time"

	"gorm.io/gorm"
)

// SurveyStatus represents the status of a scheduled room survey.
type SurveyStatus string

const (
	SurveyStatusPending   SurveyStatus = "pending"
	SurveyStatusCompleted SurveyStatus = "completed"
	SurveyStatusCancelled SurveyStatus = "cancelled"
)

// Survey represents a scheduled inspection of a room. Surveys are
// informational scheduling only and never mutate the room's status.
type Survey struct {
	ID           uint           `json:"survey_id" gorm:"primaryKey"`
	RoomID       uint           `json:"room_id" gorm:"not null;index"`
	UserID       uint           `json:"user_id" gorm:"not null;index"`
	ScheduleTime time.Time      `json:"schedule_time" gorm:"not null;index"`
	Status       SurveyStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Notes        string         `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Room Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	User User `json:"-" gorm:"foreignKey:UserID"`
}
