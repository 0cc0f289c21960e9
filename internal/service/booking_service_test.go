package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"roomchoice/internal/errors"
	"roomchoice/internal/model"
)

func testUser() *model.User {
	return &model.User{ID: 7, Username: "alice", Email: "alice@example.com", Role: model.RoleUser}
}

func testDates(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	start, err := time.Parse("2006-01-02", "2024-06-01")
	assert.NoError(t, err)
	end, err := time.Parse("2006-01-02", "2024-06-03")
	assert.NoError(t, err)
	return start, end
}

func TestBookingService_CreateBooking(t *testing.T) {
	start, end := testDates(t)

	tests := []struct {
		name          string
		roomID        uint
		setupMock     func(bookings *MockBookingRepository, rooms *MockRoomRepository)
		expectedError error
	}{
		{
			name:   "successful booking transitions room to pending",
			roomID: 1,
			setupMock: func(bookings *MockBookingRepository, rooms *MockRoomRepository) {
				rooms.On("FindByID", mock.Anything, uint(1)).
					Return(&model.Room{ID: 1, RoomNumber: "A101", Status: model.RoomStatusAvailable}, nil)
				rooms.On("UpdateStatusFrom", mock.Anything, uint(1), model.RoomStatusAvailable, model.RoomStatusPending).
					Return(int64(1), nil)
				bookings.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:   "room not found",
			roomID: 99,
			setupMock: func(bookings *MockBookingRepository, rooms *MockRoomRepository) {
				rooms.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrRoomNotFound,
		},
		{
			name:   "room already pending",
			roomID: 2,
			setupMock: func(bookings *MockBookingRepository, rooms *MockRoomRepository) {
				rooms.On("FindByID", mock.Anything, uint(2)).
					Return(&model.Room{ID: 2, Status: model.RoomStatusPending}, nil)
			},
			expectedError: errors.ErrRoomNotAvailable,
		},
		{
			name:   "room booked",
			roomID: 3,
			setupMock: func(bookings *MockBookingRepository, rooms *MockRoomRepository) {
				rooms.On("FindByID", mock.Anything, uint(3)).
					Return(&model.Room{ID: 3, Status: model.RoomStatusBooked}, nil)
			},
			expectedError: errors.ErrRoomNotAvailable,
		},
		{
			name:   "lost race maps to conflict",
			roomID: 4,
			setupMock: func(bookings *MockBookingRepository, rooms *MockRoomRepository) {
				rooms.On("FindByID", mock.Anything, uint(4)).
					Return(&model.Room{ID: 4, Status: model.RoomStatusAvailable}, nil)
				// A concurrent create committed between the read and the
				// conditional update: zero rows affected.
				rooms.On("UpdateStatusFrom", mock.Anything, uint(4), model.RoomStatusAvailable, model.RoomStatusPending).
					Return(int64(0), nil)
			},
			expectedError: errors.ErrRoomNotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRooms := new(MockRoomRepository)
			mockBookings := &MockBookingRepository{rooms: mockRooms}
			tt.setupMock(mockBookings, mockRooms)

			svc := NewBookingService(mockBookings, nil)
			booking, err := svc.CreateBooking(context.Background(), testUser(), tt.roomID, start, end)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, booking)
				mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, booking)
				assert.Equal(t, tt.roomID, booking.RoomID)
				assert.Equal(t, uint(7), booking.UserID)
				assert.Equal(t, model.BookingStatusPending, booking.Status)
				assert.Equal(t, start, booking.StartDate)
				assert.Equal(t, end, booking.EndDate)
			}

			mockBookings.AssertExpectations(t)
			mockRooms.AssertExpectations(t)
		})
	}
}

func TestBookingService_CancelBooking(t *testing.T) {
	tests := []struct {
		name          string
		bookingID     uint
		setupMock     func(bookings *MockBookingRepository, rooms *MockRoomRepository)
		expectedError error
	}{
		{
			name:      "cancel releases the room and deletes the booking",
			bookingID: 10,
			setupMock: func(bookings *MockBookingRepository, rooms *MockRoomRepository) {
				bookings.On("FindByIDAndUser", mock.Anything, uint(10), uint(7)).
					Return(&model.Booking{ID: 10, RoomID: 1, UserID: 7, Status: model.BookingStatusPending}, nil)
				rooms.On("UpdateStatus", mock.Anything, uint(1), model.RoomStatusAvailable).Return(nil)
				bookings.On("Delete", mock.Anything, uint(10)).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:      "booking owned by someone else reads as not found",
			bookingID: 11,
			setupMock: func(bookings *MockBookingRepository, rooms *MockRoomRepository) {
				bookings.On("FindByIDAndUser", mock.Anything, uint(11), uint(7)).
					Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRooms := new(MockRoomRepository)
			mockBookings := &MockBookingRepository{rooms: mockRooms}
			tt.setupMock(mockBookings, mockRooms)

			svc := NewBookingService(mockBookings, nil)
			err := svc.CancelBooking(context.Background(), testUser(), tt.bookingID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockRooms.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
				mockBookings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}

			mockBookings.AssertExpectations(t)
			mockRooms.AssertExpectations(t)
		})
	}
}

func TestBookingService_ListBookings(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockBookings := &MockBookingRepository{rooms: mockRooms}
	expected := []model.Booking{
		{ID: 2, RoomID: 1, UserID: 7, Status: model.BookingStatusPending},
		{ID: 1, RoomID: 3, UserID: 7, Status: model.BookingStatusPending},
	}
	mockBookings.On("ListByUser", mock.Anything, uint(7)).Return(expected, nil)

	svc := NewBookingService(mockBookings, nil)
	bookings, err := svc.ListBookings(context.Background(), testUser())

	assert.NoError(t, err)
	assert.Equal(t, expected, bookings)
	mockBookings.AssertExpectations(t)
}
