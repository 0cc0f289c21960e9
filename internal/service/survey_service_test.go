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

func TestSurveyService_CreateSurvey(t *testing.T) {
	scheduleTime := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		roomID        uint
		setupMock     func(surveys *MockSurveyRepository, rooms *MockRoomRepository)
		expectedError error
	}{
		{
			name:   "successful survey creation",
			roomID: 1,
			setupMock: func(surveys *MockSurveyRepository, rooms *MockRoomRepository) {
				rooms.On("FindByID", mock.Anything, uint(1)).
					Return(&model.Room{ID: 1, Status: model.RoomStatusAvailable}, nil)
				surveys.On("Create", mock.Anything, mock.AnythingOfType("*model.Survey")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:   "survey on a booked room is still allowed",
			roomID: 2,
			setupMock: func(surveys *MockSurveyRepository, rooms *MockRoomRepository) {
				rooms.On("FindByID", mock.Anything, uint(2)).
					Return(&model.Room{ID: 2, Status: model.RoomStatusBooked}, nil)
				surveys.On("Create", mock.Anything, mock.AnythingOfType("*model.Survey")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:   "room not found",
			roomID: 99,
			setupMock: func(surveys *MockSurveyRepository, rooms *MockRoomRepository) {
				rooms.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrRoomNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRooms := new(MockRoomRepository)
			mockSurveys := &MockSurveyRepository{rooms: mockRooms}
			tt.setupMock(mockSurveys, mockRooms)

			svc := NewSurveyService(mockSurveys)
			survey, err := svc.CreateSurvey(context.Background(), testUser(), tt.roomID, scheduleTime, "check ventilation")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, survey)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, survey)
				assert.Equal(t, tt.roomID, survey.RoomID)
				assert.Equal(t, uint(7), survey.UserID)
				assert.Equal(t, model.SurveyStatusPending, survey.Status)
				assert.Equal(t, scheduleTime, survey.ScheduleTime)
			}

			// Surveys are informational: no room mutation on any path.
			mockRooms.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			mockRooms.AssertNotCalled(t, "UpdateStatusFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			mockRooms.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)

			mockSurveys.AssertExpectations(t)
			mockRooms.AssertExpectations(t)
		})
	}
}

func TestSurveyService_ListSurveys(t *testing.T) {
	all := []model.Survey{{ID: 3, UserID: 5}, {ID: 2, UserID: 7}, {ID: 1, UserID: 7}}
	own := []model.Survey{{ID: 2, UserID: 7}, {ID: 1, UserID: 7}}

	t.Run("admin sees all surveys", func(t *testing.T) {
		mockRooms := new(MockRoomRepository)
		mockSurveys := &MockSurveyRepository{rooms: mockRooms}
		mockSurveys.On("ListAll", mock.Anything).Return(all, nil)

		svc := NewSurveyService(mockSurveys)
		admin := &model.User{ID: 1, Role: model.RoleAdmin}
		surveys, err := svc.ListSurveys(context.Background(), admin)

		assert.NoError(t, err)
		assert.Equal(t, all, surveys)
		mockSurveys.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
		mockSurveys.AssertExpectations(t)
	})

	t.Run("user sees only own surveys", func(t *testing.T) {
		mockRooms := new(MockRoomRepository)
		mockSurveys := &MockSurveyRepository{rooms: mockRooms}
		mockSurveys.On("ListByUser", mock.Anything, uint(7)).Return(own, nil)

		svc := NewSurveyService(mockSurveys)
		surveys, err := svc.ListSurveys(context.Background(), testUser())

		assert.NoError(t, err)
		assert.Equal(t, own, surveys)
		mockSurveys.AssertNotCalled(t, "ListAll", mock.Anything)
		mockSurveys.AssertExpectations(t)
	})
}

func TestSurveyService_CancelSurvey(t *testing.T) {
	t.Run("cancel deletes an owned survey", func(t *testing.T) {
		mockRooms := new(MockRoomRepository)
		mockSurveys := &MockSurveyRepository{rooms: mockRooms}
		mockSurveys.On("FindByIDAndUser", mock.Anything, uint(4), uint(7)).
			Return(&model.Survey{ID: 4, UserID: 7}, nil)
		mockSurveys.On("Delete", mock.Anything, uint(4)).Return(nil)

		svc := NewSurveyService(mockSurveys)
		err := svc.CancelSurvey(context.Background(), testUser(), 4)

		assert.NoError(t, err)
		mockSurveys.AssertExpectations(t)
	})

	t.Run("survey owned by someone else reads as not found", func(t *testing.T) {
		mockRooms := new(MockRoomRepository)
		mockSurveys := &MockSurveyRepository{rooms: mockRooms}
		mockSurveys.On("FindByIDAndUser", mock.Anything, uint(5), uint(7)).
			Return(nil, gorm.ErrRecordNotFound)

		svc := NewSurveyService(mockSurveys)
		err := svc.CancelSurvey(context.Background(), testUser(), 5)

		assert.ErrorIs(t, err, errors.ErrSurveyNotFound)
		mockSurveys.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		mockSurveys.AssertExpectations(t)
	})
}
