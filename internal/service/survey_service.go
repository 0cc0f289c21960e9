package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"roomchoice/internal/errors"
	"roomchoice/internal/model"
	"roomchoice/internal/repository"
)

// SurveyService owns the survey lifecycle. Surveys are informational
// scheduling, not resource reservation: no operation here ever mutates a
// room's status.
type SurveyService interface {
	CreateSurvey(ctx context.Context, user *model.User, roomID uint, scheduleTime time.Time, notes string) (*model.Survey, error)
	ListSurveys(ctx context.Context, user *model.User) ([]model.Survey, error)
	CancelSurvey(ctx context.Context, user *model.User, surveyID uint) error
}

type surveyService struct {
	surveyRepo repository.SurveyRepository
}

// NewSurveyService creates a new survey service.
func NewSurveyService(surveyRepo repository.SurveyRepository) SurveyService {
	return &surveyService{surveyRepo: surveyRepo}
}

// CreateSurvey schedules an inspection of an existing room.
func (s *surveyService) CreateSurvey(ctx context.Context, user *model.User, roomID uint, scheduleTime time.Time, notes string) (*model.Survey, error) {
	survey := &model.Survey{
		RoomID:       roomID,
		UserID:       user.ID,
		ScheduleTime: scheduleTime,
		Status:       model.SurveyStatusPending,
		Notes:        notes,
	}

	err := s.surveyRepo.WithTransaction(ctx, func(ctx context.Context, surveys repository.SurveyRepository, rooms repository.RoomRepository) error {
		if _, err := rooms.FindByID(ctx, roomID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrRoomNotFound
			}
			return fmt.Errorf("find room: %w", err)
		}
		if err := surveys.Create(ctx, survey); err != nil {
			return fmt.Errorf("create survey: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return survey, nil
}

// ListSurveys returns all surveys for admins, the caller's own otherwise,
// ordered by schedule time descending.
func (s *surveyService) ListSurveys(ctx context.Context, user *model.User) ([]model.Survey, error) {
	var (
		surveys []model.Survey
		err     error
	)
	if user.IsAdmin() {
		surveys, err = s.surveyRepo.ListAll(ctx)
	} else {
		surveys, err = s.surveyRepo.ListByUser(ctx, user.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}
	return surveys, nil
}

// CancelSurvey deletes a survey owned by the caller.
func (s *surveyService) CancelSurvey(ctx context.Context, user *model.User, surveyID uint) error {
	return s.surveyRepo.WithTransaction(ctx, func(ctx context.Context, surveys repository.SurveyRepository, rooms repository.RoomRepository) error {
		survey, err := surveys.FindByIDAndUser(ctx, surveyID, user.ID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrSurveyNotFound
			}
			return fmt.Errorf("find survey: %w", err)
		}
		if err := surveys.Delete(ctx, survey.ID); err != nil {
			return fmt.Errorf("delete survey: %w", err)
		}
		return nil
	})
}
