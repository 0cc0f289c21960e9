package repository

import (
	"context"

	"gorm.io/gorm"

	"roomchoice/internal/model"
)

// SurveyRepository defines survey persistence operations.
type SurveyRepository interface {
	Create(ctx context.Context, survey *model.Survey) error
	FindByIDAndUser(ctx context.Context, id, userID uint) (*model.Survey, error)
	ListAll(ctx context.Context) ([]model.Survey, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Survey, error)
	Delete(ctx context.Context, id uint) error
	// WithTransaction executes fn with survey and room repositories bound
	// to the same database transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, surveys SurveyRepository, rooms RoomRepository) error) error
}

type surveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository creates a new survey repository.
func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(ctx context.Context, survey *model.Survey) error {
	return r.db.WithContext(ctx).Create(survey).Error
}

func (r *surveyRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&survey).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) ListAll(ctx context.Context) ([]model.Survey, error) {
	var surveys []model.Survey
	if err := r.db.WithContext(ctx).Preload("Room").
		Order("schedule_time DESC").
		Find(&surveys).Error; err != nil {
		return nil, err
	}
	return surveys, nil
}

func (r *surveyRepository) ListByUser(ctx context.Context, userID uint) ([]model.Survey, error) {
	var surveys []model.Survey
	if err := r.db.WithContext(ctx).Preload("Room").
		Where("user_id = ?", userID).
		Order("schedule_time DESC").
		Find(&surveys).Error; err != nil {
		return nil, err
	}
	return surveys, nil
}

func (r *surveyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Survey{}, id).Error
}

func (r *surveyRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, surveys SurveyRepository, rooms RoomRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &surveyRepository{db: tx}, &roomRepository{db: tx})
	})
}
