package repository

import (
	"context"

	"gorm.io/gorm"

	"roomchoice/internal/model"
)

// RoomRepository defines room and room-layout persistence operations.
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	FindByID(ctx context.Context, id uint) (*model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	// UpdateStatusFrom transitions a room's status only if it still holds
	// the expected value, returning the number of rows affected. Zero rows
	// means a concurrent writer got there first.
	UpdateStatusFrom(ctx context.Context, id uint, from, to model.RoomStatus) (int64, error)
	UpdateStatus(ctx context.Context, id uint, status model.RoomStatus) error

	FindLayout(ctx context.Context, roomID uint) (*model.RoomLayout, error)
	CreateLayout(ctx context.Context, layout *model.RoomLayout) error
	UpdateLayoutFields(ctx context.Context, roomID uint, fields map[string]interface{}) error
	DeleteLayout(ctx context.Context, roomID uint) error

	// WithTransaction executes fn against a repository bound to one
	// database transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo RoomRepository) error) error
}

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository.
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) FindByID(ctx context.Context, id uint) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).Preload("Layout").First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// List returns all rooms with their layout, ordered by room number.
func (r *roomRepository) List(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	if err := r.db.WithContext(ctx).Preload("Layout").
		Order("room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Room{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *roomRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Room{}, id).Error
}

func (r *roomRepository) UpdateStatusFrom(ctx context.Context, id uint, from, to model.RoomStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Room{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *roomRepository) UpdateStatus(ctx context.Context, id uint, status model.RoomStatus) error {
	return r.db.WithContext(ctx).Model(&model.Room{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *roomRepository) FindLayout(ctx context.Context, roomID uint) (*model.RoomLayout, error) {
	var layout model.RoomLayout
	if err := r.db.WithContext(ctx).Where("room_id = ?", roomID).First(&layout).Error; err != nil {
		return nil, err
	}
	return &layout, nil
}

func (r *roomRepository) CreateLayout(ctx context.Context, layout *model.RoomLayout) error {
	return r.db.WithContext(ctx).Create(layout).Error
}

func (r *roomRepository) UpdateLayoutFields(ctx context.Context, roomID uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.RoomLayout{}).
		Where("room_id = ?", roomID).
		Updates(fields).Error
}

func (r *roomRepository) DeleteLayout(ctx context.Context, roomID uint) error {
	return r.db.WithContext(ctx).Where("room_id = ?", roomID).Delete(&model.RoomLayout{}).Error
}

func (r *roomRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo RoomRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &roomRepository{db: tx})
	})
}
