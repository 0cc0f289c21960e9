package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"roomchoice/internal/cache"
	"roomchoice/internal/errors"
	"roomchoice/internal/model"
	"roomchoice/internal/repository"
)

const (
	// roomsCacheKey holds the public room listing; every room-status
	// mutation (admin edits and booking transitions alike) must delete it.
	roomsCacheKey = "rooms:all"
	roomsCacheTTL = time.Minute
)

// RoomCreateInput carries the fields accepted when creating a room.
// A layout row is created only when both positions are present.
type RoomCreateInput struct {
	RoomNumber  string
	RoomType    string
	Price       decimal.Decimal
	Description string
	PositionX   *int
	PositionY   *int
}

// RoomPatch is a partial update: only non-nil fields are applied. Layout
// fields are upserted independently of the core room fields.
type RoomPatch struct {
	RoomNumber  *string
	RoomType    *string
	Price       *decimal.Decimal
	Status      *model.RoomStatus
	Description *string
	PositionX   *int
	PositionY   *int
	Width       *int
	Height      *int
}

func (p *RoomPatch) roomFields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.RoomNumber != nil {
		fields["room_number"] = *p.RoomNumber
	}
	if p.RoomType != nil {
		fields["room_type"] = *p.RoomType
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	return fields
}

func (p *RoomPatch) layoutFields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.PositionX != nil {
		fields["position_x"] = *p.PositionX
	}
	if p.PositionY != nil {
		fields["position_y"] = *p.PositionY
	}
	if p.Width != nil {
		fields["width"] = *p.Width
	}
	if p.Height != nil {
		fields["height"] = *p.Height
	}
	return fields
}

// RoomService handles room inventory operations.
type RoomService interface {
	ListRooms(ctx context.Context) ([]model.Room, error)
	CreateRoom(ctx context.Context, input RoomCreateInput) (*model.Room, error)
	UpdateRoom(ctx context.Context, id uint, patch RoomPatch) error
	DeleteRoom(ctx context.Context, id uint) error
}

type roomService struct {
	repo  repository.RoomRepository
	cache *cache.Client
}

// NewRoomService creates a new room service.
func NewRoomService(repo repository.RoomRepository, cache *cache.Client) RoomService {
	return &roomService{
		repo:  repo,
		cache: cache,
	}
}

// ListRooms returns all rooms with layout, cache-aside from Redis.
func (s *roomService) ListRooms(ctx context.Context) ([]model.Room, error) {
	if data, _ := s.cache.Get(ctx, roomsCacheKey); data != nil {
		var cached []model.Room
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	if payload, err := json.Marshal(rooms); err == nil {
		_ = s.cache.Set(ctx, roomsCacheKey, payload, roomsCacheTTL)
	}

	return rooms, nil
}

// CreateRoom inserts a room (always starting available) and, when a
// position was provided, its layout, in one transaction.
func (s *roomService) CreateRoom(ctx context.Context, input RoomCreateInput) (*model.Room, error) {
	room := &model.Room{
		RoomNumber:  input.RoomNumber,
		RoomType:    input.RoomType,
		Price:       input.Price,
		Status:      model.RoomStatusAvailable,
		Description: input.Description,
	}

	err := s.repo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.RoomRepository) error {
		if err := txRepo.Create(ctx, room); err != nil {
			return fmt.Errorf("create room: %w", err)
		}

		if input.PositionX != nil && input.PositionY != nil {
			layout := &model.RoomLayout{
				RoomID:    room.ID,
				PositionX: *input.PositionX,
				PositionY: *input.PositionY,
				Width:     1,
				Height:    1,
			}
			if err := txRepo.CreateLayout(ctx, layout); err != nil {
				return fmt.Errorf("create room layout: %w", err)
			}
			room.Layout = layout
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, roomsCacheKey)
	return room, nil
}

// UpdateRoom applies a partial update. Core room fields are only touched
// for fields present in the patch; layout fields are upserted, creating
// the layout row on first position assignment.
func (s *roomService) UpdateRoom(ctx context.Context, id uint, patch RoomPatch) error {
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.RoomRepository) error {
		if _, err := txRepo.FindByID(ctx, id); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrRoomNotFound
			}
			return fmt.Errorf("find room: %w", err)
		}

		if fields := patch.roomFields(); len(fields) > 0 {
			if err := txRepo.UpdateFields(ctx, id, fields); err != nil {
				return fmt.Errorf("update room: %w", err)
			}
		}

		layoutFields := patch.layoutFields()
		if len(layoutFields) == 0 {
			return nil
		}

		if _, err := txRepo.FindLayout(ctx, id); err != nil {
			if err != gorm.ErrRecordNotFound {
				return fmt.Errorf("find room layout: %w", err)
			}
			layout := &model.RoomLayout{RoomID: id, Width: 1, Height: 1}
			if patch.PositionX != nil {
				layout.PositionX = *patch.PositionX
			}
			if patch.PositionY != nil {
				layout.PositionY = *patch.PositionY
			}
			if patch.Width != nil {
				layout.Width = *patch.Width
			}
			if patch.Height != nil {
				layout.Height = *patch.Height
			}
			if err := txRepo.CreateLayout(ctx, layout); err != nil {
				return fmt.Errorf("create room layout: %w", err)
			}
			return nil
		}

		if err := txRepo.UpdateLayoutFields(ctx, id, layoutFields); err != nil {
			return fmt.Errorf("update room layout: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, roomsCacheKey)
	return nil
}

// DeleteRoom removes a room and its layout.
func (s *roomService) DeleteRoom(ctx context.Context, id uint) error {
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.RoomRepository) error {
		if _, err := txRepo.FindByID(ctx, id); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrRoomNotFound
			}
			return fmt.Errorf("find room: %w", err)
		}
		if err := txRepo.DeleteLayout(ctx, id); err != nil {
			return fmt.Errorf("delete room layout: %w", err)
		}
		if err := txRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete room: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, roomsCacheKey)
	return nil
}
