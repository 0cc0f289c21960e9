package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"roomchoice/internal/errors"
	"roomchoice/internal/model"
	"roomchoice/internal/service"
)

// RoomHandler handles room inventory endpoints.
type RoomHandler struct {
	roomService service.RoomService
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// CreateRoomRequest represents a room creation request. The layout is
// created only when both positions are present.
type CreateRoomRequest struct {
	RoomNumber  string          `json:"room_number" validate:"required,max=50"`
	RoomType    string          `json:"room_type" validate:"required,max=50"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Description string          `json:"description"`
	PositionX   *int            `json:"position_x"`
	PositionY   *int            `json:"position_y"`
}

// UpdateRoomRequest represents a partial room update; only fields present
// in the body are applied. Accepted statuses: available, pending, booked.
type UpdateRoomRequest struct {
	RoomNumber  *string           `json:"room_number" validate:"omitempty,max=50"`
	RoomType    *string           `json:"room_type" validate:"omitempty,max=50"`
	Price       *decimal.Decimal  `json:"price"`
	Status      *model.RoomStatus `json:"status" validate:"omitempty,oneof=available pending booked"`
	Description *string           `json:"description"`
	PositionX   *int              `json:"position_x"`
	PositionY   *int              `json:"position_y"`
	Width       *int              `json:"width" validate:"omitempty,min=1"`
	Height      *int              `json:"height" validate:"omitempty,min=1"`
}

// CreateRoomResponse carries the ID of a newly created room.
type CreateRoomResponse struct {
	Message string `json:"message"`
	RoomID  uint   `json:"room_id"`
}

// ListRooms godoc
// @Summary List all rooms with their layout
// @Tags rooms
// @Produce json
// @Success 200 {array} model.Room
// @Failure 500 {object} errors.ErrorResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.roomService.ListRooms(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rooms)
}

// CreateRoom godoc
// @Summary Create a room (admin)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRoomRequest true "Room data"
// @Success 201 {object} CreateRoomResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: err.Error(),
			Code:    "VALIDATION_ERROR",
		})
	}

	room, err := h.roomService.CreateRoom(c.Request().Context(), service.RoomCreateInput{
		RoomNumber:  req.RoomNumber,
		RoomType:    req.RoomType,
		Price:       req.Price,
		Description: req.Description,
		PositionX:   req.PositionX,
		PositionY:   req.PositionY,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, CreateRoomResponse{
		Message: "room created successfully",
		RoomID:  room.ID,
	})
}

// UpdateRoom godoc
// @Summary Update room fields and/or layout (admin)
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body UpdateRoomRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid room id",
			Code:    "INVALID_REQUEST",
		})
	}

	var req UpdateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: err.Error(),
			Code:    "VALIDATION_ERROR",
		})
	}

	patch := service.RoomPatch{
		RoomNumber:  req.RoomNumber,
		RoomType:    req.RoomType,
		Price:       req.Price,
		Status:      req.Status,
		Description: req.Description,
		PositionX:   req.PositionX,
		PositionY:   req.PositionY,
		Width:       req.Width,
		Height:      req.Height,
	}

	if err := h.roomService.UpdateRoom(c.Request().Context(), uint(id), patch); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "room updated successfully",
	})
}

// DeleteRoom godoc
// @Summary Delete a room and its layout (admin)
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid room id",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := h.roomService.DeleteRoom(c.Request().Context(), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "room deleted successfully",
	})
}
