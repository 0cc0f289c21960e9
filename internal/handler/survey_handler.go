package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"roomchoice/internal/errors"
	"roomchoice/internal/service"
)

// SurveyHandler handles survey lifecycle endpoints.
type SurveyHandler struct {
	surveyService service.SurveyService
}

// NewSurveyHandler creates a new survey handler.
func NewSurveyHandler(surveyService service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveyService: surveyService}
}

// CreateSurveyRequest represents a survey scheduling request.
type CreateSurveyRequest struct {
	RoomID       uint   `json:"room_id" validate:"required"`
	ScheduleTime string `json:"schedule_time" validate:"required"`
	Notes        string `json:"notes"`
}

// CreateSurvey godoc
// @Summary Schedule a room survey
// @Tags surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSurveyRequest true "Survey data"
// @Success 201 {object} model.Survey
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /surveys [post]
func (h *SurveyHandler) CreateSurvey(c echo.Context) error {
	var req CreateSurveyRequest
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

	scheduleTime, err := time.Parse(time.RFC3339, req.ScheduleTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid schedule_time, expected RFC3339",
			Code:    "INVALID_DATE",
		})
	}

	survey, err := h.surveyService.CreateSurvey(c.Request().Context(), CurrentUser(c), req.RoomID, scheduleTime, req.Notes)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, survey)
}

// ListSurveys godoc
// @Summary List surveys (all for admins, own otherwise)
// @Tags surveys
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Survey
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /surveys [get]
func (h *SurveyHandler) ListSurveys(c echo.Context) error {
	surveys, err := h.surveyService.ListSurveys(c.Request().Context(), CurrentUser(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, surveys)
}

// CancelSurvey godoc
// @Summary Cancel a scheduled survey
// @Tags surveys
// @Produce json
// @Security BearerAuth
// @Param id path int true "Survey ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /surveys/{id} [delete]
func (h *SurveyHandler) CancelSurvey(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid survey id",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := h.surveyService.CancelSurvey(c.Request().Context(), CurrentUser(c), uint(id)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "survey cancelled successfully",
	})
}
