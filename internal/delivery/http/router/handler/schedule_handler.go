package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fieldtrack/internal/delivery/http/response"
	"fieldtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScheduleHandlerParams holds dependencies for ScheduleHandler, injected by Fx.
type ScheduleHandlerParams struct {
	fx.In

	ScheduleUC usecase.ScheduleUsecase
	Logger     *slog.Logger
}

// ScheduleHandler holds dependencies for weekly schedule handlers
type ScheduleHandler struct {
	scheduleUC usecase.ScheduleUsecase
	logger     *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler
func NewScheduleHandler(params ScheduleHandlerParams) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUC: params.ScheduleUC,
		logger:     params.Logger,
	}
}

// PublishWeekRequest represents the request body for publishing a week
type PublishWeekRequest struct {
	Rep    string `json:"rep" validate:"required"`
	WeekOf string `json:"week_of"`
}

// PublishWeek handles snapshotting and publishing a rep's week
func (h *ScheduleHandler) PublishWeek(c echo.Context) error {
	var req PublishWeekRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid schedule input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	weekOf, err := parseWeekOf(req.WeekOf)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid 'week_of' date, expected YYYY-MM-DD")
	}

	snapshot, err := h.scheduleUC.PublishWeek(c.Request().Context(), req.Rep, weekOf)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// GetWeek handles reading back a published weekly snapshot
func (h *ScheduleHandler) GetWeek(c echo.Context) error {
	rep := c.Param("rep")
	if rep == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Rep is required")
	}

	weekOf, err := parseWeekOf(c.QueryParam("week_of"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid 'week_of' date, expected YYYY-MM-DD")
	}

	snapshot, err := h.scheduleUC.GetWeek(c.Request().Context(), rep, weekOf)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// parseWeekOf parses an optional YYYY-MM-DD day, defaulting to today.
func parseWeekOf(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}

	return time.ParseInLocation(time.DateOnly, raw, time.UTC)
}
