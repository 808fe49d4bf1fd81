package handler

import (
	"log/slog"
	"net/http"

	"fieldtrack/internal/delivery/http/response"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JourneyHandlerParams holds dependencies for JourneyHandler, injected by Fx.
type JourneyHandlerParams struct {
	fx.In

	JourneyUC usecase.JourneyUsecase
	Logger    *slog.Logger
}

// JourneyHandler holds dependencies for journey lifecycle handlers
type JourneyHandler struct {
	journeyUC usecase.JourneyUsecase
	logger    *slog.Logger
}

// NewJourneyHandler is the constructor for JourneyHandler
func NewJourneyHandler(params JourneyHandlerParams) *JourneyHandler {
	return &JourneyHandler{
		journeyUC: params.JourneyUC,
		logger:    params.Logger,
	}
}

// StartJourneyRequest represents the request body for starting a journey
type StartJourneyRequest struct {
	Rep string `json:"rep" validate:"required"`
}

// RepRequest carries the acting rep for visit transitions
type RepRequest struct {
	Rep string `json:"rep" validate:"required"`
}

// SampleLineRequest is one requested sample line inside a finalize request
type SampleLineRequest struct {
	SampleType string `json:"sample_type" validate:"required"`
	Quantity   int    `json:"quantity" validate:"min=0"`
}

// FinalizeVisitRequest represents the request body for finalizing a visit
type FinalizeVisitRequest struct {
	Rep      string              `json:"rep" validate:"required"`
	NoteType string              `json:"note_type" validate:"required"`
	Summary  string              `json:"summary"`
	Lines    []SampleLineRequest `json:"lines" validate:"dive"`
}

// StartJourney handles starting the rep's journey for the day
func (h *JourneyHandler) StartJourney(c echo.Context) error {
	var req StartJourneyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid journey input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	session, err := h.journeyUC.StartJourney(c.Request().Context(), req.Rep)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// StopJourney handles stopping the journey. Safe to call when no journey runs.
func (h *JourneyHandler) StopJourney(c echo.Context) error {
	if err := h.journeyUC.StopJourney(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Journey stopped"})
}

// CurrentSession handles reading the active journey session
func (h *JourneyHandler) CurrentSession(c echo.Context) error {
	session := h.journeyUC.CurrentSession()
	if session == nil {
		return response.NotFound(c, "JOURNEY_NOT_ACTIVE", "No journey is active")
	}

	return response.Success(c, http.StatusOK, session)
}

// SelectVisit handles moving a planned visit to en_route
func (h *JourneyHandler) SelectVisit(c echo.Context) error {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid visit ID")
	}

	var req RepRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid select input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	visit, err := h.journeyUC.SelectVisit(c.Request().Context(), req.Rep, visitID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visit)
}

// DeselectVisit handles reverting an en_route visit to planned
func (h *JourneyHandler) DeselectVisit(c echo.Context) error {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid visit ID")
	}

	var req RepRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deselect input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	visit, err := h.journeyUC.DeselectVisit(c.Request().Context(), req.Rep, visitID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visit)
}

// FinalizeVisit handles ending the journey at a visit
func (h *JourneyHandler) FinalizeVisit(c echo.Context) error {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid visit ID")
	}

	var req FinalizeVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid finalize input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	lines := make([]usecase.SampleLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, usecase.SampleLine{
			SampleType: line.SampleType,
			Quantity:   line.Quantity,
		})
	}

	visit, err := h.journeyUC.FinalizeVisit(c.Request().Context(), req.Rep, visitID, &usecase.FinalizeVisitInput{
		NoteType: req.NoteType,
		Summary:  req.Summary,
		Lines:    lines,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visit)
}

// SkipVisit handles terminally skipping a visit
func (h *JourneyHandler) SkipVisit(c echo.Context) error {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid visit ID")
	}

	var req RepRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid skip input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	visit, err := h.journeyUC.SkipVisit(c.Request().Context(), req.Rep, visitID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visit)
}
