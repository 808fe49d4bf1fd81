package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fieldtrack/internal/delivery/http/response"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VisitHandlerParams holds dependencies for VisitHandler, injected by Fx.
type VisitHandlerParams struct {
	fx.In

	VisitUC usecase.VisitUsecase
	Logger  *slog.Logger
}

// VisitHandler holds dependencies for visit calendar handlers
type VisitHandler struct {
	visitUC usecase.VisitUsecase
	logger  *slog.Logger
}

// NewVisitHandler is the constructor for VisitHandler
func NewVisitHandler(params VisitHandlerParams) *VisitHandler {
	return &VisitHandler{
		visitUC: params.VisitUC,
		logger:  params.Logger,
	}
}

// AddVisitRequest represents the request body for adding a planned visit
type AddVisitRequest struct {
	VisitDate  string `json:"visit_date" validate:"required"`
	ClientName string `json:"client_name" validate:"required"`
	Specialty  string `json:"specialty"`
	Area       string `json:"area"`
	Notes      string `json:"notes"`
	Rep        string `json:"rep"`
}

// ListVisits handles listing visits in a date range
func (h *VisitHandler) ListVisits(c echo.Context) error {
	from, err := parseDateParam(c.QueryParam("from"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid 'from' date, expected YYYY-MM-DD")
	}

	to, err := parseDateParam(c.QueryParam("to"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid 'to' date, expected YYYY-MM-DD")
	}

	visits, err := h.visitUC.ListVisits(c.Request().Context(), from, to, c.QueryParam("rep"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visits)
}

// GetVisit handles retrieving a single visit
func (h *VisitHandler) GetVisit(c echo.Context) error {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid visit ID")
	}

	visit, err := h.visitUC.GetVisit(c.Request().Context(), visitID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visit)
}

// AddVisit handles manually adding a planned visit
func (h *VisitHandler) AddVisit(c echo.Context) error {
	var req AddVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visit input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	visitDate, err := parseDateParam(req.VisitDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid visit date, expected YYYY-MM-DD")
	}

	visit, err := h.visitUC.AddVisit(c.Request().Context(), &usecase.AddVisitInput{
		VisitDate:  visitDate,
		ClientName: req.ClientName,
		Specialty:  req.Specialty,
		Area:       req.Area,
		Notes:      req.Notes,
		Rep:        req.Rep,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, visit)
}

// parseDateParam parses a YYYY-MM-DD day into midnight UTC.
func parseDateParam(raw string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, raw, time.UTC)
}
