package handler

import (
	"log/slog"
	"net/http"

	"fieldtrack/internal/delivery/http/response"
	"fieldtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StockHandlerParams holds dependencies for StockHandler, injected by Fx.
type StockHandlerParams struct {
	fx.In

	StockUC usecase.StockUsecase
	Logger  *slog.Logger
}

// StockHandler holds dependencies for stock ledger handlers
type StockHandler struct {
	stockUC usecase.StockUsecase
	logger  *slog.Logger
}

// NewStockHandler is the constructor for StockHandler
func NewStockHandler(params StockHandlerParams) *StockHandler {
	return &StockHandler{
		stockUC: params.StockUC,
		logger:  params.Logger,
	}
}

// UpsertStockLineRequest represents the request body for seeding one ledger row
type UpsertStockLineRequest struct {
	SampleType string `json:"sample_type" validate:"required"`
	Quantity   int    `json:"quantity" validate:"min=0"`
}

// GetStockLines handles reading a rep's full ledger
func (h *StockHandler) GetStockLines(c echo.Context) error {
	rep := c.Param("rep")
	if rep == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Rep is required")
	}

	lines, err := h.stockUC.GetStockLines(c.Request().Context(), rep)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lines)
}

// UpsertStockLine handles creating or replacing one ledger row
func (h *StockHandler) UpsertStockLine(c echo.Context) error {
	rep := c.Param("rep")
	if rep == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Rep is required")
	}

	var req UpsertStockLineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock line input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	line, err := h.stockUC.UpsertStockLine(c.Request().Context(), rep, &usecase.UpsertStockLineInput{
		SampleType: req.SampleType,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, line)
}
