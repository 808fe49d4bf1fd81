package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fieldtrack/internal/delivery/http/response"
	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/domain/service"
	"fieldtrack/internal/infra/location"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Feed       location.FixFeed
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location ingest and readback handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	feed       location.FixFeed
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		feed:       params.Feed,
		logger:     params.Logger,
	}
}

// IngestSampleRequest represents one device-pushed location fix
type IngestSampleRequest struct {
	VisitID    *uuid.UUID `json:"visit_id,omitempty"`
	Rep        string     `json:"rep" validate:"required"`
	RecordedAt time.Time  `json:"recorded_at"`
	Latitude   float64    `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64    `json:"longitude" validate:"min=-180,max=180"`
	Accuracy   float64    `json:"accuracy"`
	Speed      float64    `json:"speed"`
	Heading    float64    `json:"heading"`
	Source     string     `json:"source"`
}

// IngestSamplesRequest represents a batch upload of fixes
type IngestSamplesRequest struct {
	Samples []IngestSampleRequest `json:"samples" validate:"required,min=1,dive"`
}

// IngestSamples handles a batch of device-pushed fixes. Each fix is persisted
// and also offered to the live journey reporter when the device provider runs.
func (h *LocationHandler) IngestSamples(c echo.Context) error {
	var req IngestSamplesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	inputs := make([]*usecase.IngestSampleInput, 0, len(req.Samples))
	for _, sample := range req.Samples {
		inputs = append(inputs, &usecase.IngestSampleInput{
			VisitID:    sample.VisitID,
			Rep:        sample.Rep,
			RecordedAt: sample.RecordedAt,
			Latitude:   sample.Latitude,
			Longitude:  sample.Longitude,
			Accuracy:   sample.Accuracy,
			Speed:      sample.Speed,
			Heading:    sample.Heading,
			Source:     sample.Source,
		})
	}

	if err := h.locationUC.IngestSamples(c.Request().Context(), inputs); err != nil {
		return response.HandleAppError(c, err)
	}

	for _, sample := range req.Samples {
		h.feed.Offer(service.Fix{
			Latitude:   sample.Latitude,
			Longitude:  sample.Longitude,
			Accuracy:   sample.Accuracy,
			Speed:      sample.Speed,
			Heading:    sample.Heading,
			RecordedAt: sample.RecordedAt,
			Source:     entity.LocationSourceTag(sample.Source),
		})
	}

	return response.Success(c, http.StatusAccepted, map[string]int{"accepted": len(inputs)})
}

// SamplesForVisit handles reading the fixes bound to one visit
func (h *LocationHandler) SamplesForVisit(c echo.Context) error {
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid visit ID")
	}

	samples, err := h.locationUC.SamplesForVisit(c.Request().Context(), visitID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, samples)
}
