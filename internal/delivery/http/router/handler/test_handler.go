package handler

import (
	"net/http"

	"fieldtrack/internal/delivery/http/response"
	"fieldtrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware and tracking validation
type TestHandler struct {
	trackingUC usecase.TrackingUsecase
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(trackingUC usecase.TrackingUsecase) *TestHandler {
	return &TestHandler{
		trackingUC: trackingUC,
	}
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}

// TestTrackingSession exposes the raw reporter session for debugging
func (h *TestHandler) TestTrackingSession(c echo.Context) error {
	session := h.trackingUC.Session()

	return response.Success(c, http.StatusOK, map[string]any{
		"running": session != nil,
		"session": session,
	})
}
