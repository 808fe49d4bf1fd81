// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fieldtrack/config"
	"fieldtrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	VisitHandler    *handler.VisitHandler
	JourneyHandler  *handler.JourneyHandler
	StockHandler    *handler.StockHandler
	LocationHandler *handler.LocationHandler
	ScheduleHandler *handler.ScheduleHandler
	TestHandler     *handler.TestHandler
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	visitHandler    *handler.VisitHandler
	journeyHandler  *handler.JourneyHandler
	stockHandler    *handler.StockHandler
	locationHandler *handler.LocationHandler
	scheduleHandler *handler.ScheduleHandler
	testHandler     *handler.TestHandler
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		visitHandler:    params.VisitHandler,
		journeyHandler:  params.JourneyHandler,
		stockHandler:    params.StockHandler,
		locationHandler: params.LocationHandler,
		scheduleHandler: params.ScheduleHandler,
		testHandler:     params.TestHandler,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	// Visit calendar routes
	visitsGroup := apiV1.Group("/visits")
	{
		visitsGroup.GET("", r.visitHandler.ListVisits)
		visitsGroup.POST("", r.visitHandler.AddVisit)
		visitsGroup.GET("/:id", r.visitHandler.GetVisit)
	}

	// Journey lifecycle routes
	journeysGroup := apiV1.Group("/journeys")
	{
		journeysGroup.POST("/start", r.journeyHandler.StartJourney)
		journeysGroup.POST("/stop", r.journeyHandler.StopJourney)
		journeysGroup.GET("/session", r.journeyHandler.CurrentSession)

		journeysGroup.POST("/visits/:id/select", r.journeyHandler.SelectVisit)
		journeysGroup.POST("/visits/:id/deselect", r.journeyHandler.DeselectVisit)
		journeysGroup.POST("/visits/:id/finalize", r.journeyHandler.FinalizeVisit)
		journeysGroup.POST("/visits/:id/skip", r.journeyHandler.SkipVisit)
	}

	// Stock ledger routes
	stockGroup := apiV1.Group("/stock")
	{
		stockGroup.GET("/:rep", r.stockHandler.GetStockLines)
		stockGroup.PUT("/:rep", r.stockHandler.UpsertStockLine)
	}

	// Location ingest and readback routes
	locationsGroup := apiV1.Group("/locations")
	{
		locationsGroup.POST("", r.locationHandler.IngestSamples)
		locationsGroup.GET("/visit/:id", r.locationHandler.SamplesForVisit)
	}

	// Weekly schedule routes
	schedulesGroup := apiV1.Group("/schedules")
	{
		schedulesGroup.POST("/publish", r.scheduleHandler.PublishWeek)
		schedulesGroup.GET("/:rep", r.scheduleHandler.GetWeek)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/tracking", r.testHandler.TestTrackingSession)
	}
}
