package main

import (
	"context"
	"log/slog"
	"os"

	"fieldtrack/config"
	"fieldtrack/internal/delivery"
	"fieldtrack/internal/delivery/http"
	"fieldtrack/internal/delivery/http/router/handler"
	"fieldtrack/internal/infra/location"
	logs "fieldtrack/internal/infra/log"
	"fieldtrack/internal/infra/persistence/postgres"
	"fieldtrack/internal/infra/pubsub"
	"fieldtrack/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			location.NewLocationSource,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewVisitRepository,
			postgres.NewStockRepository,
			postgres.NewLocationRepository,
			postgres.NewSnapshotRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewVisitService,
			impl.NewStockService,
			impl.NewLocationService,
			impl.NewScheduleService,
			impl.NewStockReconciler,
			impl.NewTrackingService,
			impl.NewJourneyService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewVisitHandler,
			handler.NewJourneyHandler,
			handler.NewStockHandler,
			handler.NewLocationHandler,
			handler.NewScheduleHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
