package main

import (
	"context"
	"log/slog"
	"os"

	"addresssync/config"
	"addresssync/internal/delivery"
	"addresssync/internal/delivery/scheduler"
	logs "addresssync/internal/infra/log"
	"addresssync/internal/infra/metrics"
	"addresssync/internal/infra/persistence"
	"addresssync/internal/infra/pubsub"
	"addresssync/internal/infra/retirement"
	"addresssync/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startScheduler,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			metrics.NewRegistry,
			metrics.New,
			persistence.New,
		),
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			retirement.NewConfigSource,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewRetirementService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startScheduler(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start scheduler", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
