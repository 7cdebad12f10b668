package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/BrayanOfficiel/juice-finder/config"
	"github.com/BrayanOfficiel/juice-finder/internal/delivery"
	"github.com/BrayanOfficiel/juice-finder/internal/delivery/http"
	"github.com/BrayanOfficiel/juice-finder/internal/delivery/http/middleware"
	"github.com/BrayanOfficiel/juice-finder/internal/delivery/http/router/handler"
	"github.com/BrayanOfficiel/juice-finder/internal/infra/auth"
	logs "github.com/BrayanOfficiel/juice-finder/internal/infra/log"
	"github.com/BrayanOfficiel/juice-finder/internal/infra/opendata"
	"github.com/BrayanOfficiel/juice-finder/internal/infra/persistence/postgres"
	"github.com/BrayanOfficiel/juice-finder/internal/usecase/impl"

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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewEstablishmentRepository,
			postgres.NewUserRepository,
			postgres.NewBookmarkRepository,
			postgres.NewArchiveRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			opendata.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSearchService,
			impl.NewSyncService,
			impl.NewUserService,
			impl.NewBookmarkService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEstablishmentHandler,
			handler.NewSyncHandler,
			handler.NewUserHandler,
			handler.NewBookmarkHandler,
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
				os.Exit(1)
			}
		}()
	}
}
