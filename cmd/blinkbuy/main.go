package main

import (
	"context"
	"log/slog"
	"os"

	"blinkbuy/config"
	"blinkbuy/internal/delivery"
	"blinkbuy/internal/delivery/http"
	"blinkbuy/internal/delivery/http/router/handler"
	"blinkbuy/internal/infra/catalog"
	"blinkbuy/internal/infra/llm"
	logs "blinkbuy/internal/infra/log"
	"blinkbuy/internal/infra/pubsub"
	"blinkbuy/internal/infra/qrcode"
	"blinkbuy/internal/infra/storage"
	"blinkbuy/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		catalog.Module,
		storage.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		llm.Module,
		pubsub.Module,
		fx.Provide(
			qrcode.NewFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewSearchService,
			impl.NewCheckoutService,
			impl.NewAssistantService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		handler.Module,
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
