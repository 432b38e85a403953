package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/sportshop/config"
	"github.com/niksmo/sportshop/internal/adapter/httphandler"
	"github.com/niksmo/sportshop/internal/adapter/kafka"
	"github.com/niksmo/sportshop/internal/adapter/provider"
	"github.com/niksmo/sportshop/internal/adapter/storage"
	"github.com/niksmo/sportshop/internal/core/port"
	"github.com/niksmo/sportshop/internal/core/service"
	"github.com/niksmo/sportshop/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	sqldb      storage.SQLDB
	catalog    *service.CatalogService
	controller *service.SectionController
	producer   *kafka.PageViewProducer
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initCatalog()
	app.initAnalytics()
	app.initController()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCatalog() {
	const op = "App.initCatalog"

	providerClient := provider.New(
		app.cfg.Provider.URL,
		app.cfg.Provider.Timeout,
		app.cfg.Provider.MaxAttempts,
	)

	var productsStorage port.ProductsStorage
	if app.cfg.SQLDB != "" {
		sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
		if err != nil {
			app.fallDown(op, err)
		}
		app.sqldb = sqldb
		productsStorage = storage.NewCatalogRepository(sqldb)
	}

	app.catalog = service.NewCatalogService(providerClient, productsStorage)
}

// initAnalytics wires the page-view producer. The analytics pipeline
// is optional: without seed brokers the sections run with no emitter.
func (app *App) initAnalytics() {
	const op = "App.initAnalytics"

	brokerCfg := app.cfg.Broker
	if len(brokerCfg.SeedBrokers) == 0 || brokerCfg.PageViewTopic == "" {
		slog.Info("analytics is disabled", "op", op)
		return
	}

	srClient, err := sr.NewClient(sr.URLs(brokerCfg.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)
	subject := brokerCfg.PageViewTopic + "-value"
	pageViewSerde, err := schema.NewSerdePageViewV1(
		app.ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewPageViewProducer(
		kafka.ProducerClientOpt(
			app.ctx, brokerCfg.SeedBrokers, brokerCfg.PageViewTopic,
		),
		kafka.ProducerEncoderOpt(pageViewSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.producer = &producer
}

func (app *App) initController() {
	var emitter port.PageViewEmitter
	if app.producer != nil {
		emitter = *app.producer
	}

	app.controller = service.NewSectionController(
		app.catalog,
		service.NewEnricher(nil),
		emitter,
		app.cfg.Sections.Delay,
	)
}

func (app *App) initHTTPServer() {
	mux := http.NewServeMux()
	httphandler.RegisterSections(mux, app.controller)
	httphandler.RegisterCatalog(mux, app.controller)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.loadCatalog()
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) loadCatalog() {
	const op = "App.loadCatalog"

	if err := app.catalog.Load(app.ctx); err != nil {
		slog.Error("catalog is unavailable", "op", op, "err", err)
		return
	}
	app.controller.ActivateHome(
		app.ctx,
		app.cfg.Sections.NewArrivals,
		app.cfg.Sections.Popular,
	)
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.producer != nil {
		app.producer.Close()
	}
	if app.sqldb.DB != nil {
		app.sqldb.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
