package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/visioncart/storefront/config"
	"github.com/visioncart/storefront/internal/adapter/catalogapi"
	"github.com/visioncart/storefront/internal/adapter/session"
	"github.com/visioncart/storefront/internal/adapter/viewport"
	"github.com/visioncart/storefront/internal/core/service"
)

// App wires the catalog client, pager, inventory and session store for
// an embedding UI. The UI reads components through the accessors and
// drives them from its own event handlers.
type App struct {
	ctx context.Context
	cfg config.Config
	wg  sync.WaitGroup

	sessions  *session.Store
	client    *catalogapi.Client
	pager     *service.CatalogPager
	inventory *service.InventoryService
	variants  service.VariantService
	poller    *service.StatsPoller
	trigger   *viewport.Trigger
	binder    viewport.Binder
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSessionStore()
	app.initCatalogClient()
	app.initCoreServices()
	app.initViewport()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSessionStore() {
	app.sessions = session.NewStore()
}

func (app *App) initCatalogClient() {
	cfg := app.cfg.CatalogAPI
	app.client = catalogapi.New(cfg.BaseURL,
		catalogapi.HTTPClientOpt(&http.Client{Timeout: cfg.RequestTimeout}),
		catalogapi.RateLimitOpt(cfg.RequestsPerSecond, cfg.Burst),
		catalogapi.SessionOpt(app.sessions),
	)
}

func (app *App) initCoreServices() {
	app.pager = service.NewCatalogPager(app.client,
		service.PageSizeOpt(app.cfg.Catalog.PageSize),
	)
	app.inventory = service.NewInventoryService(app.client, app.client, app.sessions)
	app.variants = service.NewVariantService(app.client)
	app.poller = service.NewStatsPoller(app.client, app.cfg.Admin.StatsPollInterval)
}

func (app *App) initViewport() {
	app.trigger = viewport.NewTrigger()
	app.binder = viewport.NewBinder(app.trigger, app.pager)
}

func (app *App) Run() {
	app.wg.Add(2)
	go app.poller.Run(app.ctx, &app.wg)
	go app.binder.Run(app.ctx, &app.wg)

	slog.Info("application is running")
}

func (app *App) Close() {
	slog.Info("application is closing...")

	app.poller.Close()
	app.wg.Wait()

	slog.Info("application is closed")
}

func (app *App) Sessions() *session.Store { return app.sessions }

func (app *App) Pager() *service.CatalogPager { return app.pager }

func (app *App) Inventory() *service.InventoryService { return app.inventory }

func (app *App) Variants() service.VariantService { return app.variants }

func (app *App) Stats() *service.StatsPoller { return app.poller }

// Viewport is the trigger the UI fires when the list end is near.
func (app *App) Viewport() *viewport.Trigger { return app.trigger }
