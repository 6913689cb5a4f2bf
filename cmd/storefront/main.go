package main

import (
	"github.com/visioncart/storefront/config"
	"github.com/visioncart/storefront/internal/app"
	"github.com/visioncart/storefront/internal/core/domain"
	"github.com/visioncart/storefront/pkg/sigctx"
)

func main() {
	sigCtx, stop := sigctx.NotifyContext()
	defer stop()

	cfg := config.Load()
	cfg.Print()

	storefront := app.New(sigCtx, cfg)
	storefront.Run()

	// Kick off the first catalog page with no filters applied.
	storefront.Pager().ApplyFilters(sigCtx, domain.CatalogFilters{})

	<-sigCtx.Done()

	storefront.Close()
}
