package port

import (
	"context"

	"github.com/visioncart/storefront/internal/core/domain"
)

// ProductQuerier is the paginated catalog listing of the remote API.
type ProductQuerier interface {
	ListProducts(context.Context, domain.CatalogQuery) (domain.CatalogPage, error)
}

type ProductGetter interface {
	GetProduct(ctx context.Context, productID string) (domain.ProductRecord, error)
}

// VariantsLister fetches all records sharing one model number.
type VariantsLister interface {
	ListVariants(ctx context.Context, modelNo string) ([]domain.ProductRecord, error)
}

// ShopProductsLister fetches a shop's flat product list for the
// seller inventory view.
type ShopProductsLister interface {
	ListShopProducts(ctx context.Context, shopID string) ([]domain.ProductRecord, error)
}

type ProductRemover interface {
	RemoveProduct(ctx context.Context, productID string) error
}

type ShopStatsFetcher interface {
	FetchShopStats(context.Context) (domain.ShopStats, error)
}

// SessionWatcher exposes the shared auth session: current value plus a
// broadcast on every write. Subscribers are called on the writer's
// goroutine in subscription order.
type SessionWatcher interface {
	Current() domain.Session
	Subscribe(func(domain.Session))
}

// ViewportObserver is the UI capability signalling that the rendered
// list end is near. Signals may arrive rapidly and duplicated; the
// consumer owns de-duplication.
type ViewportObserver interface {
	Signals() <-chan struct{}
}
