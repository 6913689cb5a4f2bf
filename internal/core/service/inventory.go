package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/visioncart/storefront/internal/core/domain"
	"github.com/visioncart/storefront/internal/core/port"
)

// InventoryService backs the seller dashboard: it loads a shop's flat
// product list and keeps the grouped family view current across loads
// and deletions. The family view is recomputed from the raw list on
// every change, never stored independently.
type InventoryService struct {
	lister  port.ShopProductsLister
	remover port.ProductRemover

	mu       sync.Mutex
	shopID   string
	raw      []domain.ProductRecord
	families []domain.ProductFamily
}

// NewInventoryService wires the service to the catalog API. When
// sessions is non-nil the loaded inventory is cleared whenever the
// session stops being a signed-in seller.
func NewInventoryService(
	lister port.ShopProductsLister,
	remover port.ProductRemover,
	sessions port.SessionWatcher,
) *InventoryService {
	s := &InventoryService{lister: lister, remover: remover}
	if sessions != nil {
		sessions.Subscribe(s.onSessionChange)
	}
	return s
}

// Refresh reloads the shop's raw product list and regroups it.
func (s *InventoryService) Refresh(
	ctx context.Context, shopID string,
) ([]domain.ProductFamily, error) {
	const op = "InventoryService.Refresh"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records, err := s.lister.ListShopProducts(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.shopID = shopID
	s.raw = records
	s.families = GroupVariants(records)
	return s.familiesLocked(), nil
}

// Remove deletes one SKU and regroups the remaining records locally,
// the way the dashboard drops a deleted row without a full reload.
func (s *InventoryService) Remove(
	ctx context.Context, productID string,
) ([]domain.ProductFamily, error) {
	const op = "InventoryService.Remove"

	if err := s.remover.RemoveProduct(ctx, productID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.raw[:0:0]
	for _, r := range s.raw {
		if r.ProductID != productID {
			kept = append(kept, r)
		}
	}
	s.raw = kept
	s.families = GroupVariants(kept)
	return s.familiesLocked(), nil
}

// Families returns the current grouped view.
func (s *InventoryService) Families() []domain.ProductFamily {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.familiesLocked()
}

func (s *InventoryService) familiesLocked() []domain.ProductFamily {
	families := make([]domain.ProductFamily, len(s.families))
	copy(families, s.families)
	return families
}

func (s *InventoryService) onSessionChange(sess domain.Session) {
	const op = "InventoryService.onSessionChange"

	if sess.SignedIn() && sess.Role == domain.RoleSeller {
		return
	}

	s.mu.Lock()
	hadInventory := len(s.raw) > 0
	s.shopID = ""
	s.raw = nil
	s.families = nil
	s.mu.Unlock()

	if hadInventory {
		slog.Debug("inventory cleared", "op", op)
	}
}
