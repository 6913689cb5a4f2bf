package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/visioncart/storefront/internal/core/domain"
	"github.com/visioncart/storefront/internal/core/port"
)

// VariantService resolves the colour siblings of one record for the
// product details page.
type VariantService struct {
	lister port.VariantsLister
}

func NewVariantService(lister port.VariantsLister) VariantService {
	return VariantService{lister}
}

// Siblings fetches the records sharing the given record's model number,
// excluding the record itself. A record without a model number has no
// resolvable siblings and yields an empty result, not an error.
func (s VariantService) Siblings(
	ctx context.Context, r domain.ProductRecord,
) ([]domain.ProductRecord, error) {
	const op = "VariantService.Siblings"

	modelNo := strings.TrimSpace(r.Spec(domain.SpecModelNo))
	if modelNo == "" {
		return nil, nil
	}

	records, err := s.lister.ListVariants(ctx, modelNo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	siblings := records[:0:0]
	for _, v := range records {
		if v.ProductID != r.ProductID {
			siblings = append(siblings, v)
		}
	}
	return siblings, nil
}
