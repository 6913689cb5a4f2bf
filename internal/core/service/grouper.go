package service

import (
	"strings"

	"github.com/visioncart/storefront/internal/core/domain"
)

// GroupVariants buckets a flat product list into families of colour
// variants. Input records are deduplicated by ProductID (first
// occurrence wins), so a list concatenated across page fetches is safe
// to pass in. Family order and member order follow first appearance in
// the input; nothing is sorted.
//
// The function is pure: no I/O, no shared state, same output for the
// same input.
func GroupVariants(records []domain.ProductRecord) []domain.ProductFamily {
	seenIDs := make(map[string]struct{}, len(records))
	buckets := make(map[string]int)
	var families []domain.ProductFamily

	for _, r := range records {
		if _, ok := seenIDs[r.ProductID]; ok {
			continue
		}
		seenIDs[r.ProductID] = struct{}{}

		key := GroupingKey(r)
		i, ok := buckets[key]
		if !ok {
			i = len(families)
			buckets[key] = i
			families = append(families, domain.ProductFamily{Key: key})
		}
		families[i].Variants = append(families[i].Variants, r)
	}

	return families
}

// GroupingKey derives the family key for one record:
//
//  1. "Base Model" specification, trimmed and upper-cased;
//  2. else "Model No." specification, trimmed and upper-cased;
//  3. else the record name, trimmed with case preserved — so two
//     differently cased copies of the same name land in distinct
//     families, matching the seller dashboard's behaviour.
//
// A whitespace-only value counts as missing. A record with none of the
// three ends up under the empty key, merging with other keyless
// records.
func GroupingKey(r domain.ProductRecord) string {
	if v := strings.TrimSpace(r.Spec(domain.SpecBaseModel)); v != "" {
		return strings.ToUpper(v)
	}
	if v := strings.TrimSpace(r.Spec(domain.SpecModelNo)); v != "" {
		return strings.ToUpper(v)
	}
	return strings.TrimSpace(r.Name)
}
