package domain

import "strings"

// DefaultPageSize is the fixed catalog page size.
const DefaultPageSize = 12

// CatalogFilters is the filter state as the UI layer holds it:
// human-readable values, duplicates and blanks tolerated.
type CatalogFilters struct {
	Categories    []string
	Brands        []string
	FrameTypes    []string
	Colours       []string
	FrameMaterial []string
	FrameSize     []string
	FrameShape    []string
	Gender        []string
	MinPrice      *float64
	MaxPrice      *float64
	Search        string
}

// CatalogQuery is one outgoing page request. Multi-select fields are
// deduplicated and category values are already backend tokens. Empty
// fields stay nil so the transport omits them entirely.
type CatalogQuery struct {
	Categories    []string
	Brands        []string
	FrameTypes    []string
	Colours       []string
	FrameMaterial []string
	FrameSize     []string
	FrameShape    []string
	Gender        []string
	MinPrice      *float64
	MaxPrice      *float64
	Search        string
	Page          int
	Size          int
}

// CatalogPage is the response envelope for one page request.
// Last reports that no further pages exist.
type CatalogPage struct {
	Content []ProductRecord
	Last    bool
}

// Query translates the filters into the request for the given page.
func (f CatalogFilters) Query(page, size int) CatalogQuery {
	if size <= 0 {
		size = DefaultPageSize
	}

	categories := dedup(f.Categories)
	for i, c := range categories {
		categories[i] = CategoryToken(c)
	}

	return CatalogQuery{
		Categories:    categories,
		Brands:        dedup(f.Brands),
		FrameTypes:    dedup(f.FrameTypes),
		Colours:       dedup(f.Colours),
		FrameMaterial: dedup(f.FrameMaterial),
		FrameSize:     dedup(f.FrameSize),
		FrameShape:    dedup(f.FrameShape),
		Gender:        dedup(f.Gender),
		MinPrice:      f.MinPrice,
		MaxPrice:      f.MaxPrice,
		Search:        strings.TrimSpace(f.Search),
		Page:          page,
		Size:          size,
	}
}

// CategoryToken converts a display category to the backend enum token,
// e.g. "Contact Lenses" -> "CONTACT_LENSES".
func CategoryToken(category string) string {
	token := strings.TrimSpace(category)
	token = strings.ToUpper(token)
	return strings.ReplaceAll(token, " ", "_")
}

// dedup drops blank values and duplicates, preserving first-seen order.
// Returns nil for an effectively empty input.
func dedup(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
