package catalogapi

import (
	"net/url"
	"strconv"

	"github.com/visioncart/storefront/internal/core/domain"
)

// encodeQuery renders a catalog query as the backend's wire parameters.
// Multi-select filters repeat the key per value and empty fields are
// omitted entirely, never sent as empty values. Parameter names,
// including the odd capitalised "Gender", are the backend's contract.
func encodeQuery(q domain.CatalogQuery) url.Values {
	v := url.Values{}

	appendAll(v, "categories", q.Categories)
	appendAll(v, "brands", q.Brands)
	appendAll(v, "frameType", q.FrameTypes)
	appendAll(v, "frameColour", q.Colours)
	appendAll(v, "frameMaterial", q.FrameMaterial)
	appendAll(v, "frameSize", q.FrameSize)
	appendAll(v, "frameShape", q.FrameShape)
	appendAll(v, "Gender", q.Gender)

	if q.MinPrice != nil {
		v.Set("minPrice", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		v.Set("maxPrice", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}

	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(q.Size))
	return v
}

func appendAll(v url.Values, key string, values []string) {
	for _, value := range values {
		v.Add(key, value)
	}
}
