package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visioncart/storefront/internal/core/domain"
)

func TestCategoryToken(t *testing.T) {
	assert.Equal(t, domain.CategoryEyeglasses, domain.CategoryToken("Eyeglasses"))
	assert.Equal(t, domain.CategoryContactLenses, domain.CategoryToken("Contact Lenses"))
	assert.Equal(t, domain.CategoryComputerGlasses, domain.CategoryToken(" computer glasses "))
}

func TestCatalogFiltersQuery(t *testing.T) {

	t.Run("CategoriesBecomeTokens", func(t *testing.T) {
		f := domain.CatalogFilters{
			Categories: []string{"Contact Lenses", "Sunglasses"},
		}

		q := f.Query(0, 12)

		assert.Equal(t,
			[]string{domain.CategoryContactLenses, domain.CategorySunglasses},
			q.Categories,
		)
	})

	t.Run("MultiSelectsDeduplicated", func(t *testing.T) {
		f := domain.CatalogFilters{
			Brands: []string{"RayBan", " RayBan ", "Oakley", ""},
		}

		q := f.Query(2, 12)

		assert.Equal(t, []string{"RayBan", "Oakley"}, q.Brands)
		assert.Equal(t, 2, q.Page)
		assert.Equal(t, 12, q.Size)
	})

	t.Run("EmptyFieldsStayNil", func(t *testing.T) {
		q := domain.CatalogFilters{Search: "   "}.Query(0, 12)

		assert.Nil(t, q.Categories)
		assert.Nil(t, q.Brands)
		assert.Nil(t, q.Gender)
		assert.Nil(t, q.MinPrice)
		assert.Empty(t, q.Search)
	})

	t.Run("DefaultPageSize", func(t *testing.T) {
		q := domain.CatalogFilters{}.Query(0, 0)
		assert.Equal(t, domain.DefaultPageSize, q.Size)
	})

	t.Run("PriceBoundsPassThrough", func(t *testing.T) {
		minPrice, maxPrice := 499.0, 4999.0
		f := domain.CatalogFilters{MinPrice: &minPrice, MaxPrice: &maxPrice}

		q := f.Query(0, 12)

		require.NotNil(t, q.MinPrice)
		require.NotNil(t, q.MaxPrice)
		assert.Equal(t, 499.0, *q.MinPrice)
		assert.Equal(t, 4999.0, *q.MaxPrice)
	})
}

func TestProductFamily(t *testing.T) {
	family := domain.ProductFamily{
		Key: "VC100",
		Variants: []domain.ProductRecord{
			{
				ProductID:     "p1",
				StockQuantity: 2,
				Specifications: map[string]string{
					domain.SpecFrameColour: "Black",
				},
			},
			{ProductID: "p2", StockQuantity: 3},
		},
	}

	assert.Equal(t, "p1", family.Lead().ProductID)
	assert.Equal(t, 5, family.TotalStock())
	assert.Equal(t, []string{"Black", "Standard"}, family.Colours())

	assert.Equal(t, domain.ProductRecord{}, domain.ProductFamily{}.Lead())
}
