package catalogapi

import "github.com/visioncart/storefront/internal/core/domain"

type (
	product struct {
		ProductID      string            `json:"productId"`
		ShopID         string            `json:"shopId"`
		Category       string            `json:"category"`
		Name           string            `json:"name"`
		Brand          string            `json:"brand"`
		Price          float64           `json:"price"`
		StockQuantity  int               `json:"stockQuantity"`
		Images         []string          `json:"images"`
		Specifications map[string]string `json:"specifications"`
	}

	pageEnvelope struct {
		Content []product `json:"content"`
		Last    bool      `json:"last"`
	}

	shopStats struct {
		Pending  int `json:"pending"`
		Approved int `json:"approved"`
		Rejected int `json:"rejected"`
	}
)

func (p product) toDomain() domain.ProductRecord {
	return domain.ProductRecord{
		ProductID:      p.ProductID,
		ShopID:         p.ShopID,
		Category:       p.Category,
		Name:           p.Name,
		Brand:          p.Brand,
		Price:          p.Price,
		StockQuantity:  p.StockQuantity,
		Images:         p.Images,
		Specifications: p.Specifications,
	}
}

func toDomainList(ps []product) []domain.ProductRecord {
	records := make([]domain.ProductRecord, 0, len(ps))
	for _, p := range ps {
		records = append(records, p.toDomain())
	}
	return records
}
