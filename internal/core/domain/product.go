package domain

// Category tokens as the catalog backend expects them.
const (
	CategoryEyeglasses      = "EYEGLASSES"
	CategorySunglasses      = "SUNGLASSES"
	CategoryContactLenses   = "CONTACT_LENSES"
	CategoryComputerGlasses = "COMPUTER_GLASSES"
	CategoryAccessories     = "ACCESSORIES"
	CategorySolutions       = "SOLUTIONS"
)

// Reserved specification keys. The specifications map is free-form,
// but these keys carry grouping and variant identity.
const (
	SpecBaseModel   = "Base Model"
	SpecModelNo     = "Model No."
	SpecFrameColour = "Frame Colour"
)

type ProductRecord struct {
	ProductID      string
	ShopID         string
	Category       string
	Name           string
	Brand          string
	Price          float64
	StockQuantity  int
	Images         []string
	Specifications map[string]string
}

// Spec returns the value stored under the given specification key,
// or the empty string when the key is absent.
func (p ProductRecord) Spec(key string) string {
	if p.Specifications == nil {
		return ""
	}
	return p.Specifications[key]
}

// ProductFamily is one logical product whose Variants are the per-colour
// SKUs sharing a grouping key. It is derived from a flat record list and
// recomputed on every change, never persisted.
type ProductFamily struct {
	Key      string
	Variants []ProductRecord
}

// Lead is the record the family is presented by.
func (f ProductFamily) Lead() ProductRecord {
	if len(f.Variants) == 0 {
		return ProductRecord{}
	}
	return f.Variants[0]
}

func (f ProductFamily) TotalStock() int {
	var total int
	for _, v := range f.Variants {
		total += v.StockQuantity
	}
	return total
}

// Colours lists the frame colour of each variant in order. Variants
// without a colour specification report "Standard".
func (f ProductFamily) Colours() []string {
	colours := make([]string, 0, len(f.Variants))
	for _, v := range f.Variants {
		c := v.Spec(SpecFrameColour)
		if c == "" {
			c = "Standard"
		}
		colours = append(colours, c)
	}
	return colours
}
