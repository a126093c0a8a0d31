// internal/models/product.go
package models

// JSON field names follow the static catalog snapshot (camelCase), not the
// snake_case used by the rest of the API envelope.

type VariantOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type Discount struct {
	Method DiscountMethod `json:"method"`
	Value  float64        `json:"value"`
}

type Product struct {
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Brand        string           `json:"brand"`
	Description  string           `json:"description"`
	Image        string           `json:"image"`
	Variants     []VariantOption  `json:"variants"`
	Combinations CombinationTable `json:"combinations"`
	PriceINR     float64          `json:"priceInr"`
	Discount     Discount         `json:"discount"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CatalogState is the document shape of the static snapshot and of store reads.
type CatalogState struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
}

// ProductDraft is the in-progress record edited by the add-product wizard.
// Every field may be empty until the draft is validated for commit.
type ProductDraft struct {
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Brand        string           `json:"brand"`
	Description  string           `json:"description"`
	Image        string           `json:"image"`
	Variants     []VariantOption  `json:"variants"`
	Combinations CombinationTable `json:"combinations"`
	PriceINR     float64          `json:"priceInr"`
	Discount     Discount         `json:"discount"`
}

func NewProductDraft() ProductDraft {
	return ProductDraft{
		Variants:     []VariantOption{},
		Combinations: NewCombinationTable(),
		Discount:     Discount{Method: DiscountMethodPercent, Value: 0},
	}
}

// Clone returns a copy that shares no slices or maps with d.
func (d ProductDraft) Clone() ProductDraft {
	out := d
	out.Variants = cloneVariants(d.Variants)
	out.Combinations = d.Combinations.Clone()
	return out
}

// ToProduct copies the draft into a Product. placeholder replaces an empty image.
func (d ProductDraft) ToProduct(placeholder string) Product {
	c := d.Clone()
	image := c.Image
	if image == "" {
		image = placeholder
	}
	return Product{
		Name:         c.Name,
		Category:     c.Category,
		Brand:        c.Brand,
		Description:  c.Description,
		Image:        image,
		Variants:     c.Variants,
		Combinations: c.Combinations,
		PriceINR:     c.PriceINR,
		Discount:     c.Discount,
	}
}

func (p Product) Clone() Product {
	out := p
	out.Variants = cloneVariants(p.Variants)
	out.Combinations = p.Combinations.Clone()
	return out
}

func (s CatalogState) Clone() CatalogState {
	out := CatalogState{
		Products:   make([]Product, len(s.Products)),
		Categories: make([]Category, len(s.Categories)),
	}
	for i, p := range s.Products {
		out.Products[i] = p.Clone()
	}
	copy(out.Categories, s.Categories)
	return out
}

func cloneVariants(in []VariantOption) []VariantOption {
	out := make([]VariantOption, len(in))
	for i, v := range in {
		values := make([]string, len(v.Values))
		copy(values, v.Values)
		out[i] = VariantOption{Name: v.Name, Values: values}
	}
	return out
}
