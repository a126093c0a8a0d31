// internal/services/wizard.go
package services

import (
	"fmt"

	"github.com/javajoker/catalog-admin/internal/models"
	"github.com/javajoker/catalog-admin/internal/utils"
)

// Wizard drives one add-product session through the four linear steps.
// Next and Back are never gated on field completeness; only Confirm checks
// the whole draft. A Wizard is not safe for concurrent use.
type Wizard struct {
	step  models.WizardStep
	draft models.ProductDraft
}

type DescriptionUpdate struct {
	Name        *string
	Category    *string
	Brand       *string
	Description *string
}

type VariantUpdate struct {
	Name *string
	// Values is the comma separated text of the values input.
	Values *string
}

type CombinationUpdate struct {
	SKU      *string
	Quantity *string
	InStock  *bool
}

type PricingUpdate struct {
	PriceINR       *string
	DiscountValue  *string
	DiscountMethod *models.DiscountMethod
}

func NewWizard() *Wizard {
	w := &Wizard{}
	w.Reset()
	return w
}

func (w *Wizard) Reset() {
	w.step = models.StepDescription
	w.draft = models.NewProductDraft()
}

func (w *Wizard) Step() models.WizardStep {
	return w.step
}

// Draft returns a copy of the current draft.
func (w *Wizard) Draft() models.ProductDraft {
	return w.draft.Clone()
}

func (w *Wizard) Next() error {
	if w.step >= models.StepPrice {
		return fmt.Errorf("%w: next from %s", ErrInvalidTransition, w.step)
	}
	w.step++
	return nil
}

func (w *Wizard) Back() error {
	if w.step <= models.StepDescription {
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, w.step)
	}
	w.step--
	return nil
}

// Cancel is only offered on the first step. The caller discards the wizard.
func (w *Wizard) Cancel() error {
	if w.step != models.StepDescription {
		return fmt.Errorf("%w: cancel from %s", ErrInvalidTransition, w.step)
	}
	w.Reset()
	return nil
}

// Confirm commits the draft to store. An incomplete draft leaves both the
// wizard and the store untouched.
func (w *Wizard) Confirm(store *CatalogStore) (models.Product, error) {
	if w.step != models.StepPrice {
		return models.Product{}, fmt.Errorf("%w: confirm from %s", ErrInvalidTransition, w.step)
	}
	if err := w.draft.Validate(); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrDraftIncomplete, err)
	}

	product, err := store.AddProduct(w.draft)
	if err != nil {
		return models.Product{}, err
	}
	w.Reset()
	return product, nil
}

// Step 1: description

func (w *Wizard) SetDescription(u DescriptionUpdate) {
	if u.Name != nil {
		w.draft.Name = *u.Name
	}
	if u.Category != nil {
		w.draft.Category = *u.Category
	}
	if u.Brand != nil {
		w.draft.Brand = *u.Brand
	}
	if u.Description != nil {
		w.draft.Description = *u.Description
	}
}

func (w *Wizard) AttachImage(url string) {
	w.draft.Image = url
}

// Step 2: variants

// AddVariant appends an empty option and returns its index.
func (w *Wizard) AddVariant() int {
	w.draft.Variants = append(w.draft.Variants, models.VariantOption{Values: []string{}})
	return len(w.draft.Variants) - 1
}

func (w *Wizard) UpdateVariant(index int, u VariantUpdate) error {
	if index < 0 || index >= len(w.draft.Variants) {
		return fmt.Errorf("%w: index %d", ErrVariantNotFound, index)
	}
	if u.Name != nil {
		w.draft.Variants[index].Name = *u.Name
	}
	if u.Values != nil {
		w.draft.Variants[index].Values = ParseVariantValues(*u.Values)
	}
	return nil
}

func (w *Wizard) RemoveVariant(index int) error {
	if index < 0 || index >= len(w.draft.Variants) {
		return fmt.Errorf("%w: index %d", ErrVariantNotFound, index)
	}
	w.draft.Variants = append(w.draft.Variants[:index], w.draft.Variants[index+1:]...)
	return nil
}

// Step 3: combinations

// GenerateCombinations rebuilds the combination table from the variants,
// discarding every row edit. With no variants the table is left as is.
func (w *Wizard) GenerateCombinations() {
	if len(w.draft.Variants) == 0 {
		return
	}
	w.draft.Combinations = GenerateCombinations(w.draft.Variants)
}

func (w *Wizard) UpdateCombination(key string, u CombinationUpdate) error {
	return w.draft.Combinations.Update(key, func(row *models.CombinationRow) {
		if u.SKU != nil {
			row.SKU = *u.SKU
		}
		if u.InStock != nil {
			row.InStock = *u.InStock
		}
		if u.Quantity != nil {
			row.Quantity = utils.ParseQuantityOrKeep(*u.Quantity, row.Quantity)
		}
	})
}

// Step 4: price

func (w *Wizard) SetPricing(u PricingUpdate) {
	if u.PriceINR != nil {
		w.draft.PriceINR = utils.ParseAmountOrKeep(*u.PriceINR, w.draft.PriceINR)
	}
	if u.DiscountValue != nil {
		w.draft.Discount.Value = utils.ParseAmountOrKeep(*u.DiscountValue, w.draft.Discount.Value)
	}
	if u.DiscountMethod != nil {
		switch *u.DiscountMethod {
		case models.DiscountMethodPercent, models.DiscountMethodFlat:
			w.draft.Discount.Method = *u.DiscountMethod
		}
	}
}
