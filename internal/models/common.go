// internal/models/common.go
package models

// Enums
type DiscountMethod string

const (
	DiscountMethodPercent DiscountMethod = "pct"
	DiscountMethodFlat    DiscountMethod = "flat"
)

type WizardStep int

const (
	StepDescription  WizardStep = 1
	StepVariants     WizardStep = 2
	StepCombinations WizardStep = 3
	StepPrice        WizardStep = 4
)

func (s WizardStep) String() string {
	switch s {
	case StepDescription:
		return "description"
	case StepVariants:
		return "variants"
	case StepCombinations:
		return "combinations"
	case StepPrice:
		return "price"
	default:
		return "unknown"
	}
}

// Path used for committed products that were saved without an uploaded image.
const DefaultPlaceholderImage = "/images/shoes-image.png"
