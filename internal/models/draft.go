// internal/models/draft.go
package models

import (
	"fmt"
)

// InvalidDraftError reports the first draft field that blocks a commit.
type InvalidDraftError struct {
	Field  string
	Reason string
}

func (e *InvalidDraftError) Error() string {
	return fmt.Sprintf("invalid draft: field=%s, reason=%s", e.Field, e.Reason)
}

func (e *InvalidDraftError) Is(target error) bool {
	_, ok := target.(*InvalidDraftError)
	return ok
}

// Validate checks the fields required to commit the draft. Row contents
// (SKU, quantity of in-stock rows) are intentionally not inspected.
func (d ProductDraft) Validate() error {
	switch {
	case d.Name == "":
		return &InvalidDraftError{Field: "name", Reason: "cannot be empty"}
	case d.Category == "":
		return &InvalidDraftError{Field: "category", Reason: "cannot be empty"}
	case d.Brand == "":
		return &InvalidDraftError{Field: "brand", Reason: "cannot be empty"}
	case !(d.PriceINR > 0):
		return &InvalidDraftError{Field: "priceInr", Reason: "must be positive"}
	case len(d.Variants) == 0:
		return &InvalidDraftError{Field: "variants", Reason: "at least one option required"}
	case d.Combinations.Len() == 0:
		return &InvalidDraftError{Field: "combinations", Reason: "at least one combination required"}
	}
	return nil
}

func (d ProductDraft) IsValid() bool {
	return d.Validate() == nil
}
