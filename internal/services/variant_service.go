// internal/services/variant_service.go
package services

import (
	"strings"

	"github.com/javajoker/catalog-admin/internal/models"
)

// GenerateCombinations expands the variant options into every value tuple,
// depth first in option order. A single option without values yields an empty
// table, as does an empty option list.
func GenerateCombinations(variants []models.VariantOption) models.CombinationTable {
	table := models.NewCombinationTable()
	if len(variants) == 0 {
		return table
	}

	var walk func(prefix []string, depth int)
	walk = func(prefix []string, depth int) {
		if depth == len(variants) {
			key := strings.Join(prefix, models.CombinationKeySeparator)
			table.Put(key, models.NewCombinationRow(key))
			return
		}
		for _, value := range variants[depth].Values {
			walk(append(prefix[:depth:depth], value), depth+1)
		}
	}
	walk(make([]string, 0, len(variants)), 0)

	return table
}

// ParseVariantValues splits the comma separated values input of a variant row.
func ParseVariantValues(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	values := make([]string, len(parts))
	for i, p := range parts {
		values[i] = strings.TrimSpace(p)
	}
	return values
}

// CombinationCount is the number of rows GenerateCombinations would produce.
func CombinationCount(variants []models.VariantOption) int {
	if len(variants) == 0 {
		return 0
	}
	n := 1
	for _, v := range variants {
		n *= len(v.Values)
	}
	return n
}
