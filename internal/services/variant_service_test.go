package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/catalog-admin/internal/models"
)

func TestGenerateCombinations(t *testing.T) {
	variants := []models.VariantOption{
		{Name: "Size", Values: []string{"S", "M"}},
		{Name: "Color", Values: []string{"Red", "Blue"}},
	}

	table := GenerateCombinations(variants)

	assert.Equal(t, []string{"S/Red", "S/Blue", "M/Red", "M/Blue"}, table.Keys())
	for _, row := range table.Rows() {
		assert.Empty(t, row.SKU)
		assert.Nil(t, row.Quantity)
		assert.False(t, row.InStock)
	}
	row, ok := table.Get("M/Red")
	require.True(t, ok)
	assert.Equal(t, "M/Red", row.Name)
}

func TestGenerateCombinationsCountMatchesProduct(t *testing.T) {
	variants := []models.VariantOption{
		{Name: "Size", Values: []string{"S", "M", "L"}},
		{Name: "Color", Values: []string{"Red", "Blue"}},
		{Name: "Fit", Values: []string{"Slim", "Wide"}},
	}

	table := GenerateCombinations(variants)

	assert.Equal(t, 12, table.Len())
	assert.Equal(t, CombinationCount(variants), table.Len())
	assert.Equal(t, "S/Red/Slim", table.Keys()[0])
	assert.Equal(t, "L/Blue/Wide", table.Keys()[11])
}

func TestGenerateCombinationsEmptyInputs(t *testing.T) {
	tests := []struct {
		name     string
		variants []models.VariantOption
	}{
		{"no options", nil},
		{"single option without values", []models.VariantOption{{Name: "Size", Values: []string{}}}},
		{"one option without values", []models.VariantOption{
			{Name: "Size", Values: []string{"S"}},
			{Name: "Color", Values: []string{}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := GenerateCombinations(tt.variants)
			assert.Equal(t, 0, table.Len())
			assert.Equal(t, 0, CombinationCount(tt.variants))
		})
	}
}

func TestGenerateCombinationsSingleOption(t *testing.T) {
	table := GenerateCombinations([]models.VariantOption{{Name: "Size", Values: []string{"S", "M"}}})
	assert.Equal(t, []string{"S", "M"}, table.Keys())
}

func TestGenerateCombinationsDuplicateValuesCollapse(t *testing.T) {
	table := GenerateCombinations([]models.VariantOption{{Name: "Size", Values: []string{"S", "S", "M"}}})
	assert.Equal(t, []string{"S", "M"}, table.Keys())
}

func TestParseVariantValues(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", []string{}},
		{"   ", []string{}},
		{"S", []string{"S"}},
		{"S, M ,L", []string{"S", "M", "L"}},
		{"Red,,Blue", []string{"Red", "", "Blue"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVariantValues(tt.raw))
		})
	}
}
