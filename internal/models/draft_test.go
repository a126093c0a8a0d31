package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() ProductDraft {
	d := NewProductDraft()
	d.Name = "Runner"
	d.Category = "Shoes"
	d.Brand = "Acme"
	d.PriceINR = 1999
	d.Variants = []VariantOption{{Name: "Size", Values: []string{"S"}}}
	d.Combinations.Put("S", NewCombinationRow("S"))
	return d
}

func TestDraftValidate(t *testing.T) {
	assert.NoError(t, completeDraft().Validate())
	assert.True(t, completeDraft().IsValid())

	tests := []struct {
		field  string
		mutate func(d *ProductDraft)
	}{
		{"name", func(d *ProductDraft) { d.Name = "" }},
		{"category", func(d *ProductDraft) { d.Category = "" }},
		{"brand", func(d *ProductDraft) { d.Brand = "" }},
		{"priceInr", func(d *ProductDraft) { d.PriceINR = 0 }},
		{"priceInr", func(d *ProductDraft) { d.PriceINR = -5 }},
		{"priceInr", func(d *ProductDraft) { d.PriceINR = math.NaN() }},
		{"variants", func(d *ProductDraft) { d.Variants = nil }},
		{"combinations", func(d *ProductDraft) { d.Combinations = NewCombinationTable() }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			d := completeDraft()
			tt.mutate(&d)

			err := d.Validate()
			var invalid *InvalidDraftError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Field)
			assert.False(t, d.IsValid())
		})
	}
}

func TestDraftValidateIgnoresRowContents(t *testing.T) {
	d := completeDraft()
	require.NoError(t, d.Combinations.Update("S", func(row *CombinationRow) {
		row.InStock = true
	}))
	d.Description = ""
	d.Image = ""

	assert.NoError(t, d.Validate())
}

func TestDraftToProductPlaceholder(t *testing.T) {
	d := completeDraft()
	assert.Equal(t, "/placeholder.png", d.ToProduct("/placeholder.png").Image)

	d.Image = "/uploads/a.png"
	assert.Equal(t, "/uploads/a.png", d.ToProduct("/placeholder.png").Image)
}

func TestCombinationTableJSONKeepsOrder(t *testing.T) {
	table := NewCombinationTable()
	for _, k := range []string{"S/Red", "S/Blue", "M/Red"} {
		table.Put(k, NewCombinationRow(k))
	}

	data, err := json.Marshal(table)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"S/Red": {"name":"S/Red","sku":"","quantity":null,"inStock":false},
		"S/Blue": {"name":"S/Blue","sku":"","quantity":null,"inStock":false},
		"M/Red": {"name":"M/Red","sku":"","quantity":null,"inStock":false}
	}`, string(data))

	var back CombinationTable
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, table.Keys(), back.Keys())
}

func TestCombinationTableUpdateUnknownKey(t *testing.T) {
	table := NewCombinationTable()
	err := table.Update("nope", func(*CombinationRow) {})
	assert.ErrorIs(t, err, ErrCombinationNotFound)
}

func TestCombinationTableUnmarshalRejectsArray(t *testing.T) {
	var table CombinationTable
	assert.Error(t, json.Unmarshal([]byte(`[]`), &table))
}
