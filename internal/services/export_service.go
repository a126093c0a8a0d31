// internal/services/export_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/javajoker/catalog-admin/internal/models"
)

const (
	SheetProducts     = "Products"
	SheetCombinations = "Combinations"
	SheetCategories   = "Categories"

	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	productHeader     = []interface{}{"Name", "Category", "Brand", "Description", "Image", "Variants", "Price (INR)", "Discount Method", "Discount Value", "Final Price (INR)"}
	combinationHeader = []interface{}{"Product", "Combination", "SKU", "Quantity", "In Stock"}
	categoryHeader    = []interface{}{"ID", "Name"}
)

// ExportService renders catalog state as an xlsx workbook for the reports tab.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func (s *ExportService) Workbook(state models.CatalogState) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetProducts); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	for _, name := range []string{SheetCombinations, SheetCategories} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	products := [][]interface{}{productHeader}
	combinations := [][]interface{}{combinationHeader}
	for _, p := range state.Products {
		products = append(products, []interface{}{
			p.Name, p.Category, p.Brand, p.Description, p.Image,
			formatVariants(p.Variants),
			p.PriceINR, string(p.Discount.Method), p.Discount.Value,
			FinalPrice(p.PriceINR, p.Discount),
		})
		for _, row := range p.Combinations.Rows() {
			var qty interface{} = ""
			if row.Quantity != nil {
				qty = *row.Quantity
			}
			combinations = append(combinations, []interface{}{p.Name, row.Name, row.SKU, qty, row.InStock})
		}
	}

	categories := [][]interface{}{categoryHeader}
	for _, c := range state.Categories {
		categories = append(categories, []interface{}{c.ID, c.Name})
	}

	for sheet, rows := range map[string][][]interface{}{
		SheetProducts:     products,
		SheetCombinations: combinations,
		SheetCategories:   categories,
	} {
		if err := writeRows(f, sheet, rows, bold); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

// WriteWorkbook streams the workbook for state to w.
func (s *ExportService) WriteWorkbook(w io.Writer, state models.CatalogState) error {
	buf, err := s.Workbook(state)
	if err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, headerStyle)
}

// formatVariants renders options as "Size: S, M; Color: Red".
func formatVariants(variants []models.VariantOption) string {
	parts := make([]string, len(variants))
	for i, v := range variants {
		parts[i] = v.Name + ": " + strings.Join(v.Values, ", ")
	}
	return strings.Join(parts, "; ")
}
