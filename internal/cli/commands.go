// Package cli provides the Cobra-based catalogctl tool for working with
// catalog data offline.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/javajoker/catalog-admin/internal/models"
	"github.com/javajoker/catalog-admin/internal/services"
	"github.com/javajoker/catalog-admin/internal/utils"
)

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Offline tools for the catalog admin service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return utils.ConfigureLogger(strings.ToLower(logLevel), "text")
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level")

	root.AddCommand(newCombinationsCmd(), newValidateCmd(), newExportCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func newCombinationsCmd() *cobra.Command {
	var variantFlags []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "combinations",
		Short:   "Print the combinations generated for a set of variant options",
		Example: `  catalogctl combinations --variant Size=S,M --variant Color=Red,Blue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			variants, err := parseVariantFlags(variantFlags)
			if err != nil {
				return err
			}
			table := services.GenerateCombinations(variants)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(table)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "COMBINATION\tSKU\tQUANTITY\tIN STOCK")
			for _, row := range table.Rows() {
				fmt.Fprintf(tw, "%s\t%s\t\t%t\n", row.Name, row.SKU, row.InStock)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d combinations\n", table.Len())
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&variantFlags, "variant", nil, "variant option as Name=v1,v2 (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the table as JSON")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate DRAFT.json",
		Short: "Check whether a product draft can be committed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read draft: %w", err)
			}

			draft := models.NewProductDraft()
			if err := json.Unmarshal(data, &draft); err != nil {
				return fmt.Errorf("decode draft: %w", err)
			}

			if err := draft.Validate(); err != nil {
				var invalid *models.InvalidDraftError
				if errors.As(err, &invalid) {
					return fmt.Errorf("draft is incomplete: %s %s", invalid.Field, invalid.Reason)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "draft %q is valid: %d combinations, final price %.2f INR\n",
				draft.Name, draft.Combinations.Len(), services.FinalPrice(draft.PriceINR, draft.Discount))
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var snapshot, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Convert a catalog snapshot into an xlsx report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			state, err := services.NewSnapshotService(nil).Load(ctx, snapshot)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := services.NewExportService().WriteWorkbook(f, state); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d products, %d categories\n",
				output, len(state.Products), len(state.Categories))
			return nil
		},
	}
	cmd.Flags().StringVar(&snapshot, "snapshot", "./public/data.json", "snapshot file path or http(s) URL")
	cmd.Flags().StringVarP(&output, "out", "o", "catalog.xlsx", "output file")
	return cmd
}

// parseVariantFlags turns Name=v1,v2 flags into variant options in flag order.
func parseVariantFlags(flags []string) ([]models.VariantOption, error) {
	variants := make([]models.VariantOption, 0, len(flags))
	for _, f := range flags {
		name, values, ok := strings.Cut(f, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --variant %q: want Name=v1,v2", f)
		}
		variants = append(variants, models.VariantOption{
			Name:   strings.TrimSpace(name),
			Values: services.ParseVariantValues(values),
		})
	}
	return variants, nil
}
