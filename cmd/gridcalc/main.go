// Package main provides the CLI entry point for gridcalc-go.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/cellref"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/formula"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/xlsxgrid"
)

var (
	sheetName string
	cellLabel string
	exprText  string
	setCells  []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridcalc [workbook.xlsx]",
		Short: "Evaluate spreadsheet formulas over a workbook or inline cells",
		Long: `gridcalc evaluates "="-prefixed formulas (numbers, A1-style references,
+ - * / and parentheses) against a worksheet loaded from an xlsx workbook,
or against cells defined inline with --set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name (default: active sheet)")
	rootCmd.Flags().StringVarP(&cellLabel, "cell", "c", "", "Cell to evaluate, e.g. B2")
	rootCmd.Flags().StringVarP(&exprText, "expr", "e", "", `Expression to evaluate, e.g. "=A1*2"`)
	rootCmd.Flags().StringArrayVar(&setCells, "set", nil, `Inline cell definition, e.g. "A1=5" (repeatable)`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if cellLabel == "" && exprText == "" {
		return fmt.Errorf("nothing to evaluate: pass --cell or --expr")
	}

	grid, err := buildGrid(args)
	if err != nil {
		return err
	}

	if cellLabel != "" {
		ref, ok := cellref.Decode(cellLabel)
		if !ok {
			return fmt.Errorf("invalid cell label: %s", cellLabel)
		}
		v, err := formula.Evaluate(grid, grid.RawValue(ref.Row, ref.Col))
		if err != nil {
			return fmt.Errorf("evaluating %s: %w", strings.ToUpper(cellLabel), err)
		}
		fmt.Println(formatNumber(v))
	}

	if exprText != "" {
		v, err := formula.Evaluate(grid, exprText)
		if err != nil {
			return fmt.Errorf("evaluating expression: %w", err)
		}
		fmt.Println(formatNumber(v))
	}

	return nil
}

// buildGrid loads the workbook sheet when a path is given, otherwise builds
// an in-memory grid from the --set definitions.
func buildGrid(args []string) (formula.Grid, error) {
	if len(args) == 1 {
		if len(setCells) > 0 {
			return nil, fmt.Errorf("--set cannot be combined with a workbook file")
		}
		g, err := xlsxgrid.Load(args[0], sheetName)
		if err != nil {
			return nil, fmt.Errorf("loading workbook: %w", err)
		}
		return g, nil
	}

	session := gridcalc.NewSession(gridcalc.DefaultOptions())
	for _, def := range setCells {
		label, value, ok := strings.Cut(def, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set definition: %q (want LABEL=VALUE)", def)
		}
		if err := session.SetCellByLabel(label, value); err != nil {
			return nil, fmt.Errorf("setting %s: %w", label, err)
		}
	}
	return session.Store(), nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
