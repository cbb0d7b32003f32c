// Package xlsxgrid exposes a worksheet from an xlsx workbook as a read-only
// grid for the formula evaluator. Formula cells surface as their raw
// "="-prefixed text, so references are re-resolved by this engine rather
// than trusting cached workbook results.
package xlsxgrid

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/cellref"
)

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the file is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the workbook has no sheet with the given name.
var ErrSheetNotFound = errors.New("sheet not found")

// Grid is an immutable snapshot of one worksheet's raw cell text.
type Grid struct {
	sheet string
	cells map[cellref.Ref]string
}

// Load opens a workbook file and snapshots the named sheet. An empty sheet
// name selects the workbook's active sheet.
func Load(path, sheet string) (*Grid, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return From(f, sheet)
}

// From snapshots the named sheet of an open workbook. The workbook remains
// owned by the caller.
func From(f *excelize.File, sheet string) (*Grid, error) {
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	cells := make(map[cellref.Ref]string)
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			raw, err := rawCellText(f, sheet, rowIdx, colIdx, value)
			if err != nil {
				return nil, err
			}
			if raw == "" {
				continue
			}
			cells[cellref.Ref{Row: rowIdx, Col: colIdx}] = raw
		}
	}

	return &Grid{sheet: sheet, cells: cells}, nil
}

// rawCellText prefers the cell's formula over its cached value.
func rawCellText(f *excelize.File, sheet string, row, col int, value string) (string, error) {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return "", err
	}
	formulaText, err := f.GetCellFormula(sheet, name)
	if err != nil {
		return "", err
	}
	if formulaText != "" {
		return "=" + formulaText, nil
	}
	return value, nil
}

// Sheet returns the snapshotted sheet name.
func (g *Grid) Sheet() string { return g.sheet }

// RawValue returns the raw text at (row, col); empty for absent cells.
func (g *Grid) RawValue(row, col int) string {
	return g.cells[cellref.Ref{Row: row, Col: col}]
}

// CellCount returns the number of non-empty cells in the snapshot.
func (g *Grid) CellCount() int { return len(g.cells) }
