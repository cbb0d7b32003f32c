package command

import (
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/cellref"
)

// SetCell writes raw text (and an optional format) to one grid cell. The
// pre-edit cell is captured lazily on the first Do and survives any number
// of merges, so Undo always restores the state before the first keystroke.
type SetCell struct {
	row, col int
	value    string
	format   any

	before   CellData
	captured bool
}

// NewSetCell creates a cell-edit command targeting the zero-based (row, col).
func NewSetCell(row, col int, value string, format any) *SetCell {
	return &SetCell{row: row, col: col, value: value, format: format}
}

func (c *SetCell) Name() string {
	return "set cell " + cellref.Encode(cellref.Ref{Row: c.row, Col: c.col})
}

func (c *SetCell) Scope() Scope { return ScopeSheet }

func (c *SetCell) Do(ctx Context) error {
	if !c.captured {
		c.before = ctx.Cell(c.row, c.col)
		c.captured = true
	}
	ctx.SetCell(c.row, c.col, c.value, c.format)
	return nil
}

func (c *SetCell) Undo(ctx Context) error {
	ctx.SetCell(c.row, c.col, c.before.Value, c.before.Format)
	return nil
}

// Merge coalesces a burst of edits to the same cell into a single undo step:
// the replacement keeps this command's before state and adopts the newest
// value and format.
func (c *SetCell) Merge(next Command) (Command, bool) {
	n, ok := next.(*SetCell)
	if !ok || n.row != c.row || n.col != c.col {
		return nil, false
	}
	return &SetCell{
		row:      c.row,
		col:      c.col,
		value:    n.value,
		format:   n.format,
		before:   c.before,
		captured: c.captured,
	}, true
}
