// Package store is the in-memory grid and report-box store. It implements
// the command context boundary for the history engine and the grid read
// boundary for the formula evaluator.
package store

import (
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/cellref"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/command"
)

// Store holds cells keyed by coordinate and an ordered box list. It is not
// safe for concurrent use; the engine is single-threaded by design.
type Store struct {
	cells map[cellref.Ref]command.CellData
	boxes []command.Box
}

// New creates an empty store.
func New() *Store {
	return &Store{cells: make(map[cellref.Ref]command.CellData)}
}

// Cell returns the cell at (row, col); the zero CellData for absent cells.
func (s *Store) Cell(row, col int) command.CellData {
	return s.cells[cellref.Ref{Row: row, Col: col}]
}

// SetCell writes raw text and an opaque format to (row, col). Setting an
// empty value with a nil format deletes the cell.
func (s *Store) SetCell(row, col int, value string, format any) {
	ref := cellref.Ref{Row: row, Col: col}
	if value == "" && format == nil {
		delete(s.cells, ref)
		return
	}
	s.cells[ref] = command.CellData{Value: value, Format: format}
}

// RawValue returns the raw stored text at (row, col), satisfying the
// evaluator's grid boundary.
func (s *Store) RawValue(row, col int) string {
	return s.Cell(row, col).Value
}

// Boxes returns the current box list.
func (s *Store) Boxes() []command.Box {
	return s.boxes
}

// SetBoxes replaces the box list.
func (s *Store) SetBoxes(boxes []command.Box) {
	s.boxes = boxes
}

// MutateBoxes replaces the box list with the result of fn applied to the
// current list.
func (s *Store) MutateBoxes(fn func(prev []command.Box) []command.Box) {
	s.boxes = fn(s.boxes)
}

// CellCount returns the number of non-empty cells.
func (s *Store) CellCount() int {
	return len(s.cells)
}
