package gridcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/command"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/formula"
)

func TestSessionEditEvaluateUndo(t *testing.T) {
	s := NewSession(DefaultOptions())

	require.NoError(t, s.SetCellByLabel("A1", "5"))
	require.NoError(t, s.SetCellByLabel("B1", "=A1+3"))

	v, err := s.Value(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)

	v, err = s.Expr("=B1*2")
	require.NoError(t, err)
	assert.Equal(t, 16.0, v)

	require.NoError(t, s.Undo())
	_, err = s.Value(0, 1)
	assert.ErrorIs(t, err, formula.ErrNotANumber)

	require.NoError(t, s.Redo())
	v, err = s.Value(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)
}

func TestSessionKeystrokeCoalescing(t *testing.T) {
	s := NewSession(DefaultOptions())

	require.NoError(t, s.SetCell(0, 0, "1"))
	require.NoError(t, s.SetCell(0, 0, "12"))
	require.NoError(t, s.SetCell(0, 0, "123"))

	assert.Equal(t, 1, s.History().UndoDepth())

	require.NoError(t, s.Undo())
	assert.Equal(t, "", s.Store().RawValue(0, 0))
	assert.False(t, s.CanUndo())
}

func TestSessionTransaction(t *testing.T) {
	s := NewSession(DefaultOptions())

	s.BeginTransaction("paste block")
	require.NoError(t, s.SetCell(0, 0, "1"))
	require.NoError(t, s.SetCell(1, 0, "2"))
	require.NoError(t, s.SetCell(2, 0, "3"))
	s.Commit()

	require.NoError(t, s.Undo())
	assert.Equal(t, 0, s.Store().CellCount())

	require.NoError(t, s.Redo())
	assert.Equal(t, 3, s.Store().CellCount())
}

func TestSessionBoxes(t *testing.T) {
	s := NewSession(DefaultOptions())

	require.NoError(t, s.EditBoxes(command.BoxAdd, []string{"b1"}, func(prev []command.Box) []command.Box {
		return append(prev, command.Box{ID: "b1", Fields: map[string]any{"x": 0}})
	}))
	require.Len(t, s.Store().Boxes(), 1)

	require.NoError(t, s.Undo())
	assert.Empty(t, s.Store().Boxes())
}

func TestSessionBadLabel(t *testing.T) {
	s := NewSession(DefaultOptions())
	err := s.SetCellByLabel("not-a-label", "1")
	assert.ErrorIs(t, err, formula.ErrBadReference)
}

func TestSessionGraphIsStandalone(t *testing.T) {
	s := NewSession(DefaultOptions())

	require.NoError(t, s.SetCellByLabel("A1", "=B1"))

	// the evaluator never populates the graph; wiring it is the caller's choice
	assert.Equal(t, 0, s.Graph().NodeCount())

	s.Graph().AddEdge("A1", "B1")
	assert.Equal(t, []string{"B1"}, s.Graph().Dependencies("A1"))
}
