package gridcalc

import (
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/cellref"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/command"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/depgraph"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/formula"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/history"
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/store"
)

// Session is one live editing session: a store, the history engine driving
// every mutation to it, and a dependency graph instance available for a
// future incremental-recompute layer. The graph is not populated by the
// evaluator; every read re-walks the full reference chain.
type Session struct {
	store   *store.Store
	history *history.History
	proxy   *history.Proxy
	graph   *depgraph.Graph
}

// NewSession creates a session with an empty store.
func NewSession(opts Options) *Session {
	st := store.New()
	h := history.New(st, opts.HistoryLimit)
	p := history.NewProxy(opts.Logger)
	p.Bind(h)
	return &Session{
		store:   st,
		history: h,
		proxy:   p,
		graph:   depgraph.New(),
	}
}

// Store returns the session's store.
func (s *Session) Store() *store.Store { return s.store }

// History returns the session's history engine.
func (s *Session) History() *history.History { return s.history }

// Proxy returns the history proxy bound to this session's engine.
func (s *Session) Proxy() *history.Proxy { return s.proxy }

// Graph returns the session's dependency graph.
func (s *Session) Graph() *depgraph.Graph { return s.graph }

// SetCell routes a cell edit through the history engine so it can be
// undone, redone, and coalesced with adjacent edits to the same cell.
func (s *Session) SetCell(row, col int, value string) error {
	return s.history.Push(command.NewSetCell(row, col, value, nil))
}

// SetCellByLabel is SetCell addressed with an A1-style label.
func (s *Session) SetCellByLabel(label, value string) error {
	ref, ok := cellref.Decode(label)
	if !ok {
		return &formula.EvalError{Detail: label, Err: formula.ErrBadReference}
	}
	return s.SetCell(ref.Row, ref.Col, value)
}

// Value evaluates the cell at (row, col) on demand.
func (s *Session) Value(row, col int) (float64, error) {
	return formula.Evaluate(s.store, s.store.RawValue(row, col))
}

// Expr evaluates free-standing cell text (a literal or an "="-prefixed
// formula) against the session's grid.
func (s *Session) Expr(text string) (float64, error) {
	return formula.Evaluate(s.store, text)
}

// EditBoxes routes a report-box edit through the history engine.
func (s *Session) EditBoxes(kind command.BoxKind, targetIDs []string, mutate func(prev []command.Box) []command.Box) error {
	return s.history.Push(command.NewEditBoxes(kind, targetIDs, mutate))
}

// BeginTransaction opens an undo batch on the history engine.
func (s *Session) BeginTransaction(name string) { s.history.BeginTransaction(name) }

// Commit closes the open batch into a single undo step.
func (s *Session) Commit() { s.history.Commit() }

// Rollback reverts and discards the open batch.
func (s *Session) Rollback() error { return s.history.Rollback() }

// Undo reverts the most recent undo step.
func (s *Session) Undo() error { return s.history.Undo() }

// Redo re-applies the most recently undone step.
func (s *Session) Redo() error { return s.history.Redo() }

// CanUndo reports whether an undo step exists.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether a redo step exists.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }
