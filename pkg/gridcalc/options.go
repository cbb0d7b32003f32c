// Package gridcalc wires the calculation engine together: an in-memory
// grid/box store, the command-based undo/redo history, the formula
// evaluator, and a standalone dependency graph.
package gridcalc

import "log/slog"

// Options configures a Session.
type Options struct {
	// HistoryLimit caps the undo stack; 0 keeps it unbounded. When the cap
	// is reached the oldest entry is evicted.
	HistoryLimit int
	// Logger receives engine warnings (currently only unbound-proxy drops).
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns the default session options.
func DefaultOptions() Options {
	return Options{}
}
