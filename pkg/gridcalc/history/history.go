// Package history implements a linear undo/redo stack over commands, with
// transaction batching, top-of-stack command coalescing, and a
// deferred-binding proxy for UI code wired up before the engine exists.
//
// The engine is single-threaded and cooperative: every operation runs to
// completion on the calling goroutine, and the reentrancy guard is a plain
// boolean. It is not safe for concurrent use.
package history

import (
	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/command"
)

// transaction accumulates commands pushed between BeginTransaction and
// Commit or Rollback.
type transaction struct {
	name string
	cmds []command.Command
}

// History executes commands against a context and records them for undo.
type History struct {
	ctx  command.Context
	undo []command.Command
	redo []command.Command
	tx   *transaction

	// limit caps the undo stack; 0 means unbounded. Oldest entries are
	// evicted from the head.
	limit int

	// applying is set while Undo/Redo runs so their side effects cannot be
	// mistaken for new user edits.
	applying bool
}

// New creates a history engine mutating state through ctx. limit caps the
// undo stack (0 = unbounded).
func New(ctx command.Context, limit int) *History {
	return &History{ctx: ctx, limit: limit}
}

// Push executes cmd immediately and records it. While a transaction is open
// the command is appended to the batch; otherwise Push first offers cmd to
// the top of the undo stack for merging, and failing that pushes it. Any
// path that touches the undo stack clears the redo stack. Push is a no-op
// while a programmatic undo or redo is in flight.
func (h *History) Push(cmd command.Command) error {
	if h.applying {
		return nil
	}

	if err := cmd.Do(h.ctx); err != nil {
		return err
	}

	if h.tx != nil {
		h.tx.cmds = append(h.tx.cmds, cmd)
		return nil
	}

	if len(h.undo) > 0 {
		if m, ok := h.undo[len(h.undo)-1].(command.Merger); ok {
			if merged, ok := m.Merge(cmd); ok {
				h.undo[len(h.undo)-1] = merged
				h.redo = nil
				return nil
			}
		}
	}

	h.pushUndo(cmd)
	h.redo = nil
	return nil
}

func (h *History) pushUndo(cmd command.Command) {
	h.undo = append(h.undo, cmd)
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = h.undo[1:]
	}
}

// BeginTransaction opens a batch. A nested call is ignored: the original
// name and accumulated commands win.
func (h *History) BeginTransaction(name string) {
	if h.tx != nil {
		return
	}
	h.tx = &transaction{name: name}
}

// Commit wraps the open transaction's commands into one compound command
// and pushes it onto the undo stack, clearing the redo stack. The commands
// have already run; the compound is not re-executed. An empty or absent
// transaction is a no-op.
func (h *History) Commit() {
	tx := h.tx
	h.tx = nil
	if tx == nil || len(tx.cmds) == 0 {
		return
	}
	name := "batch: " + tx.cmds[0].Name()
	h.pushUndo(command.NewCompound(name, tx.cmds))
	h.redo = nil
}

// Rollback undoes the open transaction's commands in reverse order against
// the live context and discards the batch. The stacks are untouched. A
// fault from an inner Undo propagates.
func (h *History) Rollback() error {
	tx := h.tx
	h.tx = nil
	if tx == nil {
		return nil
	}
	for i := len(tx.cmds) - 1; i >= 0; i-- {
		if err := tx.cmds[i].Undo(h.ctx); err != nil {
			return err
		}
	}
	return nil
}

// Undo pops the undo stack, reverts the command, and pushes it onto the
// redo stack. No-op when the stack is empty.
func (h *History) Undo() error {
	if len(h.undo) == 0 {
		return nil
	}
	cmd := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	h.applying = true
	err := cmd.Undo(h.ctx)
	h.applying = false
	if err != nil {
		return err
	}

	h.redo = append(h.redo, cmd)
	return nil
}

// Redo pops the redo stack, re-applies the command, and pushes it back onto
// the undo stack. No-op when the stack is empty.
func (h *History) Redo() error {
	if len(h.redo) == 0 {
		return nil
	}
	cmd := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	h.applying = true
	err := cmd.Do(h.ctx)
	h.applying = false
	if err != nil {
		return err
	}

	h.undo = append(h.undo, cmd)
	return nil
}

// CanUndo reports whether an undo step exists: a non-empty undo stack or an
// open transaction holding at least one command.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0 || (h.tx != nil && len(h.tx.cmds) > 0)
}

// CanRedo reports whether a redo step exists.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoDepth returns the number of entries on the undo stack.
func (h *History) UndoDepth() int { return len(h.undo) }

// RedoDepth returns the number of entries on the redo stack.
func (h *History) RedoDepth() int { return len(h.redo) }
