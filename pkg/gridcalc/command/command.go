// Package command defines the reversible-mutation contract every user-visible
// edit flows through, together with the concrete cell and report-box commands.
package command

// Scope identifies which part of the document a command mutates.
type Scope string

const (
	// ScopeSheet marks commands mutating the cell grid.
	ScopeSheet Scope = "sheet"
	// ScopeReport marks commands mutating the report-box canvas.
	ScopeReport Scope = "report"
)

// CellData is a single stored cell: raw text plus an opaque format payload.
type CellData struct {
	Value  string
	Format any
}

// Box is an opaque report-canvas record. Only the ID is interpreted by this
// package; Fields carry whatever the host renders.
type Box struct {
	ID     string
	Fields map[string]any
}

// Context is the boundary through which commands read and write the host's
// grid and box state. The history engine never touches the store directly.
type Context interface {
	Cell(row, col int) CellData
	SetCell(row, col int, value string, format any)
	Boxes() []Box
	SetBoxes(boxes []Box)
	MutateBoxes(fn func(prev []Box) []Box)
}

// Command is a reversible mutation. Undo is called at most once per Do and
// must restore the state Do observed.
type Command interface {
	Name() string
	Scope() Scope
	Do(ctx Context) error
	Undo(ctx Context) error
}

// Merger is implemented by commands that can coalesce with a directly
// following command. Merge returns a replacement command and true, or
// (nil, false) to refuse. The replacement is a new value; the original is
// never mutated in place.
type Merger interface {
	Merge(next Command) (Command, bool)
}

// Compound replays an ordered list of commands: forward for Do, in reverse
// for Undo. A fault from any inner command aborts the replay and propagates.
type Compound struct {
	name string
	cmds []Command
}

// NewCompound wraps cmds into a single command with the given name.
func NewCompound(name string, cmds []Command) *Compound {
	return &Compound{name: name, cmds: cmds}
}

func (c *Compound) Name() string { return c.name }

// Scope returns the scope of the first inner command.
func (c *Compound) Scope() Scope {
	if len(c.cmds) == 0 {
		return ScopeSheet
	}
	return c.cmds[0].Scope()
}

func (c *Compound) Do(ctx Context) error {
	for _, cmd := range c.cmds {
		if err := cmd.Do(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compound) Undo(ctx Context) error {
	for i := len(c.cmds) - 1; i >= 0; i-- {
		if err := c.cmds[i].Undo(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of inner commands.
func (c *Compound) Len() int { return len(c.cmds) }
