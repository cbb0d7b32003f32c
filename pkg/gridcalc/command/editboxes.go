package command

import (
	"time"

	"github.com/tiendc/go-deepcopy"
)

// BoxKind classifies a report-box edit.
type BoxKind string

const (
	BoxAdd    BoxKind = "add"
	BoxRemove BoxKind = "remove"
	BoxEdit   BoxKind = "edit"
	BoxMove   BoxKind = "move"
	BoxResize BoxKind = "resize"
	BoxNudge  BoxKind = "nudge"
)

// MergeWindow is the coalescing window for move/resize/nudge box edits.
// Repeated drag deltas inside the window collapse into one undo step.
const MergeWindow = 600 * time.Millisecond

// EditBoxes applies an arbitrary mutation to the box list. The full pre-edit
// list is deep-copied on the first Do so Undo can restore it verbatim.
type EditBoxes struct {
	kind    BoxKind
	targets map[string]struct{}
	mutate  func(prev []Box) []Box
	at      time.Time

	before   []Box
	captured bool
}

// NewEditBoxes creates a box-edit command of the given kind operating on the
// boxes named by targetIDs, stamped with the current time.
func NewEditBoxes(kind BoxKind, targetIDs []string, mutate func(prev []Box) []Box) *EditBoxes {
	targets := make(map[string]struct{}, len(targetIDs))
	for _, id := range targetIDs {
		targets[id] = struct{}{}
	}
	return &EditBoxes{
		kind:    kind,
		targets: targets,
		mutate:  mutate,
		at:      time.Now(),
	}
}

func (c *EditBoxes) Name() string { return string(c.kind) + " boxes" }

func (c *EditBoxes) Scope() Scope { return ScopeReport }

func (c *EditBoxes) Do(ctx Context) error {
	if !c.captured {
		snapshot, err := cloneBoxes(ctx.Boxes())
		if err != nil {
			return err
		}
		c.before = snapshot
		c.captured = true
	}
	ctx.MutateBoxes(c.mutate)
	return nil
}

func (c *EditBoxes) Undo(ctx Context) error {
	// restore a copy so the stored snapshot is never aliased by later edits
	snapshot, err := cloneBoxes(c.before)
	if err != nil {
		return err
	}
	ctx.SetBoxes(snapshot)
	return nil
}

// Merge coalesces consecutive move/resize/nudge edits of the same kind over
// the same target set, provided the next command's timestamp falls within
// MergeWindow of this one's. The replacement keeps this command's before
// snapshot and adopts the newest mutation and timestamp. Add, remove, and
// generic edits never merge.
func (c *EditBoxes) Merge(next Command) (Command, bool) {
	n, ok := next.(*EditBoxes)
	if !ok || n.kind != c.kind || !c.kindMergeable() {
		return nil, false
	}
	if !sameTargets(c.targets, n.targets) {
		return nil, false
	}
	if n.at.Sub(c.at) > MergeWindow {
		return nil, false
	}
	return &EditBoxes{
		kind:     c.kind,
		targets:  c.targets,
		mutate:   n.mutate,
		at:       n.at,
		before:   c.before,
		captured: c.captured,
	}, true
}

func (c *EditBoxes) kindMergeable() bool {
	return c.kind == BoxMove || c.kind == BoxResize || c.kind == BoxNudge
}

func sameTargets(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}

func cloneBoxes(src []Box) ([]Box, error) {
	var dst []Box
	if err := deepcopy.Copy(&dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}
