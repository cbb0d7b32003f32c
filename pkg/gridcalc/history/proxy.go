package history

import (
	"log/slog"
	"time"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/command"
)

// warnInterval is the minimum gap between unbound-call warnings.
const warnInterval = 500 * time.Millisecond

// Proxy exposes the History surface before the real engine exists, so UI
// code can be wired up ahead of store initialization. While unbound, every
// mutating call is dropped (not queued) and counted, and a warning is
// logged at most once per warnInterval. CanUndo and CanRedo degrade to
// false without warning, since callers poll them continuously.
type Proxy struct {
	real    *History
	dropped int

	log      *slog.Logger
	lastWarn time.Time
	now      func() time.Time
}

// NewProxy creates an unbound proxy. A nil logger falls back to
// slog.Default().
func NewProxy(log *slog.Logger) *Proxy {
	if log == nil {
		log = slog.Default()
	}
	return &Proxy{log: log, now: time.Now}
}

// Bind attaches the real engine. Calls dropped before binding are not
// replayed.
func (p *Proxy) Bind(real *History) {
	p.real = real
}

// Bound reports whether a real engine is attached.
func (p *Proxy) Bound() bool { return p.real != nil }

// Dropped returns the number of calls discarded while unbound.
func (p *Proxy) Dropped() int { return p.dropped }

func (p *Proxy) drop(op string) {
	p.dropped++
	if now := p.now(); now.Sub(p.lastWarn) >= warnInterval {
		p.lastWarn = now
		p.log.Warn("history call dropped: engine not bound", "op", op, "dropped", p.dropped)
	}
}

// Push forwards to the real engine, or drops the command while unbound.
func (p *Proxy) Push(cmd command.Command) error {
	if p.real == nil {
		p.drop("push")
		return nil
	}
	return p.real.Push(cmd)
}

// BeginTransaction forwards to the real engine.
func (p *Proxy) BeginTransaction(name string) {
	if p.real == nil {
		p.drop("beginTransaction")
		return
	}
	p.real.BeginTransaction(name)
}

// Commit forwards to the real engine.
func (p *Proxy) Commit() {
	if p.real == nil {
		p.drop("commit")
		return
	}
	p.real.Commit()
}

// Rollback forwards to the real engine.
func (p *Proxy) Rollback() error {
	if p.real == nil {
		p.drop("rollback")
		return nil
	}
	return p.real.Rollback()
}

// Undo forwards to the real engine.
func (p *Proxy) Undo() error {
	if p.real == nil {
		p.drop("undo")
		return nil
	}
	return p.real.Undo()
}

// Redo forwards to the real engine.
func (p *Proxy) Redo() error {
	if p.real == nil {
		p.drop("redo")
		return nil
	}
	return p.real.Redo()
}

// CanUndo returns false while unbound.
func (p *Proxy) CanUndo() bool {
	if p.real == nil {
		return false
	}
	return p.real.CanUndo()
}

// CanRedo returns false while unbound.
func (p *Proxy) CanRedo() bool {
	if p.real == nil {
		return false
	}
	return p.real.CanRedo()
}
