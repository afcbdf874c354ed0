package appstate

// TickResult describes what a Machine did during one Tick.
type TickResult struct {
	// Accepted is set on the tick a change request was taken from the inbox.
	// The overlay frame has been popped and live players should be removed.
	Accepted bool
	// Committed is set on the tick the pending change was applied.
	Committed bool
	Mode      Mode
}

type command struct {
	target    Mode
	remaining float64
}

// Machine wraps a Stack with a deferred change queue. Requests made during a
// frame land in an inbox; Tick takes the latest one, pops the interrupted
// overlay, and applies the target after delay seconds. A Tick either accepts
// a request or commits one, never both.
type Machine struct {
	stack   *Stack
	delay   float64
	inbox   []Mode
	pending *command
}

func NewMachine(initial Mode, delay float64) *Machine {
	return &Machine{stack: NewStack(initial), delay: delay}
}

func (m *Machine) Stack() *Stack { return m.stack }

func (m *Machine) Top() Mode { return m.stack.Top() }

func (m *Machine) Push(mode Mode) { m.stack.Push(mode) }

func (m *Machine) Pop() (Mode, error) { return m.stack.Pop() }

func (m *Machine) Set(mode Mode) { m.stack.Set(mode) }

// Request asks for the base mode to become target. It takes effect through
// Tick.
func (m *Machine) Request(target Mode) {
	m.inbox = append(m.inbox, target)
}

// Pending is the number of change commands not yet committed.
func (m *Machine) Pending() int {
	n := len(m.inbox)
	if m.pending != nil {
		n++
	}
	return n
}

// PendingTarget reports the mode a queued change will commit to.
func (m *Machine) PendingTarget() (Mode, bool) {
	if m.pending == nil {
		return 0, false
	}
	return m.pending.target, true
}

// Tick advances the queue by dt seconds.
func (m *Machine) Tick(dt float64) (TickResult, error) {
	if len(m.inbox) > 0 {
		target := m.inbox[len(m.inbox)-1]
		m.inbox = m.inbox[:0]
		if m.pending != nil {
			m.pending = &command{target: target, remaining: m.delay}
			return TickResult{Accepted: true, Mode: target}, nil
		}
		if m.stack.Top().IsOverlay() {
			if _, err := m.stack.Pop(); err != nil {
				return TickResult{}, err
			}
		}
		m.pending = &command{target: target, remaining: m.delay}
		return TickResult{Accepted: true, Mode: target}, nil
	}

	if m.pending == nil {
		return TickResult{}, nil
	}
	m.pending.remaining -= dt
	if m.pending.remaining > 0 {
		return TickResult{}, nil
	}
	target := m.pending.target
	m.pending = nil
	m.stack.Set(target)
	return TickResult{Committed: true, Mode: target}, nil
}
