// Package timer implements the per-event competition stopwatch.
//
// The clock is server-authoritative: every elapsed value is derived from an
// origin timestamp taken on the server, never from a client clock. Browsers
// poll Query at a sub-second interval and reconcile their local countdowns
// against the ServerTime returned with each snapshot, which keeps operator,
// coach and spectator screens consistent without a persistent socket.
package timer

import "time"

// State is the stopwatch record for one event.
//
// Exactly one of three shapes holds at any time:
//   - idle:    StartedAt == nil, Running == false, FinalMs == nil
//   - running: StartedAt != nil, Running == true
//   - stopped: Running == false, FinalMs != nil
type State struct {
	StartedAt  *time.Time
	Running    bool
	HeatNumber int
	FinalMs    *int64
}

// Snapshot is the client-facing view of a timer at one server instant.
type Snapshot struct {
	ElapsedMs  int64
	Running    bool
	HeatNumber int
	ServerTime time.Time
}

// Clock supplies the current server time. Injected so transitions are
// deterministic under test.
type Clock func() time.Time

// Machine applies the start/stop/reset transitions against a Store. Each
// transition is a single atomic read-modify-write on the event's record, so
// concurrent operators observe last-writer-wins rather than a corrupted
// origin/running pair.
type Machine struct {
	store Store
	now   Clock
}

// NewMachine creates a timer machine. A nil clock defaults to time.Now.
func NewMachine(store Store, now Clock) *Machine {
	if now == nil {
		now = time.Now
	}
	return &Machine{store: store, now: now}
}

// Start moves the event's timer to running with a fresh origin, from any
// state. Calling Start again while running simply restarts the clock: that is
// the retry semantics the operator screen relies on, not an error. Any
// previously captured final time is discarded.
func (m *Machine) Start(eventID string, heatNumber int) Snapshot {
	now := m.now()
	st := m.store.Update(eventID, func(State) State {
		return State{
			StartedAt:  &now,
			Running:    true,
			HeatNumber: heatNumber,
		}
	})
	return m.snapshot(st, now)
}

// Stop captures a final elapsed time. When explicitMs is non-nil the
// client-pinned split wins; otherwise the elapsed time is computed from the
// server origin. Stop on a timer that is not running is a no-op that returns
// the current snapshot.
func (m *Machine) Stop(eventID string, explicitMs *int64) Snapshot {
	now := m.now()
	st := m.store.Update(eventID, func(cur State) State {
		if !cur.Running {
			return cur
		}
		var final int64
		if explicitMs != nil {
			final = *explicitMs
		} else if cur.StartedAt != nil {
			final = now.Sub(*cur.StartedAt).Milliseconds()
		}
		cur.Running = false
		cur.FinalMs = &final
		return cur
	})
	return m.snapshot(st, now)
}

// Reset returns the event's timer to idle, clearing origin, running flag and
// captured time.
func (m *Machine) Reset(eventID string) Snapshot {
	now := m.now()
	st := m.store.Update(eventID, func(State) State {
		return State{}
	})
	return m.snapshot(st, now)
}

// Query reads the timer without transitioning it.
func (m *Machine) Query(eventID string) Snapshot {
	now := m.now()
	st, _ := m.store.Get(eventID)
	return m.snapshot(st, now)
}

func (m *Machine) snapshot(st State, now time.Time) Snapshot {
	snap := Snapshot{
		Running:    st.Running,
		HeatNumber: st.HeatNumber,
		ServerTime: now,
	}
	switch {
	case st.Running && st.StartedAt != nil:
		snap.ElapsedMs = now.Sub(*st.StartedAt).Milliseconds()
	case st.FinalMs != nil:
		snap.ElapsedMs = *st.FinalMs
	}
	return snap
}
