package gallery

import "time"

// TimerKind identifies which delayed action a Timer belongs to.
type TimerKind int

const (
	TimerSearch    TimerKind = iota // commit the typed search text
	TimerIndicator                  // clear the filtering indicator
)

func (k TimerKind) String() string {
	switch k {
	case TimerSearch:
		return "search"
	case TimerIndicator:
		return "indicator"
	default:
		return "unknown"
	}
}

// Timer asks the host to call Pipeline.Fire with this value once Delay has
// elapsed. The host never cancels timers itself; stale ones are ignored when
// they fire.
type Timer struct {
	Kind  TimerKind
	Seq   uint64
	Delay time.Duration
}

// Deferred is a cancellable delayed action identified by a sequence number.
// Arming it again supersedes any earlier arm, so only the most recently
// scheduled firing is honoured.
type Deferred struct {
	seq     uint64
	pending bool
}

// Arm schedules a new firing and returns its sequence number.
func (d *Deferred) Arm() uint64 {
	d.seq++
	d.pending = true
	return d.seq
}

// Cancel discards the pending firing, if any.
func (d *Deferred) Cancel() {
	d.pending = false
}

// Pending reports whether a firing is scheduled.
func (d *Deferred) Pending() bool {
	return d.pending
}

// Expire consumes the firing with the given sequence number. It returns false
// when seq is stale or the action was cancelled.
func (d *Deferred) Expire(seq uint64) bool {
	if !d.pending || seq != d.seq {
		return false
	}
	d.pending = false
	return true
}
