// Package gesture tells a short press from a sustained hold, per target.
//
// A press starts a pending hold. If the hold timer reaches Threshold before
// release the hold fires once and the release is swallowed; a release before
// that is a tap. Leaving the target cancels the pending press with no effect.
package gesture

import "time"

// Threshold separates a tap from a hold.
const Threshold = 600 * time.Millisecond

// Outcome is what a release or timer event resolved to.
type Outcome int

const (
	None Outcome = iota
	Tap
	Hold
)

func (o Outcome) String() string {
	switch o {
	case Tap:
		return "tap"
	case Hold:
		return "hold"
	default:
		return "none"
	}
}

type press struct {
	token int
	start time.Time
	held  bool
}

// Tracker owns at most one pending press per target id.
type Tracker struct {
	Threshold time.Duration

	pending map[int]press
	seq     int
}

func NewTracker() *Tracker {
	return &Tracker{Threshold: Threshold, pending: make(map[int]press)}
}

func (t *Tracker) threshold() time.Duration {
	if t.Threshold <= 0 {
		return Threshold
	}
	return t.Threshold
}

// Press starts a pending press on id at now, replacing any earlier one, and
// returns the token the hold timer must carry.
func (t *Tracker) Press(id int, now time.Time) int {
	if t.pending == nil {
		t.pending = make(map[int]press)
	}
	t.seq++
	t.pending[id] = press{token: t.seq, start: now}
	return t.seq
}

// Expire is called when the hold timer for id fires. It returns Hold exactly
// once per press, and only if token still names the pending press.
func (t *Tracker) Expire(id, token int) Outcome {
	p, ok := t.pending[id]
	if !ok || p.token != token || p.held {
		return None
	}
	p.held = true
	t.pending[id] = p
	return Hold
}

// Release ends the press on id at now. A press released before the
// threshold is a Tap. A press that outlived the threshold but whose timer
// has not been delivered yet resolves to Hold here, so the outcome never
// depends on event ordering.
func (t *Tracker) Release(id int, now time.Time) Outcome {
	p, ok := t.pending[id]
	if !ok {
		return None
	}
	delete(t.pending, id)
	switch {
	case p.held:
		return None
	case now.Sub(p.start) >= t.threshold():
		return Hold
	default:
		return Tap
	}
}

// Leave cancels the pending press on id.
func (t *Tracker) Leave(id int) {
	delete(t.pending, id)
}

// CancelAll drops every pending press.
func (t *Tracker) CancelAll() {
	clear(t.pending)
}

// Pending reports whether id has a press in progress.
func (t *Tracker) Pending(id int) bool {
	_, ok := t.pending[id]
	return ok
}

// PendingCount returns how many presses are in progress.
func (t *Tracker) PendingCount() int { return len(t.pending) }
