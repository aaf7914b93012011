// Package confirm implements the two-step "press again to confirm" guard
// used by destructive board actions.
package confirm

import "time"

// DefaultWindow is how long an armed guard waits for the second press.
const DefaultWindow = 3 * time.Second

// Guard is armed by a first press and confirmed by a second press inside
// Window. The zero value uses DefaultWindow.
type Guard struct {
	Window time.Duration

	until time.Time
	token int
}

func (g *Guard) window() time.Duration {
	if g.Window <= 0 {
		return DefaultWindow
	}
	return g.Window
}

// Press registers one press at now. It returns confirmed=true when the guard
// was armed and still inside its window; the guard is then disarmed.
// Otherwise the guard is (re)armed and the returned token identifies this
// arming for Expire.
func (g *Guard) Press(now time.Time) (confirmed bool, token int) {
	if g.Armed(now) {
		g.Disarm()
		return true, 0
	}
	g.token++
	g.until = now.Add(g.window())
	return false, g.token
}

// Armed reports whether a second press at now would confirm.
func (g *Guard) Armed(now time.Time) bool {
	return !g.until.IsZero() && now.Before(g.until)
}

// Expire disarms the guard if token still names the current arming. It
// reports whether anything changed.
func (g *Guard) Expire(token int) bool {
	if token != g.token || g.until.IsZero() {
		return false
	}
	g.until = time.Time{}
	return true
}

// Disarm clears any pending arming.
func (g *Guard) Disarm() {
	g.until = time.Time{}
}

// Deadline returns when the current arming lapses, or the zero time.
func (g *Guard) Deadline() time.Time { return g.until }
