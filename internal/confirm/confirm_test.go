package confirm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGuardNeedsTwoPresses(t *testing.T) {
	var g Guard
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	ok, token := g.Press(now)
	require.False(t, ok)
	require.NotZero(t, token)
	require.True(t, g.Armed(now.Add(time.Second)))

	ok, _ = g.Press(now.Add(2 * time.Second))
	require.True(t, ok)
	require.False(t, g.Armed(now.Add(2*time.Second)))
}

func TestGuardLapsedWindowRearms(t *testing.T) {
	g := Guard{Window: 3 * time.Second}
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	ok, first := g.Press(now)
	require.False(t, ok)

	ok, second := g.Press(now.Add(3*time.Second + time.Millisecond))
	require.False(t, ok, "window lapsed, second press must arm again")
	require.NotEqual(t, first, second)
	require.True(t, g.Armed(now.Add(4*time.Second)))
}

func TestGuardExpireIgnoresStaleToken(t *testing.T) {
	var g Guard
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	_, first := g.Press(now)
	g.Disarm()
	_, second := g.Press(now.Add(time.Second))

	require.False(t, g.Expire(first))
	require.True(t, g.Armed(now.Add(2*time.Second)))
	require.True(t, g.Expire(second))
	require.False(t, g.Armed(now.Add(2*time.Second)))
	require.False(t, g.Expire(second))
}
