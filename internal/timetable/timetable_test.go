package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDay(t *testing.T) {
	d := New()
	ps := d.Periods()
	require.Len(t, ps, Periods)
	assert.Equal(t, "Korean", ps[0].Subject)
	assert.Equal(t, "Lunch", ps[3].Subject)
	assert.Equal(t, "", ps[5].Subject)
	for _, p := range ps {
		assert.False(t, p.Completed)
		assert.False(t, p.Custom)
	}
}

func TestCycleSubject(t *testing.T) {
	d := New()
	require.True(t, d.CycleSubject(0, 1))
	p, _ := d.Period(0)
	assert.Equal(t, "Math", p.Subject)

	require.True(t, d.CycleSubject(0, -2))
	p, _ = d.Period(0)
	assert.Equal(t, Subjects[len(Subjects)-1], p.Subject, "wraps backwards")

	require.True(t, d.CycleSubject(5, 1))
	p, _ = d.Period(5)
	assert.Equal(t, Subjects[0], p.Subject, "unknown subject starts at the top")

	assert.False(t, d.CycleSubject(Periods, 1))
}

func TestCustomModeFallsBack(t *testing.T) {
	d := New()
	require.True(t, d.EnterCustom(2))
	p, _ := d.Period(2)
	assert.True(t, p.Custom)
	assert.Empty(t, p.Subject)

	require.True(t, d.LeaveCustom(2))
	p, _ = d.Period(2)
	assert.False(t, p.Custom)
	assert.Equal(t, Subjects[0], p.Subject)

	require.True(t, d.SetCustom(2, " Field trip "))
	require.True(t, d.LeaveCustom(2))
	p, _ = d.Period(2)
	assert.Equal(t, "Field trip", p.Subject)
	assert.False(t, d.LeaveCustom(2), "not in custom mode")
}

func TestNotesAndCompletion(t *testing.T) {
	d := New()
	require.True(t, d.SetNote(1, "bring a ruler"))
	require.True(t, d.ToggleComplete(1))
	p, _ := d.Period(1)
	assert.Equal(t, "bring a ruler", p.Note)
	assert.True(t, p.Completed)
	assert.False(t, d.SetNote(-1, "x"))
}

func TestSuggest(t *testing.T) {
	s, ok := Suggest("sciense")
	require.True(t, ok)
	assert.Equal(t, "Science", s)

	s, ok = Suggest("Musc")
	require.True(t, ok)
	assert.Equal(t, "Music", s)

	_, ok = Suggest("math")
	assert.False(t, ok, "exact match needs no suggestion")

	_, ok = Suggest("Pe")
	assert.False(t, ok, "too short to guess")

	_, ok = Suggest("field trip")
	assert.False(t, ok)
}
