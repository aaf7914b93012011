// Package timetable is the day's period list.
package timetable

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Periods is the number of periods in a school day.
const Periods = 6

// Subjects are the predefined choices, in picker order.
var Subjects = []string{
	"Korean", "Math", "Social Studies", "Science", "English",
	"PE", "Music", "Art", "Ethics", "Practical Arts",
	"Creative Activities", "Safety", "Homeroom", "Club", "Lunch",
}

var defaultSchedule = [Periods]string{"Korean", "Math", "PE", "Lunch", "Science", ""}

const (
	maxSuggestDistance = 2
	minSuggestRunes    = 3
)

// Period is one row of the timetable.
type Period struct {
	Subject   string
	Note      string
	Completed bool
	Custom    bool
}

// Day is the timetable for today.
type Day struct {
	periods [Periods]Period
}

func New() *Day {
	d := &Day{}
	for i, s := range defaultSchedule {
		d.periods[i].Subject = s
	}
	return d
}

// Periods returns a copy of every period, first period first.
func (d *Day) Periods() []Period { return slices.Clone(d.periods[:]) }

func (d *Day) Period(i int) (Period, bool) {
	if i < 0 || i >= Periods {
		return Period{}, false
	}
	return d.periods[i], true
}

// CycleSubject moves period i through the predefined subjects by delta and
// leaves custom mode.
func (d *Day) CycleSubject(i, delta int) bool {
	if i < 0 || i >= Periods {
		return false
	}
	p := &d.periods[i]
	idx := slices.Index(Subjects, p.Subject)
	switch {
	case idx < 0 && delta >= 0:
		idx = 0
	case idx < 0:
		idx = len(Subjects) - 1
	default:
		idx = ((idx+delta)%len(Subjects) + len(Subjects)) % len(Subjects)
	}
	p.Subject = Subjects[idx]
	p.Custom = false
	return true
}

// EnterCustom switches period i to free text, starting empty.
func (d *Day) EnterCustom(i int) bool {
	if i < 0 || i >= Periods {
		return false
	}
	d.periods[i].Custom = true
	d.periods[i].Subject = ""
	return true
}

// SetCustom stores free text for period i.
func (d *Day) SetCustom(i int, text string) bool {
	if i < 0 || i >= Periods {
		return false
	}
	d.periods[i].Custom = true
	d.periods[i].Subject = strings.TrimSpace(text)
	return true
}

// LeaveCustom returns period i to the predefined list. An empty subject
// falls back to the first predefined subject.
func (d *Day) LeaveCustom(i int) bool {
	if i < 0 || i >= Periods || !d.periods[i].Custom {
		return false
	}
	d.periods[i].Custom = false
	if d.periods[i].Subject == "" {
		d.periods[i].Subject = Subjects[0]
	}
	return true
}

func (d *Day) SetNote(i int, note string) bool {
	if i < 0 || i >= Periods {
		return false
	}
	d.periods[i].Note = note
	return true
}

func (d *Day) ToggleComplete(i int) bool {
	if i < 0 || i >= Periods {
		return false
	}
	d.periods[i].Completed = !d.periods[i].Completed
	return true
}

// Suggest returns the predefined subject closest to text when text looks
// like a misspelling of one.
func Suggest(text string) (string, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if utf8.RuneCountInString(text) < minSuggestRunes {
		return "", false
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, s := range Subjects {
		dist := levenshtein.ComputeDistance(text, strings.ToLower(s))
		if dist == 0 {
			return "", false
		}
		if dist < bestDist {
			best, bestDist = s, dist
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
