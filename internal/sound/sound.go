// Package sound plays the short board cues. Playback is fire-and-forget:
// callers never learn whether a cue was heard.
package sound

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

// Cue names a moment that deserves a sound.
type Cue int

const (
	VoteCast Cue = iota
	VoteReveal
	TimerDone
	DiceRoll
	DiceSettle
	PickerDone
)

var cueLabels = map[Cue]string{
	VoteCast:   "Vote cast",
	VoteReveal: "Results are in!",
	TimerDone:  "Time is up",
	DiceRoll:   "Rolling the dice",
	DiceSettle: "Dice settled",
	PickerDone: "We have a winner",
}

func (c Cue) String() string {
	if s, ok := cueLabels[c]; ok {
		return s
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Player plays a cue.
type Player interface {
	Play(cue Cue) error
}

const (
	ModeBell   = "bell"
	ModeNotify = "notify"
	ModeOff    = "off"
)

// New returns the player for mode writing to w. Unknown modes are silent.
func New(mode string, w io.Writer, title string) Player {
	if w == nil {
		return Nop{}
	}
	out := termenv.NewOutput(w)
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeBell:
		return Bell{out: out, only: map[Cue]bool{VoteReveal: true, TimerDone: true, DiceSettle: true, PickerDone: true}}
	case ModeNotify:
		return Notifier{out: out, title: title}
	default:
		return Nop{}
	}
}

// Nop plays nothing.
type Nop struct{}

func (Nop) Play(Cue) error { return nil }

// Bell rings the terminal bell for the cues in only (all cues when empty).
type Bell struct {
	out  *termenv.Output
	only map[Cue]bool
}

func (b Bell) Play(cue Cue) error {
	if len(b.only) > 0 && !b.only[cue] {
		return nil
	}
	_, err := b.out.WriteString("\a")
	return err
}

// Notifier raises a desktop notification (OSC 777) with the cue label.
type Notifier struct {
	out   *termenv.Output
	title string
}

func (n Notifier) Play(cue Cue) error {
	if cue == VoteCast || cue == DiceRoll {
		return nil
	}
	n.out.Notify(n.title, cue.String())
	return nil
}

// Fire returns a command that plays cue and discards the result. Failures
// are logged at debug level only.
func Fire(p Player, cue Cue, logger *slog.Logger) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		if err := p.Play(cue); err != nil && logger != nil {
			logger.Debug("sound cue failed", "cue", cue.String(), "err", err)
		}
		return nil
	}
}
