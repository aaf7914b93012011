// Package vote implements the classroom vote: configure a topic and its
// options, collect blind votes, reveal the tally, and reset or edit.
//
// The session moves through three phases:
//
//	Configuring -> Collecting <-> Revealed
//	     ^______________|____________|   (EditVote)
//
// Option structure and text can only change while Configuring. Counts only
// grow while Collecting and are cleared only by a confirmed ResetVotes.
package vote

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jyj1227/class-board/internal/confirm"
)

// Phase is the vote session state.
type Phase int

const (
	Configuring Phase = iota
	Collecting
	Revealed
)

func (p Phase) String() string {
	switch p {
	case Configuring:
		return "configuring"
	case Collecting:
		return "collecting"
	case Revealed:
		return "revealed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

const (
	MinOptions = 2
	MaxOptions = 15

	// CelebrationWindow is how long the reveal effect stays on screen.
	CelebrationWindow = 2500 * time.Millisecond
	// ResetWindow is how long a first reset press waits for confirmation.
	ResetWindow = confirm.DefaultWindow
)

// Palette assigns option colors in creation order.
var Palette = []string{
	"#f87171", "#fb923c", "#fbbf24", "#4ade80",
	"#34d399", "#2dd4bf", "#22d3ee", "#60a5fa",
	"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6", "#fb7185",
}

// Option is one answer in the vote.
type Option struct {
	ID    string
	Text  string
	Count int
	Color string
}

// ResetOutcome describes what a ResetVotes call did.
type ResetOutcome int

const (
	ResetRejected ResetOutcome = iota
	ResetArmed
	ResetCleared
)

func (o ResetOutcome) String() string {
	switch o {
	case ResetArmed:
		return "armed"
	case ResetCleared:
		return "cleared"
	default:
		return "rejected"
	}
}

// Session is a single vote. It is not safe for concurrent use; the board
// drives it from one event loop.
type Session struct {
	topic   string
	options []Option
	phase   Phase
	reset   confirm.Guard

	celebrateUntil time.Time
	celebrateToken int

	now   func() time.Time
	newID func() string
}

// New returns a session in Configuring with the minimum number of empty
// options.
func New() *Session {
	s := &Session{
		reset: confirm.Guard{Window: ResetWindow},
		now:   time.Now,
		newID: uuid.NewString,
	}
	for range MinOptions {
		s.options = append(s.options, s.makeOption(""))
	}
	return s
}

func (s *Session) makeOption(text string) Option {
	return Option{
		ID:    s.newID(),
		Text:  text,
		Color: Palette[len(s.options)%len(Palette)],
	}
}

func (s *Session) Phase() Phase  { return s.phase }
func (s *Session) Topic() string { return s.topic }

// Options returns a copy of the options in display order.
func (s *Session) Options() []Option { return slices.Clone(s.options) }

func (s *Session) Option(id string) (Option, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Option{}, false
	}
	return s.options[i], true
}

func (s *Session) indexOf(id string) int {
	return slices.IndexFunc(s.options, func(o Option) bool { return o.ID == id })
}

// SetTopic replaces the question text. Configuring only.
func (s *Session) SetTopic(text string) bool {
	if s.phase != Configuring {
		return false
	}
	s.topic = text
	return true
}

// AddOption appends an empty option. It is a no-op at MaxOptions.
func (s *Session) AddOption() (Option, bool) {
	if s.phase != Configuring || len(s.options) >= MaxOptions {
		return Option{}, false
	}
	opt := s.makeOption("")
	s.options = append(s.options, opt)
	return opt, true
}

// RemoveOption deletes the option with id. It is a no-op when only
// MinOptions remain.
func (s *Session) RemoveOption(id string) bool {
	if s.phase != Configuring || len(s.options) <= MinOptions {
		return false
	}
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.options = slices.Delete(s.options, i, i+1)
	return true
}

// UpdateOptionText sets the label of an option. Configuring only.
func (s *Session) UpdateOptionText(id, text string) bool {
	if s.phase != Configuring {
		return false
	}
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.options[i].Text = text
	return true
}

// StartVote opens collection with results hidden.
func (s *Session) StartVote() bool {
	if s.phase != Configuring {
		return false
	}
	s.phase = Collecting
	s.reset.Disarm()
	return true
}

// Cast adds exactly one vote to the option with id. Collecting only.
func (s *Session) Cast(id string) bool {
	if s.phase != Collecting {
		return false
	}
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.options[i].Count++
	return true
}

// ShowResults reveals (true) or hides (false) the tally. Revealing starts the
// celebration window.
func (s *Session) ShowResults(show bool) bool {
	switch {
	case show && s.phase == Collecting:
		s.phase = Revealed
		s.celebrateToken++
		s.celebrateUntil = s.now().Add(CelebrationWindow)
		return true
	case !show && s.phase == Revealed:
		s.phase = Collecting
		return true
	default:
		return false
	}
}

// ToggleResults flips between Collecting and Revealed.
func (s *Session) ToggleResults() bool {
	return s.ShowResults(s.phase == Collecting)
}

// Celebrating reports whether the reveal effect is still running.
func (s *Session) Celebrating() bool {
	return !s.celebrateUntil.IsZero() && s.now().Before(s.celebrateUntil)
}

// CelebrationToken identifies the latest reveal effect.
func (s *Session) CelebrationToken() int { return s.celebrateToken }

// EndCelebration stops the reveal effect started under token.
func (s *Session) EndCelebration(token int) bool {
	if token != s.celebrateToken || s.celebrateUntil.IsZero() {
		return false
	}
	s.celebrateUntil = time.Time{}
	return true
}

// ResetVotes is a two-step action. The first call arms a confirmation for
// ResetWindow and returns its token; a second call while armed zeroes all
// counts and hides the results.
func (s *Session) ResetVotes() (ResetOutcome, int) {
	if s.phase == Configuring {
		return ResetRejected, 0
	}
	confirmed, token := s.reset.Press(s.now())
	if !confirmed {
		return ResetArmed, token
	}
	for i := range s.options {
		s.options[i].Count = 0
	}
	s.phase = Collecting
	return ResetCleared, 0
}

// ResetArmed reports whether the next ResetVotes would clear the counts.
func (s *Session) ResetArmed() bool {
	return s.phase != Configuring && s.reset.Armed(s.now())
}

// ExpireReset disarms the confirmation armed under token.
func (s *Session) ExpireReset(token int) bool {
	return s.reset.Expire(token)
}

// EditVote returns to Configuring. Texts and counts are kept.
func (s *Session) EditVote() bool {
	if s.phase == Configuring {
		return false
	}
	s.phase = Configuring
	s.reset.Disarm()
	s.celebrateUntil = time.Time{}
	return true
}

// Total is the number of votes cast across all options.
func (s *Session) Total() int {
	total := 0
	for _, o := range s.options {
		total += o.Count
	}
	return total
}

// Percent returns count as a rounded share of the total, or 0 when no votes
// have been cast.
func (s *Session) Percent(count int) int {
	return Percent(count, s.Total())
}

// Percent returns round(count/total*100), or 0 when total is 0.
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// Leaders returns the options sharing the highest non-zero count.
func (s *Session) Leaders() []Option {
	best := 0
	for _, o := range s.options {
		best = max(best, o.Count)
	}
	if best == 0 {
		return nil
	}
	var out []Option
	for _, o := range s.options {
		if o.Count == best {
			out = append(out, o)
		}
	}
	return out
}

// Label returns the option text, or a numbered placeholder when blank.
func Label(o Option, position int) string {
	if t := strings.TrimSpace(o.Text); t != "" {
		return t
	}
	return fmt.Sprintf("Option %d", position+1)
}
