// Package wordcloud collects submitted words. Words are only ever added or
// grown; the whole cloud can be cleared behind a two-step confirmation.
package wordcloud

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jyj1227/class-board/internal/confirm"
	"github.com/jyj1227/class-board/internal/reveal"
)

const (
	MinStartSize = 40
	StartSpread  = 20
	SizeStep     = 10
	MaxSize      = 150

	// RotateChance is the percentage of words drawn tilted.
	RotateChance = 30
	MaxRotation  = 10
)

// Colors is the palette new words draw from.
var Colors = []string{
	"#ef4444", "#f97316", "#f59e0b", "#22c55e", "#10b981",
	"#14b8a6", "#06b6d4", "#0ea5e9", "#3b82f6", "#6366f1",
	"#8b5cf6", "#a855f7", "#d946ef", "#ec4899", "#f43f5e",
}

// Word is one entry of the cloud.
type Word struct {
	ID       string
	Text     string
	Count    int
	Size     int
	Color    string
	Rotation int
}

// Cloud is the ordered set of submitted words.
type Cloud struct {
	words []Word
	clear confirm.Guard
	rng   reveal.Rand
	now   func() time.Time
	newID func() string
}

func New(rng reveal.Rand) *Cloud {
	c := &Cloud{
		clear: confirm.Guard{Window: confirm.DefaultWindow},
		rng:   rng,
		now:   time.Now,
		newID: uuid.NewString,
	}
	if c.rng == nil {
		c.rng = reveal.NewRand()
	}
	return c
}

// Words returns a copy in submission order.
func (c *Cloud) Words() []Word { return slices.Clone(c.words) }

func (c *Cloud) Len() int { return len(c.words) }

// Add submits text. Blank text is ignored. A word already in the cloud grows
// instead of being duplicated.
func (c *Cloud) Add(text string) (Word, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Word{}, false
	}
	if i := slices.IndexFunc(c.words, func(w Word) bool { return w.Text == text }); i >= 0 {
		w := &c.words[i]
		w.Count++
		w.Size = min(w.Size+SizeStep, MaxSize)
		return *w, true
	}
	w := Word{
		ID:       c.newID(),
		Text:     text,
		Count:    1,
		Size:     MinStartSize + c.rng.IntN(StartSpread),
		Color:    c.color(),
		Rotation: c.rotation(),
	}
	c.words = append(c.words, w)
	return w, true
}

func (c *Cloud) color() string { return Colors[c.rng.IntN(len(Colors))] }

func (c *Cloud) rotation() int {
	if c.rng.IntN(100) >= RotateChance {
		return 0
	}
	return c.rng.IntN(2*MaxRotation) - MaxRotation
}

// Shuffle re-rolls color and rotation of every word.
func (c *Cloud) Shuffle() {
	for i := range c.words {
		c.words[i].Color = c.color()
		c.words[i].Rotation = c.rotation()
	}
}

// Clear is two-step like the vote reset: the first call arms and returns a
// token for expiry, the second call inside the window empties the cloud.
func (c *Cloud) Clear() (cleared bool, token int) {
	ok, token := c.clear.Press(c.now())
	if ok {
		c.words = nil
	}
	return ok, token
}

func (c *Cloud) ClearArmed() bool { return c.clear.Armed(c.now()) }
func (c *Cloud) ExpireClear(token int) bool { return c.clear.Expire(token) }

// Ranked returns the words ordered by count, largest first; ties keep
// submission order.
func (c *Cloud) Ranked() []Word {
	out := slices.Clone(c.words)
	slices.SortStableFunc(out, func(a, b Word) int { return b.Count - a.Count })
	return out
}
