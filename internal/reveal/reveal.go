// Package reveal holds the timed random reveals: the dice roll and the
// random picker. Both enter a transient state, show shuffled values on a
// short tick, then commit a uniformly random result. Each run is identified
// by a token; timer events carrying another token are stale and ignored.
package reveal

import (
	"math/rand/v2"
	"time"
)

// Rand is the randomness source. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a randomly seeded source.
func NewRand() Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

const (
	DiceFaces        = 6
	DiceSettleDelay  = time.Second
	DiceSpinInterval = 100 * time.Millisecond
)

// Dice decides its result when the roll starts and shows it after
// DiceSettleDelay.
type Dice struct {
	rng     Rand
	face    int
	pending int
	rolling bool
	token   int
}

func NewDice(rng Rand) *Dice {
	if rng == nil {
		rng = NewRand()
	}
	return &Dice{rng: rng, face: 1}
}

// Face is the value currently on display.
func (d *Dice) Face() int     { return d.face }
func (d *Dice) Rolling() bool { return d.rolling }

// Roll starts a roll. It is a no-op while a roll is in flight.
func (d *Dice) Roll() (token int, ok bool) {
	if d.rolling {
		return 0, false
	}
	d.rolling = true
	d.pending = d.rng.IntN(DiceFaces) + 1
	d.token++
	return d.token, true
}

// Spin shows a random face while rolling. The committed result is unaffected.
func (d *Dice) Spin(token int) bool {
	if !d.rolling || token != d.token {
		return false
	}
	d.face = d.rng.IntN(DiceFaces) + 1
	return true
}

// Settle commits the result decided at Roll.
func (d *Dice) Settle(token int) (int, bool) {
	if !d.rolling || token != d.token {
		return 0, false
	}
	d.rolling = false
	d.face = d.pending
	return d.face, true
}

const (
	PickerTicks    = 20
	PickerInterval = 100 * time.Millisecond
	HistoryLimit   = 10
)

// Candidate is someone the picker can land on.
type Candidate struct {
	ID   int
	Name string
}

// Step is the result of one picker tick.
type Step struct {
	Shown  Candidate
	Done   bool
	Winner Candidate
}

// Picker shuffles through candidates for PickerTicks ticks and then draws
// the winner.
type Picker struct {
	rng        Rand
	candidates []Candidate
	picking    bool
	token      int
	ticks      int

	shown     Candidate
	hasShown  bool
	winner    Candidate
	hasWinner bool
	history   []Candidate
}

func NewPicker(rng Rand) *Picker {
	if rng == nil {
		rng = NewRand()
	}
	return &Picker{rng: rng}
}

func (p *Picker) Picking() bool { return p.picking }

// Start begins a pick over candidates. It is a no-op while picking or when
// there is nobody to pick.
func (p *Picker) Start(candidates []Candidate) (token int, ok bool) {
	if p.picking || len(candidates) == 0 {
		return 0, false
	}
	p.candidates = append(p.candidates[:0], candidates...)
	p.picking = true
	p.ticks = 0
	p.hasWinner = false
	p.token++
	return p.token, true
}

// Tick advances the shuffle. The last tick draws and records the winner.
func (p *Picker) Tick(token int) (Step, bool) {
	if !p.picking || token != p.token {
		return Step{}, false
	}
	p.shown = p.draw()
	p.hasShown = true
	p.ticks++
	if p.ticks < PickerTicks {
		return Step{Shown: p.shown}, true
	}
	p.winner = p.draw()
	p.shown = p.winner
	p.hasWinner = true
	p.picking = false
	p.history = append([]Candidate{p.winner}, p.history...)
	if len(p.history) > HistoryLimit {
		p.history = p.history[:HistoryLimit]
	}
	return Step{Shown: p.winner, Done: true, Winner: p.winner}, true
}

func (p *Picker) draw() Candidate {
	return p.candidates[p.rng.IntN(len(p.candidates))]
}

// Shown is the candidate on display, if any.
func (p *Picker) Shown() (Candidate, bool) { return p.shown, p.hasShown }

// Winner is the last committed pick, if any.
func (p *Picker) Winner() (Candidate, bool) { return p.winner, p.hasWinner }

// History lists past winners, most recent first.
func (p *Picker) History() []Candidate {
	return append([]Candidate(nil), p.history...)
}
