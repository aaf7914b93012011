// Package roster holds the fixed list of participants shown on the board and
// the single entry point through which widgets change a participant.
package roster

import (
	"fmt"
	"slices"
)

// Emotion is one of the six symbols a participant can show.
type Emotion int

const (
	Happy Emotion = iota
	Love
	Sad
	Angry
	Sleepy
	Neutral
)

// Emotions lists every emotion in cycle order. Neutral is last.
var Emotions = []Emotion{Happy, Love, Sad, Angry, Sleepy, Neutral}

var emotionSymbols = map[Emotion]string{
	Happy:   "😊",
	Love:    "😍",
	Sad:     "😢",
	Angry:   "😡",
	Sleepy:  "😴",
	Neutral: "😐",
}

var emotionNames = map[Emotion]string{
	Happy:   "happy",
	Love:    "love",
	Sad:     "sad",
	Angry:   "angry",
	Sleepy:  "sleepy",
	Neutral: "neutral",
}

func (e Emotion) Symbol() string {
	if s, ok := emotionSymbols[e]; ok {
		return s
	}
	return emotionSymbols[Neutral]
}

func (e Emotion) String() string {
	if s, ok := emotionNames[e]; ok {
		return s
	}
	return fmt.Sprintf("emotion(%d)", int(e))
}

// Next returns the emotion a short interaction moves to. Leaving Neutral
// always lands on the first non-neutral value.
func (e Emotion) Next() Emotion {
	if e == Neutral {
		return Emotions[0]
	}
	idx := slices.Index(Emotions, e)
	if idx < 0 {
		return Emotions[0]
	}
	return Emotions[(idx+1)%len(Emotions)]
}

const (
	// Size is the number of numbered participants.
	Size = 25
	// SupervisorID identifies the single supervisor entry.
	SupervisorID   = 999
	supervisorName = "Teacher"
)

// Participant is a tracked person on the board.
type Participant struct {
	ID      int
	Name    string
	Emotion Emotion
	Star    bool
}

func (p Participant) IsSupervisor() bool { return p.ID == SupervisorID }

// Patch carries field-level updates. Nil fields are left untouched.
type Patch struct {
	Emotion *Emotion
	Star    *bool
}

// WithEmotion returns a Patch that sets the emotion.
func WithEmotion(e Emotion) Patch { return Patch{Emotion: &e} }

// WithStar returns a Patch that sets the commendation flag.
func WithStar(v bool) Patch { return Patch{Star: &v} }

// Roster is the ordered participant list. The structure is fixed after New;
// fields change only through Update.
type Roster struct {
	participants []Participant
	index        map[int]int
}

// New builds the startup roster: participants 1..Size followed by the supervisor.
func New() *Roster {
	ps := make([]Participant, 0, Size+1)
	for i := 1; i <= Size; i++ {
		ps = append(ps, Participant{ID: i, Name: fmt.Sprintf("%d", i), Emotion: Neutral})
	}
	ps = append(ps, Participant{ID: SupervisorID, Name: supervisorName, Emotion: Neutral})
	return fromParticipants(ps)
}

func fromParticipants(ps []Participant) *Roster {
	r := &Roster{participants: ps, index: make(map[int]int, len(ps))}
	for i, p := range ps {
		r.index[p.ID] = i
	}
	return r
}

func (r *Roster) Len() int { return len(r.participants) }

// All returns a copy of the participants in display order.
func (r *Roster) All() []Participant {
	return slices.Clone(r.participants)
}

// At returns the participant at display position i.
func (r *Roster) At(i int) (Participant, bool) {
	if i < 0 || i >= len(r.participants) {
		return Participant{}, false
	}
	return r.participants[i], true
}

func (r *Roster) Get(id int) (Participant, bool) {
	i, ok := r.index[id]
	if !ok {
		return Participant{}, false
	}
	return r.participants[i], true
}

// Update applies patch to the participant with id and reports whether the
// participant exists.
func (r *Roster) Update(id int, patch Patch) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	p := &r.participants[i]
	if patch.Emotion != nil {
		p.Emotion = *patch.Emotion
	}
	if patch.Star != nil {
		p.Star = *patch.Star
	}
	return true
}

// Students returns every participant except the supervisor.
func (r *Roster) Students() []Participant {
	out := make([]Participant, 0, len(r.participants))
	for _, p := range r.participants {
		if p.IsSupervisor() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// EmotionCount is one bar of the emotion statistics.
type EmotionCount struct {
	Emotion Emotion
	Count   int
}

// Tally counts participants per non-neutral emotion, in cycle order, and
// returns the number of participants with a non-neutral emotion.
func (r *Roster) Tally() ([]EmotionCount, int) {
	counts := make(map[Emotion]int, len(Emotions))
	for _, p := range r.participants {
		counts[p.Emotion]++
	}
	out := make([]EmotionCount, 0, len(Emotions)-1)
	active := 0
	for _, e := range Emotions {
		if e == Neutral {
			continue
		}
		out = append(out, EmotionCount{Emotion: e, Count: counts[e]})
		active += counts[e]
	}
	return out, active
}

// Stars returns how many participants carry a commendation.
func (r *Roster) Stars() int {
	n := 0
	for _, p := range r.participants {
		if p.Star {
			n++
		}
	}
	return n
}
