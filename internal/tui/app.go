// Package tui is the terminal shell: a header with the live clock and tab
// strip, a status line, the active widget and a footer of scoped key hints.
package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jyj1227/class-board/internal/logging"
	"github.com/jyj1227/class-board/internal/reveal"
	"github.com/jyj1227/class-board/internal/roster"
	"github.com/jyj1227/class-board/internal/sound"
)

type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	View(m *Model, width, height int) string
}

type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// TabDeactivator is told when the shell leaves the tab.
type TabDeactivator interface {
	Deactivate(m *Model)
}

// InputCapturer reports whether a text field currently owns the keyboard.
// While it does, shell shortcuts other than ctrl+c are not applied.
type InputCapturer interface {
	Capturing() bool
}

type Options struct {
	Title        string
	ClockFormat  string
	TimerMinutes int
	Bindings     []KeyBinding
	Sound        sound.Player
	Logger       *slog.Logger
	Rand         reveal.Rand
	Now          func() time.Time
}

type Model struct {
	width       int
	height      int
	title       string
	clockFormat string
	clock       time.Time
	tabs        []Tab
	activeTab   int
	keys        *KeyRegistry
	status      string
	statusErr   bool
	quitting    bool

	Roster *roster.Roster
	Sound  sound.Player
	Log    *slog.Logger
	now    func() time.Time
}

// New builds the board with its ten widgets.
func New(opts Options) Model {
	if opts.Title == "" {
		opts.Title = "Our Class Board"
	}
	if opts.ClockFormat == "" {
		opts.ClockFormat = "2006-01-02 15:04:05"
	}
	if opts.TimerMinutes <= 0 {
		opts.TimerMinutes = 5
	}
	if opts.Bindings == nil {
		opts.Bindings = DefaultKeyBindings()
	}
	if opts.Sound == nil {
		opts.Sound = sound.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Rand == nil {
		opts.Rand = reveal.NewRand()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	tabs := []Tab{
		newEmotionsTab(),
		newStatsTab(),
		newTimetableTab(),
		newTimerTab(time.Duration(opts.TimerMinutes) * time.Minute),
		newDiceTab(opts.Rand),
		newPickerTab(opts.Rand),
		newMemoTab(),
		newNoticeTab(),
		newVoteTab(),
		newWordCloudTab(opts.Rand),
	}
	return NewModel(tabs, NewKeyRegistry(opts.Bindings), opts)
}

// NewModel assembles a shell around the given tabs.
func NewModel(tabs []Tab, keys *KeyRegistry, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return Model{
		tabs:        tabs,
		keys:        keys,
		title:       opts.Title,
		clockFormat: opts.ClockFormat,
		clock:       now(),
		status:      "Ready",
		width:       100,
		height:      32,
		Roster:      roster.New(),
		Sound:       opts.Sound,
		Log:         logger,
		now:         now,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs)+1)
	cmds = append(cmds, clockTick())
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

// Now is the board clock. Tests replace it.
func (m *Model) Now() time.Time { return m.now() }

// Cue plays a sound without blocking the update loop.
func (m *Model) Cue(c sound.Cue) tea.Cmd {
	return sound.Fire(m.Sound, c, m.Log)
}

func (m Model) ActiveTab() Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab]
}

func (m Model) ActiveScope() string {
	t := m.ActiveTab()
	if t == nil {
		return "app"
	}
	if c, ok := t.(InputCapturer); ok && c.Capturing() {
		return scopeInput
	}
	return t.Scope()
}

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) || index == m.activeTab {
		return
	}
	if d, ok := m.tabs[m.activeTab].(TabDeactivator); ok {
		d.Deactivate(m)
	}
	m.activeTab = index
	m.SetStatus(m.tabs[index].Title())
}
