package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jdearmas/stopwatch/config"
	"github.com/jdearmas/stopwatch/model"
	"github.com/jdearmas/stopwatch/orglog"
)

type mode int

const (
	modeNormal mode = iota
	modePromptGoal
	modePromptSplit
	modePromptNested
)

// tickMsg drives the live time display while the session is running.
type tickMsg time.Time

func tickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	cfg   config.Config
	clock model.Clock

	timer *model.Timer
	tree  *model.Tree

	mode   mode
	input  textinput.Model
	status string

	// ticking marks an in-flight tick command so pausing and prompting
	// never leave two tick chains running at once.
	ticking bool

	width    int
	height   int
	quitting bool
}

func NewModel(cfg config.Config, clock model.Clock) Model {
	ti := textinput.New()
	ti.CharLimit = 200

	return Model{
		cfg:    cfg,
		clock:  clock,
		timer:  &model.Timer{},
		tree:   model.NewTree(),
		input:  ti,
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.ticking = false
		return m.scheduleTick()

	case tea.KeyMsg:
		if m.mode == modeNormal {
			return m.updateNormal(msg)
		}
		return m.updatePrompt(msg)
	}
	return m, nil
}

// scheduleTick starts the tick chain when the timer is running and no
// prompt is open. While prompting, ticks stop and the displayed time
// freezes until the prompt resolves.
func (m Model) scheduleTick() (Model, tea.Cmd) {
	if m.ticking || m.mode != modeNormal || m.timer.State() != model.StateRunning {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.cfg.TickEvery())
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "s":
		if m.timer.State() == model.StateRunning {
			m.timer.Stop(m.clock())
			return m, nil
		}
		// starting over discards any unsaved session
		return m.enterPrompt(modePromptGoal)

	case "c":
		if m.timer.State() == model.StatePaused {
			m.timer.Resume(m.clock())
			m.status = ""
		}
		return m.scheduleTick()

	case "r":
		m.timer.Reset()
		m.tree.Reset()
		m.status = ""

	case "g":
		if m.timer.State() == model.StateRunning && m.tree.Len() < model.MaxSplits {
			return m.enterPrompt(modePromptSplit)
		}

	case "n":
		if m.timer.State() == model.StateRunning && m.tree.Len() < model.MaxSplits {
			if _, ok := m.tree.Active(); ok {
				return m.enterPrompt(modePromptNested)
			}
		}

	case "h":
		now := m.clock()
		m.tree.CloseActive(m.timer.TotalElapsed(now), now)

	case "u":
		m.tree.Ascend()

	case "d":
		// every message repaints, so a redraw needs no state change
		m.status = ""

	case "t":
		if m.timer.State() == model.StatePaused && m.timer.Goal() != "" {
			now := m.clock()
			recs := orglog.Export(m.timer.Goal(), m.timer.StartedAt(), now,
				m.timer.TotalElapsed(now), m.tree.Splits())
			if err := orglog.Append(m.cfg.LogPath, recs); err == nil {
				m.status = "saved to " + m.cfg.LogPath
			}
			// persistence is best-effort; failures are not surfaced
		}
	}
	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.mode = modeNormal
		return m.scheduleTick()

	case "enter":
		name := strings.TrimSpace(m.input.Value())
		prompt := m.mode
		m.input.Blur()
		m.mode = modeNormal
		m.submit(prompt, name)
		return m.scheduleTick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit applies a finished prompt. Guards are re-checked here because
// state is only frozen for ticks, not for the command itself.
func (m *Model) submit(prompt mode, name string) {
	now := m.clock()
	switch prompt {
	case modePromptGoal:
		m.timer.Start(name, now)
		m.tree.Reset()
		m.status = ""

	case modePromptSplit:
		if m.timer.State() != model.StateRunning {
			return
		}
		_, _ = m.tree.Open(name, m.timer.TotalElapsed(now), now)

	case modePromptNested:
		if m.timer.State() != model.StateRunning {
			return
		}
		_, _ = m.tree.OpenNested(name, m.timer.TotalElapsed(now), now)
	}
}

func (m Model) enterPrompt(prompt mode) (tea.Model, tea.Cmd) {
	m.mode = prompt
	m.input.SetValue("")
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) promptLabel() string {
	switch m.mode {
	case modePromptGoal:
		return "Enter main goal:"
	case modePromptNested:
		return "Enter nested subgoal name:"
	default:
		return "Enter subgoal name:"
	}
}
