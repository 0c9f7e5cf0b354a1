package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/mvail/lifelab/internal/config"
	"github.com/mvail/lifelab/internal/life"
)

const historyCapacity = 600

const (
	minFPS = 1
	maxFPS = 60
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model holds the universe being stepped plus the view's playback state.
type Model struct {
	universe *life.Universe
	initial  *life.Universe
	alive    rune
	dead     rune
	gen      int
	fps      int
	running  bool
	history  []float64
}

// NewModel wraps a universe for live viewing. The initial state is kept for
// reset.
func NewModel(u *life.Universe, cfg *config.Config) Model {
	alive, dead := cfg.Glyphs()
	return Model{
		universe: u,
		initial:  u.Clone(),
		alive:    alive,
		dead:     dead,
		fps:      cfg.FPS,
		running:  true,
		history:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the universe on frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.step()
			}
		case "r":
			m.reset()
		case "+", "=":
			if m.fps < maxFPS {
				m.fps++
			}
		case "-", "_":
			if m.fps > minFPS {
				m.fps--
			}
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

// step advances one generation and records the population.
func (m *Model) step() {
	m.universe.Tick()
	m.gen++
	m.history = append(m.history, float64(m.universe.Population()))
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

// reset restores the starting universe.
func (m *Model) reset() {
	m.universe = m.initial.Clone()
	m.gen = 0
	m.history = m.history[:0]
}

// View renders the board next to a stats panel.
func (m Model) View() string {
	board := canvasStyle.Render(m.universe.RenderGlyphs(m.alive, m.dead))

	var s strings.Builder
	s.WriteString(headerStyle.Render("GAME OF LIFE") + "\n")

	status := StatusRunning.Render("RUNNING")
	if !m.running {
		status = StatusPaused.Render("PAUSED")
	}
	s.WriteString(fmt.Sprintf("%s\n\n", status))

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("Population"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	pop := m.universe.Population()
	cells := m.universe.Width() * m.universe.Height()
	density := float64(pop) / float64(cells)

	s.WriteString(labelStyle.Render("Generation") + valueStyle.Render(fmt.Sprintf("%d", m.gen)) + "\n")
	s.WriteString(labelStyle.Render("Population") + valueStyle.Render(fmt.Sprintf("%d", pop)) + "\n")
	s.WriteString(labelStyle.Render("Density") + valueStyle.Render(fmt.Sprintf("%.1f%% ", density*100)) + ProgressBar(density, 10) + "\n")
	s.WriteString(labelStyle.Render("Grid") + valueStyle.Render(fmt.Sprintf("%dx%d", m.universe.Width(), m.universe.Height())) + "\n")
	s.WriteString(labelStyle.Render("FPS") + valueStyle.Render(fmt.Sprintf("%d", m.fps)) + "\n")

	if len(m.history) > 1 {
		s.WriteString("\n" + SparklineChart(m.history, 30) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause N:Step R:Reset\n+/-:Speed Q:Quit"))

	stats := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, board, stats)
}
