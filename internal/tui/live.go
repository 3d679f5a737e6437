// Package tui is the interactive terminal view of a running world: braille
// canvas on the left, stats panel and kinetic-energy graph on the right.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/metrics"
	"github.com/san-kum/atomsim/internal/render"
	"github.com/san-kum/atomsim/internal/sim"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

type initialState struct {
	pos, vel atom.Vector2
}

// Model drives the live view. It owns the frame loop: one world step per
// tick while running.
type Model struct {
	world         *sim.World
	dt            float64
	t             float64
	running       bool
	selected      int
	canvas        *render.Canvas
	energyHistory []float64
	initial       []initialState
}

func NewModel(world *sim.World, dt, worldW, worldH float64) Model {
	initial := make([]initialState, len(world.Atoms))
	for i, a := range world.Atoms {
		initial[i] = initialState{pos: a.Position, vel: a.Velocity}
	}
	return Model{
		world:         world,
		dt:            dt,
		running:       true,
		selected:      -1,
		canvas:        render.NewCanvas(canvasWidth, canvasHeight, worldW, worldH),
		energyHistory: make([]float64, 0, historyCapacity),
		initial:       initial,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "tab":
			m.cycleSelected()
		}
	case TickMsg:
		if m.running {
			m.world.Step(m.dt)
			m.t += m.dt
			m.energyHistory = append(m.energyHistory, metrics.Kinetic(m.world))
			if len(m.energyHistory) > historyCapacity {
				m.energyHistory = m.energyHistory[1:]
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// cycleSelected moves the selection flag to the next atom, or clears it
// past the end.
func (m *Model) cycleSelected() {
	if m.selected >= 0 && m.selected < len(m.world.Atoms) {
		m.world.Atoms[m.selected].Selected = false
	}
	m.selected++
	if m.selected >= len(m.world.Atoms) {
		m.selected = -1
		return
	}
	m.world.Atoms[m.selected].Selected = true
}

func (m *Model) reset() {
	m.t = 0
	m.energyHistory = m.energyHistory[:0]
	for i, a := range m.world.Atoms {
		if i < len(m.initial) {
			a.Position = m.initial[i].pos
			a.Velocity = m.initial[i].vel
		}
	}
}

func (m Model) View() string {
	m.canvas.Clear()
	for _, a := range m.world.Atoms {
		a.Draw(m.canvas)
	}

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("ATOMSIM") + "\n")
	s.WriteString(status + "\n")

	left := canvasStyle.Render(m.canvas.String())
	right := statsStyle.Render(m.statsView())
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	if len(m.energyHistory) > 1 {
		graph := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(6), asciigraph.Width(60),
			asciigraph.Caption("kinetic energy"))
		s.WriteString("\n" + graphStyle.Render(graph))
	}

	s.WriteString(helpStyle.Render("\n[space] pause  [tab] select atom  [r] reset  [q] quit"))
	return s.String()
}

func (m Model) statsView() string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}

	row("time", fmt.Sprintf("%.2fs", m.t))
	row("atoms", fmt.Sprintf("%d", len(m.world.Atoms)))
	row("bonds", fmt.Sprintf("%d", len(m.world.Bonds)))
	row("kinetic", fmt.Sprintf("%.3f", metrics.Kinetic(m.world)))

	if m.selected >= 0 && m.selected < len(m.world.Atoms) {
		a := m.world.Atoms[m.selected]
		st := a.Style()
		b.WriteString("\n")
		row("selected", a.Props.Symbol)
		row("id", a.ID)
		row("position", fmt.Sprintf("(%.1f, %.1f)", a.Position.X, a.Position.Y))
		row("speed", fmt.Sprintf("%.3f", a.Velocity.Length()))
		row("radius", fmt.Sprintf("%.1f", a.AnimatedSize()))
		row("color", st.Color)
		row("font size", fmt.Sprintf("%.0f", st.SymbolFontSize))
	}

	return b.String()
}
