// Package tui is a live terminal view of a running simulation.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/adammck/footstep/components/feet"
	"github.com/adammck/footstep/config"
	"github.com/adammck/footstep/sim"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (

	// How many samples of each foot are kept for the chart.
	historyCapacity = 240

	chartWidth  = 60
	chartHeight = 8
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	movingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	plantedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// lastStep remembers the most recent step edge of either foot.
type lastStep struct {
	ev     feet.Event
	landed bool
	seen   bool
}

func (l *lastStep) StepBegan(e feet.Event) {
	*l = lastStep{ev: e, seen: true}
}

func (l *lastStep) StepLanded(e feet.Event) {
	*l = lastStep{ev: e, landed: true, seen: true}
}

func (l *lastStep) String() string {
	switch {
	case !l.seen:
		return "-"
	case l.landed:
		return fmt.Sprintf("%s landed at %v", l.ev.Foot, l.ev.To)
	default:
		return fmt.Sprintf("%s lifted from %v", l.ev.Foot, l.ev.From)
	}
}

// build makes a fresh simulation which reports its steps to last.
func build(cfg *config.Config, last *lastStep) (*sim.Simulation, error) {
	s, err := sim.Build(cfg, historyCapacity)
	if err != nil {
		return nil, err
	}

	*last = lastStep{}
	s.Observe(last)
	return s, nil
}

type Model struct {
	cfg     *config.Config
	sim     *sim.Simulation
	last    *lastStep
	fps     int
	running bool
	err     error
}

// NewModel builds a simulation from the config, ready to be run by bubbletea at
// fps frames per second. Each frame advances the simulation by as many steps as
// keep it in real time.
func NewModel(cfg *config.Config, fps int) (Model, error) {
	if fps <= 0 {
		fps = 30
	}

	last := &lastStep{}
	s, err := build(cfg, last)
	if err != nil {
		return Model{}, err
	}

	return Model{
		cfg:     cfg,
		sim:     s,
		last:    last,
		fps:     fps,
		running: true,
	}, nil
}

func (m Model) Sim() *sim.Simulation {
	return m.sim
}

func (m Model) Err() error {
	return m.err
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// stepsPerFrame returns the number of simulation steps per rendered frame.
func (m Model) stepsPerFrame() int {
	n := int((1/float64(m.fps))/m.cfg.Dt + 0.5)
	if n < 1 {
		return 1
	}

	return n
}

func (m Model) advance(n int) Model {
	for i := 0; i < n && !m.sim.Done(); i++ {
		if err := m.sim.Step(); err != nil {
			m.err = err
			m.running = false
			return m
		}
	}

	if m.sim.Done() {
		m.running = false
	}

	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.err == nil && !m.sim.Done() {
				m.running = !m.running
			}
		case ".":
			if !m.running && m.err == nil {
				m = m.advance(1)
			}
		case "r":
			s, err := build(m.cfg, m.last)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.sim, m.err, m.running = s, nil, true
		}

	case TickMsg:
		if m.running {
			m = m.advance(m.stepsPerFrame())
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) status() string {
	switch {
	case m.err != nil:
		return errorStyle.Render("ERROR: " + m.err.Error())
	case m.sim.Done():
		return "DONE"
	case !m.running:
		return "PAUSED"
	default:
		return "RUNNING"
	}
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("FOOTSTEP") + "\n")
	s.WriteString(m.status() + "\n\n")

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.sim.Rig.Time)) + "\n")
	s.WriteString(labelStyle.Render("Body") + valueStyle.Render(m.sim.Rig.Pose.String()) + "\n")
	s.WriteString(labelStyle.Render("Walked") + valueStyle.Render(fmt.Sprintf("%.2f", m.sim.Walker.Walked())) + "\n")
	s.WriteString(labelStyle.Render("Last step") + valueStyle.Render(m.last.String()) + "\n\n")

	var series [][]float64
	var names []string
	for _, f := range m.sim.Pair {
		s.WriteString(footLine(f, m.sim.Recorder.Steps(f.Name())) + "\n")

		h := m.sim.Recorder.Heights(f.Name())
		if len(h) > 1 {
			series = append(series, h)
			names = append(names, f.Name())
		}
	}

	if len(series) > 0 {
		chart := asciigraph.PlotMany(series,
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Orange),
			asciigraph.Caption("foot height: "+strings.Join(names, ", ")))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause .:Step R:Reset Q:Quit"))
	return s.String()
}

func footLine(f *feet.Stepper, steps int) string {
	st := f.State()

	state := plantedStyle.Render("planted")
	if st.Moving() {
		state = movingStyle.Render(fmt.Sprintf("moving %3.0f%%", st.Progress*100))
	}

	return labelStyle.Render(f.Name()) + fmt.Sprintf("%-14s", state) + valueStyle.Render(fmt.Sprintf(" %d steps  at %v", steps, st.CurrentPosition))
}

// Run shows the live view until the user quits.
func Run(cfg *config.Config, fps int) error {
	m, err := NewModel(cfg, fps)
	if err != nil {
		return err
	}

	out, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if fm, ok := out.(Model); ok {
		return fm.Err()
	}

	return nil
}
