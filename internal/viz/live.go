package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	predictTicks    = 240
	fitMargin       = 1.2
	zoomStep        = 1.25
	clearanceRange  = 200.0
)

type TickMsg time.Time

// Model is the live view: it owns a context and advances it one tick per
// frame.
type Model struct {
	scenario string
	world    *sim.Context
	initial  *sim.Context
	fps      int

	canvas *Canvas
	scale  float64
	follow int

	running   bool
	predict   bool
	predicted []r2.Vec
	showHelp  bool

	energyHistory []float64
	speedHistory  []float64
	history       []sim.Snapshot
	playHead      int
}

// NewModel wraps c. The context is cloned up front so r can restore it.
func NewModel(scenario string, c *sim.Context, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	m := Model{
		scenario:      scenario,
		world:         c,
		initial:       c.Clone(),
		fps:           fps,
		canvas:        NewCanvas(width, height),
		follow:        -1,
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
		history:       make([]sim.Snapshot, 0, historyCapacity),
		playHead:      -1,
	}
	m.scale = fitScale(c.Snapshot(), width*2, height*4)
	return m
}

// fitScale picks sub-pixels per world unit so every body fits around the
// centre of mass.
func fitScale(snap sim.Snapshot, cw, ch int) float64 {
	com := metrics.CentreOfMass(snap)
	extent := 1.0
	for _, b := range snap.Bodies {
		d := r2.Norm(r2.Sub(b.Position.Vec(), com)) + b.Radius
		extent = math.Max(extent, d)
	}
	return float64(min(cw, ch)) / 2 / (extent * fitMargin)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
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
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "tab":
			m.cycleFollow()
		case "p":
			m.predict = !m.predict
			m.updatePrediction()
		case "+", "=":
			m.scale *= zoomStep
		case "-", "_":
			m.scale /= zoomStep
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			if m.playHead == -1 {
				m.step()
			} else {
				m.playHead++
				if m.playHead >= len(m.history) {
					m.playHead = -1
				}
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.world.Tick()
	snap := m.world.Snapshot()

	m.energyHistory = append(m.energyHistory, metrics.TotalEnergy(snap, m.world.Params()))
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
	if m.follow >= 0 && m.follow < len(snap.Bodies) {
		m.speedHistory = append(m.speedHistory, snap.Bodies[m.follow].Velocity.Magnitude())
		if len(m.speedHistory) > historyCapacity {
			m.speedHistory = m.speedHistory[1:]
		}
	}
	m.history = append(m.history, snap)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
	m.updatePrediction()
}

func (m *Model) updatePrediction() {
	m.predicted = nil
	if !m.predict || m.follow < 0 {
		return
	}
	path, err := m.world.Predict(body.ID(m.follow), predictTicks)
	if err != nil {
		return
	}
	m.predicted = path
}

func (m *Model) cycleFollow() {
	m.follow++
	if m.follow >= m.world.Len() {
		m.follow = -1
	}
	m.speedHistory = m.speedHistory[:0]
	m.updatePrediction()
}

func (m *Model) scrub(dir int) {
	if m.playHead == -1 {
		if len(m.history) == 0 {
			return
		}
		m.playHead = len(m.history) - 1
		m.running = false
	}
	m.playHead += dir
	if m.playHead < 0 {
		m.playHead = 0
	}
	if m.playHead >= len(m.history) {
		m.playHead = -1
	}
}

// reset restores the context captured by NewModel.
func (m *Model) reset() {
	m.world = m.initial.Clone()
	m.energyHistory = m.energyHistory[:0]
	m.speedHistory = m.speedHistory[:0]
	m.history = m.history[:0]
	m.playHead = -1
	m.updatePrediction()
}

// current is the snapshot on screen: the replay frame or the live state.
func (m Model) current() sim.Snapshot {
	if m.playHead >= 0 && m.playHead < len(m.history) {
		return m.history[m.playHead]
	}
	return m.world.Snapshot()
}

func (m Model) centre(snap sim.Snapshot) r2.Vec {
	if m.follow >= 0 && m.follow < len(snap.Bodies) {
		return snap.Bodies[m.follow].Position.Vec()
	}
	return metrics.CentreOfMass(snap)
}

// project maps world coordinates (y up) onto canvas sub-pixels (y down).
func (m Model) project(p, centre r2.Vec) (int, int) {
	cw, ch := m.canvas.Width*2, m.canvas.Height*4
	d := r2.Scale(m.scale, r2.Sub(p, centre))
	return cw/2 + int(math.Round(d.X)), ch/2 - int(math.Round(d.Y))
}

func (m Model) draw(snap sim.Snapshot) {
	m.canvas.Clear()
	centre := m.centre(snap)

	for _, b := range snap.Bodies {
		for i := 1; i < len(b.Trail); i++ {
			x0, y0 := m.project(b.Trail[i-1], centre)
			x1, y1 := m.project(b.Trail[i], centre)
			m.canvas.DrawLine(x0, y0, x1, y1)
		}
	}

	for i, p := range m.predicted {
		if i%3 != 0 {
			continue
		}
		x, y := m.project(p, centre)
		m.canvas.Set(x, y)
	}

	for _, b := range snap.Bodies {
		x, y := m.project(b.Position.Vec(), centre)
		if b.Vehicle {
			m.canvas.DrawCross(x, y, 2)
			continue
		}
		m.canvas.DrawCircle(x, y, int(math.Round(b.Radius*m.scale)))
	}
}

func (m Model) View() string {
	snap := m.current()
	m.draw(snap)

	t := CurrentTheme
	header := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1)
	label := lipgloss.NewStyle().Foreground(t.Muted).Width(10)
	value := fg(t.Text)

	status := "RUNNING"
	switch {
	case m.playHead != -1 && !m.running:
		status = fmt.Sprintf("REPLAY PAUSED (%d)", snap.Tick)
	case m.playHead != -1:
		status = fmt.Sprintf("REPLAYING (%d)", snap.Tick)
	case !m.running:
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(header.Render(strings.ToUpper(m.scenario)) + "\n")
	s.WriteString(fg(t.Accent).Render(status) + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(fg(t.Good).Render(chart) + "\n\n")
	}

	s.WriteString(label.Render("Tick") + value.Render(fmt.Sprintf("%d", snap.Tick)) + "\n")
	s.WriteString(label.Render("Zoom") + value.Render(fmt.Sprintf("%.3f", m.scale)) + "\n")
	follow := "centre of mass"
	if m.follow >= 0 && m.follow < len(snap.Bodies) {
		follow = snap.Bodies[m.follow].Label
	}
	s.WriteString(label.Render("Follow") + value.Render(follow) + "\n")
	if len(m.speedHistory) > 0 {
		s.WriteString(label.Render("Speed") + Sparkline(m.speedHistory, 30) + "\n")
	}
	s.WriteString("\n")

	for _, b := range snap.Bodies {
		line := fmt.Sprintf("%-8s %7.1f %7.1f  v=%.2f", b.Label, b.Position.X, b.Position.Y, b.Velocity.Magnitude())
		s.WriteString(value.Render(line) + "\n")
		if !b.Vehicle {
			continue
		}
		if planet, gap, ok := clearance(snap, b); ok {
			s.WriteString(fmt.Sprintf("         %s %.0f to %s\n", ProgressBar(gap/clearanceRange, 16), gap, planet))
		}
	}

	s.WriteString(fg(t.Muted).MarginTop(1).Render("\nSP:Pause R:Reset Q:Quit\nTAB:Follow P:Predict +/-:Zoom\n[ ]:Replay T:Theme ?:Help"))

	canvasView := lipgloss.NewStyle().Padding(1, 2).Render(m.canvas.String())
	stats := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.Muted).
		Padding(1, 2).
		Width(45).
		Render(s.String())
	view := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, stats)

	if m.showHelp {
		return helpText + "\n\n" + view
	}
	return view
}

// clearance returns the nearest planet to b and the gap between their
// surfaces. The gap is negative while they overlap.
func clearance(snap sim.Snapshot, b sim.BodyState) (string, float64, bool) {
	label, best, found := "", math.Inf(1), false
	for _, p := range snap.Bodies {
		if p.Vehicle || p.ID == b.ID {
			continue
		}
		gap := r2.Norm(r2.Sub(p.Position.Vec(), b.Position.Vec())) - p.Radius - b.Radius
		if gap < best {
			label, best, found = p.Label, gap, true
		}
	}
	return label, best, found
}

const helpText = `
  Space   pause or resume
  R       reset to the initial scenario
  Tab     follow the next body
  P       toggle trajectory prediction
  + / -   zoom
  [ / ]   step through recent ticks
  T       cycle themes
  Q       quit`

// RunLive opens the full-screen view for c.
func RunLive(scenario string, c *sim.Context, fps int) error {
	_, err := tea.NewProgram(NewModel(scenario, c, fps), tea.WithAltScreen()).Run()
	return err
}
