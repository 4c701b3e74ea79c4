package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orbitsim/internal/experiment"
)

const (
	stateMenu = iota
	stateSim
)

var scenarioInfo = map[string]string{
	"binary": "two planets falling together",
	"orbit":  "a vehicle in a circular orbit",
	"duel":   "two pilots around a moon system",
	"impact": "a vehicle hitting a planet",
}

// picker lists the registered scenarios and hands the chosen one to a
// live Model.
type picker struct {
	state     int
	cursor    int
	scenarios []string
	registry  *experiment.Registry
	fps       int
	err       error
	live      Model
}

func newPicker(r *experiment.Registry, fps int) picker {
	return picker{registry: r, scenarios: r.ListScenarios(), fps: fps}
}

func (m picker) Init() tea.Cmd { return nil }

func (m picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateSim {
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.scenarios)-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.start()
	}
	return m, nil
}

func (m picker) start() (tea.Model, tea.Cmd) {
	if len(m.scenarios) == 0 {
		return m, nil
	}
	name := m.scenarios[m.cursor]
	cfg, err := m.registry.GetScenario(name)
	if err != nil {
		m.err = err
		return m, nil
	}
	c, err := experiment.Build(cfg)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.live = NewModel(name, c, m.fps)
	m.state = stateSim
	m.err = nil
	return m, m.live.Init()
}

func (m picker) View() string {
	if m.state == stateSim {
		return m.live.View()
	}

	t := CurrentTheme
	var b strings.Builder
	b.WriteString("\n\n    " + lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render("ORBITSIM"))
	b.WriteString("\n    " + fg(t.Muted).Render("orbital arcade sandbox") + "\n\n")

	for i, name := range m.scenarios {
		desc := scenarioInfo[name]
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				fg(t.Primary).Bold(true).Render("▸"),
				fg(t.Text).Bold(true).Render(fmt.Sprintf("%-10s", name)),
				fg(t.Accent).Render(desc)))
			continue
		}
		b.WriteString(fmt.Sprintf("      %s  %s\n", fg(t.Muted).Render(fmt.Sprintf("%-10s", name)), fg(t.Muted).Render(desc)))
	}

	if m.err != nil {
		b.WriteString("\n    " + fg(t.Bad).Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + fg(t.Muted).Render("j/k navigate  enter select  q quit") + "\n")
	return b.String()
}

// RunInteractive opens the scenario picker.
func RunInteractive(r *experiment.Registry, fps int) error {
	_, err := tea.NewProgram(newPicker(r, fps), tea.WithAltScreen()).Run()
	return err
}
