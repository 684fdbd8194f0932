package main

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jacobcolvin/yamlp/internal/yamlevent"
	"github.com/jacobcolvin/yamlp/internal/yamlwrite"
	"github.com/jacobcolvin/yamlp/yamlpath"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().Faint(true)
)

// model is the bubbletea model for yamlp-explore. It keeps one loaded
// document flattened into events, one compiled path reparsed on every
// keystroke, and the rendered projection (or the error that prevented
// one) for View to draw.
type model struct {
	docPath string
	events  []yamlpath.Event

	pathText string
	path     *yamlpath.Path

	output    string
	parseErr  *yamlpath.Error
	filterErr error

	forceFlow bool

	width, height int
}

func newModel(docPath string, src []byte) (*model, error) {
	events, err := yamlevent.Flatten(src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", docPath, err)
	}

	return &model{
		docPath: docPath,
		events:  events,
	}, nil
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyPressMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "backspace":
			if len(m.pathText) > 0 {
				m.pathText = m.pathText[:len(m.pathText)-1]
				m.refilter()
			}

		case "tab":
			m.forceFlow = !m.forceFlow
			m.refilter()

		case "ctrl+r":
			if err := m.reload(); err != nil {
				m.filterErr = err
			}

		case "space":
			m.pathText += " "
			m.refilter()

		case "enter", "up", "down", "left", "right":
			// No effect: the path input has no cursor to move, and the
			// projection is already live.

		default:
			if len([]rune(key)) == 1 {
				m.pathText += key
				m.refilter()
			}
		}
	}

	return m, nil
}

// refilter reparses m.pathText and, on success, reruns the filter over
// the already-loaded event stream.
func (m *model) refilter() {
	m.parseErr = nil
	m.filterErr = nil

	if strings.TrimSpace(m.pathText) == "" {
		m.path = nil
		m.output = ""

		return
	}

	path, err := yamlpath.Parse(m.pathText)
	if err != nil {
		m.path = nil
		m.parseErr = path.Err()

		return
	}

	m.path = path
	m.run()
}

// run writes the filtered projection of m.events through m.path into
// m.output. It does not reparse the path. m.events is replayed through a
// fresh Stream each call, since a Stream is single-pass and the same
// events are re-filtered on every keystroke.
func (m *model) run() {
	stream := yamlevent.StreamFromEvents(m.events)
	out, err := yamlwrite.Write(stream, m.path, yamlwrite.Config{ForceFlow: m.forceFlow})
	if err != nil {
		m.filterErr = err

		return
	}

	m.output = out
}

// reload re-reads the document from disk and, if a path is already
// compiled, replays it against the fresh event stream by resetting the
// existing *yamlpath.Path rather than reparsing pathText. This is the one
// place in this program that exercises reusing a compiled Path across
// more than one input stream.
func (m *model) reload() error {
	src, err := os.ReadFile(m.docPath) //nolint:gosec // File path comes from a CLI argument, as intended.
	if err != nil {
		return fmt.Errorf("opening %s: %w", m.docPath, err)
	}

	events, err := yamlevent.Flatten(src)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", m.docPath, err)
	}

	m.events = events

	if m.path != nil {
		m.path.Reset()
		m.run()
	}

	return nil
}

func (m *model) View() tea.View {
	var b strings.Builder

	b.WriteString(titleStyle.Render("yamlp-explore: " + m.docPath))
	b.WriteString("\n\n")
	b.WriteString(inputStyle.Render("path> " + m.pathText))
	b.WriteString("\n\n")

	switch {
	case m.parseErr != nil:
		b.WriteString(errorStyle.Render(m.parseErr.Error()))
	case m.filterErr != nil:
		b.WriteString(errorStyle.Render(m.filterErr.Error()))
	default:
		b.WriteString(m.output)
	}

	b.WriteString("\n\n")

	flow := "block"
	if m.forceFlow {
		flow = "flow"
	}

	b.WriteString(statusStyle.Render(
		fmt.Sprintf("[%s style, tab: toggle style, ctrl+r: reload, esc: quit]", flow)))

	v := tea.NewView(b.String())
	v.AltScreen = true

	return v
}
