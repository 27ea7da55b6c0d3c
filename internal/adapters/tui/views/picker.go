package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"prospector/internal/adapters/tui/styles"
	"prospector/internal/application"
	"prospector/internal/domain"
)

// PickerKeyMap defines key bindings for the project picker view
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Yank   key.Binding
	Rescan key.Binding
	Help   key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+k"),
		key.WithHelp("↑/ctrl+k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+j"),
		key.WithHelp("↓/ctrl+j", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open in editor"),
	),
	Yank: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy path"),
	),
	Rescan: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "rescan"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+h"),
		key.WithHelp("ctrl+h", "help"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter / quit"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// PickerModel is the model for the project picker view. The filter input is
// always focused; navigation happens on control keys so typing just filters.
type PickerModel struct {
	engine *application.Engine
	opts   application.Options

	filter  textinput.Model
	spinner spinner.Model

	loading  bool
	projects []domain.Project
	visible  []domain.Project
	cursor   int

	width      int
	height     int
	message    string
	messageErr bool
}

// NewPickerModel creates a new picker model
func NewPickerModel(engine *application.Engine, opts application.Options) *PickerModel {
	input := textinput.New()
	input.Placeholder = "filter projects (? _ # * wildcards)"
	input.Prompt = styles.FilterPrompt.Render("> ")
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return &PickerModel{
		engine:  engine,
		opts:    opts,
		filter:  input,
		spinner: s,
		loading: true,
	}
}

// Init initializes the picker
func (m *PickerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.discover(false))
}

func (m *PickerModel) discover(forceRescan bool) tea.Cmd {
	opts := m.opts
	opts.ForceRescan = opts.ForceRescan || forceRescan
	engine := m.engine
	return func() tea.Msg {
		projects, err := engine.Discover(context.Background(), opts)
		if err != nil && len(projects) == 0 {
			return discoverErrMsg{err}
		}
		return projectsLoadedMsg{projects: projects, warn: err}
	}
}

type projectsLoadedMsg struct {
	projects []domain.Project
	warn     error
}

type discoverErrMsg struct {
	err error
}

type yankedMsg struct {
	path string
	err  error
}

// OpenEditorMsg asks the application to open a project in the editor
type OpenEditorMsg struct {
	Path string
}

// SwitchToHelpMsg asks the application to show the help view
type SwitchToHelpMsg struct{}

// SwitchToPickerMsg asks the application to return to the picker
type SwitchToPickerMsg struct{}

// Update handles messages for the picker
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case projectsLoadedMsg:
		m.loading = false
		m.projects = msg.projects
		if msg.warn != nil {
			m.message = msg.warn.Error()
			m.messageErr = true
		}
		m.refreshVisible()
		return m, nil

	case discoverErrMsg:
		m.loading = false
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case yankedMsg:
		if msg.err != nil {
			m.message = msg.err.Error()
			m.messageErr = true
		} else {
			m.message = fmt.Sprintf("Copied %s", msg.path)
			m.messageErr = false
		}
		return m, nil

	case tea.KeyMsg:
		m.message = "" // Clear message on key press

		switch {
		case key.Matches(msg, PickerKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, PickerKeys.Clear):
			if m.filter.Value() == "" {
				return m, tea.Quit
			}
			m.filter.SetValue("")
			m.refreshVisible()
			return m, nil

		case key.Matches(msg, PickerKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Open):
			if p := m.Selected(); p != nil {
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: p.Path}
				}
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Yank):
			if p := m.Selected(); p != nil {
				return m, yankPath(p.Path)
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Rescan):
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.discover(true))

		case key.Matches(msg, PickerKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}

		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.refreshVisible()
		return m, cmd
	}

	return m, nil
}

func yankPath(path string) tea.Cmd {
	return func() tea.Msg {
		return yankedMsg{path: path, err: clipboard.WriteAll(path)}
	}
}

// Selected returns the project under the cursor, or nil
func (m *PickerModel) Selected() *domain.Project {
	if m.cursor >= 0 && m.cursor < len(m.visible) {
		return &m.visible[m.cursor]
	}
	return nil
}

// refreshVisible reapplies the filter. The typed text is matched as a
// substring unless it already starts or ends with a wildcard, so incremental
// typing narrows the list the way a fuzzy finder would.
func (m *PickerModel) refreshVisible() {
	expr := strings.TrimSpace(m.filter.Value())
	if expr == "" {
		m.visible = m.projects
		m.clampCursor()
		return
	}

	if !strings.HasPrefix(expr, "*") {
		expr = "*" + expr
	}
	if !strings.HasSuffix(expr, "*") {
		expr += "*"
	}

	query, err := domain.ParseQuery(expr)
	if err != nil {
		m.visible = nil
		m.clampCursor()
		return
	}

	visible := make([]domain.Project, 0, len(m.projects))
	for _, p := range m.projects {
		if query.MatchesProject(p) {
			visible = append(visible, p)
		}
	}
	m.visible = visible
	m.clampCursor()
}

func (m *PickerModel) clampCursor() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the picker
func (m *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Prospector"))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(styles.MutedText.Render(" scanning folders..."))
		b.WriteString("\n")
	case len(m.visible) == 0:
		b.WriteString(styles.MutedText.Render("No projects match."))
		b.WriteString("\n")
	default:
		for i, p := range m.visible {
			b.WriteString(m.renderRow(p, i == m.cursor))
			b.WriteString("\n")
		}
	}

	if m.message != "" {
		b.WriteString("\n")
		if m.messageErr {
			b.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			b.WriteString(styles.Success.Render(m.message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *PickerModel) renderRow(p domain.Project, selected bool) string {
	badges := make([]string, 0, len(p.Kinds))
	for _, kind := range p.Kinds {
		badges = append(badges, styles.KindBadge.Foreground(styles.KindColor(kind)).Render(kind))
	}

	name := p.Name()
	if selected {
		return fmt.Sprintf("%s %s  %s",
			styles.RowSelected.Render(name),
			strings.Join(badges, " "),
			styles.RowPath.Render(p.Path),
		)
	}
	return fmt.Sprintf("%s %s  %s",
		styles.RowName.Render(name),
		strings.Join(badges, " "),
		styles.RowPath.Render(p.Path),
	)
}

func (m *PickerModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "navigate"},
		{"enter", "open"},
		{"ctrl+y", "copy path"},
		{"ctrl+r", "rescan"},
		{"ctrl+h", "help"},
		{"esc", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// SetSize updates the view dimensions
func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reload clears the list and rescans
func (m *PickerModel) Reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.discover(false))
}
