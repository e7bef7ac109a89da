package installer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PathStep asks for a path. An empty answer keeps the default; relative paths
// are resolved under the runtime directory at startup.
type PathStep struct {
	key   string
	title string
	def   string
	skip  func(*InstallState) bool
	input textinput.Model
}

func NewPathStep(key, title, def string, skip func(*InstallState) bool) Step {
	ti := textinput.New()
	ti.Focus()
	ti.Placeholder = def
	ti.Width = 50
	return &PathStep{
		key:   key,
		title: title,
		def:   def,
		skip:  skip,
		input: ti,
	}
}

func (s *PathStep) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return nextMsg{} })
}

func (s *PathStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.skip != nil && s.skip(state) {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := strings.TrimSpace(s.input.Value())
		if val == "" {
			val = s.def
		}
		state.EnvVars[s.key] = val
		return nil, nil
	}
	return s, cmd
}

func (s *PathStep) View(state *InstallState) string {
	return s.title + "\n\n" + s.input.View() + "\n\n(press enter to keep the default)\n"
}
