package installer

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pranavkumar389/downtime-monitor/internal/config"
)

// FinalizationStep fills in values the wizard does not ask for.
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if state.EnvVars[config.EnvDebug] == "" {
		state.EnvVars[config.EnvDebug] = "0"
	}
	if state.EnvVars[config.EnvMetricsInterval] == "" {
		state.EnvVars[config.EnvMetricsInterval] = config.DefaultMetricsInterval.String()
	}
	if state.EnvVars[config.EnvStore] != config.StoreSQLite {
		delete(state.EnvVars, config.EnvDatabase)
	}
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
