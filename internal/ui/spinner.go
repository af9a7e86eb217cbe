package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spin runs fn while showing an animated spinner with the given title.
// When interactive is false (scripted mode, no terminal) the title is
// printed once and fn runs directly.
func Spin(p *Printer, title string, interactive bool, fn func() error) error {
	if !interactive {
		p.Infof("%s...", title)
		return fn()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	m := spinModel{sp: sp, title: title, fn: fn}
	final, err := tea.NewProgram(m, tea.WithOutput(p.Out())).Run()
	if err != nil {
		return fmt.Errorf("spinner: %w", err)
	}
	return final.(spinModel).err
}

type spinDoneMsg struct{ err error }

type spinModel struct {
	sp    spinner.Model
	title string
	fn    func() error
	err   error
	done  bool
}

func (m spinModel) Init() tea.Cmd {
	return tea.Batch(
		m.sp.Tick,
		func() tea.Msg { return spinDoneMsg{err: m.fn()} },
	)
}

func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinDoneMsg:
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.sp, cmd = m.sp.Update(msg)
		return m, cmd
	}
	// External commands are not cancellable from here; the operator
	// interrupts the process itself if a command hangs.
	return m, nil
}

func (m spinModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s...\n", m.sp.View(), m.title)
}
