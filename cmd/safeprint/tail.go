package main

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/safeprint/logfile"
)

func newTailCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "tail <file>",
		Short: "Watch a safeprint log file live, newest line first",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p := tea.NewProgram(newTailModel(args[0], interval))

			_, err := p.Run()
			if err != nil {
				return fmt.Errorf("running viewer: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 500*time.Millisecond,
		"refresh interval")

	return cmd
}

var (
	tailTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	tailErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	tailFooterStyle = lipgloss.NewStyle().Faint(true)
)

// reloadMsg signals that it is time to re-read the log file.
type reloadMsg struct{}

// linesMsg carries the result of a log file read.
type linesMsg struct {
	lines []string
	err   error
}

// tailModel is the bubbletea model for the log viewer. The log file is the
// only shared state; every refresh is a fresh full read.
type tailModel struct {
	log      *logfile.Log
	interval time.Duration
	lines    []string
	readErr  error
	width    int
	height   int
}

func newTailModel(path string, interval time.Duration) *tailModel {
	return &tailModel{
		log:      logfile.New(path, 0),
		interval: interval,
	}
}

// Init triggers the first read and starts the refresh timer.
func (m *tailModel) Init() tea.Cmd {
	return tea.Batch(m.reload, m.tick())
}

func (m *tailModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return reloadMsg{}
	})
}

func (m *tailModel) reload() tea.Msg {
	lines, err := m.log.Lines()

	return linesMsg{lines: lines, err: err}
}

// Update handles refresh, resize, and quit messages.
func (m *tailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case reloadMsg:
		return m, tea.Batch(m.reload, m.tick())

	case linesMsg:
		m.lines = msg.lines
		m.readErr = msg.err
	}

	return m, nil
}

// View renders the newest lines that fit above a one-line footer.
func (m *tailModel) View() tea.View {
	var sb strings.Builder

	sb.WriteString(tailTitleStyle.Render(m.log.Path()))
	sb.WriteByte('\n')

	if m.readErr != nil {
		sb.WriteString(tailErrorStyle.Render(m.readErr.Error()))
		sb.WriteByte('\n')
	}

	visible := m.lines

	if m.height > 2 && len(visible) > m.height-2 {
		visible = visible[:m.height-2]
	}

	for _, line := range visible {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	sb.WriteString(tailFooterStyle.Render(
		fmt.Sprintf("refreshing every %s · q to quit", m.interval)))

	v := tea.NewView(sb.String())
	v.AltScreen = true

	return v
}
