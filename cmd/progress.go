package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loadedFunc receives the record and project counts once the input is read.
type loadedFunc func(records, projects int)

type (
	periodsLoadedMsg struct {
		records  int
		projects int
	}
	analysisDoneMsg struct {
		err error
	}
)

// analysisProgressModel shows which file is being read, then how much work
// the aggregation has ahead of it.
type analysisProgressModel struct {
	spinner  spinner.Model
	input    string
	work     tea.Cmd
	loaded   *periodsLoadedMsg
	err      error
	finished bool
}

func newAnalysisProgressModel(input string, work tea.Cmd) analysisProgressModel {
	return analysisProgressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
		),
		input: input,
		work:  work,
	}
}

func (m analysisProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m analysisProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case periodsLoadedMsg:
		m.loaded = &msg
		return m, nil
	case analysisDoneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m analysisProgressModel) View() string {
	if m.finished {
		return ""
	}

	return m.spinner.View() + " " + m.status()
}

func (m analysisProgressModel) status() string {
	if m.loaded == nil {
		return fmt.Sprintf("Reading work periods from %s...", m.input)
	}

	return fmt.Sprintf("Comparing %d work periods across %d projects...", m.loaded.records, m.loaded.projects)
}

// runWithProgress runs work while the progress line is drawn on output. work
// reports loading through the loadedFunc it is given. With enabled false
// nothing is drawn.
func runWithProgress(ctx context.Context, output io.Writer, enabled bool, input string, work func(context.Context, loadedFunc) error) error {
	if !enabled {
		return work(ctx, func(int, int) {})
	}

	var program *tea.Program
	workCmd := func() tea.Msg {
		err := work(ctx, func(records, projects int) {
			program.Send(periodsLoadedMsg{records: records, projects: projects})
		})
		return analysisDoneMsg{err: err}
	}

	program = tea.NewProgram(
		newAnalysisProgressModel(input, workCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(analysisProgressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return result.err
}
