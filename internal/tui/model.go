// Package tui implements the interactive ask session.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/overthinkhq/ponder/internal/analysis"
	"github.com/overthinkhq/ponder/internal/cli"
)

type state int

const (
	stateInput state = iota
	stateThinking
	stateResult
)

// analysisMsg carries a finished report back into the update loop.
type analysisMsg struct {
	report *analysis.Report
}

type errMsg struct {
	err error
}

// Model holds the interactive session state.
type Model struct {
	analyzer *analysis.Analyzer
	input    textinput.Model
	spinner  spinner.Model
	state    state
	rendered string
	lastErr  error
	width    int
	quitting bool
}

// NewModel creates the ask session model.
func NewModel(analyzer *analysis.Analyzer) Model {
	input := textinput.New()
	input.Placeholder = "Should I take the bus or Uber to work?"
	input.Prompt = cli.BoldStyle.Render("? ")
	input.CharLimit = 500
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cli.InfoStyle

	return Model{
		analyzer: analyzer,
		input:    input,
		spinner:  sp,
		state:    stateInput,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.state == stateResult {
				// Any enter press starts the next question.
				m.state = stateInput
				m.rendered = ""
				m.lastErr = nil
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			}
			question := strings.TrimSpace(m.input.Value())
			if m.state == stateInput && question != "" {
				m.state = stateThinking
				m.input.Blur()
				return m, tea.Batch(m.spinner.Tick, m.analyze(question))
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4

	case analysisMsg:
		m.state = stateResult
		m.rendered = cli.RenderReport(msg.report)
		return m, nil

	case errMsg:
		m.state = stateResult
		m.lastErr = msg.err
		return m, nil

	case spinner.TickMsg:
		if m.state == stateThinking {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) analyze(question string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		report, err := m.analyzer.Analyze(ctx, question)
		if err != nil {
			return errMsg{err: err}
		}
		return analysisMsg{report: report}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("ponder"))
	b.WriteString("\n")
	b.WriteString(cli.SubtitleStyle.Render("Ask a decision question. Esc quits."))
	b.WriteString("\n\n")

	switch m.state {
	case stateInput:
		b.WriteString(m.input.View())
	case stateThinking:
		b.WriteString(m.spinner.View())
		b.WriteString(" thinking it through...")
	case stateResult:
		if m.lastErr != nil {
			b.WriteString(cli.ErrorStyle.Render("Error: " + m.lastErr.Error()))
		} else {
			b.WriteString(m.rendered)
		}
		b.WriteString("\n")
		b.WriteString(cli.SubtleStyle.Render("Enter for another question, Esc to quit."))
	}

	b.WriteString("\n")
	return b.String()
}
