package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"feedbackservice/internal/apiclient"
)

// InsightsClient is the part of the API the insights view calls.
type InsightsClient interface {
	Summary(ctx context.Context) (string, error)
	SendDigest(ctx context.Context) (*apiclient.DigestHandle, error)
}

type summaryMsg struct{ text string }

type digestSentMsg struct{ handle *apiclient.DigestHandle }

type errMsg struct{ err error }

type insightsPhase int

const (
	phaseSummarizing insightsPhase = iota
	phaseSending
	phaseDone
	phaseFailed
)

// InsightsModel generates the summary and then starts the digest as one
// user-visible action.
type InsightsModel struct {
	ctx      context.Context
	client   InsightsClient
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	phase    insightsPhase
	summary  string
	runID    string
	err      error
}

func NewInsightsModel(ctx context.Context, client InsightsClient) *InsightsModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	return &InsightsModel{
		ctx:      ctx,
		client:   client,
		spinner:  sp,
		renderer: renderer,
	}
}

func (m *InsightsModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchSummary())
}

func (m *InsightsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil

	case summaryMsg:
		m.summary = msg.text
		m.phase = phaseSending
		return m, m.sendDigest()

	case digestSentMsg:
		m.runID = msg.handle.ID
		m.phase = phaseDone
		return m, tea.Quit

	case errMsg:
		m.err = msg.err
		m.phase = phaseFailed
		return m, tea.Quit

	case spinner.TickMsg:
		if m.phase == phaseDone || m.phase == phaseFailed {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *InsightsModel) View() string {
	var b strings.Builder
	switch m.phase {
	case phaseSummarizing:
		b.WriteString(m.spinner.View() + " Generating insights...\n")
	case phaseSending:
		b.WriteString(m.renderSummary())
		b.WriteString(m.spinner.View() + " Sending digest...\n")
	case phaseDone:
		b.WriteString(m.renderSummary())
		b.WriteString(successStyle.Render("✅ Sent to Discord"))
		b.WriteString(mutedStyle.Render(" (run " + m.runID + ")"))
		b.WriteString("\n")
	case phaseFailed:
		if m.summary != "" {
			b.WriteString(m.renderSummary())
		}
		b.WriteString(RenderError(m.err))
		b.WriteString("\n")
	}
	return b.String()
}

// Err is the failure that ended the program, if any.
func (m *InsightsModel) Err() error {
	return m.err
}

func (m *InsightsModel) renderSummary() string {
	if m.renderer == nil {
		return m.summary + "\n\n"
	}
	out, err := m.renderer.Render(m.summary)
	if err != nil {
		return m.summary + "\n\n"
	}
	return out
}

func (m *InsightsModel) fetchSummary() tea.Cmd {
	return func() tea.Msg {
		text, err := m.client.Summary(m.ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return summaryMsg{text: text}
	}
}

func (m *InsightsModel) sendDigest() tea.Cmd {
	return func() tea.Msg {
		handle, err := m.client.SendDigest(m.ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return digestSentMsg{handle: handle}
	}
}
