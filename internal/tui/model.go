// Package tui provides the Bubble Tea counting interface.
package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/hilo/internal/command"
	"github.com/verte-zerg/hilo/internal/hilo"
	"github.com/verte-zerg/hilo/internal/model"
	"github.com/verte-zerg/hilo/internal/report"
)

type viewKind int

const (
	viewStatus viewKind = iota
	viewHistory
	viewComposition
	viewHelp
)

var viewTitles = map[viewKind]string{
	viewStatus:      "Status",
	viewHistory:     "History",
	viewComposition: "Composition",
	viewHelp:        "Help",
}

// Model implements the Bubble Tea counting UI.
type Model struct {
	session *hilo.Session

	input textinput.Model
	body  viewport.Model
	view  viewKind

	notice string
	errMsg string

	width  int
	height int
}

// NewModel constructs a counting UI model for a fresh session.
func NewModel(cfg model.Config) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "A K 10 5 2"
	input.CharLimit = 0
	input.Focus()

	m := &Model{
		session: hilo.NewSession(cfg),
		input:   input,
		body:    viewport.New(0, 0),
		view:    viewStatus,
	}
	m.refreshBody()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshBody()
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.handleLine()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.body, cmd = m.body.Update(msg)
			return m, cmd
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	title := titleStyle.Render(viewTitles[m.view])
	message := m.renderMessage()
	footer := footerStyle.Render(m.renderFooter())
	return strings.Join([]string{title, m.body.View(), message, m.input.View(), footer}, "\n")
}

func (m *Model) handleLine() tea.Cmd {
	line := m.input.Value()
	m.input.SetValue("")
	m.errMsg = ""
	if strings.TrimSpace(line) == "" {
		return nil
	}

	intent := command.Parse(line)
	switch intent.Kind {
	case command.Quit:
		return tea.Quit
	case command.Status:
		m.view = viewStatus
	case command.History:
		m.view = viewHistory
	case command.Composition:
		m.view = viewComposition
	case command.Help:
		m.view = viewHelp
	case command.Reset:
		m.session.Reset()
		m.notice = "Count reset."
		m.view = viewStatus
	case command.Cards:
		result, err := m.session.ProcessBatch(intent.Batch)
		if err != nil {
			m.errMsg = err.Error()
			return nil
		}
		m.notice = batchLine(result)
		m.view = viewStatus
	}
	m.refreshBody()
	return nil
}

func (m *Model) updateLayout() {
	bodyHeight := m.height - 4
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.body.Width = m.width
	m.body.Height = bodyHeight
	promptWidth := lipgloss.Width(m.input.Prompt)
	inputWidth := m.width - promptWidth - 1
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth
}

func (m *Model) refreshBody() {
	var buf bytes.Buffer
	var err error
	switch m.view {
	case viewHistory:
		err = report.RenderHistory(&buf, m.session.History())
	case viewComposition:
		err = report.RenderComposition(&buf, m.session.Composition())
	case viewHelp:
		err = report.RenderHelp(&buf)
	default:
		m.body.SetContent(m.renderStatusView())
		return
	}
	if err != nil {
		m.body.SetContent(errorStyle.Render(err.Error()))
		return
	}
	m.body.SetContent(buf.String())
}

func (m *Model) renderStatusView() string {
	rep := m.session.Status()
	barWidth := report.BarWidthFor(m.width)
	lines := []string{
		fmt.Sprintf("Running Count: %+d", rep.RunningCount),
		fmt.Sprintf("Cards Seen: %d/%d", rep.CardsDealt, rep.TotalCards),
		fmt.Sprintf("Cards Remaining: %d", rep.CardsRemaining),
		fmt.Sprintf("Decks Remaining: %.2f", rep.DecksRemaining),
		fmt.Sprintf("True Count: %.2f", rep.TrueCount),
		"Status: " + advantageStyle(rep.Advantage).Render(rep.Advantage.String()),
		fmt.Sprintf("%s/%s/%s: %d/%d/%d",
			coldStyle.Render("Cold"),
			neutralStyle.Render("Neutral"),
			hotStyle.Render("Hot"),
			rep.Tally.Cold, rep.Tally.Neutral, rep.Tally.Hot),
		report.DepletionBar(rep.CardsDealt, rep.TotalCards, barWidth),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderMessage() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}
	if m.notice != "" {
		return noticeStyle.Render(m.notice)
	}
	return ""
}

func (m *Model) renderFooter() string {
	rep := m.session.Status()
	segments := []string{
		fmt.Sprintf("RC %+d", rep.RunningCount),
		fmt.Sprintf("TC %.2f", rep.TrueCount),
		fmt.Sprintf("Decks %.1f", rep.DecksRemaining),
		fmt.Sprintf("%d/%d cards", rep.CardsDealt, rep.TotalCards),
	}
	return strings.Join(segments, "  ")
}

func batchLine(result hilo.BatchResult) string {
	parts := make([]string, 0, len(result.Cards))
	for _, card := range result.Cards {
		parts = append(parts, temperatureStyle(card.Temperature).Render(
			fmt.Sprintf("%s %+d", card.Rank, card.Value)))
	}
	return "Counted: " + strings.Join(parts, ", ")
}

func temperatureStyle(t hilo.Temperature) lipgloss.Style {
	switch t {
	case hilo.Cold:
		return coldStyle
	case hilo.Hot:
		return hotStyle
	default:
		return neutralStyle
	}
}

func advantageStyle(a hilo.Advantage) lipgloss.Style {
	switch a {
	case hilo.AdvantagePlayer:
		return favorableStyle
	case hilo.AdvantageDealer:
		return unfavorableStyle
	default:
		return evenStyle
	}
}
