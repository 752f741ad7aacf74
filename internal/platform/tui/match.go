// Package tui provides the Bubble Tea views of the arena. It renders a
// running match from scheduler events.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/game"
	"github.com/vovakirdan/reversi-arena/internal/match"
)

const (
	progressWidth = 48
	tableHeight   = 12
)

// MatchKeyMap defines the key bindings of the match view.
type MatchKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MatchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MatchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultMatchKeyMap returns default key bindings.
func DefaultMatchKeyMap() MatchKeyMap {
	return MatchKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "close view"),
		),
	}
}

// eventsClosedMsg is sent when the event channel has been closed.
type eventsClosedMsg struct{}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	winStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	forfeitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// MatchModel shows a match while the scheduler plays it: a spinner, a
// progress bar, one table row per finished game and the final tally.
type MatchModel struct {
	events <-chan match.Event

	cond    match.Condition
	total   int
	games   []match.Game
	summary *match.Summary

	spinner  spinner.Model
	progress progress.Model
	table    table.Model
	help     help.Model
	keys     MatchKeyMap

	width    int
	finished bool
	quitting bool
}

// NewMatchModel creates a view fed by events. total is the number of
// games expected and sizes the progress bar until the match starts.
func NewMatchModel(events <-chan match.Event, total int) MatchModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
	)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Black", Width: 16},
			{Title: "White", Width: 16},
			{Title: "Score", Width: 7},
			{Title: "Result", Width: 28},
		}),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return MatchModel{
		events:   events,
		total:    total,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
		table:    t,
		help:     help.New(),
		keys:     DefaultMatchKeyMap(),
	}
}

// Init starts the spinner and waits for the first event.
func (m MatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForEvent())
}

// waitForEvent returns a command that waits for scheduler events.
func (m MatchModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-m.events
		if !ok {
			return eventsClosedMsg{}
		}
		return evt
	}
}

// Update handles messages.
func (m MatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		if p, ok := pm.(progress.Model); ok {
			m.progress = p
		}
		return m, cmd

	case match.MatchStartedEvent:
		m.cond = msg.Condition
		m.total = msg.Condition.Times
		return m, m.waitForEvent()

	case match.GameFinishedEvent:
		m.games = append(m.games, msg.Game)
		m.table.SetRows(append(m.table.Rows(), m.row(msg.Game)))
		m.table.GotoBottom()
		return m, tea.Batch(m.progress.SetPercent(m.percent()), m.waitForEvent())

	case match.MatchEndedEvent:
		sum := match.Tally(msg.Result)
		m.summary = &sum
		m.finished = true
		return m, tea.Batch(m.progress.SetPercent(1), m.waitForEvent())

	case eventsClosedMsg:
		m.finished = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MatchModel) percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(len(m.games)) / float64(m.total)
}

func (m MatchModel) row(g match.Game) table.Row {
	res := g.Result
	score := "-"
	if res.Board != nil {
		score = fmt.Sprintf("%d-%d", res.Board.Score(core.Black), res.Board.Score(core.White))
	}

	var outcome string
	switch {
	case res.Draw:
		outcome = "draw"
	case res.State == game.Completed:
		outcome = m.cond.Label(g.Entrant(res.Winner)) + " wins"
	default:
		loser := g.Entrant(res.Winner.Opposite())
		outcome = m.cond.Label(loser) + " forfeits"
		if res.State == game.ForfeitedOnTimeout {
			outcome += " (time)"
		} else {
			outcome += " (rules)"
		}
	}

	return table.Row{
		fmt.Sprintf("%d", g.Index+1),
		m.cond.Label(g.Entrant(core.Black)),
		m.cond.Label(g.Entrant(core.White)),
		score,
		outcome,
	}
}

// View renders the match.
func (m MatchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "MATCH"
	if m.cond.Contestants[core.EntrantA].Factory != nil {
		title = fmt.Sprintf("MATCH - %s vs %s", m.cond.Label(core.EntrantA), m.cond.Label(core.EntrantB))
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	status := fmt.Sprintf("%s game %d of %d", m.spinner.View(), min(len(m.games)+1, m.total), m.total)
	if m.finished {
		status = fmt.Sprintf("  %d of %d games played", len(m.games), m.total)
	}
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(m.progress.View())
	b.WriteString("\n\n")

	if len(m.games) > 0 {
		b.WriteString(boxStyle.Render(m.table.View()))
		b.WriteString("\n")
	}

	if m.summary != nil {
		b.WriteString(m.renderSummary())
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m MatchModel) renderSummary() string {
	var b strings.Builder
	for _, e := range core.Entrants {
		fmt.Fprintf(&b, "%-16s %s\n", m.cond.Label(e), m.summary.Records[e])
	}
	if leader, ok := m.summary.Leader(); ok {
		b.WriteString(winStyle.Render("winner " + m.cond.Label(leader)))
	} else {
		b.WriteString("tied")
	}
	forfeits := m.summary.Records[core.EntrantA].Forfeits + m.summary.Records[core.EntrantB].Forfeits
	if forfeits > 0 {
		b.WriteString("  ")
		b.WriteString(forfeitStyle.Render(fmt.Sprintf("%d forfeits", forfeits)))
	}
	return b.String()
}

// Games returns the games the view has seen.
func (m MatchModel) Games() []match.Game {
	return m.games
}

// Finished reports whether the match ended while the view was open.
func (m MatchModel) Finished() bool {
	return m.finished
}

// RunMatch plays cond with s while showing the match view. Closing the
// view early does not stop the match; RunMatch still returns its
// result. The scheduler must have been built with obs as an observer.
func RunMatch(s *match.Scheduler, obs *match.ChannelObserver, cond match.Condition) (*match.Result, error) {
	type outcome struct {
		res *match.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		defer obs.Close()
		res, err := s.Run(cond)
		done <- outcome{res, err}
	}()

	p := tea.NewProgram(NewMatchModel(obs.Events(), cond.Times))
	if _, err := p.Run(); err != nil {
		out := <-done
		if out.err != nil {
			return nil, out.err
		}
		return out.res, fmt.Errorf("tui: %w", err)
	}

	out := <-done
	return out.res, out.err
}
