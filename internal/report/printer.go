package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/reversi-arena/internal/core"
	"github.com/vovakirdan/reversi-arena/internal/game"
	"github.com/vovakirdan/reversi-arena/internal/match"
	"github.com/vovakirdan/reversi-arena/internal/referee"
)

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	win     lipgloss.Style
	forfeit lipgloss.Style
	dim     lipgloss.Style
	discs   [core.ColorCount]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:   r.NewStyle().Bold(true),
		win:     r.NewStyle().Foreground(lipgloss.Color("10")),
		forfeit: r.NewStyle().Foreground(lipgloss.Color("9")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("245")),
		discs: [core.ColorCount]lipgloss.Style{
			core.Black: r.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
			core.White: r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		},
	}
}

// Printer writes results to w. It implements match.Observer so a match
// can be printed while it is played.
type Printer struct {
	w     io.Writer
	level Level
	st    styles
	cond  match.Condition
}

// NewPrinter creates a printer. Colors are used only when w is a
// terminal.
func NewPrinter(w io.Writer, level Level) *Printer {
	return &Printer{
		w:     w,
		level: level,
		st:    newStyles(lipgloss.NewRenderer(w)),
	}
}

// Level returns the print level.
func (p *Printer) Level() Level {
	return p.level
}

// Observe prints match events as they happen.
func (p *Printer) Observe(evt match.Event) {
	switch evt := evt.(type) {
	case match.MatchStartedEvent:
		p.cond = evt.Condition
		if p.level >= LevelMatch {
			p.printHeader(evt.Condition)
		}
	case match.GameFinishedEvent:
		if p.level >= LevelMatch {
			p.printGame(evt.Game)
		}
	case match.MatchEndedEvent:
		p.printSummary(match.Tally(evt.Result))
	}
}

// PrintMatch prints a finished match in one go.
func (p *Printer) PrintMatch(res *match.Result) {
	p.cond = res.Condition()
	sum := match.Tally(res)
	if p.level >= LevelMatch {
		p.printHeader(p.cond)
		for _, g := range sum.Games {
			p.printGame(g)
		}
	}
	p.printSummary(sum)
}

// PrintGame prints a single game result. names labels each color.
func (p *Printer) PrintGame(names [core.ColorCount]string, res game.Result) {
	fmt.Fprintln(p.w, p.gameLine("game", names, res))
	p.printDetail(res)
}

// PrintStandings prints the league table, best player first.
func (p *Printer) PrintStandings(rows []match.Standing) {
	width := len("Player")
	for _, r := range rows {
		width = max(width, len(r.ID))
	}

	fmt.Fprintln(p.w, p.st.title.Render("Standings"))
	fmt.Fprintf(p.w, "  %-3s %-*s  %4s %4s %4s %8s %7s\n", "#", width, "Player", "W", "L", "D", "Forfeits", "Matches")
	for i, r := range rows {
		line := fmt.Sprintf("  %-3d %-*s  %4d %4d %4d %8d %7d",
			i+1, width, r.ID, r.Record.Wins, r.Record.Losses, r.Record.Draws, r.Record.Forfeits, r.MatchWins)
		if i == 0 {
			line = p.st.win.Render(line)
		}
		fmt.Fprintln(p.w, line)
	}
}

func (p *Printer) printHeader(cond match.Condition) {
	fmt.Fprintf(p.w, "%s  %s vs %s  %d games, %v/turn, %v/game\n",
		p.st.title.Render("Match"),
		p.st.label.Render(cond.Label(core.EntrantA)),
		p.st.label.Render(cond.Label(core.EntrantB)),
		cond.Times, cond.PerTurn, cond.PerGame,
	)
}

func (p *Printer) printGame(g match.Game) {
	var names [core.ColorCount]string
	for _, c := range core.Colors {
		names[c] = p.cond.Label(g.Entrant(c))
	}
	fmt.Fprintln(p.w, p.gameLine(fmt.Sprintf("game %d", g.Index+1), names, g.Result))
	p.printDetail(g.Result)
}

func (p *Printer) gameLine(title string, names [core.ColorCount]string, res game.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %s %s vs %s %s  ",
		title,
		p.st.discs[core.Black].Render(string(core.Black.Disc())), names[core.Black],
		p.st.discs[core.White].Render(string(core.White.Disc())), names[core.White],
	)
	if res.Board != nil {
		fmt.Fprintf(&b, "%2d-%-2d  ", res.Board.Score(core.Black), res.Board.Score(core.White))
	}

	switch {
	case res.Draw:
		b.WriteString("draw")
	case res.State.Forfeit():
		loser := res.Winner.Opposite()
		fmt.Fprintf(&b, "%s %s", p.st.win.Render("winner "+names[res.Winner]),
			p.st.forfeit.Render(fmt.Sprintf("(%s forfeits: %s)", names[loser], forfeitKind(res))))
	default:
		b.WriteString(p.st.win.Render("winner " + names[res.Winner]))
	}
	return b.String()
}

func (p *Printer) printDetail(res game.Result) {
	if p.level >= LevelTurn && len(res.Moves) > 0 {
		fmt.Fprintln(p.w, indent(formatMoves(res.Moves)))
	}
	if p.level < LevelGame {
		return
	}
	if res.State.Forfeit() {
		fmt.Fprintln(p.w, indent(p.st.forfeit.Render(res.Reason())))
	}
	if res.Board != nil {
		fmt.Fprintln(p.w, indent(p.renderBoard(res.Board)))
	}
	fmt.Fprintln(p.w, indent(p.st.dim.Render(fmt.Sprintf("turns %d, time black %v, white %v",
		res.Turns, res.Spent[core.Black], res.Spent[core.White]))))
}

func (p *Printer) printSummary(sum match.Summary) {
	fmt.Fprintln(p.w, p.st.title.Render("Result"))
	for _, e := range core.Entrants {
		fmt.Fprintf(p.w, "  %-16s %s\n", p.cond.Label(e), sum.Records[e])
	}
	if leader, ok := sum.Leader(); ok {
		fmt.Fprintf(p.w, "  %s\n", p.st.win.Render("winner "+p.cond.Label(leader)))
	} else {
		fmt.Fprintln(p.w, "  tied")
	}
}

func (p *Printer) renderBoard(b core.Board) string {
	var out strings.Builder
	for _, r := range b.String() {
		switch r {
		case core.Black.Disc():
			out.WriteString(p.st.discs[core.Black].Render(string(r)))
		case core.White.Disc():
			out.WriteString(p.st.discs[core.White].Render(string(r)))
		default:
			out.WriteRune(r)
		}
	}
	return strings.TrimRight(out.String(), "\n")
}

func forfeitKind(res game.Result) string {
	switch res.State {
	case game.ForfeitedOnViolation:
		if res.Violation != nil {
			return strings.ReplaceAll(referee.Kind(res.Violation), "_", " ")
		}
		return "violation"
	default:
		return "timeout"
	}
}

// formatMoves numbers moves and wraps them eight to a line.
func formatMoves(moves []core.Move) string {
	var b strings.Builder
	for i, m := range moves {
		if i > 0 {
			if i%8 == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		fmt.Fprintf(&b, "%d.%s", i+1, m)
	}
	return b.String()
}

func indent(s string) string {
	return "    " + strings.ReplaceAll(s, "\n", "\n    ")
}
