// Package render draws boards, players and game results as styled text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/splendor/gem"
	"github.com/lox/splendor/internal/card"
	"github.com/lox/splendor/internal/game"
	"github.com/muesli/termenv"
)

var gemColors = [gem.NumColors]lipgloss.Color{
	gem.Black: lipgloss.Color("#9E9E9E"),
	gem.White: lipgloss.Color("#FAFAFA"),
	gem.Red:   lipgloss.Color("#FF6B6B"),
	gem.Blue:  lipgloss.Color("#4FC3F7"),
	gem.Green: lipgloss.Color("#96CEB4"),
	gem.Gold:  lipgloss.Color("#FFD700"),
}

// cardWidth fits the widest level 3 card.
const cardWidth = 22

// Renderer holds styles bound to one output.
type Renderer struct {
	header lipgloss.Style
	label  lipgloss.Style
	dim    lipgloss.Style
	win    lipgloss.Style
	cell   lipgloss.Style
	gems   [gem.NumColors]lipgloss.Style
}

// New returns a renderer for w, detecting its color support.
func New(w io.Writer) *Renderer {
	return newRenderer(lipgloss.NewRenderer(w))
}

// NewWithProfile returns a renderer that always uses profile. termenv.Ascii
// produces plain text.
func NewWithProfile(w io.Writer, profile termenv.Profile) *Renderer {
	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(profile)
	return newRenderer(lr)
}

func newRenderer(lr *lipgloss.Renderer) *Renderer {
	r := &Renderer{
		header: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")),
		label:  lr.NewStyle().Bold(true),
		dim:    lr.NewStyle().Foreground(lipgloss.Color("#626262")),
		win:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("#96CEB4")),
		cell:   lr.NewStyle().Width(cardWidth),
	}
	for _, c := range gem.All {
		r.gems[c] = lr.NewStyle().Foreground(gemColors[c])
	}
	return r
}

func (r *Renderer) set(s gem.Set) string {
	var parts []string
	for _, c := range gem.Gems {
		if s[c] > 0 {
			parts = append(parts, r.gems[c].Render(fmt.Sprintf("%d%s", s[c], c.Symbol())))
		}
	}
	if len(parts) == 0 {
		return r.dim.Render("-")
	}
	return strings.Join(parts, " ")
}

// Card renders a card as "[R 2pt] 3K 2W".
func (r *Renderer) Card(c card.Card) string {
	head := r.gems[c.Color].Bold(true).Render(fmt.Sprintf("[%s %dpt]", c.Color.Symbol(), c.Point))
	return head + " " + r.set(c.Cost)
}

// Noble renders a noble tile.
func (r *Renderer) Noble(n card.Noble) string {
	return fmt.Sprintf("#%d %dpt %s", n.ID, n.Point, r.set(n.Bonus))
}

// Board renders the grid, pile sizes, bank and nobles.
func (r *Renderer) Board(b *game.Board) string {
	var out strings.Builder
	out.WriteString(r.header.Render(" Board ") + "\n")
	for row := range game.Rows {
		l := game.RowLevel(row)
		fmt.Fprintf(&out, "%s %s ", r.label.Render(l.String()), r.dim.Render(fmt.Sprintf("(%2d)", b.PileLen(l))))
		for col := range game.Cols {
			c, ok := b.Peek(row, col)
			if !ok {
				out.WriteString(r.cell.Render(r.dim.Render("--")))
				continue
			}
			out.WriteString(r.cell.Render(r.Card(c)))
		}
		out.WriteString("\n")
	}

	bank := b.Bank()
	var tokens []string
	for _, c := range gem.All {
		tokens = append(tokens, r.gems[c].Render(fmt.Sprintf("%s%d", c.Symbol(), bank.Len(c))))
	}
	fmt.Fprintf(&out, "%s %s\n", r.label.Render("Bank:"), strings.Join(tokens, " "))

	var nobles []string
	for _, n := range b.Nobles() {
		nobles = append(nobles, r.Noble(n))
	}
	if len(nobles) == 0 {
		nobles = append(nobles, r.dim.Render("none"))
	}
	fmt.Fprintf(&out, "%s %s\n", r.label.Render("Nobles:"), strings.Join(nobles, ", "))
	return out.String()
}

// User renders one player's holdings.
func (r *Renderer) User(name string, u *game.User) string {
	var out strings.Builder
	fmt.Fprintf(&out, "%s %s\n", r.label.Render(name), r.win.Render(fmt.Sprintf("%d VP", u.VP())))

	tokens := u.Tokens()
	var held []string
	for _, c := range gem.All {
		if n := tokens.Len(c); n > 0 {
			held = append(held, r.gems[c].Render(fmt.Sprintf("%s%d", c.Symbol(), n)))
		}
	}
	if len(held) == 0 {
		held = append(held, r.dim.Render("-"))
	}
	fmt.Fprintf(&out, "  tokens (%d): %s\n", u.TokenTotal(), strings.Join(held, " "))
	fmt.Fprintf(&out, "  bonus: %s\n", r.set(u.Bonus()))

	var hand []string
	for _, c := range u.Hand() {
		hand = append(hand, r.Card(c))
	}
	if len(hand) > 0 {
		fmt.Fprintf(&out, "  hand: %s\n", strings.Join(hand, " | "))
	}
	for _, n := range u.Nobles() {
		fmt.Fprintf(&out, "  noble %s\n", r.Noble(n))
	}
	return out.String()
}

// Turn renders one history entry.
func (r *Renderer) Turn(rec game.TurnRecord) string {
	prefix := fmt.Sprintf("%s %s", r.dim.Render(fmt.Sprintf("R%-3d", rec.Round)), r.label.Render(rec.Player))
	if rec.Forfeit {
		return fmt.Sprintf("%s forfeits after %d tries", prefix, rec.Trials)
	}
	return fmt.Sprintf("%s %s: %s", prefix, rec.Outcome.Move, rec.Outcome.Message)
}

// Result renders the final standings.
func (r *Renderer) Result(res *game.Result) string {
	var out strings.Builder
	fmt.Fprintf(&out, "%s after %d rounds (%s)\n", r.header.Render(" Game over "), res.Rounds, res.Reason)
	for _, s := range res.Scores {
		line := fmt.Sprintf("  %-20s %3d VP %3d cards %d nobles", s.Name, s.VP, s.Cards, s.Nobles)
		if s.Seat == res.Winner {
			line = r.win.Render(line + "  winner")
		}
		out.WriteString(line + "\n")
	}
	return out.String()
}
