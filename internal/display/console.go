// Package display renders the game for a line-oriented terminal.
package display

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/notepid/baseball/internal/difficulty"
	"github.com/notepid/baseball/internal/guess"
	"github.com/notepid/baseball/internal/record"
	"github.com/notepid/baseball/internal/terminal"
	"github.com/notepid/baseball/internal/user"
)

const timeLayout = "2006-01-02 15:04"

type styles struct {
	title   lipgloss.Style
	prompt  lipgloss.Style
	option  lipgloss.Style
	strike  lipgloss.Style
	win     lipgloss.Style
	problem lipgloss.Style
	faint   lipgloss.Style
	header  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		prompt:  r.NewStyle().Foreground(lipgloss.Color("13")),
		option:  r.NewStyle().Foreground(lipgloss.Color("11")),
		strike:  r.NewStyle().Foreground(lipgloss.Color("10")),
		win:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		problem: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		faint:   r.NewStyle().Faint(true),
		header:  r.NewStyle().Bold(true).Padding(0, 1),
	}
}

// Console writes game screens to a terminal. Output write errors are
// ignored; a broken output surfaces as end of input on the next read.
type Console struct {
	t     *terminal.Terminal
	r     *lipgloss.Renderer
	st    styles
	color bool
}

// New creates a console on t. Colour follows t.ANSIEnabled; without it every
// style renders as plain text.
func New(t *terminal.Terminal) *Console {
	r := lipgloss.NewRenderer(t)
	if t.ANSIEnabled {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Console{t: t, r: r, st: newStyles(r), color: t.ANSIEnabled}
}

func (c *Console) println(s string) {
	_ = c.t.SendLn(s)
}

func (c *Console) prompt(s string) {
	_ = c.t.Send(c.st.prompt.Render(s))
}

func (c *Console) Welcome() {
	c.println(c.st.title.Render("== Number Baseball =="))
	c.println(c.st.faint.Render("Guess the secret number. Digits never repeat."))
	c.println(c.st.faint.Render("A strike is a right digit in the right place, a ball is a right digit in the wrong place."))
}

func (c *Console) AskUsername() {
	c.println("")
	c.prompt("Username (empty or \"quit\" to exit): ")
}

var menuItems = []string{"Play", "History", "Ranking", "Logout"}

func (c *Console) MainMenu(username string) {
	c.println("")
	c.println(c.st.title.Render("Main menu") + c.st.faint.Render(" - "+username))
	for i, item := range menuItems {
		c.println(fmt.Sprintf("  %s %s", c.st.option.Render(strconv.Itoa(i+1)+"."), item))
	}
	c.prompt("Select an option: ")
}

func (c *Console) DifficultyMenu(modes []difficulty.Mode) {
	c.println("")
	c.println(c.st.title.Render("Choose a difficulty"))
	for _, m := range modes {
		c.println(fmt.Sprintf("  %s %s", c.st.option.Render(strconv.Itoa(m.Option)+"."), m))
	}
	c.prompt("Difficulty: ")
}

func (c *Console) RoundStart(mode difficulty.Mode) {
	_ = c.t.Cls()
	c.println(c.st.title.Render(fmt.Sprintf("Play ball! %s", mode)))
	c.println(c.st.faint.Render(fmt.Sprintf("I picked %d different digits.", mode.Length)))
}

func (c *Console) AskGuess(length, attempt int) {
	c.prompt(fmt.Sprintf("[%d] Your %d-digit guess: ", attempt, length))
}

func (c *Console) Score(s guess.Score) {
	if s.Exact() {
		c.println(c.st.win.Render(s.String()))
		return
	}
	if s.Strikes == 0 && s.Balls == 0 {
		c.println(c.st.faint.Render(s.String()))
		return
	}
	c.println(c.st.strike.Render(s.String()))
}

func (c *Console) Win(rec *record.GameRecord) {
	c.println(c.st.win.Render(fmt.Sprintf("You got it in %s!", attempts(rec.Attempts))))
}

func (c *Console) History(username string, records []*record.GameRecord) {
	c.println("")
	c.println(c.st.title.Render("Games played by " + username))
	if len(records) == 0 {
		c.println(c.st.faint.Render("No games yet."))
		return
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Number),
			r.Difficulty.Name,
			strconv.Itoa(r.Attempts),
			r.FinishedAt.Local().Format(timeLayout),
		})
	}
	c.println(c.table([]string{"Game", "Difficulty", "Attempts", "Finished"}, rows))
}

func (c *Console) Ranking(entries []user.RankEntry) {
	c.println("")
	c.println(c.st.title.Render("Ranking"))
	if len(entries) == 0 {
		c.println(c.st.faint.Render("Nobody has finished a game yet."))
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Difficulty,
			strconv.Itoa(e.Rank),
			e.Username,
			strconv.Itoa(e.BestAttempts),
			strconv.Itoa(e.Games),
			e.AchievedAt.Local().Format(timeLayout),
		})
	}
	c.println(c.table([]string{"Difficulty", "#", "Player", "Best", "Games", "Achieved"}, rows))
}

func (c *Console) Problem(msg string) {
	c.println(c.st.problem.Render("! " + msg))
}

func (c *Console) Goodbye(username string) {
	c.println(c.st.faint.Render(fmt.Sprintf("See you next time, %s.", username)))
}

func (c *Console) table(headers []string, rows [][]string) string {
	border := lipgloss.NormalBorder()
	if !c.color {
		border = lipgloss.ASCIIBorder()
	}
	cell := c.r.NewStyle().Padding(0, 1)
	return table.New().
		Border(border).
		BorderStyle(c.st.faint).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return c.st.header
			}
			return cell
		}).
		Headers(headers...).
		Rows(rows...).
		Render()
}

func attempts(n int) string {
	if n == 1 {
		return "1 attempt"
	}
	return fmt.Sprintf("%d attempts", n)
}
