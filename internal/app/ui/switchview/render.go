package switchview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"flip/internal/app/ui/components"
)

// cell is one terminal cell of the switch; cont marks the second half of a wide rune
type cell struct {
	r    rune
	fg   lipgloss.TerminalColor
	bg   lipgloss.TerminalColor
	bold bool
	cont bool
}

// grid is a fixed-size canvas the switch is painted onto before styling
type grid struct {
	width  int
	height int
	cells  [][]cell
}

func newGrid(width, height int, bg lipgloss.TerminalColor) *grid {
	g := &grid{width: width, height: height, cells: make([][]cell, height)}

	for y := range g.cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' ', fg: lipgloss.NoColor{}, bg: bg}
		}
		g.cells[y] = row
	}

	return g
}

func (g *grid) set(x, y int, r rune, fg lipgloss.TerminalColor, bold bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}

	g.clearWide(x, y)

	g.cells[y][x].r = r
	g.cells[y][x].fg = fg
	g.cells[y][x].bold = bold
	g.cells[y][x].cont = false
}

// setWide puts a two-cell rune at x and marks x+1 as its continuation
func (g *grid) setWide(x, y int, r rune, fg lipgloss.TerminalColor, bold bool) {
	if x+1 >= g.width {
		return
	}

	g.set(x, y, r, fg, bold)
	g.set(x+1, y, ' ', fg, bold)
	g.cells[y][x+1].cont = true
}

// clearWide blanks the other half of a wide rune about to be split by a write at x
func (g *grid) clearWide(x, y int) {
	row := g.cells[y]

	if row[x].cont && x > 0 {
		row[x-1].r = ' '
	}

	if x+1 < g.width && row[x+1].cont {
		row[x+1].cont = false
		row[x+1].r = ' '
	}
}

// box draws a rounded outline spanning columns [x, x+width) and every row
func (g *grid) box(x, width int, fg lipgloss.TerminalColor) {
	if width < 2 || g.height < 2 {
		return
	}

	border := lipgloss.RoundedBorder()
	right := x + width - 1
	bottom := g.height - 1

	for col := x + 1; col < right; col++ {
		g.set(col, 0, firstRune(border.Top), fg, false)
		g.set(col, bottom, firstRune(border.Bottom), fg, false)
	}

	for row := 1; row < bottom; row++ {
		g.set(x, row, firstRune(border.Left), fg, false)
		g.set(right, row, firstRune(border.Right), fg, false)
	}

	g.set(x, 0, firstRune(border.TopLeft), fg, false)
	g.set(right, 0, firstRune(border.TopRight), fg, false)
	g.set(x, bottom, firstRune(border.BottomLeft), fg, false)
	g.set(right, bottom, firstRune(border.BottomRight), fg, false)
}

// label centres text inside the bordered half starting at column x
func (g *grid) label(x, width int, text string, wrap bool, fg lipgloss.TerminalColor, bold bool) {
	innerWidth := width - components.BorderCells
	innerHeight := g.height - components.BorderCells

	if innerWidth <= 0 || innerHeight <= 0 || text == "" {
		return
	}

	if wrap {
		text = wordwrap.String(text, innerWidth)
	}

	lines := strings.Split(text, "\n")
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	top := 1 + (innerHeight-len(lines))/2

	for i, line := range lines {
		line = components.Truncate(strings.TrimSpace(line), innerWidth)
		col := x + 1 + (innerWidth-lipgloss.Width(line))/2
		end := x + 1 + innerWidth

		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}

			if col+w > end {
				break
			}

			if w == 2 {
				g.setWide(col, top+i, r, fg, bold)
			} else {
				g.set(col, top+i, r, fg, bold)
			}

			col += w
		}
	}
}

// render styles each run of identical cells once
func (g *grid) render() string {
	rows := make([]string, 0, g.height)

	for _, row := range g.cells {
		var b strings.Builder

		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && sameStyle(row[x], row[start]) {
				continue
			}

			b.WriteString(styleOf(row[start]).Render(runesOf(row[start:x])))
			start = x
		}

		rows = append(rows, b.String())
	}

	return strings.Join(rows, "\n")
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold
}

func styleOf(c cell) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.fg).Background(c.bg).Bold(c.bold)
}

func runesOf(cells []cell) string {
	runes := make([]rune, 0, len(cells))
	for _, c := range cells {
		if c.cont {
			continue
		}

		runes = append(runes, c.r)
	}

	return string(runes)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}

	return ' '
}
