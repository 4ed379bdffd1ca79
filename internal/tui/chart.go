package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// chartSeries is one plotted line.
type chartSeries struct {
	name   string
	points []float64
	color  lipgloss.Color
	marker rune
}

// balanceChart plots the nominal and real balance curves side by side in a
// character grid with a labeled Y axis.
type balanceChart struct {
	title  string
	series []chartSeries
	width  int
	height int
}

func newBalanceChart(title string, width, height int) *balanceChart {
	return &balanceChart{title: title, width: width, height: height}
}

func (c *balanceChart) addSeries(name string, points []float64, color lipgloss.Color, marker rune) {
	c.series = append(c.series, chartSeries{name: name, points: points, color: color, marker: marker})
}

func (c *balanceChart) render() string {
	if len(c.series) == 0 || c.width < 20 || c.height < 4 {
		return subtitleStyle.Render("no data to display")
	}

	const axisWidth = 10
	plotWidth := c.width - axisWidth - 3
	if plotWidth < 10 {
		plotWidth = 10
	}

	lo, hi := c.bounds()
	if hi == lo {
		hi = lo + 1
	}

	grid := make([][]rune, c.height)
	for i := range grid {
		grid[i] = make([]rune, plotWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for _, s := range c.series {
		plotSeries(grid, s, lo, hi)
	}

	var b strings.Builder
	if c.title != "" {
		b.WriteString(titleStyle.Render(c.title))
		b.WriteString("\n")
	}

	axisStyle := lipgloss.NewStyle().Foreground(colorMuted).Width(axisWidth).Align(lipgloss.Right)
	for i, row := range grid {
		yValue := hi - float64(i)/float64(c.height-1)*(hi-lo)
		b.WriteString(axisStyle.Render(compactMoney(yValue)))
		b.WriteString(" │ ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", axisWidth))
	b.WriteString(" └")
	b.WriteString(strings.Repeat("─", plotWidth))
	b.WriteString("\n")

	var legend []string
	for _, s := range c.series {
		legend = append(legend,
			lipgloss.NewStyle().Foreground(s.color).Render(string(s.marker))+" "+s.name)
	}
	b.WriteString(subtitleStyle.Render(strings.Join(legend, "   ")))

	return b.String()
}

func (c *balanceChart) bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.series {
		for _, p := range s.points {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

// plotSeries maps the series onto the grid, connecting consecutive points
// with Bresenham segments so sparse horizons still read as a line.
func plotSeries(grid [][]rune, s chartSeries, lo, hi float64) {
	if len(s.points) == 0 {
		return
	}
	height := len(grid)
	width := len(grid[0])

	toCell := func(i int, v float64) (int, int) {
		x := 0
		if len(s.points) > 1 {
			x = i * (width - 1) / (len(s.points) - 1)
		}
		y := height - 1 - int((v-lo)/(hi-lo)*float64(height-1))
		return x, y
	}

	prevX, prevY := toCell(0, s.points[0])
	setCell(grid, prevX, prevY, s.marker)
	for i := 1; i < len(s.points); i++ {
		x, y := toCell(i, s.points[i])
		drawSegment(grid, prevX, prevY, x, y, s.marker)
		prevX, prevY = x, y
	}
}

func drawSegment(grid [][]rune, x0, y0, x1, y1 int, marker rune) {
	dx := intAbs(x1 - x0)
	dy := intAbs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	x, y := x0, y0
	for {
		setCell(grid, x, y, marker)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func setCell(grid [][]rune, x, y int, marker rune) {
	if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) {
		if grid[y][x] == ' ' {
			grid[y][x] = marker
		}
	}
}

func compactMoney(v float64) string {
	switch {
	case math.Abs(v) >= 1e6:
		return fmt.Sprintf("$%.1fM", v/1e6)
	case math.Abs(v) >= 1e3:
		return fmt.Sprintf("$%.0fK", v/1e3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
