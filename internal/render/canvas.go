package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/atomsim/internal/atom"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleEmpty = 0x2800

// Canvas rasterizes world-space draw calls onto a grid of braille cells.
// A cell is 2x4 sub-pixels, so the sub-pixel resolution is (Width*2) x
// (Height*4). Each cell remembers the color of the last primitive that
// touched it; String applies the colors with lipgloss.
type Canvas struct {
	Width, Height  int
	WorldW, WorldH float64
	grid           [][]rune
	colors         [][]string
}

func NewCanvas(w, h int, worldW, worldH float64) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		WorldW: worldW,
		WorldH: worldH,
		grid:   make([][]rune, h),
		colors: make([][]string, h),
	}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		c.colors[i] = make([]string, w)
		for j := range c.grid[i] {
			c.grid[i][j] = brailleEmpty
		}
	}
	return c
}

// Clear resets the canvas.
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = brailleEmpty
			c.colors[i][j] = ""
		}
	}
}

// set lights one sub-pixel.
func (c *Canvas) set(x, y int, color string) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	if c.grid[row][col]&^rune(0xff) != brailleEmpty {
		// cell is occupied by text, keep the glyph
		return
	}
	c.grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.colors[row][col] = color
}

// toSub maps a world point to sub-pixel coordinates.
func (c *Canvas) toSub(p atom.Vector2) (int, int) {
	x := int(math.Round(p.X / c.WorldW * float64(c.Width*2)))
	y := int(math.Round(p.Y / c.WorldH * float64(c.Height*4)))
	return x, y
}

// StrokeCircle traces the circle outline parametrically. Stroke width is a
// no-op at braille resolution.
func (c *Canvas) StrokeCircle(center atom.Vector2, radius float64, color string, width float64) {
	steps := int(math.Max(16, radius))
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps) * 2 * math.Pi
		p := center.Add(atom.Vector2{X: radius * math.Cos(t), Y: radius * math.Sin(t)})
		x, y := c.toSub(p)
		c.set(x, y, color)
	}
}

// FillCircle lights every sub-pixel inside the disc.
func (c *Canvas) FillCircle(center atom.Vector2, radius float64, color string) {
	cx, cy := c.toSub(center)
	rx := radius / c.WorldW * float64(c.Width*2)
	ry := radius / c.WorldH * float64(c.Height*4)
	for dy := -int(ry); dy <= int(ry); dy++ {
		fy := float64(dy) / math.Max(ry, 1)
		span := rx * math.Sqrt(math.Max(0, 1-fy*fy))
		for dx := -int(span); dx <= int(span); dx++ {
			c.set(cx+dx, cy+dy, color)
		}
	}
}

// Text places the string's runes into whole cells centered on the point.
// Font size and baseline offset collapse to cell granularity here; they are
// honored by surfaces with real text metrics.
func (c *Canvas) Text(center atom.Vector2, s string, size, dy float64, color string) {
	x, y := c.toSub(center)
	row := y / 4
	col := x/2 - len([]rune(s))/2
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		if col >= 0 && col < c.Width {
			c.grid[row][col] = r
			c.colors[row][col] = color
		}
		col++
	}
}

// String renders the canvas, coloring each cell with the color of the last
// primitive that touched it.
func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.grid {
		for j, r := range row {
			if col := c.colors[i][j]; col != "" {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(col)).Render(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
