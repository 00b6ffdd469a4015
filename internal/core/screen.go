package core

import (
	"strings"
)

// HalfBlock is drawn in every pixel cell: its foreground paints the upper
// pixel and its background the lower one.
const HalfBlock = '▀'

// Cell is one character cell of a Canvas. Each cell carries two vertically
// stacked pixels; when Rune is set the cell shows text instead.
type Cell struct {
	Top    RGB
	Bottom RGB
	Rune   rune // 0 for a pixel cell
	FG     RGB  // Text color when Rune != 0
}

// Canvas is a character buffer addressed in half-block pixels.
// It decouples game rendering from the terminal: the renderer paints pixels
// and text, and the platform turns the cells into styled output.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a canvas of width x height character cells,
// i.e. width x 2*height pixels.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	c.allocate()
	return c
}

// allocate creates the underlying cell storage.
func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in cells (and pixels).
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.height
}

// PixelHeight returns the canvas height in pixels.
func (c *Canvas) PixelHeight() int {
	return c.height * 2
}

// Resize changes the canvas dimensions, preserving content where possible.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.width && height == c.height {
		return
	}

	oldCells := c.cells
	oldW, oldH := c.width, c.height

	c.width = width
	c.height = height
	c.allocate()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(c.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear paints every pixel with col and removes all text.
func (c *Canvas) Clear(col RGB) {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Top: col, Bottom: col}
		}
	}
}

// SetPixel paints one pixel. Out-of-bounds coordinates are silently ignored.
func (c *Canvas) SetPixel(x, py int, col RGB) {
	if x < 0 || x >= c.width || py < 0 || py >= c.height*2 {
		return
	}
	cell := &c.cells[py/2][x]
	if py%2 == 0 {
		cell.Top = col
	} else {
		cell.Bottom = col
	}
}

// Pixel returns the color of one pixel. Out-of-bounds returns the zero color.
func (c *Canvas) Pixel(x, py int) RGB {
	if x < 0 || x >= c.width || py < 0 || py >= c.height*2 {
		return RGB{}
	}
	cell := c.cells[py/2][x]
	if py%2 == 0 {
		return cell.Top
	}
	return cell.Bottom
}

// FillPixels paints the pixel rectangle r, clipped to the canvas.
func (c *Canvas) FillPixels(r Rect, col RGB) {
	x0 := Clamp(r.X, 0, c.width)
	x1 := Clamp(r.Right(), 0, c.width)
	y0 := Clamp(r.Y, 0, c.height*2)
	y1 := Clamp(r.Bottom(), 0, c.height*2)
	for py := y0; py < y1; py++ {
		for x := x0; x < x1; x++ {
			c.SetPixel(x, py, col)
		}
	}
}

// SetText writes a string horizontally starting at cell (x, y).
// Characters that extend beyond the canvas are clipped.
func (c *Canvas) SetText(x, y int, text string, fg RGB) {
	if y < 0 || y >= c.height {
		return
	}
	i := 0
	for _, r := range text {
		cx := x + i
		i++
		if cx < 0 || cx >= c.width {
			continue
		}
		cell := &c.cells[y][cx]
		cell.Rune = r
		cell.FG = fg
	}
}

// Cell returns the cell at (x, y). Out-of-bounds returns the zero cell.
func (c *Canvas) Cell(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{}
	}
	return c.cells[y][x]
}

// Row returns row y as plain text: pixel cells become HalfBlock.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		if cell.Rune != 0 {
			sb.WriteRune(cell.Rune)
		} else {
			sb.WriteRune(HalfBlock)
		}
	}
	return sb.String()
}

// String converts the canvas to plain text without colors, one line per row.
// Useful for screenshots and tests.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height*3 + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(c.Row(y))
	}
	return sb.String()
}
