package hud

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph byte  // CP437 code (0-255)
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15)
}

// blank is transparent: the renderer skips it entirely.
var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return blank
}

// Clear resets all cells to blank.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// ClearRow blanks one row.
func (b *CellBuffer) ClearRow(y int) {
	for x := 0; x < b.Cols; x++ {
		b.Set(x, y, ' ', ColorWhite, ColorBlack)
	}
}

// WriteString writes a string starting at (x, y). Each rune occupies one
// cell; runes outside CP437's byte range print as '?'.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	offset := 0
	for _, ch := range s {
		if ch > 255 {
			ch = '?'
		}
		b.Set(x+offset, y, byte(ch), fg, bg)
		offset++
	}
}

// WriteCentered writes s centered on row y.
func (b *CellBuffer) WriteCentered(y int, s string, fg, bg uint8) {
	b.WriteString((b.Cols-len(s))/2, y, s, fg, bg)
}

// Text returns row y as a string, trailing blanks trimmed. Used by tests
// and the terminal frontend.
func (b *CellBuffer) Text(y int) string {
	if y < 0 || y >= b.Rows {
		return ""
	}
	row := make([]byte, b.Cols)
	end := 0
	for x := 0; x < b.Cols; x++ {
		row[x] = b.Cells[y*b.Cols+x].Glyph
		if row[x] != ' ' && row[x] != 0 {
			end = x + 1
		}
	}
	return string(row[:end])
}

// DrawBar draws a width-cell gauge for val out of max: full blocks for
// the filled part, light shade for the rest.
func (b *CellBuffer) DrawBar(x, y, width int, val, max float64, fg uint8) {
	filled := 0
	if max > 0 {
		filled = int(float64(width) * val / max)
	}
	for i := 0; i < width; i++ {
		if i < filled {
			b.Set(x+i, y, GlyphFullBlock, fg, ColorBlack)
		} else {
			b.Set(x+i, y, GlyphLightShade, ColorDarkGray, ColorBlack)
		}
	}
}
