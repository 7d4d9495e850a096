package fbcon

// Line is one row of the console's scroll-back: a fixed-width sequence of
// single-byte cells plus a logical length. Cells past the logical length
// hold the zero sentinel and are never rendered.
//
// Lines handed out by Console.VisibleLines are copies; mutating the console
// afterwards does not change them.
type Line struct {
	cells []byte
	n     int
}

func newLine(cols int) Line {
	return Line{cells: make([]byte, cols)}
}

// Len returns the logical length: the number of occupied cells.
func (l Line) Len() int {
	return l.n
}

// Cap returns the fixed cell capacity of the line.
func (l Line) Cap() int {
	return len(l.cells)
}

// Byte returns the cell at column i, or 0 if i is out of range.
func (l Line) Byte(i int) byte {
	if i < 0 || i >= l.n {
		return 0
	}
	return l.cells[i]
}

// String returns the occupied cells as text. Sentinel cells (byte 0, the
// placeholder for undecodable input) are rendered as spaces.
func (l Line) String() string {
	buf := make([]byte, l.n)
	for i, c := range l.cells[:l.n] {
		if c == 0 {
			c = ' '
		}
		buf[i] = c
	}
	return string(buf)
}

// clone returns an independent copy of the line.
func (l Line) clone() Line {
	c := Line{cells: make([]byte, len(l.cells)), n: l.n}
	copy(c.cells, l.cells)
	return c
}

// reset empties the line and zeroes its cells.
func (l *Line) reset() {
	clear(l.cells)
	l.n = 0
}

// put writes b at the current logical length. The caller guarantees the
// line is not full.
func (l *Line) put(b byte) {
	l.cells[l.n] = b
	l.n++
}

// full reports whether the line has reached its cell capacity.
func (l Line) full() bool {
	return l.n == len(l.cells)
}
