package fbcon

import (
	"fmt"
	"iter"
	"strings"
	"sync"

	"github.com/unilibs/uniwidth"
)

const (
	// DefaultRows is the default number of console rows.
	DefaultRows = 24
	// DefaultCols is the default number of console columns.
	DefaultCols = 80

	// tabWidth is the number of spaces a tab expands to.
	tabWidth = 4

	// Placeholder is the sentinel byte stored for input the console cannot
	// represent. Placeholder cells are never rendered.
	Placeholder byte = 0
)

// Console is a fixed-capacity text console: an append-only ring of lines
// with bounded scroll-back, rendered on demand as bitmap glyphs into a
// pixel surface. Once more lines have been written than the console has
// rows, the oldest line is overwritten; that bounded loss is the
// memory/retention trade-off, not an error.
//
// A Console is a plain value owned by its creator; there is no package
// level instance. All methods are safe for concurrent use: a single lock
// guards the whole append+render sequence.
type Console struct {
	mu sync.RWMutex

	rows int
	cols int

	lines []Line

	// written counts line advances since creation. It never decreases; the
	// active line index is written % rows.
	written int

	// pendingFeed defers the advance for a trailing newline until the next
	// byte arrives, so "foo\n" does not immediately open a blank line.
	pendingFeed bool

	font Font
	fg   uint32
	bg   uint32

	// pixelWidth/pixelHeight are set by WithDisplay and resolved against
	// the font metrics in New.
	pixelWidth  int
	pixelHeight int

	surface SurfaceProvider
}

// Option configures a Console during construction.
type Option func(*Console)

// WithSize sets the console dimensions in character cells.
// Values <= 0 are replaced with defaults (24x80).
func WithSize(rows, cols int) Option {
	return func(c *Console) {
		if rows > 0 {
			c.rows = rows
		}
		if cols > 0 {
			c.cols = cols
		}
	}
}

// WithDisplay derives the console dimensions from a display size in pixels:
// columns = width / glyph width, rows = height / glyph height, using the
// configured font. Takes precedence over WithSize.
func WithDisplay(widthPx, heightPx int) Option {
	return func(c *Console) {
		c.pixelWidth = widthPx
		c.pixelHeight = heightPx
	}
}

// WithFont sets the glyph font. Defaults to the built-in MSXFont.
func WithFont(f Font) Option {
	return func(c *Console) {
		if f != nil {
			c.font = f
		}
	}
}

// WithForeground sets the glyph color (0xAARRGGBB). Defaults to white.
func WithForeground(c uint32) Option {
	return func(con *Console) {
		con.fg = c
	}
}

// WithBackground sets the clear color (0xAARRGGBB). Defaults to black.
func WithBackground(c uint32) Option {
	return func(con *Console) {
		con.bg = c
	}
}

// WithSurface sets the display-acquisition boundary. When set, every write
// re-acquires the surface and redraws it in full, so diagnostic text shows
// up without the caller ever rendering explicitly.
func WithSurface(p SurfaceProvider) Option {
	return func(c *Console) {
		c.surface = p
	}
}

// New creates a console with the given options.
// Defaults to 24x80 cells, MSX font, white on black, no display.
func New(opts ...Option) *Console {
	c := &Console{
		rows: DefaultRows,
		cols: DefaultCols,
		font: MSXFont{},
		fg:   0xFFFFFFFF,
		bg:   0xFF000000,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.pixelWidth > 0 && c.pixelHeight > 0 {
		c.cols = c.pixelWidth / c.font.Width()
		c.rows = c.pixelHeight / c.font.Height()
		if c.cols <= 0 {
			c.cols = 1
		}
		if c.rows <= 0 {
			c.rows = 1
		}
	}

	c.lines = make([]Line, c.rows)
	for i := range c.lines {
		c.lines[i] = newLine(c.cols)
	}

	return c
}

// Rows returns the console height in character rows.
func (c *Console) Rows() int {
	return c.rows
}

// Cols returns the console width in character columns.
func (c *Console) Cols() int {
	return c.cols
}

// Font returns the configured glyph font.
func (c *Console) Font() Font {
	return c.font
}

// Written returns the total number of line advances since creation. It
// never decreases; the active line index is Written() mod Rows().
func (c *Console) Written() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.written
}

// Put appends one byte to the console. Any byte value is accepted; the
// operation never fails and does not render.
//
//   - '\n' defers a line advance until the next byte.
//   - '\t' expands to four spaces, each appended under this same contract.
//   - Anything else lands in the active line, soft-wrapping to a new line
//     first when the active line is full.
func (c *Console) Put(b byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putLocked(b)
}

func (c *Console) putLocked(b byte) {
	if c.pendingFeed {
		c.pendingFeed = false
		c.advanceLocked()
	}

	switch b {
	case '\n':
		c.pendingFeed = true
	case '\t':
		for i := 0; i < tabWidth; i++ {
			c.putLocked(' ')
		}
	default:
		if c.activeLine().full() {
			c.advanceLocked()
		}
		c.activeLine().put(b)
	}
}

// advanceLocked moves to the next line. Once the ring has wrapped, the line
// at the new active index still holds the oldest content; it is reset here,
// lazily, rather than on every advance, so stale lines stay visible exactly
// until the ring revisits them.
func (c *Console) advanceLocked() {
	c.written++
	if c.wrappedLocked() {
		c.activeLine().reset()
	}
}

func (c *Console) activeLine() *Line {
	return &c.lines[c.written%c.rows]
}

// wrappedLocked reports whether the ring has discarded at least one line.
// This is the single definition of "wrapped"; both the lazy reset in
// advanceLocked and the emission order in VisibleLines use it.
func (c *Console) wrappedLocked() bool {
	return c.written >= c.rows
}

// VisibleLines returns the lines currently holding content, oldest first.
// The sequence is finite and restartable; each call recomputes from current
// state. Lines are copied out under the console lock when iteration starts,
// so produced values never change under later writes.
func (c *Console) VisibleLines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		c.mu.RLock()
		count := c.written + 1
		if count > c.rows {
			count = c.rows
		}
		start := 0
		if c.wrappedLocked() {
			start = (c.written + 1) % c.rows
		}
		snapshot := make([]Line, count)
		for i := 0; i < count; i++ {
			snapshot[i] = c.lines[(start+i)%c.rows].clone()
		}
		c.mu.RUnlock()

		for _, line := range snapshot {
			if !yield(line) {
				return
			}
		}
	}
}

// Write implements io.Writer. The input is interpreted as UTF-8 text, one
// byte cell per display column: scalars up to 0xFF pass through unchanged,
// wider scalars are replaced by one placeholder cell per column they would
// have occupied, and zero-width scalars are dropped. Invalid UTF-8 decodes
// to the replacement rune and becomes a placeholder.
//
// When a surface provider is configured the console is redrawn after the
// append; the returned error, if any, comes from acquiring the surface.
// Write expects whole runes per call; a rune split across calls is not
// reassembled.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	for _, r := range string(p) {
		switch {
		case r <= 0xFF:
			c.putLocked(byte(r))
		default:
			for i := 0; i < uniwidth.RuneWidth(r); i++ {
				c.putLocked(Placeholder)
			}
		}
	}
	c.mu.Unlock()

	return len(p), c.flush()
}

// WriteString appends a string; see Write.
func (c *Console) WriteString(s string) (int, error) {
	return c.Write([]byte(s))
}

// Print appends the operands formatted in the manner of fmt.Print.
func (c *Console) Print(args ...any) {
	fmt.Fprint(c, args...)
}

// Println appends the operands formatted in the manner of fmt.Println.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c, args...)
}

// Printf appends the operands formatted in the manner of fmt.Printf.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c, format, args...)
}

// Render clears the surface and redraws every visible line using the
// console's font and colors. Rendering twice with no intervening write
// produces identical surface contents.
func (c *Console) Render(s *Surface) {
	c.mu.RLock()
	f, fg, bg := c.font, c.fg, c.bg
	c.mu.RUnlock()
	Render(s, c.VisibleLines(), f, fg, bg)
}

// Flush re-acquires the surface from the configured provider and redraws
// it. It is a no-op without a provider. The surface is borrowed only for
// the duration of the call; no reference is retained across renders.
func (c *Console) Flush() error {
	return c.flush()
}

func (c *Console) flush() error {
	if c.surface == nil {
		return nil
	}
	s, err := c.surface.Acquire()
	if err != nil {
		return err
	}
	c.Render(s)
	return nil
}

// String returns the visible lines joined by newlines, with trailing blank
// lines trimmed. Placeholder cells read as spaces.
func (c *Console) String() string {
	var sb strings.Builder
	for line := range c.VisibleLines() {
		sb.WriteString(line.String())
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}
