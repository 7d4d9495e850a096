package fbcon

import (
	"errors"
	"testing"
)

const (
	testFG = 0xFFFFFFFF
	testBG = 0xFF000000
)

// glyphRegionMatches checks that the f.Width() x f.Height() region of s at
// (x, y) equals the glyph for b drawn over the clear color.
func glyphRegionMatches(t *testing.T, s *Surface, x, y int, f Font, b byte) bool {
	t.Helper()
	want := NewSurface(make([]uint32, f.Width()*f.Height()), f.Width(), f.Height(), f.Width())
	want.Fill(testBG)
	f.DrawGlyph(want, b, 0, 0, testFG)

	for gy := 0; gy < f.Height(); gy++ {
		for gx := 0; gx < f.Width(); gx++ {
			if s.PixelAt(x+gx, y+gy) != want.PixelAt(gx, gy) {
				return false
			}
		}
	}
	return true
}

func TestRenderIdempotent(t *testing.T) {
	c := New(WithSize(27, 80))
	c.WriteString("hello\nworld")

	s := NewSurface(make([]uint32, 640*216), 640, 216, 640)
	c.Render(s)
	first := make([]uint32, len(s.Pix()))
	copy(first, s.Pix())

	c.Render(s)

	for i := range first {
		if s.Pix()[i] != first[i] {
			t.Fatalf("pixel %d changed between renders: %#x vs %#x", i, first[i], s.Pix()[i])
		}
	}
}

func TestRenderGlyphPositions(t *testing.T) {
	c := New(WithSize(27, 80))
	c.WriteString("hello\nworld")

	lines := visible(c)
	if len(lines) != 2 || lines[0] != "hello" || lines[1] != "world" {
		t.Fatalf("expected [hello world], got %v", lines)
	}

	s := NewSurface(make([]uint32, 640*216), 640, 216, 640)
	c.Render(s)

	f := MSXFont{}
	// "world" sits on the second row: its glyphs start at pixel row 1*8.
	for col, b := range []byte("world") {
		if !glyphRegionMatches(t, s, col*f.Width(), f.Height(), f, b) {
			t.Errorf("glyph %q not found at column %d of pixel row %d", b, col, f.Height())
		}
	}
	// Everything below the two occupied rows stays clear.
	for y := 2 * f.Height(); y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.PixelAt(x, y) != testBG {
				t.Fatalf("expected clear pixel at (%d,%d)", x, y)
			}
		}
	}
}

func TestRenderClearsStaleContent(t *testing.T) {
	c := New(WithSize(5, 10))
	s := NewSurface(make([]uint32, 80*40), 80, 40, 80)

	c.WriteString("XXXXXXXXXX")
	c.Render(s)
	c.WriteString("\n.") // advance; first line still shorter content below
	c.Render(s)

	// Row 0 must show only the original line, row 1 only the dot; the
	// full-clear pass guarantees no residue from the previous frame.
	f := MSXFont{}
	if !glyphRegionMatches(t, s, 0, f.Height(), f, '.') {
		t.Error("expected '.' on the second row after re-render")
	}
}

func TestRenderRowClipping(t *testing.T) {
	c := New(WithSize(5, 10))
	for i := 0; i < 5; i++ {
		c.WriteString("mmmmm\n")
	}
	c.Put('m')

	// Surface fits two full glyph rows plus a partial third; the partial
	// row (and all after it) must be skipped entirely.
	s := NewSurface(make([]uint32, 80*20), 80, 20, 80)
	c.Render(s)

	for y := 16; y < 20; y++ {
		for x := 0; x < 80; x++ {
			if s.PixelAt(x, y) != testBG {
				t.Fatalf("expected no partial row at (%d,%d)", x, y)
			}
		}
	}
	if !glyphRegionMatches(t, s, 0, 8, MSXFont{}, 'm') {
		t.Error("expected second row rendered in full")
	}
}

func TestRenderColumnClipping(t *testing.T) {
	// The line capacity and the surface width disagree; the renderer must
	// re-check columns against the surface on its own.
	c := New(WithSize(3, 10))
	c.WriteString("0123456789")

	s := NewSurface(make([]uint32, 24*8), 24, 8, 24) // three glyph columns
	c.Render(s)

	f := MSXFont{}
	for col, b := range []byte("012") {
		if !glyphRegionMatches(t, s, col*f.Width(), 0, f, b) {
			t.Errorf("expected glyph %q at column %d", b, col)
		}
	}
}

func TestRenderSkipsPlaceholderCells(t *testing.T) {
	c := New(WithSize(3, 10))
	c.WriteString("a日b") // a, two placeholders, b

	s := NewSurface(make([]uint32, 80*8), 80, 8, 80)
	c.Render(s)

	// Columns 1 and 2 hold placeholders: background only.
	for y := 0; y < 8; y++ {
		for x := 8; x < 24; x++ {
			if s.PixelAt(x, y) != testBG {
				t.Fatalf("expected background in placeholder columns at (%d,%d)", x, y)
			}
		}
	}
	f := MSXFont{}
	if !glyphRegionMatches(t, s, 3*f.Width(), 0, f, 'b') {
		t.Error("expected 'b' after the placeholder cells")
	}
}

func TestRenderByte200Deterministic(t *testing.T) {
	c := New(WithSize(3, 10))
	c.Put(200)

	s := NewSurface(make([]uint32, 80*8), 80, 8, 80)
	c.Render(s)

	if !glyphRegionMatches(t, s, 0, 0, MSXFont{}, 200) {
		t.Error("expected byte 200 rendered from its table entry")
	}
}

func TestFlushThroughProvider(t *testing.T) {
	mem := NewMemorySurface(80, 24, 80)
	c := New(WithSize(3, 10), WithSurface(mem))

	if _, err := c.WriteString("hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Render-on-demand: the surface is already up to date after the write.
	f := MSXFont{}
	if !glyphRegionMatches(t, mem.Surface(), 0, 0, f, 'h') {
		t.Error("expected 'h' rendered by the write itself")
	}
	if !glyphRegionMatches(t, mem.Surface(), f.Width(), 0, f, 'i') {
		t.Error("expected 'i' rendered by the write itself")
	}
}

func TestFlushWithoutProvider(t *testing.T) {
	c := New(WithSize(3, 10))

	if err := c.Flush(); err != nil {
		t.Errorf("expected Flush without a provider to be a no-op, got %v", err)
	}
}

type failingProvider struct{ err error }

func (p failingProvider) Acquire() (*Surface, error) {
	return nil, p.err
}

func TestWriteReportsAcquireError(t *testing.T) {
	wantErr := errors.New("display gone")
	c := New(WithSize(3, 10), WithSurface(failingProvider{err: wantErr}))

	n, err := c.WriteString("x")
	if n != 1 {
		t.Errorf("expected the byte buffered regardless, n=%d", n)
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("expected acquire error, got %v", err)
	}
}

func TestScreenshot(t *testing.T) {
	c := New(WithSize(3, 10))
	c.WriteString("ok")

	img := c.Screenshot()

	wantW, wantH := 10*8, 3*8
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Fatalf("expected %dx%d image, got %dx%d", wantW, wantH, img.Bounds().Dx(), img.Bounds().Dy())
	}
	// 'o' row 2 (glyph table 0x70) sets pixel column 1.
	r, g, b, a := img.At(1, 2).RGBA()
	if r>>8 != 0xFF || g>>8 != 0xFF || b>>8 != 0xFF || a>>8 != 0xFF {
		t.Errorf("expected white foreground pixel, got %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
}
