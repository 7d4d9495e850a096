package fbcon

import (
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font paints fixed-size glyphs for single byte values into a Surface.
// Implementations are stateless; the console never assumes anything about a
// font beyond its cell dimensions and the DrawGlyph contract.
type Font interface {
	// Width returns the glyph cell width in pixels.
	Width() int
	// Height returns the glyph cell height in pixels.
	Height() int
	// DrawGlyph paints the glyph for byte value b with its top-left corner
	// at (x, y), writing fg only where the glyph has set pixels. Background
	// pixels are left untouched.
	DrawGlyph(s *Surface, b byte, x, y int, fg uint32)
}

const (
	msxGlyphWidth  = 8
	msxGlyphHeight = 8
)

// MSXFont is the built-in 8x8 monochrome bitmap font. Its table covers all
// 256 byte values, so any byte renders deterministically.
type MSXFont struct{}

// Width returns 8.
func (MSXFont) Width() int {
	return msxGlyphWidth
}

// Height returns 8.
func (MSXFont) Height() int {
	return msxGlyphHeight
}

// DrawGlyph paints the 8x8 glyph for b. Each table byte is one pixel row
// with bit 7 as the leftmost column.
func (MSXFont) DrawGlyph(s *Surface, b byte, x, y int, fg uint32) {
	base := int(b) * msxGlyphHeight
	for gy := 0; gy < msxGlyphHeight; gy++ {
		rowBits := msxFontData[base+gy]
		for gx := 0; gx < msxGlyphWidth; gx++ {
			if rowBits&(0x80>>gx) != 0 {
				s.SetPixel(x+gx, y+gy, fg)
			}
		}
	}
}

var _ Font = MSXFont{}

// FaceFont adapts a golang.org/x/image/font.Face to the Font interface.
// Cell dimensions are derived from the face metrics: the width from the
// advance of 'M', the height from the face line height.
type FaceFont struct {
	face   font.Face
	width  int
	height int
	ascent int
}

// NewFaceFont wraps an x/image font face.
func NewFaceFont(face font.Face) *FaceFont {
	metrics := face.Metrics()
	adv, _ := face.GlyphAdvance('M')
	width := adv.Ceil()
	if width == 0 {
		width = msxGlyphWidth
	}
	return &FaceFont{
		face:   face,
		width:  width,
		height: metrics.Height.Ceil(),
		ascent: metrics.Ascent.Ceil(),
	}
}

// LoadFaceFont loads a TrueType or OpenType font file and wraps it as a
// FaceFont at the given point size.
func LoadFaceFont(path string, size float64) (*FaceFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return NewFaceFont(face), nil
}

// Width returns the derived cell width in pixels.
func (f *FaceFont) Width() int {
	return f.width
}

// Height returns the derived cell height in pixels.
func (f *FaceFont) Height() int {
	return f.height
}

// DrawGlyph rasterizes the glyph for b through a font.Drawer with the
// Surface as destination. The baseline sits ascent pixels below y.
func (f *FaceFont) DrawGlyph(s *Surface, b byte, x, y int, fg uint32) {
	d := &font.Drawer{
		Dst:  s,
		Src:  image.NewUniform(unpackPixel(fg)),
		Face: f.face,
		Dot:  fixed.P(x, y+f.ascent),
	}
	d.DrawString(string(rune(b)))
}

var _ Font = (*FaceFont)(nil)
