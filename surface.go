package fbcon

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is a rectangular region of 32-bit pixels with an explicit row
// stride. It borrows its pixel storage from the caller (typically a memory
// mapped framebuffer) and never allocates or frees it.
//
// Pixels are packed 0xAARRGGBB. The stride is measured in pixels and may
// exceed the visible width for alignment reasons; pixels between the visible
// width and the stride are never written.
//
// Surface implements image.Image and draw.Image so stdlib image tooling and
// font rasterizers can target it directly.
type Surface struct {
	pix    []uint32
	width  int
	height int
	stride int
}

// NewSurface wraps an existing pixel slice. The slice must hold at least
// stride*height pixels; a stride smaller than width is clamped up to width.
// Supplying a slice shorter than declared is a caller error.
func NewSurface(pix []uint32, width, height, stride int) *Surface {
	if stride < width {
		stride = width
	}
	return &Surface{pix: pix, width: width, height: height, stride: stride}
}

// Width returns the visible width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the visible height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Stride returns the row stride in pixels.
func (s *Surface) Stride() int {
	return s.stride
}

// Pix returns the underlying pixel slice (stride-indexed, not copied).
func (s *Surface) Pix() []uint32 {
	return s.pix
}

// SetPixel writes a packed 0xAARRGGBB value at (x, y).
// Writes outside the visible region are discarded.
func (s *Surface) SetPixel(x, y int, c uint32) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.stride+x] = c
}

// PixelAt returns the packed pixel value at (x, y), or 0 outside the
// visible region.
func (s *Surface) PixelAt(x, y int) uint32 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.pix[y*s.stride+x]
}

// Fill sets every pixel in the visible region to c. Stride padding between
// the visible width and the row stride is left untouched.
func (s *Surface) Fill(c uint32) {
	for y := 0; y < s.height; y++ {
		row := s.pix[y*s.stride : y*s.stride+s.width]
		for x := range row {
			row[x] = c
		}
	}
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// At implements image.Image.
func (s *Surface) At(x, y int) color.Color {
	return unpackPixel(s.PixelAt(x, y))
}

// Set implements draw.Image.
func (s *Surface) Set(x, y int, c color.Color) {
	s.SetPixel(x, y, packPixel(c))
}

var _ draw.Image = (*Surface)(nil)

// packPixel converts a color.Color to the 0xAARRGGBB pixel format.
func packPixel(c color.Color) uint32 {
	if rgba, ok := c.(color.RGBA); ok {
		return uint32(rgba.A)<<24 | uint32(rgba.R)<<16 | uint32(rgba.G)<<8 | uint32(rgba.B)
	}
	r, g, b, a := c.RGBA()
	return (a>>8)<<24 | (r>>8)<<16 | (g>>8)<<8 | (b >> 8)
}

// unpackPixel converts a 0xAARRGGBB pixel to color.RGBA.
func unpackPixel(p uint32) color.RGBA {
	return color.RGBA{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: uint8(p >> 24),
	}
}
