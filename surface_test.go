package fbcon

import (
	"image"
	"image/color"
	"testing"
)

func TestSurfaceSetPixelClips(t *testing.T) {
	s := NewSurface(make([]uint32, 4*4), 4, 4, 4)

	s.SetPixel(-1, 0, 0xFFFFFFFF)
	s.SetPixel(0, -1, 0xFFFFFFFF)
	s.SetPixel(4, 0, 0xFFFFFFFF)
	s.SetPixel(0, 4, 0xFFFFFFFF)

	for i, p := range s.Pix() {
		if p != 0 {
			t.Fatalf("out-of-bounds write landed at index %d", i)
		}
	}
}

func TestSurfacePixelAtOutOfBounds(t *testing.T) {
	s := NewSurface(make([]uint32, 4), 2, 2, 2)

	if got := s.PixelAt(5, 5); got != 0 {
		t.Errorf("expected 0 outside bounds, got %#x", got)
	}
}

func TestFillLeavesStridePaddingUntouched(t *testing.T) {
	const (
		width  = 4
		height = 3
		stride = 6
	)
	pix := make([]uint32, stride*height)
	const magic = 0xDEADBEEF
	for y := 0; y < height; y++ {
		for x := width; x < stride; x++ {
			pix[y*stride+x] = magic
		}
	}
	s := NewSurface(pix, width, height, stride)

	s.Fill(0xFF112233)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if pix[y*stride+x] != 0xFF112233 {
				t.Fatalf("visible pixel (%d,%d) not filled", x, y)
			}
		}
		for x := width; x < stride; x++ {
			if pix[y*stride+x] != magic {
				t.Fatalf("stride padding at (%d,%d) was overwritten", x, y)
			}
		}
	}
}

func TestNewSurfaceClampsStride(t *testing.T) {
	s := NewSurface(make([]uint32, 8*2), 8, 2, 3)

	if s.Stride() != 8 {
		t.Errorf("expected stride clamped to width 8, got %d", s.Stride())
	}
}

func TestSurfaceImageAdapter(t *testing.T) {
	s := NewSurface(make([]uint32, 4*4), 4, 4, 4)

	if got, want := s.Bounds(), image.Rect(0, 0, 4, 4); got != want {
		t.Errorf("expected bounds %v, got %v", want, got)
	}

	s.Set(1, 2, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF})

	if got := s.PixelAt(1, 2); got != 0xFF112233 {
		t.Errorf("expected packed pixel 0xFF112233, got %#x", got)
	}
	if got := s.At(1, 2); got != (color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}) {
		t.Errorf("expected RGBA round-trip, got %v", got)
	}
}

func TestMemorySurfaceAcquire(t *testing.T) {
	m := NewMemorySurface(16, 8, 20)

	s, err := m.Acquire()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != m.Surface() {
		t.Error("expected Acquire to hand out the owned surface")
	}
	if s.Width() != 16 || s.Height() != 8 || s.Stride() != 20 {
		t.Errorf("unexpected dimensions: %dx%d stride %d", s.Width(), s.Height(), s.Stride())
	}
}
