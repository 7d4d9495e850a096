package fbcon

import "image"

// Screenshot renders the visible lines into a freshly allocated RGBA image
// sized to exactly fit the console grid with its configured font. It does
// not touch any configured display surface.
func (c *Console) Screenshot() *image.RGBA {
	c.mu.RLock()
	f, fg, bg := c.font, c.fg, c.bg
	c.mu.RUnlock()

	width := c.cols * f.Width()
	height := c.rows * f.Height()
	s := NewSurface(make([]uint32, width*height), width, height, width)
	Render(s, c.VisibleLines(), f, fg, bg)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, unpackPixel(s.PixelAt(x, y)))
		}
	}
	return img
}
