package fbcon

import "iter"

// Render clears the surface to bg, then draws each line of the sequence as
// a row of glyphs in fg. Row i starts at pixel row i*f.Height(), column j at
// pixel column j*f.Width().
//
// Rows whose top pixel row would fall outside the surface are skipped
// whole, never partially drawn; later rows are skipped too since rows only
// grow downward. Columns are clipped against the surface width
// independently of the line capacity, since the line width and the glyph
// width are supplied by different collaborators and may disagree. Sentinel
// cells (byte 0) are skipped so the cleared background shows through.
//
// Render never fails: every input is either bounded or clipped.
func Render(s *Surface, lines iter.Seq[Line], f Font, fg, bg uint32) {
	s.Fill(bg)

	maxCols := s.Width() / f.Width()
	row := 0
	for line := range lines {
		y := row * f.Height()
		if y+f.Height() > s.Height() {
			break
		}
		n := line.Len()
		if n > maxCols {
			n = maxCols
		}
		for col := 0; col < n; col++ {
			b := line.Byte(col)
			if b == 0 {
				continue
			}
			f.DrawGlyph(s, b, col*f.Width(), y, fg)
		}
		row++
	}
}
