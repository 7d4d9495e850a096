// Package fbcon provides a framebuffer text console for surfacing
// diagnostic output on devices where no debugger or serial console is
// available.
//
// The console keeps a fixed-capacity scroll-back of recent text lines and
// renders them on demand as fixed-width bitmap glyphs directly into a raw
// 32-bit pixel surface. It has no dependency on a display stack: the caller
// supplies a writable pixel region of known stride and dimensions, and the
// console does the rest.
//
// # Quick Start
//
// Create a console and write text to it:
//
//	con := fbcon.New(fbcon.WithSize(27, 80))
//	con.Printf("boot stage %d: %s\n", 3, "mmu enabled")
//	fmt.Println(con) // "boot stage 3: mmu enabled"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Console]: the line buffer — an append-only ring of fixed-width lines
//   - [Font]: paints glyphs for byte values; [MSXFont] is the built-in 8x8
//     bitmap variant, [FaceFont] adapts any x/image font face
//   - [Surface]: a stride-indexed region of 0xAARRGGBB pixels
//   - [SurfaceProvider]: the display-acquisition boundary
//
// # Line Buffer
//
// Console accepts text byte by byte. A newline defers the line advance
// until the next byte arrives, so a trailing "\n" never opens a blank line
// early; tabs expand to four spaces; lines that overflow the column count
// soft-wrap. Once more lines have been written than the console has rows,
// the oldest line is overwritten. That bounded loss is the point: memory
// use is fixed no matter how much is logged.
//
//	for line := range con.VisibleLines() {
//	    fmt.Println(line)
//	}
//
// # Rendering
//
// Every render clears the surface and redraws all visible lines:
//
//	pix := make([]uint32, stride*height)
//	s := fbcon.NewSurface(pix, width, height, stride)
//	con.Render(s)
//
// Attach a [SurfaceProvider] to redraw automatically after every write,
// the way an on-device diagnostic console behaves:
//
//	mem := fbcon.NewMemorySurface(640, 216, 640)
//	con := fbcon.New(
//	    fbcon.WithDisplay(640, 216),
//	    fbcon.WithSurface(mem),
//	)
//	con.Println("panic: stack overflow") // surface is already up to date
//
// The surface is re-acquired for each render and never retained, so a
// provider may swap buffers or remap memory between calls.
//
// # Input
//
// Console implements io.Writer over UTF-8 text. Each cell holds a single
// byte: scalars up to 0xFF pass through, anything wider is replaced by
// placeholder cells (one per display column) that render as background.
//
//	cmd.Stderr = con
//
// # Thread Safety
//
// All Console methods are safe for concurrent use; one internal lock guards
// the whole append+render sequence.
package fbcon
