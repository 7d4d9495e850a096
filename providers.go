package fbcon

// SurfaceProvider is the display-acquisition boundary. The console resolves
// the surface fresh on every render and borrows it only for the duration of
// one call, so providers are free to swap buffers or remap memory between
// renders. Display mode programming (resolution, pixel format, buffer-swap
// timing) belongs to the provider, not the console.
//
// Implementations can wrap a memory mapped framebuffer, a window backend,
// or plain memory for tests.
type SurfaceProvider interface {
	// Acquire returns a writable surface of known stride and dimensions,
	// stable for the duration of one render call.
	Acquire() (*Surface, error)
}

// MemorySurface is a SurfaceProvider backed by ordinary memory. It owns its
// pixel storage and hands out the same surface on every acquisition, which
// makes it convenient for tests and offscreen rendering.
type MemorySurface struct {
	surface *Surface
}

// NewMemorySurface allocates a stride*height pixel buffer and wraps it.
// A stride smaller than width is clamped up to width.
func NewMemorySurface(width, height, stride int) *MemorySurface {
	if stride < width {
		stride = width
	}
	return &MemorySurface{
		surface: NewSurface(make([]uint32, stride*height), width, height, stride),
	}
}

// Acquire returns the owned surface. It never fails.
func (m *MemorySurface) Acquire() (*Surface, error) {
	return m.surface, nil
}

// Surface returns the owned surface directly, for inspection after renders.
func (m *MemorySurface) Surface() *Surface {
	return m.surface
}

var _ SurfaceProvider = (*MemorySurface)(nil)
