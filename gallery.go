package main

// Grid layout constants
const (
	gridInset         = 16.0 // padding around the column
	gridSpacing       = 8.0  // vertical gap between thumbnails
	thumbCornerRadius = 10.0
)

// GalleryCallbacks report gallery events to the owner
type GalleryCallbacks struct {
	// OnOpen is called when a tap starts the open transition for index
	OnOpen func(index int)
	// OnInvalidate is called after every state mutation
	OnInvalidate func()
}

// Gallery is the scrollable single-column thumbnail grid
type Gallery struct {
	sizes     []Size
	viewport  Size
	callbacks GalleryCallbacks

	selectedIndex int
	hasSelection  bool
	isPreviewing  bool
	scrollY       float64

	frames        []Rect // content coordinates
	contentHeight float64
}

// NewGallery creates a gallery for images of the given intrinsic sizes
func NewGallery(sizes []Size, viewport Size, callbacks GalleryCallbacks) *Gallery {
	g := &Gallery{
		sizes:     sizes,
		callbacks: callbacks,
	}
	g.Resize(viewport)
	return g
}

func (g *Gallery) invalidate() {
	if g.callbacks.OnInvalidate != nil {
		g.callbacks.OnInvalidate()
	}
}

// Resize lays the column out again for a new viewport
func (g *Gallery) Resize(viewport Size) {
	if g.viewport == viewport && g.frames != nil {
		return
	}
	g.viewport = viewport
	g.layout()
	g.scrollY = g.clampScroll(g.scrollY)
	g.invalidate()
}

func (g *Gallery) layout() {
	g.frames = make([]Rect, len(g.sizes))
	width := g.viewport.W - 2*gridInset
	if width < 0 {
		width = 0
	}
	y := gridInset
	for i, s := range g.sizes {
		h := 0.0
		if s.W > 0 {
			h = width * s.H / s.W
		}
		g.frames[i] = Rect{X: gridInset, Y: y, W: width, H: h}
		y += h
		if i < len(g.sizes)-1 {
			y += gridSpacing
		}
	}
	g.contentHeight = y + gridInset
}

func (g *Gallery) maxScroll() float64 {
	return max(g.contentHeight-g.viewport.H, 0)
}

func (g *Gallery) clampScroll(y float64) float64 {
	return clamp(y, 0, g.maxScroll())
}

// ScrollBy scrolls the content by dy pixels (positive moves content up)
func (g *Gallery) ScrollBy(dy float64) {
	if g.viewport.Empty() {
		return
	}
	y := g.clampScroll(g.scrollY + dy)
	if y == g.scrollY {
		return
	}
	g.scrollY = y
	g.invalidate()
}

// ScrollTo brings item index fully into view with the smallest scroll change
func (g *Gallery) ScrollTo(index int) {
	if index < 0 || index >= len(g.frames) || g.viewport.Empty() {
		return
	}
	f := g.frames[index]
	y := g.scrollY
	switch {
	case f.Y < y:
		y = f.Y
	case f.MaxY() > y+g.viewport.H:
		y = f.MaxY() - g.viewport.H
		if f.H > g.viewport.H {
			y = f.Y
		}
	}
	y = g.clampScroll(y)
	if y != g.scrollY {
		g.scrollY = y
		g.invalidate()
	}
}

// ScrollStep scrolls so the next (delta > 0) or previous (delta < 0)
// thumbnail is aligned at the top of the viewport
func (g *Gallery) ScrollStep(delta int) {
	if len(g.frames) == 0 || delta == 0 || g.viewport.Empty() {
		return
	}
	top := len(g.frames) - 1
	for i, f := range g.frames {
		if f.MaxY() > g.scrollY+gridInset {
			top = i
			break
		}
	}
	target := top + delta
	if delta < 0 && g.frames[top].Y-gridInset < g.scrollY {
		// the top item is partially scrolled off; reveal it first
		target++
	}
	target = min(max(target, 0), len(g.frames)-1)
	y := g.clampScroll(g.frames[target].Y - gridInset)
	if y != g.scrollY {
		g.scrollY = y
		g.invalidate()
	}
}

// HitTest returns the index of the thumbnail under a screen point
func (g *Gallery) HitTest(p Vec2) (int, bool) {
	if g.viewport.Empty() {
		return 0, false
	}
	content := Vec2{X: p.X, Y: p.Y + g.scrollY}
	for i, f := range g.frames {
		if f.Contains(content) {
			return i, true
		}
	}
	return 0, false
}

// Tap selects the thumbnail under p and starts previewing it
func (g *Gallery) Tap(p Vec2) bool {
	if g.isPreviewing {
		return false
	}
	index, ok := g.HitTest(p)
	if !ok {
		return false
	}
	g.Select(index)
	return true
}

// Select records index as selected and opens the preview for it.
// Selecting while already previewing does nothing.
func (g *Gallery) Select(index int) {
	if index < 0 || index >= len(g.sizes) || g.isPreviewing {
		return
	}
	g.selectedIndex = index
	g.hasSelection = true
	g.isPreviewing = true
	if g.callbacks.OnOpen != nil {
		g.callbacks.OnOpen(index)
	}
	g.invalidate()
}

// IndexChanged keeps the grid in sync with the image shown in the viewer
func (g *Gallery) IndexChanged(index int) {
	if index < 0 || index >= len(g.sizes) {
		return
	}
	g.selectedIndex = index
	g.hasSelection = true
	g.ScrollTo(index)
	g.invalidate()
}

// EndPreview clears the previewing flag once the close transition finished
func (g *Gallery) EndPreview() {
	if !g.isPreviewing {
		return
	}
	g.isPreviewing = false
	g.invalidate()
}

// ThumbnailFrame returns the on-screen frame of thumbnail index
func (g *Gallery) ThumbnailFrame(index int) Rect {
	if index < 0 || index >= len(g.frames) {
		return Rect{}
	}
	return g.frames[index].Offset(Vec2{Y: -g.scrollY})
}

// VisibleRange returns the half-open index range of thumbnails on screen
func (g *Gallery) VisibleRange() (int, int) {
	lo, hi := -1, -1
	for i, f := range g.frames {
		if f.MaxY() < g.scrollY || f.Y > g.scrollY+g.viewport.H {
			continue
		}
		if lo < 0 {
			lo = i
		}
		hi = i + 1
	}
	if lo < 0 {
		return 0, 0
	}
	return lo, hi
}

// SelectedIndex returns the selection, if any
func (g *Gallery) SelectedIndex() (int, bool) {
	return g.selectedIndex, g.hasSelection
}

func (g *Gallery) IsPreviewing() bool { return g.isPreviewing }
func (g *Gallery) ScrollY() float64 { return g.scrollY }
func (g *Gallery) ContentHeight() float64 { return g.contentHeight }
func (g *Gallery) Count() int { return len(g.sizes) }
func (g *Gallery) Viewport() Size { return g.viewport }
