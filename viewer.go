package main

import (
	"errors"
	"fmt"
)

const (
	pageSpacing     = 16.0 // horizontal gap between viewer pages
	pageDragDamping = 0.6
	boundaryDamping = 0.3 // dragging past the first or last page
	minZoomScale    = 1.0
	maxZoomScale    = 3.0
	zoomSnapScale   = 1.1 // releasing a pinch below this snaps back to 1
)

// ErrNoImages is returned when there is nothing to show
var ErrNoImages = errors.New("no images")

// ViewerCallbacks report viewer events back to the gallery
type ViewerCallbacks struct {
	OnChangeIndex func(index int)
	OnClose       func()
	// OnInvalidate is called after every state mutation so the owner can
	// schedule a redraw.
	OnInvalidate func()
}

// Viewer is the paging/zoom/dismiss state machine for one open preview.
// Model fields hold the committed state; the animated fields are what gets
// drawn and converge on the model.
type Viewer struct {
	sizes     []Size // intrinsic image sizes, read-only
	pageSize  Size
	callbacks ViewerCallbacks

	currentIndex    int
	pageOffset      Vec2
	dragOffset      Vec2
	zoomScale       float64
	previousPinch   float64
	committedPan    Vec2
	session         *GestureSession
	closeRequested  bool
	pinchInProgress bool

	shownPageOffset animatedVec2
	shownDragOffset animatedVec2
	shownZoom       animatedFloat
}

// NewViewer opens a viewer on index. The index is clamped into range.
func NewViewer(sizes []Size, index int, pageSize Size, callbacks ViewerCallbacks) (*Viewer, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("opening viewer: %w", ErrNoImages)
	}
	if index < 0 {
		index = 0
	} else if index >= len(sizes) {
		index = len(sizes) - 1
	}

	v := &Viewer{
		sizes:         sizes,
		pageSize:      pageSize,
		callbacks:     callbacks,
		currentIndex:  index,
		zoomScale:     1,
		previousPinch: 1,
	}
	v.pageOffset = v.restingPageOffset(index)
	v.shownPageOffset.Set(v.pageOffset)
	v.shownZoom.Set(1)
	return v, nil
}

func (v *Viewer) restingPageOffset(index int) Vec2 {
	return Vec2{X: -(v.pageSize.W + pageSpacing) * float64(index)}
}

func (v *Viewer) invalidate() {
	if v.callbacks.OnInvalidate != nil {
		v.callbacks.OnInvalidate()
	}
}

// inert reports whether gestures must be ignored
func (v *Viewer) inert() bool {
	return v.closeRequested || v.pageSize.Empty()
}

// Resize updates the page size, e.g. after a window resize
func (v *Viewer) Resize(pageSize Size) {
	if v.pageSize == pageSize {
		return
	}
	v.pageSize = pageSize
	v.pageOffset = v.restingPageOffset(v.currentIndex)
	v.shownPageOffset.Set(v.pageOffset)
	if v.zoomScale > 1 {
		v.committedPan = clampPan(v.committedPan, v.currentPanBounds())
		v.dragOffset = v.committedPan
		v.shownDragOffset.Set(v.dragOffset)
	}
	v.invalidate()
}

// BeginDrag opens a gesture session. Only one drag may be active.
func (v *Viewer) BeginDrag() (*GestureSession, error) {
	if v.session != nil {
		return nil, ErrGestureInProgress
	}
	v.session = &GestureSession{}
	return v.session, nil
}

// DragChanged handles one movement of the active drag
func (v *Viewer) DragChanged(s *GestureSession, value DragValue) {
	if s == nil || s != v.session || s.ended || v.inert() {
		return
	}
	if !s.started {
		s.started = true
		s.StartTranslation = value.Translation
	}

	if v.zoomScale > 1 {
		v.dragOffset = v.committedPan.Add(value.Translation.Scale(1 / v.zoomScale))
		v.shownDragOffset.Set(v.dragOffset)
		v.invalidate()
		return
	}

	switch s.Axis {
	case DragAxisHorizontal:
		dx := value.Translation.X
		damping := pageDamping(v.currentIndex, len(v.sizes), dx)
		v.pageOffset.X = v.restingPageOffset(v.currentIndex).X + dx*damping
		v.shownPageOffset.Set(v.pageOffset)
		v.invalidate()
	case DragAxisVerticalUp:
		// recognised, does nothing
	case DragAxisVerticalDown:
		v.dragOffset = value.Translation
		v.shownDragOffset.Set(v.dragOffset)
		v.invalidate()
	case DragAxisNone:
		s.Axis = decideAxis(value)
		debugLog("drag axis: %s", s.Axis)
	}
}

// EndDrag finishes the active drag and consumes the session
func (v *Viewer) EndDrag(s *GestureSession, value DragValue) {
	if s == nil || s != v.session || s.ended {
		return
	}
	s.ended = true
	v.session = nil
	if v.inert() {
		return
	}

	if v.zoomScale > 1 {
		v.settlePan(value.PredictedEndTranslation)
		return
	}

	switch s.Axis {
	case DragAxisHorizontal:
		target := resolvePageTarget(v.currentIndex, len(v.sizes), value.PredictedEndTranslation.X, v.pageSize.W)
		v.settleOnPage(target)
	case DragAxisVerticalDown:
		if value.Translation.Y > 0 {
			v.requestClose()
		} else {
			v.dragOffset = Vec2{}
			v.shownDragOffset.AnimateTo(v.dragOffset, settleDuration, EaseOut)
			v.invalidate()
		}
	}
}

func (v *Viewer) settlePan(predicted Vec2) {
	raw := v.committedPan.Add(predicted.Scale(1 / v.zoomScale))
	pan := clampPan(raw, v.currentPanBounds())
	v.committedPan = pan
	v.dragOffset = pan
	v.shownDragOffset.AnimateTo(pan, smoothDuration, Smooth)
	v.invalidate()
}

func (v *Viewer) settleOnPage(target int) {
	v.currentIndex = target
	if v.callbacks.OnChangeIndex != nil {
		v.callbacks.OnChangeIndex(target)
	}
	v.pageOffset = v.restingPageOffset(target)
	v.shownPageOffset.AnimateTo(v.pageOffset, settleDuration, EaseOut)
	v.invalidate()
}

func (v *Viewer) currentPanBounds() Vec2 {
	return panBounds(v.pageSize, v.imageRatio(v.currentIndex), v.zoomScale)
}

// imageRatio is height/width of the image, 0 for degenerate images
func (v *Viewer) imageRatio(index int) float64 {
	s := v.sizes[index]
	if s.W <= 0 {
		return 0
	}
	return s.H / s.W
}

// PinchChanged takes the cumulative magnification of the active pinch
func (v *Viewer) PinchChanged(magnification float64) {
	if v.inert() || magnification <= 0 || v.previousPinch <= 0 {
		return
	}
	v.pinchInProgress = true
	delta := magnification / v.previousPinch
	v.previousPinch = magnification
	v.zoomScale = clamp(v.zoomScale*delta, minZoomScale, maxZoomScale)
	v.shownZoom.Set(v.zoomScale)
	if v.zoomScale > 1 {
		// a page swipe interrupted by the pinch settles back onto its page
		resting := v.restingPageOffset(v.currentIndex)
		if v.pageOffset != resting {
			v.pageOffset = resting
			v.shownPageOffset.AnimateTo(resting, settleDuration, EaseOut)
		}
	}
	v.invalidate()
}

// PinchEnded finishes the active pinch, snapping back when barely zoomed
func (v *Viewer) PinchEnded() {
	v.previousPinch = 1
	v.pinchInProgress = false
	if v.inert() {
		return
	}
	if v.zoomScale < zoomSnapScale {
		v.resetZoom()
	}
}

func (v *Viewer) resetZoom() {
	v.committedPan = Vec2{}
	v.zoomScale = 1
	v.dragOffset = Vec2{}
	v.shownZoom.AnimateTo(1, settleDuration, EaseOut)
	v.shownDragOffset.AnimateTo(Vec2{}, settleDuration, EaseOut)
	v.invalidate()
}

// ZoomBy zooms by a discrete factor (keyboard), behaving like a full pinch
func (v *Viewer) ZoomBy(factor float64) {
	if v.inert() || v.session != nil || v.pinchInProgress || factor <= 0 {
		return
	}
	v.zoomScale = clamp(v.zoomScale*factor, minZoomScale, maxZoomScale)
	v.shownZoom.AnimateTo(v.zoomScale, settleDuration, EaseOut)
	if v.zoomScale < zoomSnapScale {
		v.resetZoom()
		return
	}
	v.committedPan = clampPan(v.committedPan, v.currentPanBounds())
	v.dragOffset = v.committedPan
	v.shownDragOffset.AnimateTo(v.dragOffset, settleDuration, EaseOut)
	v.invalidate()
}

// ResetZoom returns to the unzoomed state
func (v *Viewer) ResetZoom() {
	if v.inert() || v.session != nil || v.pinchInProgress {
		return
	}
	v.resetZoom()
}

// Page moves one page forward (+1) or back (-1) as a full swipe would
func (v *Viewer) Page(delta int) {
	if v.inert() || v.session != nil || v.zoomScale > 1 {
		return
	}
	target := v.currentIndex + delta
	if target < 0 || target >= len(v.sizes) {
		return
	}
	v.settleOnPage(target)
}

// Close asks the owner to close the viewer if the close affordance is enabled
func (v *Viewer) Close() bool {
	if !v.CloseEnabled() || v.closeRequested {
		return false
	}
	v.requestClose()
	return true
}

func (v *Viewer) requestClose() {
	if v.closeRequested {
		return
	}
	v.closeRequested = true
	if v.callbacks.OnClose != nil {
		v.callbacks.OnClose()
	}
	v.invalidate()
}

// Step advances presentation animations; it returns true while anything moves
func (v *Viewer) Step(dt float64) bool {
	moving := v.shownPageOffset.Step(dt)
	moving = v.shownDragOffset.Step(dt) || moving
	moving = v.shownZoom.Step(dt) || moving
	return moving
}

// Animating reports whether any presentation value is still moving
func (v *Viewer) Animating() bool {
	return v.shownPageOffset.Animating() || v.shownDragOffset.Animating() || v.shownZoom.Animating()
}

// CloseEnabled reports whether the close control is usable and visible.
// It is off while zoomed or while any drag/pan offset is non-zero.
func (v *Viewer) CloseEnabled() bool {
	return !v.isDismissDragging()
}

func (v *Viewer) isDismissDragging() bool {
	return v.zoomScale > 1 || abs(v.dragOffset.X) > 0 || abs(v.dragOffset.Y) > 0
}

// ScrimOpacity is the opacity of the viewer background, clamped to [0,1]
func (v *Viewer) ScrimOpacity() float64 {
	if v.shownZoom.Value() != 1 {
		return 1
	}
	if v.pageSize.H <= 0 {
		return 1
	}
	return clamp(1-v.shownDragOffset.Value().Y/v.pageSize.H, 0, 1)
}

// PageFrame returns where page index is drawn now, in viewer coordinates,
// before zoom and pan are applied.
func (v *Viewer) PageFrame(index int) Rect {
	x := float64(index)*(v.pageSize.W+pageSpacing) + v.shownPageOffset.Value().X
	return Rect{X: x, Y: 0, W: v.pageSize.W, H: v.pageSize.H}
}

// DisplayedImageFrame returns the on-screen frame of the image on page
// index, with the letterbox fit, drag/pan offset and zoom applied.
func (v *Viewer) DisplayedImageFrame(index int) Rect {
	page := v.PageFrame(index)
	fit := AspectFit(v.sizes[index], page)
	if index != v.currentIndex {
		return fit
	}
	scale := v.shownZoom.Value()
	// offset is applied before the scale effect, so it scales with the image
	offset := v.shownDragOffset.Value().Scale(scale)
	return fit.ScaleAround(page.Center(), scale).Offset(offset)
}

func (v *Viewer) CurrentIndex() int { return v.currentIndex }
func (v *Viewer) Count() int { return len(v.sizes) }
func (v *Viewer) PageSize() Size { return v.pageSize }
func (v *Viewer) ZoomScale() float64 { return v.zoomScale }
func (v *Viewer) PageOffset() Vec2 { return v.pageOffset }
func (v *Viewer) DragOffset() Vec2 { return v.dragOffset }
func (v *Viewer) CommittedPan() Vec2 { return v.committedPan }
func (v *Viewer) CloseRequested() bool { return v.closeRequested }
func (v *Viewer) DisplayedZoomScale() float64 { return v.shownZoom.Value() }

// ActiveDragAxis is the axis of the drag in progress, none between drags
func (v *Viewer) ActiveDragAxis() DragAxis {
	if v.session == nil {
		return DragAxisNone
	}
	return v.session.Axis
}
