package main

import "errors"

// ErrGestureInProgress is returned when a drag begins before the active one ended
var ErrGestureInProgress = errors.New("gesture already in progress")

// DragAxis is the interpretation of a drag, decided on its first movement
type DragAxis int

const (
	DragAxisNone DragAxis = iota
	DragAxisHorizontal
	DragAxisVerticalUp
	DragAxisVerticalDown
)

func (a DragAxis) String() string {
	switch a {
	case DragAxisHorizontal:
		return "horizontal"
	case DragAxisVerticalUp:
		return "verticalUp"
	case DragAxisVerticalDown:
		return "verticalDown"
	default:
		return "none"
	}
}

// DragValue is one drag sample: the cumulative translation from the press
// point and the velocity-projected end translation.
type DragValue struct {
	Location                Vec2
	Translation             Vec2
	PredictedEndTranslation Vec2
}

// GestureSession carries the per-drag state from BeginDrag to EndDrag.
// It must not be reused after EndDrag.
type GestureSession struct {
	Axis             DragAxis
	StartTranslation Vec2
	started          bool
	ended            bool
}

// decideAxis picks the drag axis from the first movement. The predicted
// translation decides horizontal vs vertical, the raw translation decides
// the vertical direction.
func decideAxis(v DragValue) DragAxis {
	if abs(v.PredictedEndTranslation.X) > abs(v.PredictedEndTranslation.Y) {
		return DragAxisHorizontal
	}
	if v.Translation.Y > 0 {
		return DragAxisVerticalDown
	}
	return DragAxisVerticalUp
}

// pageDamping returns the resistance factor for a horizontal drag of dx on
// page index of count pages.
func pageDamping(index, count int, dx float64) float64 {
	if dx > 0 && index == 0 {
		return boundaryDamping
	}
	if dx < 0 && index == count-1 {
		return boundaryDamping
	}
	return pageDragDamping
}

// resolvePageTarget returns the index a horizontal drag settles on
func resolvePageTarget(index, count int, predictedDx, pageWidth float64) int {
	switch {
	case predictedDx < -pageWidth/3 && index+1 < count:
		return index + 1
	case predictedDx > pageWidth/3 && index > 0:
		return index - 1
	default:
		return index
	}
}

// panBounds returns the maximum absolute pan offset per axis for a page at
// the given zoom scale. imageRatio is the image's height/width.
func panBounds(page Size, imageRatio, scale float64) Vec2 {
	if scale <= 0 || page.Empty() {
		return Vec2{}
	}
	maxW := (page.W*scale - page.W) / 2 / scale
	maxH := (page.W*imageRatio*scale - page.H) / 2 / scale
	return Vec2{X: max(maxW, 0), Y: max(maxH, 0)}
}

func clampPan(p, bound Vec2) Vec2 {
	return Vec2{
		X: clamp(p.X, -bound.X, bound.X),
		Y: clamp(p.Y, -bound.Y, bound.Y),
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
