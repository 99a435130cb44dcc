package main

// TransitionDirection tells whether the morph grows into the viewer or
// shrinks back into the grid
type TransitionDirection int

const (
	TransitionOpening TransitionDirection = iota
	TransitionClosing
)

// SharedTransition morphs image Index between its thumbnail frame and its
// page frame. Progress 0 is the grid end, 1 is the viewer end, for both
// directions.
type SharedTransition struct {
	Index     int
	Direction TransitionDirection

	thumbFrame Rect
	pageFrame  Rect
	tween      Tween
}

// NewOpenTransition starts the thumbnail -> page morph
func NewOpenTransition(index int, thumbFrame, pageFrame Rect) *SharedTransition {
	return &SharedTransition{
		Index:      index,
		Direction:  TransitionOpening,
		thumbFrame: thumbFrame,
		pageFrame:  pageFrame,
		tween:      NewTween(Vec2{X: 0}, Vec2{X: 1}, previewDuration, EaseOut),
	}
}

// NewCloseTransition starts the page -> thumbnail morph. pageFrame is where
// the page is displayed at the moment of closing.
func NewCloseTransition(index int, pageFrame, thumbFrame Rect) *SharedTransition {
	return &SharedTransition{
		Index:      index,
		Direction:  TransitionClosing,
		thumbFrame: thumbFrame,
		pageFrame:  pageFrame,
		tween:      NewTween(Vec2{X: 1}, Vec2{X: 0}, previewDuration, EaseOut),
	}
}

// Step advances the morph and reports whether it is still running
func (t *SharedTransition) Step(dt float64) bool {
	t.tween.Step(dt)
	return t.tween.Active()
}

// Done reports completion
func (t *SharedTransition) Done() bool {
	return !t.tween.Active()
}

// Progress is 0 at the grid end and 1 at the viewer end
func (t *SharedTransition) Progress() float64 {
	return t.tween.Value().X
}

// Frame is the current on-screen frame of the morphing image
func (t *SharedTransition) Frame() Rect {
	return t.thumbFrame.Lerp(t.pageFrame, t.Progress())
}

// ScrimOpacity fades the viewer background in and out with the morph.
// from is the scrim opacity the viewer had when the morph started.
func (t *SharedTransition) ScrimOpacity(from float64) float64 {
	if t.Direction == TransitionOpening {
		return t.Progress()
	}
	return from * t.Progress()
}
