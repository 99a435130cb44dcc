package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation timings in seconds
const (
	previewDuration = 0.3 // grid <-> viewer morph
	settleDuration  = 0.2 // page settle, dismiss cancel, zoom snap
	smoothDuration  = 0.5 // pan settle after a zoomed drag
)

// Easing is a gween easing function
type Easing = ease.TweenFunc

var (
	// Linear easing
	Linear Easing = ease.Linear
	// EaseOut is a cubic ease-out: fast start, gentle stop
	EaseOut Easing = ease.OutCubic
	// Smooth is a cubic ease-in-out
	Smooth Easing = ease.InOutCubic
)

// Tween animates a Vec2 from one value toward a target. gween drives the
// eased progress; the value itself is interpolated in float64 so the end
// is exactly the target. Scalars ride on the X component, see animatedFloat.
type Tween struct {
	from, to Vec2
	progress float64
	tween    *gween.Tween
	active   bool
}

// NewTween starts a tween; a non-positive duration finishes immediately
func NewTween(from, to Vec2, duration float64, e Easing) Tween {
	if e == nil {
		e = Linear
	}
	if duration <= 0 || from == to {
		return Tween{from: from, to: to, progress: 1}
	}
	return Tween{
		from:   from,
		to:     to,
		tween:  gween.New(0, 1, float32(duration), e),
		active: true,
	}
}

// Step advances the tween by dt seconds and returns the current value
func (t *Tween) Step(dt float64) Vec2 {
	if !t.active {
		return t.to
	}
	p, finished := t.tween.Update(float32(dt))
	if finished {
		t.active = false
		t.progress = 1
		return t.to
	}
	t.progress = float64(p)
	return t.Value()
}

// Value returns the current value without advancing
func (t *Tween) Value() Vec2 {
	if !t.active {
		return t.to
	}
	return t.from.Lerp(t.to, t.progress)
}

// Progress returns eased progress in [0,1]
func (t *Tween) Progress() float64 {
	if !t.active {
		return 1
	}
	return t.progress
}

func (t *Tween) Active() bool { return t.active }
func (t *Tween) Target() Vec2 { return t.to }

// animatedVec2 is a presentation value that follows a model value,
// either snapping to it or tweening toward it.
type animatedVec2 struct {
	current Vec2
	tween   Tween
}

// Set snaps to v and cancels any running tween
func (a *animatedVec2) Set(v Vec2) {
	a.current = v
	a.tween = Tween{to: v}
}

// AnimateTo starts a tween from the current presentation value
func (a *animatedVec2) AnimateTo(v Vec2, duration float64, e Easing) {
	a.tween = NewTween(a.current, v, duration, e)
	if !a.tween.Active() {
		a.current = v
	}
}

// Step returns true while the value is still moving
func (a *animatedVec2) Step(dt float64) bool {
	if !a.tween.Active() {
		return false
	}
	a.current = a.tween.Step(dt)
	return true
}

func (a *animatedVec2) Value() Vec2 { return a.current }
func (a *animatedVec2) Animating() bool { return a.tween.Active() }

// animatedFloat is the scalar counterpart of animatedVec2
type animatedFloat struct {
	v animatedVec2
}

func (a *animatedFloat) Set(f float64) { a.v.Set(Vec2{X: f}) }
func (a *animatedFloat) AnimateTo(f, duration float64, e Easing) {
	a.v.AnimateTo(Vec2{X: f}, duration, e)
}
func (a *animatedFloat) Step(dt float64) bool { return a.v.Step(dt) }
func (a *animatedFloat) Value() float64 { return a.v.Value().X }
func (a *animatedFloat) Animating() bool { return a.v.Animating() }
