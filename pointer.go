package main

import (
	"math"
	"sort"
)

const (
	// Velocity is measured over this trailing window, in seconds
	velocityWindow = 0.1
	// Fling projection for a 0.998/ms deceleration rate: v/1000 * d/(1-d)
	flingProjection = 0.998 / (1 - 0.998) / 1000
	// A ctrl+wheel zoom ends after this much wheel silence, in seconds
	wheelPinchIdle = 0.25
	minWheelPinch  = 0.1
)

// PointerSample is one active pointer (mouse button or touch) in a frame
type PointerSample struct {
	ID  int
	Pos Vec2
}

// PointerFrame is the raw input of one update tick
type PointerFrame struct {
	Time     float64 // seconds, monotonic
	Pointers []PointerSample
	Wheel    Vec2
	Ctrl     bool
}

type velocitySample struct {
	t           float64
	translation Vec2
}

// velocityTracker estimates drag velocity from recent samples
type velocityTracker struct {
	samples []velocitySample
}

func (vt *velocityTracker) reset() {
	vt.samples = vt.samples[:0]
}

func (vt *velocityTracker) add(t float64, translation Vec2) {
	vt.samples = append(vt.samples, velocitySample{t: t, translation: translation})
	vt.prune(t)
}

func (vt *velocityTracker) prune(now float64) {
	cut := 0
	for cut < len(vt.samples)-1 && now-vt.samples[cut].t > velocityWindow {
		cut++
	}
	if cut > 0 {
		vt.samples = append(vt.samples[:0], vt.samples[cut:]...)
	}
}

// velocity returns pixels per second at time now
func (vt *velocityTracker) velocity(now float64) Vec2 {
	vt.prune(now)
	if len(vt.samples) < 2 {
		return Vec2{}
	}
	first, last := vt.samples[0], vt.samples[len(vt.samples)-1]
	dt := last.t - first.t
	if dt <= 0 {
		return Vec2{}
	}
	return last.translation.Sub(first.translation).Scale(1 / dt)
}

// predictEnd projects where a fling released at now would come to rest
func (vt *velocityTracker) predictEnd(now float64, translation Vec2) Vec2 {
	return translation.Add(vt.velocity(now).Scale(flingProjection))
}

// GestureRecognizer turns raw pointer frames into tap, drag, pinch and
// scroll events. The first pointer down drives taps and drags; any two
// pointers drive a pinch at the same time.
type GestureRecognizer struct {
	settings MouseSettings
	target   GestureTarget

	primaryID  int
	hasPrimary bool
	start      Vec2
	last       Vec2
	dragging   bool
	pinchSeen  bool // set from a pinch until every pointer is up
	velocity   velocityTracker

	pinchActive      bool
	pinchInitialDist float64

	wheelPinchActive bool
	wheelPinchMag    float64
	lastWheelTime    float64
}

// NewGestureRecognizer creates a recognizer delivering events to target
func NewGestureRecognizer(settings MouseSettings, target GestureTarget) *GestureRecognizer {
	return &GestureRecognizer{settings: settings, target: target}
}

// Update processes one frame of pointer input
func (r *GestureRecognizer) Update(f PointerFrame) {
	pointers := append([]PointerSample(nil), f.Pointers...)
	sort.Slice(pointers, func(i, j int) bool { return pointers[i].ID < pointers[j].ID })

	r.updatePrimary(f.Time, pointers)
	r.updatePinch(pointers)
	r.updateWheel(f)
}

func (r *GestureRecognizer) updatePrimary(now float64, pointers []PointerSample) {
	var pos Vec2
	present := false
	for _, p := range pointers {
		if r.hasPrimary && p.ID == r.primaryID {
			pos, present = p.Pos, true
			break
		}
	}

	if !r.hasPrimary {
		if len(pointers) == 0 {
			r.pinchSeen = false
			return
		}
		if r.pinchSeen {
			// fingers left over from a pinch never tap or drag
			return
		}
		r.hasPrimary = true
		r.primaryID = pointers[0].ID
		r.start = pointers[0].Pos
		r.last = r.start
		r.dragging = false
		r.velocity.reset()
		r.velocity.add(now, Vec2{})
		return
	}

	if !present {
		r.releasePrimary(now)
		if len(pointers) == 0 {
			r.pinchSeen = false
		}
		return
	}

	translation := pos.Sub(r.start)
	r.velocity.add(now, translation)
	if !r.dragging && translation.Len() > float64(r.settings.DragThreshold) {
		r.dragging = true
		r.target.DragBegan(r.dragValue(now, pos))
	}
	if r.dragging && pos != r.last {
		r.target.DragChanged(r.dragValue(now, pos))
	}
	r.last = pos
}

func (r *GestureRecognizer) releasePrimary(now float64) {
	if r.dragging {
		r.target.DragEnded(r.dragValue(now, r.last))
	} else if !r.pinchSeen {
		r.target.Tap(r.last)
	}
	r.hasPrimary = false
	r.dragging = false
}

func (r *GestureRecognizer) dragValue(now float64, pos Vec2) DragValue {
	translation := pos.Sub(r.start)
	return DragValue{
		Location:                pos,
		Translation:             translation,
		PredictedEndTranslation: r.velocity.predictEnd(now, translation),
	}
}

func (r *GestureRecognizer) updatePinch(pointers []PointerSample) {
	if len(pointers) < 2 {
		if r.pinchActive {
			r.pinchActive = false
			r.target.PinchEnded()
		}
		return
	}

	d := pointers[1].Pos.Sub(pointers[0].Pos)
	dist := math.Hypot(d.X, d.Y)
	r.pinchSeen = true
	if !r.pinchActive {
		r.pinchActive = true
		r.pinchInitialDist = dist
		return
	}
	if r.pinchInitialDist > 0 {
		r.target.PinchChanged(dist / r.pinchInitialDist)
	}
}

func (r *GestureRecognizer) updateWheel(f PointerFrame) {
	switch {
	case f.Ctrl && f.Wheel.Y != 0:
		if !r.wheelPinchActive {
			r.wheelPinchActive = true
			r.wheelPinchMag = 1
		}
		r.wheelPinchMag = math.Max(r.wheelPinchMag*(1+f.Wheel.Y*r.settings.WheelZoomStep), minWheelPinch)
		r.lastWheelTime = f.Time
		r.target.PinchChanged(r.wheelPinchMag)
		return
	case f.Wheel != (Vec2{}):
		s := r.settings.WheelSensitivity
		if r.settings.WheelInverted {
			s = -s
		}
		r.target.Scroll(f.Wheel.Scale(s))
	}

	if r.wheelPinchActive && f.Time-r.lastWheelTime >= wheelPinchIdle {
		r.wheelPinchActive = false
		r.target.PinchEnded()
	}
}

// Dragging reports whether a drag is in progress
func (r *GestureRecognizer) Dragging() bool {
	return r.dragging
}

// UpdateSettings replaces the pointer settings
func (r *GestureRecognizer) UpdateSettings(settings MouseSettings) {
	r.settings = settings
}
