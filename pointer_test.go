package main

import (
	"fmt"
	"testing"
)

// recordingTarget logs gestures as short strings
type recordingTarget struct {
	events  []string
	drags   []DragValue
	pinches []float64
	scrolls []Vec2
}

func (r *recordingTarget) Tap(pos Vec2) {
	r.events = append(r.events, fmt.Sprintf("tap %v,%v", pos.X, pos.Y))
}
func (r *recordingTarget) DragBegan(v DragValue) {
	r.events = append(r.events, "began")
	r.drags = append(r.drags, v)
}
func (r *recordingTarget) DragChanged(v DragValue) {
	r.events = append(r.events, "changed")
	r.drags = append(r.drags, v)
}
func (r *recordingTarget) DragEnded(v DragValue) {
	r.events = append(r.events, "ended")
	r.drags = append(r.drags, v)
}
func (r *recordingTarget) PinchChanged(m float64) {
	r.events = append(r.events, "pinch")
	r.pinches = append(r.pinches, m)
}
func (r *recordingTarget) PinchEnded() {
	r.events = append(r.events, "pinchEnded")
}
func (r *recordingTarget) Scroll(d Vec2) {
	r.events = append(r.events, "scroll")
	r.scrolls = append(r.scrolls, d)
}

func pointerFrame(time float64, pointers ...PointerSample) PointerFrame {
	return PointerFrame{Time: time, Pointers: pointers}
}

func at(id int, x, y float64) PointerSample {
	return PointerSample{ID: id, Pos: Vec2{X: x, Y: y}}
}

func newTestRecognizer() (*GestureRecognizer, *recordingTarget) {
	target := &recordingTarget{}
	return NewGestureRecognizer(GetDefaultMouseSettings(), target), target
}

func equalEvents(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTapBelowThreshold(t *testing.T) {
	r, target := newTestRecognizer()
	r.Update(pointerFrame(0, at(0, 100, 100)))
	r.Update(pointerFrame(1.0/60, at(0, 102, 101)))
	r.Update(pointerFrame(2.0 / 60))

	if want := []string{"tap 102,101"}; !equalEvents(target.events, want) {
		t.Errorf("Expected %v, got %v", want, target.events)
	}
}

func TestDragSequence(t *testing.T) {
	r, target := newTestRecognizer()
	r.Update(pointerFrame(0, at(0, 100, 100)))
	r.Update(pointerFrame(1.0/60, at(0, 110, 100)))
	if !r.Dragging() {
		t.Fatal("Expected dragging past the threshold")
	}
	r.Update(pointerFrame(2.0/60, at(0, 150, 100)))
	r.Update(pointerFrame(3.0/60, at(0, 150, 100))) // no movement, no event
	r.Update(pointerFrame(4.0 / 60))

	want := []string{"began", "changed", "changed", "ended"}
	if !equalEvents(target.events, want) {
		t.Fatalf("Expected %v, got %v", want, target.events)
	}
	end := target.drags[len(target.drags)-1]
	if end.Translation != (Vec2{X: 50}) {
		t.Errorf("Expected end translation (50,0), got %v", end.Translation)
	}
	if end.PredictedEndTranslation.X <= end.Translation.X {
		t.Errorf("Expected a fling projection ahead of %v, got %v", end.Translation.X, end.PredictedEndTranslation.X)
	}
	if r.Dragging() {
		t.Error("Still dragging after release")
	}
}

func TestVelocityPrediction(t *testing.T) {
	var vt velocityTracker
	vt.add(0, Vec2{})
	vt.add(0.05, Vec2{X: 50})
	vt.add(0.1, Vec2{X: 100})

	got := vt.predictEnd(0.1, Vec2{X: 100})
	if !approxEqual(got.X, 100+1000*0.499) || got.Y != 0 {
		t.Errorf("Expected predicted x %v, got %v", 100+1000*0.499, got)
	}

	// samples older than the window are dropped
	vt.add(1.0, Vec2{X: 100})
	if v := vt.velocity(1.0); v != (Vec2{}) {
		t.Errorf("Expected zero velocity after a pause, got %v", v)
	}
}

func TestPinchFromTwoPointers(t *testing.T) {
	r, target := newTestRecognizer()
	r.Update(pointerFrame(0, at(0, 100, 100)))
	r.Update(pointerFrame(0.1, at(0, 100, 100), at(1, 200, 100)))
	r.Update(pointerFrame(0.2, at(0, 100, 100), at(1, 300, 100)))
	r.Update(pointerFrame(0.3, at(0, 100, 100)))
	r.Update(pointerFrame(0.4))

	want := []string{"pinch", "pinchEnded"}
	if !equalEvents(target.events, want) {
		t.Fatalf("Expected %v, got %v", want, target.events)
	}
	if !approxEqual(target.pinches[0], 2) {
		t.Errorf("Expected magnification 2, got %v", target.pinches[0])
	}
}

func TestPinchLeftoverFingerIsInert(t *testing.T) {
	r, target := newTestRecognizer()
	r.Update(pointerFrame(0, at(1, 100, 100), at(2, 200, 200)))
	r.Update(pointerFrame(0.1, at(1, 100, 100), at(2, 300, 300)))
	// first finger lifts, the second stays and wanders off
	r.Update(pointerFrame(0.2, at(2, 300, 300)))
	r.Update(pointerFrame(0.3, at(2, 300, 300)))
	r.Update(pointerFrame(0.4, at(2, 400, 500)))
	r.Update(pointerFrame(0.5))

	want := []string{"pinch", "pinchEnded"}
	if !equalEvents(target.events, want) {
		t.Fatalf("Expected %v, got %v", want, target.events)
	}

	// once every pointer is up a new press taps normally
	r.Update(pointerFrame(0.6, at(3, 50, 60)))
	r.Update(pointerFrame(0.7))
	want = append(want, "tap 50,60")
	if !equalEvents(target.events, want) {
		t.Errorf("Expected %v, got %v", want, target.events)
	}
}

func TestPressAfterPinchReleaseTaps(t *testing.T) {
	r, target := newTestRecognizer()
	r.Update(pointerFrame(0, at(0, 100, 100), at(1, 200, 100)))
	r.Update(pointerFrame(0.1))
	r.Update(pointerFrame(0.2, at(0, 10, 20)))
	r.Update(pointerFrame(0.3))

	want := []string{"pinchEnded", "tap 10,20"}
	if !equalEvents(target.events, want) {
		t.Errorf("Expected %v, got %v", want, target.events)
	}
}

func TestWheelPinch(t *testing.T) {
	r, target := newTestRecognizer()
	r.Update(PointerFrame{Time: 0, Wheel: Vec2{Y: 1}, Ctrl: true})
	r.Update(PointerFrame{Time: 0.1, Wheel: Vec2{Y: 1}, Ctrl: true})
	r.Update(PointerFrame{Time: 0.2})
	if !equalEvents(target.events, []string{"pinch", "pinch"}) {
		t.Fatalf("Expected two pinch changes, got %v", target.events)
	}
	if !approxEqual(target.pinches[1], 1.21) {
		t.Errorf("Expected cumulative magnification 1.21, got %v", target.pinches[1])
	}

	r.Update(PointerFrame{Time: 0.36})
	if !equalEvents(target.events, []string{"pinch", "pinch", "pinchEnded"}) {
		t.Fatalf("Expected pinch end after the idle timeout, got %v", target.events)
	}

	// a new ctrl+wheel starts over from 1
	r.Update(PointerFrame{Time: 1, Wheel: Vec2{Y: -1}, Ctrl: true})
	if last := target.pinches[len(target.pinches)-1]; !approxEqual(last, 0.9) {
		t.Errorf("Expected fresh magnification 0.9, got %v", last)
	}
}

func TestWheelScroll(t *testing.T) {
	r, target := newTestRecognizer()
	r.Update(PointerFrame{Time: 0, Wheel: Vec2{Y: -1}})
	if len(target.scrolls) != 1 || target.scrolls[0] != (Vec2{Y: -40}) {
		t.Fatalf("Expected scroll (0,-40), got %v", target.scrolls)
	}

	settings := GetDefaultMouseSettings()
	settings.WheelInverted = true
	r.UpdateSettings(settings)
	r.Update(PointerFrame{Time: 0.1, Wheel: Vec2{Y: -1}})
	if target.scrolls[1] != (Vec2{Y: 40}) {
		t.Errorf("Expected inverted scroll (0,40), got %v", target.scrolls[1])
	}
}
