package main

import (
	"math"
	"testing"
)

// easeAt evaluates e at linear progress t in [0,1]
func easeAt(e Easing, t float64) float64 {
	return float64(e(float32(t), 0, 1, 1))
}

// tweenEqual allows for the float32 progress of the underlying tween
func tweenEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

func TestEasingEndpoints(t *testing.T) {
	for name, ease := range map[string]Easing{"Linear": Linear, "EaseOut": EaseOut, "Smooth": Smooth} {
		if easeAt(ease, 0) != 0 || easeAt(ease, 1) != 1 {
			t.Errorf("%s: expected 0->0 and 1->1, got %v and %v", name, easeAt(ease, 0), easeAt(ease, 1))
		}
		prev := 0.0
		for i := 1; i <= 20; i++ {
			v := easeAt(ease, float64(i)/20)
			if v < prev {
				t.Errorf("%s: not monotonic at %d", name, i)
			}
			prev = v
		}
	}
}

func TestTweenReachesExactTarget(t *testing.T) {
	target := Vec2{X: -1248.0000001, Y: 3.3}
	tw := NewTween(Vec2{X: 1, Y: 2}, target, 0.2, EaseOut)
	steps := 0
	for tw.Active() {
		tw.Step(1.0 / 60)
		steps++
		if steps > 100 {
			t.Fatal("tween never finished")
		}
	}
	if tw.Value() != target {
		t.Errorf("Expected exact target %v, got %v", target, tw.Value())
	}
	if tw.Progress() != 1 {
		t.Errorf("Expected progress 1, got %v", tw.Progress())
	}
}

func TestTweenImmediate(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec2
		duration float64
	}{
		{"ZeroDuration", Vec2{}, Vec2{X: 5}, 0},
		{"SameValue", Vec2{X: 5}, Vec2{X: 5}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTween(tt.from, tt.to, tt.duration, nil)
			if tw.Active() {
				t.Error("Expected inactive tween")
			}
			if tw.Value() != tt.to {
				t.Errorf("Expected %v, got %v", tt.to, tw.Value())
			}
		})
	}

	var zero Tween
	if zero.Active() || zero.Value() != (Vec2{}) {
		t.Error("Zero tween must be inactive at the origin")
	}
}

func TestTweenMidway(t *testing.T) {
	tw := NewTween(Vec2{}, Vec2{X: 100}, 1, Linear)
	if v := tw.Step(0.25); !tweenEqual(v.X, 25) {
		t.Errorf("Expected 25, got %v", v.X)
	}
	if !tw.Active() {
		t.Error("Expected still active")
	}
}

func TestAnimatedVec2(t *testing.T) {
	var a animatedVec2
	a.Set(Vec2{X: 10})
	if a.Animating() || a.Value() != (Vec2{X: 10}) {
		t.Fatalf("Set did not snap: %v", a.Value())
	}

	a.AnimateTo(Vec2{X: 20}, 0.1, Linear)
	if !a.Animating() {
		t.Fatal("Expected animation")
	}
	if !a.Step(0.05) || !tweenEqual(a.Value().X, 15) {
		t.Errorf("Expected 15 halfway, got %v", a.Value().X)
	}
	// the finishing step still reports movement so the last frame is drawn
	if !a.Step(0.1) {
		t.Error("Expected the finishing step to report movement")
	}
	if a.Step(0.1) {
		t.Error("Expected no movement after finishing")
	}
	if a.Value() != (Vec2{X: 20}) {
		t.Errorf("Expected 20, got %v", a.Value())
	}

	// retargeting starts from the shown value
	a.AnimateTo(Vec2{X: 0}, 0.1, Linear)
	a.Step(0.05)
	a.AnimateTo(Vec2{X: 10}, 0.1, Linear)
	a.Step(0.05)
	if !tweenEqual(a.Value().X, 10) {
		t.Errorf("Expected 10, got %v", a.Value().X)
	}
}

func TestAnimatedFloat(t *testing.T) {
	var f animatedFloat
	f.Set(1)
	f.AnimateTo(3, 0.2, EaseOut)
	for f.Step(1.0 / 60) {
	}
	if f.Value() != 3 || f.Animating() {
		t.Errorf("Expected settled at 3, got %v (animating %v)", f.Value(), f.Animating())
	}
}

func TestEasingShapes(t *testing.T) {
	tests := []struct {
		name string
		ease Easing
		at   float64
		want float64
	}{
		{"LinearHalf", Linear, 0.5, 0.5},
		{"EaseOutHalf", EaseOut, 0.5, 0.875},
		{"SmoothHalf", Smooth, 0.5, 0.5},
		{"SmoothQuarter", Smooth, 0.25, 0.0625},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := easeAt(tt.ease, tt.at); !tweenEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
