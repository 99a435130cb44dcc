package main

import (
	"image"
	"math"
)

// Vec2 is a 2D translation or point in screen pixels
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{lerp(v.X, to.X, t), lerp(v.Y, to.Y, t)}
}

// Size is a width/height pair
type Size struct {
	W, H float64
}

// Empty reports whether either dimension is zero or negative
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

func (r Rect) Size() Size { return Size{r.W, r.H} }

func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

func (r Rect) Offset(d Vec2) Rect {
	return Rect{r.X + d.X, r.Y + d.Y, r.W, r.H}
}

// Contains uses half-open bounds so adjacent rects never both contain a point
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

func (r Rect) Lerp(to Rect, t float64) Rect {
	return Rect{
		X: lerp(r.X, to.X, t),
		Y: lerp(r.Y, to.Y, t),
		W: lerp(r.W, to.W, t),
		H: lerp(r.H, to.H, t),
	}
}

// ScaleAround scales the rect by f keeping the given anchor point fixed
func (r Rect) ScaleAround(anchor Vec2, f float64) Rect {
	return Rect{
		X: anchor.X + (r.X-anchor.X)*f,
		Y: anchor.Y + (r.Y-anchor.Y)*f,
		W: r.W * f,
		H: r.H * f,
	}
}

// AspectFit returns the largest rect with content's aspect ratio that fits
// inside container, centered (letterboxed).
func AspectFit(content Size, container Rect) Rect {
	if content.Empty() || container.Size().Empty() {
		return Rect{X: container.X, Y: container.Y}
	}
	scale := math.Min(container.W/content.W, container.H/content.H)
	w, h := content.W*scale, content.H*scale
	return Rect{
		X: container.X + (container.W-w)/2,
		Y: container.Y + (container.H-h)/2,
		W: w,
		H: h,
	}
}

// AspectFillSource returns the centered region of a content-sized source
// that, scaled up or down, exactly covers target.
func AspectFillSource(content image.Rectangle, target Size) image.Rectangle {
	cw, ch := float64(content.Dx()), float64(content.Dy())
	if cw <= 0 || ch <= 0 || target.Empty() {
		return image.Rectangle{}
	}
	scale := math.Max(target.W/cw, target.H/ch)
	sw := int(math.Round(target.W / scale))
	sh := int(math.Round(target.H / scale))
	if sw > content.Dx() {
		sw = content.Dx()
	}
	if sh > content.Dy() {
		sh = content.Dy()
	}
	x0 := content.Min.X + (content.Dx()-sw)/2
	y0 := content.Min.Y + (content.Dy()-sh)/2
	return image.Rect(x0, y0, x0+sw, y0+sh)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
