package main

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestRenderThumbnail(t *testing.T) {
	src := solidImage(200, 100, color.RGBA{200, 40, 40, 255})

	t.Run("SizeAndCorners", func(t *testing.T) {
		thumb := renderThumbnail(src, 60, 40, 10)
		if got := thumb.Bounds().Size(); got != (image.Point{X: 60, Y: 40}) {
			t.Fatalf("Expected 60x40, got %v", got)
		}
		for _, p := range []image.Point{{0, 0}, {59, 0}, {0, 39}, {59, 39}} {
			if a := thumb.RGBAAt(p.X, p.Y).A; a != 0 {
				t.Errorf("Corner %v should be transparent, alpha %d", p, a)
			}
		}
		if c := thumb.RGBAAt(30, 20); c.A < 250 || c.R < 190 {
			t.Errorf("Center should be opaque source color, got %v", c)
		}
		if a := thumb.RGBAAt(30, 0).A; a < 250 {
			t.Errorf("Top edge midpoint should be opaque, alpha %d", a)
		}
	})

	t.Run("NoRadius", func(t *testing.T) {
		thumb := renderThumbnail(src, 20, 20, 0)
		if a := thumb.RGBAAt(0, 0).A; a < 250 {
			t.Errorf("Without a radius corners stay opaque, alpha %d", a)
		}
	})

	t.Run("EmptyTarget", func(t *testing.T) {
		thumb := renderThumbnail(src, 0, 10, 5)
		if !thumb.Bounds().Empty() {
			t.Errorf("Expected an empty thumbnail, got %v", thumb.Bounds())
		}
	})
}

func TestRoundCornersPremultiplied(t *testing.T) {
	img := solidImage(30, 30, color.RGBA{255, 255, 255, 255})
	roundCorners(img, 8)
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			c := img.RGBAAt(x, y)
			if c.R > c.A || c.G > c.A || c.B > c.A {
				t.Fatalf("Pixel (%d,%d) is not premultiplied: %v", x, y, c)
			}
		}
	}
	if a := img.RGBAAt(15, 15).A; a != 255 {
		t.Errorf("Center alpha should be untouched, got %d", a)
	}
}
