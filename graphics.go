package main

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
)

// Global font source shared by every text face
var globalFontSource *text.GoTextFaceSource

// InitGraphics initializes the global font source for text rendering
func InitGraphics() error {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	globalFontSource = s
	return nil
}

// DrawText draws text with specified position and color
func DrawText(screen *ebiten.Image, textString string, font *text.GoTextFace, x, y float64, textColor color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, textString, font, op)
}

// DrawFilledRect draws filled rectangles with float64 coordinates
func DrawFilledRect(screen *ebiten.Image, x, y, w, h float64, bgColor color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bgColor, false)
}

// DrawFilledRoundedRect draws a rect with circular corners of radius r
func DrawFilledRoundedRect(screen *ebiten.Image, x, y, w, h, r float64, c color.RGBA) {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		DrawFilledRect(screen, x, y, w, h, c)
		return
	}
	DrawFilledRect(screen, x+r, y, w-2*r, h, c)
	DrawFilledRect(screen, x, y+r, r, h-2*r, c)
	DrawFilledRect(screen, x+w-r, y+r, r, h-2*r, c)
	for _, p := range [][2]float64{{x + r, y + r}, {x + w - r, y + r}, {x + r, y + h - r}, {x + w - r, y + h - r}} {
		vector.DrawFilledCircle(screen, float32(p[0]), float32(p[1]), float32(r), c, true)
	}
}

// drawImageInFrame draws img stretched onto frame with the given opacity
func drawImageInFrame(screen, img *ebiten.Image, frame Rect, alpha float32) {
	b := img.Bounds()
	if frame.Size().Empty() || b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(frame.W/float64(b.Dx()), frame.H/float64(b.Dy()))
	op.GeoM.Translate(frame.X, frame.Y)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, op)
}

// renderThumbnail scales src to fill w x h, cropping the overflow, and
// rounds the corners with an anti-aliased alpha mask.
func renderThumbnail(src image.Image, w, h int, radius float64) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return dst
	}
	crop := AspectFillSource(src.Bounds(), Size{W: float64(w), H: float64(h)})
	if crop.Empty() {
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, xdraw.Src, nil)
	roundCorners(dst, radius)
	return dst
}

// roundCorners fades out the pixels outside circular corners of radius r.
// dst holds premultiplied alpha so every channel is scaled.
func roundCorners(dst *image.RGBA, r float64) {
	b := dst.Bounds()
	r = math.Min(r, math.Min(float64(b.Dx()), float64(b.Dy()))/2)
	if r <= 0 {
		return
	}
	ri := int(math.Ceil(r))
	for y := 0; y < ri; y++ {
		for x := 0; x < ri; x++ {
			// distance from the corner circle's center, sampled at pixel center
			dx := r - (float64(x) + 0.5)
			dy := r - (float64(y) + 0.5)
			coverage := clamp(r-math.Hypot(dx, dy)+0.5, 0, 1)
			if coverage >= 1 {
				continue
			}
			for _, p := range [][2]int{
				{b.Min.X + x, b.Min.Y + y},
				{b.Max.X - 1 - x, b.Min.Y + y},
				{b.Min.X + x, b.Max.Y - 1 - y},
				{b.Max.X - 1 - x, b.Max.Y - 1 - y},
			} {
				i := dst.PixOffset(p[0], p[1])
				for c := 0; c < 4; c++ {
					dst.Pix[i+c] = uint8(float64(dst.Pix[i+c]) * coverage)
				}
			}
		}
	}
}
