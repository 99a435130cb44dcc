package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Common colors used in rendering
var (
	colorWhite     = color.RGBA{255, 255, 255, 255}
	colorBlack     = color.RGBA{0, 0, 0, 255}
	colorGray      = color.RGBA{180, 180, 180, 255}
	colorYellow    = color.RGBA{255, 255, 100, 255}
	colorLightBlue = color.RGBA{200, 200, 255, 255}
	colorGreen     = color.RGBA{100, 255, 100, 255}
	colorOrange    = color.RGBA{255, 200, 100, 255}
	colorLightRed  = color.RGBA{255, 150, 150, 255}

	// Background colors for semi-transparent overlays
	bgColorLight  = color.RGBA{0, 0, 0, 128}
	bgColorMedium = color.RGBA{0, 0, 0, 160}
	bgColorDark   = color.RGBA{0, 0, 0, 200}
)

// Close button geometry, top-left of the viewer
const (
	closeButtonInset  = 16.0
	closeButtonWidth  = 88.0
	closeButtonHeight = 36.0
	closeButtonRadius = 8.0
)

// closeButtonFrame is where the close control is drawn and hit-tested
func closeButtonFrame() Rect {
	return Rect{X: closeButtonInset, Y: closeButtonInset, W: closeButtonWidth, H: closeButtonHeight}
}

// scrimColor is white at the given opacity, premultiplied
func scrimColor(opacity float64) color.RGBA {
	a := uint8(clamp(opacity, 0, 1) * 255)
	return color.RGBA{a, a, a, a}
}

// Renderer handles all drawing operations
type Renderer struct {
	renderState RenderState
	textures    *TextureCache
}

// NewRenderer creates a new Renderer. InitGraphics must have been called.
func NewRenderer(renderState RenderState, textures *TextureCache) *Renderer {
	return &Renderer{
		renderState: renderState,
		textures:    textures,
	}
}

func (r *Renderer) face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: globalFontSource, Size: size}
}

// Draw renders the entire screen
func (r *Renderer) Draw(screen *ebiten.Image) {
	// The screen is not cleared every frame
	screen.Fill(colorWhite)

	gallery := r.renderState.GetGallery()
	viewer := r.renderState.GetViewer()
	transition := r.renderState.GetTransition()

	r.drawGrid(screen, gallery)

	switch {
	case transition != nil:
		r.drawTransition(screen, transition)
	case viewer != nil:
		r.drawViewer(screen, viewer)
	}

	if r.renderState.IsShowingInfo() {
		r.drawInfoDisplay(screen, gallery, viewer)
	}

	if r.renderState.IsShowingHelp() {
		r.drawHelpOverlay(screen)
	}

	if overlayActive(r.renderState.GetOverlayMessage(), r.renderState.GetOverlayMessageTime()) {
		r.drawOverlayMessage(screen)
	}
}

func (r *Renderer) drawGrid(screen *ebiten.Image, gallery *Gallery) {
	selected, hasSelection := gallery.SelectedIndex()
	// the previewed item lives in the viewer or the morph, not in the grid
	hidden := hasSelection && gallery.IsPreviewing()

	lo, hi := gallery.VisibleRange()
	for i := lo; i < hi; i++ {
		if hidden && i == selected {
			continue
		}
		frame := gallery.ThumbnailFrame(i)
		if thumb := r.textures.Thumbnail(i, frame.Size()); thumb != nil {
			drawImageInFrame(screen, thumb, frame, 1)
		}
	}
}

func (r *Renderer) drawTransition(screen *ebiten.Image, t *SharedTransition) {
	DrawFilledRect(screen, 0, 0, float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()),
		scrimColor(t.ScrimOpacity(r.renderState.GetTransitionScrimStart())))
	if page := r.textures.Page(t.Index); page != nil {
		drawImageInFrame(screen, page, t.Frame(), 1)
	}
}

func (r *Renderer) drawViewer(screen *ebiten.Image, viewer *Viewer) {
	pageSize := viewer.PageSize()
	if pageSize.Empty() {
		return
	}

	DrawFilledRect(screen, 0, 0, float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()),
		scrimColor(viewer.ScrimOpacity()))

	screenRect := Rect{W: pageSize.W, H: pageSize.H}
	for i := 0; i < viewer.Count(); i++ {
		page := viewer.PageFrame(i)
		if page.MaxX() <= screenRect.X || page.X >= screenRect.MaxX() {
			continue
		}
		if tex := r.textures.Page(i); tex != nil {
			drawImageInFrame(screen, tex, viewer.DisplayedImageFrame(i), 1)
		}
	}

	if viewer.CloseEnabled() {
		r.drawCloseButton(screen)
	}
}

func (r *Renderer) drawCloseButton(screen *ebiten.Image) {
	f := closeButtonFrame()
	DrawFilledRoundedRect(screen, f.X, f.Y, f.W, f.H, closeButtonRadius, bgColorMedium)

	font := r.face(r.renderState.GetFontSize())
	label := "Close"
	w, h := text.Measure(label, font, 0)
	DrawText(screen, label, font, f.X+(f.W-w)/2, f.Y+(f.H-h)/2, colorWhite)
}

func (r *Renderer) buildPageNumberString(gallery *Gallery, viewer *Viewer) string {
	if viewer != nil {
		return fmt.Sprintf("%d / %d", viewer.CurrentIndex()+1, viewer.Count())
	}
	if index, ok := gallery.SelectedIndex(); ok {
		return fmt.Sprintf("%d / %d", index+1, gallery.Count())
	}
	return fmt.Sprintf("- / %d", gallery.Count())
}

func (r *Renderer) drawInfoDisplay(screen *ebiten.Image, gallery *Gallery, viewer *Viewer) {
	infoFont := r.face(r.renderState.GetFontSize())
	infoText := r.buildPageNumberString(gallery, viewer)

	textWidth, textHeight := text.Measure(infoText, infoFont, 0)

	// Position at bottom right corner
	padding := 10.0
	textX := float64(screen.Bounds().Dx()) - textWidth - padding
	textY := float64(screen.Bounds().Dy()) - textHeight - padding

	bgPadding := 5.0
	DrawFilledRect(screen, textX-bgPadding, textY-bgPadding, textWidth+bgPadding*2, textHeight+bgPadding*2, bgColorLight)
	DrawText(screen, infoText, infoFont, textX, textY, colorWhite)
}

func (r *Renderer) drawOverlayMessage(screen *ebiten.Image) {
	messageFont := r.face(r.renderState.GetFontSize())
	message := r.renderState.GetOverlayMessage()

	textWidth, textHeight := text.Measure(message, messageFont, 0)

	padding := 20.0
	boxWidth := textWidth + padding*2
	boxHeight := textHeight + padding*2
	boxX := (float64(screen.Bounds().Dx()) - boxWidth) / 2
	boxY := (float64(screen.Bounds().Dy()) - boxHeight) / 2

	DrawFilledRect(screen, boxX, boxY, boxWidth, boxHeight, bgColorDark)
	DrawText(screen, message, messageFont, boxX+padding, boxY+padding, colorWhite)
}

// helpRow is one line of the help overlay
type helpRow struct {
	action      string
	keys        string
	description string
}

func (r *Renderer) helpRows() []helpRow {
	keybindings := r.renderState.GetKeybindings()
	descriptions := GetActionDescriptions()

	var rows []helpRow
	for _, action := range actionNames() {
		keys := keybindings[action]
		if len(keys) == 0 {
			continue
		}
		description := descriptions[action]
		if description == "" {
			description = "No description available"
		}
		rows = append(rows, helpRow{action: action, keys: strings.Join(keys, ", "), description: description})
	}
	return rows
}

func (r *Renderer) configWarnings() []string {
	var warnings []string
	for i, warning := range r.renderState.GetConfigStatus().Warnings {
		if i >= 2 { // Limit to first 2 warnings to avoid clutter
			break
		}
		if len(warning) > 50 {
			warning = warning[:47] + "..."
		}
		warnings = append(warnings, "• "+warning)
	}
	return warnings
}

// helpLayout holds the measured help overlay columns for one font size
type helpLayout struct {
	fontSize    float64
	actionWidth float64
	keysWidth   float64
	width       float64
	height      float64
}

const (
	helpPadding    = 40.0
	helpMinFont    = 12.0
	helpTitle      = "HELP:"
	helpControls   = "Controls (Keyboard):"
	helpSystemText = "System:"
)

func (r *Renderer) measureHelp(rows []helpRow, warnings []string, fontSize float64) helpLayout {
	font := r.face(fontSize)
	lineHeight := fontSize * 1.5
	l := helpLayout{fontSize: fontSize}

	var descWidth float64
	for _, row := range rows {
		aw, _ := text.Measure(row.action, font, 0)
		kw, _ := text.Measure(row.keys, font, 0)
		dw, _ := text.Measure(row.description, font, 0)
		l.actionWidth = max(l.actionWidth, aw)
		l.keysWidth = max(l.keysWidth, kw)
		descWidth = max(descWidth, dw)
	}

	// left margin + action + arrow + keys + description + right margin
	l.width = 40 + l.actionWidth + 20 + 30 + l.keysWidth + 20 + descWidth + helpPadding
	for _, s := range append([]string{helpTitle, helpControls, helpSystemText, r.configStatusText()}, warnings...) {
		w, _ := text.Measure(s, font, 0)
		l.width = max(l.width, w+helpPadding*2+80)
	}

	l.height = helpPadding*2 + fontSize*2 + lineHeight*1.5
	l.height += float64(len(rows)) * lineHeight
	l.height += lineHeight * 3 // spacing, system title, status
	l.height += float64(len(warnings)) * lineHeight
	return l
}

func (r *Renderer) configStatusText() string {
	return fmt.Sprintf("Config Status: %s", r.renderState.GetConfigStatus().Status)
}

// fitHelp finds the largest font size whose layout fits in w x h
func (r *Renderer) fitHelp(rows []helpRow, warnings []string, w, h float64) (helpLayout, bool) {
	fits := func(l helpLayout) bool { return l.width <= w && l.height <= h }

	maxFontSize := r.renderState.GetFontSize()
	if l := r.measureHelp(rows, warnings, maxFontSize); fits(l) {
		return l, true
	}
	best := r.measureHelp(rows, warnings, helpMinFont)
	if !fits(best) {
		return best, false
	}

	// Binary search for optimal font size
	low, high := helpMinFont, maxFontSize
	for high-low > 0.5 {
		mid := (low + high) / 2
		if l := r.measureHelp(rows, warnings, mid); fits(l) {
			best, low = l, mid
		} else {
			high = mid
		}
	}
	return best, true
}

func (r *Renderer) drawHelpOverlay(screen *ebiten.Image) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	rows := r.helpRows()
	warnings := r.configWarnings()

	layout, ok := r.fitHelp(rows, warnings, w-helpPadding*2, h-helpPadding*2)
	if !ok {
		r.drawMarginTooSmallMessage(screen)
		return
	}

	DrawFilledRect(screen, 0, 0, w, h, bgColorLight)
	DrawFilledRect(screen, helpPadding, helpPadding, w-helpPadding*2, h-helpPadding*2, bgColorMedium)

	font := r.face(layout.fontSize)
	lineHeight := layout.fontSize * 1.5

	titleY := helpPadding + 30
	DrawText(screen, helpTitle, font, helpPadding+20, titleY, colorWhite)
	y := titleY + layout.fontSize*2

	DrawText(screen, helpControls, font, helpPadding+20, y, colorWhite)
	y += lineHeight * 1.5

	actionX := helpPadding + 40
	arrowX := actionX + layout.actionWidth + 20
	keysX := arrowX + 30
	descX := keysX + layout.keysWidth + 20
	for _, row := range rows {
		DrawText(screen, row.action, font, actionX, y, colorLightBlue)
		DrawText(screen, "→", font, arrowX, y, colorWhite)
		DrawText(screen, row.keys, font, keysX, y, colorYellow)
		DrawText(screen, row.description, font, descX, y, colorGray)
		y += lineHeight
	}

	y += lineHeight
	DrawText(screen, helpSystemText, font, helpPadding+20, y, colorWhite)
	y += lineHeight

	statusColor := colorGreen
	if status := r.renderState.GetConfigStatus().Status; status == "Warning" || status == "Error" {
		statusColor = colorOrange
	}
	DrawText(screen, r.configStatusText(), font, helpPadding+40, y, statusColor)
	y += lineHeight

	for _, warning := range warnings {
		DrawText(screen, warning, font, helpPadding+40, y, colorLightRed)
		y += lineHeight
	}
}

// drawMarginTooSmallMessage displays Fermat's margin joke when help cannot fit
func (r *Renderer) drawMarginTooSmallMessage(screen *ebiten.Image) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	DrawFilledRect(screen, 0, 0, w, h, bgColorLight)

	jokeFont := r.face(16.0)
	message := "Hanc marginis exiguitas non caperet."
	subtitle := "(This margin is too small to contain it.)"

	messageWidth, messageHeight := text.Measure(message, jokeFont, 0)
	subtitleWidth, _ := text.Measure(subtitle, jokeFont, 0)

	messageY := h/2 - messageHeight/2
	DrawText(screen, message, jokeFont, w/2-messageWidth/2, messageY, colorBlack)
	DrawText(screen, subtitle, jokeFont, w/2-subtitleWidth/2, messageY+messageHeight+10, colorGray)
}
