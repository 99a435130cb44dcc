package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Zoom step for the zoom_in/zoom_out actions
const keyboardZoomStep = 1.25

var debugMode bool

func debugLog(format string, args ...interface{}) {
	if debugMode {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// dragRoute records which surface owns the drag in progress
type dragRoute int

const (
	dragRouteNone dragRoute = iota
	dragRouteGallery
	dragRouteViewer
)

type Game struct {
	config       Config
	configPath   string
	configStatus ConfigLoadResult

	assets   []Asset
	sizes    []Size
	textures *TextureCache

	gallery              *Gallery
	viewer               *Viewer // nil while no preview is mounted
	session              *GestureSession
	transition           *SharedTransition
	transitionScrimStart float64

	dragRoute        dragRoute
	dragStartScrollY float64

	renderer          *Renderer
	keybindingManager *KeybindingManager
	recognizer        *GestureRecognizer
	inputHandler      *InputHandler

	clock        float64
	dirty        bool
	lastSnapshot *RenderStateSnapshot
	width        int
	height       int

	fullscreen bool
	savedWinW  int
	savedWinH  int
	quitting   bool

	showHelp           bool
	showInfo           bool
	overlayMessage     string
	overlayMessageTime time.Time
}

// NewGame wires the gallery, input and rendering around the loaded assets
func NewGame(assets []Asset, configPath string, status ConfigLoadResult) *Game {
	g := &Game{
		config:       status.Config,
		configPath:   configPath,
		configStatus: status,
		assets:       assets,
		sizes:        assetSizes(assets),
		showInfo:     status.Config.ShowInfo,
		dirty:        true,
	}

	g.textures = NewTextureCache(assets, g.config.CacheSize)
	g.gallery = NewGallery(g.sizes, Size{}, GalleryCallbacks{
		OnOpen:       g.openViewer,
		OnInvalidate: g.invalidate,
	})
	g.renderer = NewRenderer(g, g.textures)
	g.keybindingManager = NewKeybindingManager(g.config.Keybindings)
	g.recognizer = NewGestureRecognizer(g.config.Mouse, g)
	g.inputHandler = NewInputHandler(g, g, g.keybindingManager, g.recognizer)

	if status.Status == "Warning" || status.Status == "Error" {
		g.ShowOverlayMessage("Config " + status.Status + ": press ? for details")
	}
	return g
}

func (g *Game) invalidate() {
	g.dirty = true
}

func (g *Game) screenSize() Size {
	return Size{W: float64(g.width), H: float64(g.height)}
}

// openViewer mounts the viewer on index and starts the open morph
func (g *Game) openViewer(index int) {
	viewer, err := NewViewer(g.sizes, index, g.screenSize(), ViewerCallbacks{
		OnChangeIndex: g.gallery.IndexChanged,
		OnClose:       g.closeViewer,
		OnInvalidate:  g.invalidate,
	})
	if err != nil {
		log.Printf("Error: %v", err)
		g.gallery.EndPreview()
		return
	}
	g.viewer = viewer
	g.transition = NewOpenTransition(index, g.gallery.ThumbnailFrame(index), viewer.DisplayedImageFrame(index))
	debugLog("open viewer at %d", index)
}

// closeViewer unmounts the viewer and morphs its image back into the grid
func (g *Game) closeViewer() {
	if g.viewer == nil {
		return
	}
	index := g.viewer.CurrentIndex()
	g.transitionScrimStart = g.viewer.ScrimOpacity()
	g.transition = NewCloseTransition(index, g.viewer.DisplayedImageFrame(index), g.gallery.ThumbnailFrame(index))
	g.viewer = nil
	g.session = nil
	debugLog("close viewer at %d", index)
}

func (g *Game) finishTransition() {
	if g.transition.Direction == TransitionClosing {
		g.gallery.EndPreview()
	}
	g.transition = nil
	g.dirty = true
}

func (g *Game) resize(w, h int) {
	if w == g.width && h == g.height {
		return
	}
	g.width, g.height = w, h
	// thumbnails are rendered per size; stale ones only waste memory
	g.textures.Purge()
	g.gallery.Resize(g.screenSize())
	if g.viewer != nil {
		g.viewer.Resize(g.screenSize())
	}
	g.dirty = true
}

func (g *Game) saveCurrentWindowSize() {
	if g.fullscreen {
		// Save the size from before fullscreen
		if g.savedWinW > 0 && g.savedWinH > 0 {
			g.config.WindowWidth = g.savedWinW
			g.config.WindowHeight = g.savedWinH
		}
	} else {
		w, h := ebiten.WindowSize()
		g.config.WindowWidth = w
		g.config.WindowHeight = h
	}
	saveConfigToPath(g.config, g.configPath)
}

func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())
	g.clock += dt

	g.inputHandler.HandleInput(g.clock)
	if g.quitting {
		g.saveCurrentWindowSize()
		return ebiten.Termination
	}

	if g.viewer != nil && g.viewer.Step(dt) {
		g.dirty = true
	}
	if g.transition != nil {
		g.dirty = true
		if !g.transition.Step(dt) {
			g.finishTransition()
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snapshot := NewRenderStateSnapshot(g, g.width, g.height)
	if !g.dirty && snapshot.Equals(g.lastSnapshot) {
		return
	}
	g.renderer.Draw(screen)
	g.dirty = false
	g.lastSnapshot = snapshot
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GestureTarget implementation: route gestures to the viewer when it is
// mounted, to the grid otherwise, and to nothing during a morph.

func (g *Game) Tap(pos Vec2) {
	if g.transition != nil {
		return
	}
	if g.viewer != nil {
		if g.viewer.CloseEnabled() && closeButtonFrame().Contains(pos) {
			g.viewer.Close()
		}
		return
	}
	g.gallery.Tap(pos)
}

func (g *Game) DragBegan(value DragValue) {
	g.dragRoute = dragRouteNone
	if g.transition != nil {
		return
	}
	if g.viewer != nil {
		s, err := g.viewer.BeginDrag()
		if err != nil {
			debugLog("drag ignored: %v", err)
			return
		}
		g.session = s
		g.dragRoute = dragRouteViewer
		return
	}
	g.dragRoute = dragRouteGallery
	// the drag is reported past the threshold; measure from here, not the press
	g.dragStartScrollY = g.gallery.ScrollY() + value.Translation.Y
}

func (g *Game) DragChanged(value DragValue) {
	switch g.dragRoute {
	case dragRouteViewer:
		if g.viewer != nil {
			g.viewer.DragChanged(g.session, value)
		}
	case dragRouteGallery:
		g.gallery.ScrollBy(g.dragStartScrollY - value.Translation.Y - g.gallery.ScrollY())
	}
}

func (g *Game) DragEnded(value DragValue) {
	route := g.dragRoute
	g.dragRoute = dragRouteNone
	if route == dragRouteViewer && g.viewer != nil {
		s := g.session
		g.session = nil
		g.viewer.EndDrag(s, value)
	}
}

func (g *Game) PinchChanged(magnification float64) {
	if g.viewer != nil && g.transition == nil {
		g.viewer.PinchChanged(magnification)
	}
}

func (g *Game) PinchEnded() {
	if g.viewer != nil {
		g.viewer.PinchEnded()
	}
}

func (g *Game) Scroll(delta Vec2) {
	if g.viewer == nil && g.transition == nil {
		g.gallery.ScrollBy(-delta.Y)
	}
}

// InputActions implementation

func (g *Game) Exit() {
	g.quitting = true
}

func (g *Game) ToggleHelp() {
	g.showHelp = !g.showHelp
	g.dirty = true
}

func (g *Game) ToggleInfo() {
	g.showInfo = !g.showInfo
	g.dirty = true
}

func (g *Game) ToggleFullscreen() {
	g.fullscreen = !g.fullscreen
	if g.fullscreen {
		g.savedWinW, g.savedWinH = ebiten.WindowSize()
		ebiten.SetFullscreen(true)
	} else {
		ebiten.SetFullscreen(false)
		if g.savedWinW > 0 && g.savedWinH > 0 {
			ebiten.SetWindowSize(g.savedWinW, g.savedWinH)
		}
	}
	g.dirty = true
}

func (g *Game) CloseViewer() {
	if g.viewer != nil {
		g.viewer.Close()
	}
}

func (g *Game) NavigateNext() {
	g.navigate(1)
}

func (g *Game) NavigatePrevious() {
	g.navigate(-1)
}

func (g *Game) navigate(delta int) {
	switch {
	case g.transition != nil:
	case g.viewer != nil:
		g.viewer.Page(delta)
	default:
		g.gallery.ScrollStep(delta)
	}
}

func (g *Game) ZoomIn() {
	if g.viewer != nil {
		g.viewer.ZoomBy(keyboardZoomStep)
	}
}

func (g *Game) ZoomOut() {
	if g.viewer != nil {
		g.viewer.ZoomBy(1 / keyboardZoomStep)
	}
}

func (g *Game) ZoomReset() {
	if g.viewer != nil {
		g.viewer.ResetZoom()
	}
}

func (g *Game) ShowOverlayMessage(message string) {
	g.overlayMessage = message
	g.overlayMessageTime = time.Now()
	g.dirty = true
}

func (g *Game) GetTotalPagesCount() int { return len(g.assets) }

// InputState implementation

func (g *Game) IsViewerOpen() bool {
	return g.viewer != nil && g.transition == nil
}

func (g *Game) IsCloseEnabled() bool {
	return g.viewer != nil && g.viewer.CloseEnabled()
}

// RenderState implementation

func (g *Game) GetGallery() *Gallery { return g.gallery }
func (g *Game) GetViewer() *Viewer { return g.viewer }
func (g *Game) GetTransition() *SharedTransition { return g.transition }
func (g *Game) GetTransitionScrimStart() float64 { return g.transitionScrimStart }
func (g *Game) IsShowingHelp() bool { return g.showHelp }
func (g *Game) IsShowingInfo() bool { return g.showInfo }
func (g *Game) GetOverlayMessage() string { return g.overlayMessage }
func (g *Game) GetOverlayMessageTime() time.Time { return g.overlayMessageTime }
func (g *Game) GetFontSize() float64 { return g.config.HelpFontSize }
func (g *Game) GetConfigStatus() ConfigLoadResult { return g.configStatus }
func (g *Game) GetKeybindings() map[string][]string { return g.keybindingManager.GetKeybindings() }

func main() {
	configPath := flag.String("config", getConfigPath(), "path to the config file")
	sortName := flag.String("sort", "", "sort method: natural, simple or entry-order")
	flag.BoolVar(&debugMode, "debug", false, "enable debug logging")
	flag.Parse()

	status := loadConfigFromPath(*configPath)
	debugLog("config %s: %s", *configPath, status.Status)

	// -sort applies to this run only and is not saved back
	sortMethod := status.Config.SortMethod
	if *sortName != "" {
		method, ok := parseSortMethod(*sortName)
		if !ok {
			log.Fatalf("unknown sort method %q", *sortName)
		}
		sortMethod = method
	}

	paths, err := collectImages(flag.Args(), sortMethod)
	if err != nil {
		log.Fatal(err)
	}
	assets, err := LoadAssets(paths)
	if err != nil {
		if errors.Is(err, ErrNoImages) {
			log.Fatal("no image files specified")
		}
		log.Fatal(err)
	}

	if err := InitGraphics(); err != nil {
		log.Fatal(err)
	}

	g := NewGame(assets, *configPath, status)

	ebiten.SetWindowTitle(fmt.Sprintf("Gallery (%d images)", len(assets)))
	ebiten.SetWindowSize(g.config.WindowWidth, g.config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)
	if g.config.Fullscreen {
		g.ToggleFullscreen()
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
