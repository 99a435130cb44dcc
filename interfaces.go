package main

import "time"

const (
	// Overlay message display duration
	overlayMessageDuration = 2 * time.Second
)

// GestureTarget receives recognized pointer gestures
type GestureTarget interface {
	Tap(pos Vec2)
	DragBegan(value DragValue)
	DragChanged(value DragValue)
	DragEnded(value DragValue)
	PinchChanged(magnification float64)
	PinchEnded()
	Scroll(delta Vec2)
}

// RenderState provides read-only access to game state for the renderer
type RenderState interface {
	// Scene
	GetGallery() *Gallery
	GetViewer() *Viewer // nil while no viewer is mounted
	GetTransition() *SharedTransition
	GetTransitionScrimStart() float64

	// UI state
	IsShowingHelp() bool
	IsShowingInfo() bool
	GetOverlayMessage() string
	GetOverlayMessageTime() time.Time

	// Display data
	GetFontSize() float64
	GetConfigStatus() ConfigLoadResult
	GetKeybindings() map[string][]string
}

// RenderStateSnapshot captures the state that can change without any input
type RenderStateSnapshot struct {
	// Overlay message state (auto-expires after 2 seconds)
	OverlayMessage     string
	OverlayMessageTime time.Time
	OverlayActive      bool // evaluated when the snapshot was taken

	// Window dimensions for resize detection
	WindowWidth  int
	WindowHeight int
}

// NewRenderStateSnapshot creates a lightweight snapshot of non-input state
func NewRenderStateSnapshot(state RenderState, windowWidth, windowHeight int) *RenderStateSnapshot {
	return &RenderStateSnapshot{
		OverlayMessage:     state.GetOverlayMessage(),
		OverlayMessageTime: state.GetOverlayMessageTime(),
		OverlayActive:      overlayActive(state.GetOverlayMessage(), state.GetOverlayMessageTime()),
		WindowWidth:        windowWidth,
		WindowHeight:       windowHeight,
	}
}

// Equals checks if two snapshots would render the same
func (s *RenderStateSnapshot) Equals(other *RenderStateSnapshot) bool {
	if other == nil {
		return false
	}
	return s.OverlayActive == other.OverlayActive &&
		s.OverlayMessage == other.OverlayMessage &&
		s.OverlayMessageTime.Equal(other.OverlayMessageTime) &&
		s.WindowWidth == other.WindowWidth &&
		s.WindowHeight == other.WindowHeight
}

func overlayActive(message string, since time.Time) bool {
	return message != "" && time.Since(since) < overlayMessageDuration
}

// InputActions provides action methods for the input handler
type InputActions interface {
	// Application control
	Exit()

	// Display toggles
	ToggleHelp()
	ToggleInfo()
	ToggleFullscreen()

	// Viewer
	CloseViewer()
	NavigateNext()
	NavigatePrevious()
	ZoomIn()
	ZoomOut()
	ZoomReset()

	// Messages
	ShowOverlayMessage(message string)

	GetTotalPagesCount() int
}

// InputState provides read-only access to input-related state
type InputState interface {
	IsViewerOpen() bool
	IsCloseEnabled() bool
}
