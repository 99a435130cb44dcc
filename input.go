package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// mousePointerID is the pointer ID of the left mouse button; touches use
// their Ebiten touch ID offset past it.
const mousePointerID = 0

// InputHandler polls keyboard and pointer input once per tick
type InputHandler struct {
	inputActions      InputActions
	inputState        InputState
	keybindingManager *KeybindingManager
	recognizer        *GestureRecognizer
	touchIDs          []ebiten.TouchID
}

// NewInputHandler creates a new InputHandler
func NewInputHandler(inputActions InputActions, inputState InputState, keybindingManager *KeybindingManager, recognizer *GestureRecognizer) *InputHandler {
	return &InputHandler{
		inputActions:      inputActions,
		inputState:        inputState,
		keybindingManager: keybindingManager,
		recognizer:        recognizer,
	}
}

// HandleInput processes all input for the current frame.
// Returns true if any key action was executed.
func (h *InputHandler) HandleInput(now float64) bool {
	if h.inputActions.GetTotalPagesCount() == 0 {
		return false
	}

	h.recognizer.Update(h.pollPointers(now))

	inputProcessed := false
	for _, action := range actionNames() {
		inputProcessed = h.keybindingManager.ExecuteAction(action, h.inputActions, h.inputState) || inputProcessed
	}
	return inputProcessed
}

// pollPointers snapshots the mouse, touches and wheel into a PointerFrame
func (h *InputHandler) pollPointers(now float64) PointerFrame {
	frame := PointerFrame{Time: now}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		frame.Pointers = append(frame.Pointers, PointerSample{
			ID:  mousePointerID,
			Pos: Vec2{X: float64(x), Y: float64(y)},
		})
	}

	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	for _, id := range h.touchIDs {
		x, y := ebiten.TouchPosition(id)
		frame.Pointers = append(frame.Pointers, PointerSample{
			ID:  mousePointerID + 1 + int(id),
			Pos: Vec2{X: float64(x), Y: float64(y)},
		})
	}

	wx, wy := ebiten.Wheel()
	frame.Wheel = Vec2{X: wx, Y: wy}
	frame.Ctrl = ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	return frame
}
