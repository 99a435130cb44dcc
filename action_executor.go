package main

// ActionExecutor maps action names to InputActions calls
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction executes the given action. It returns false for unknown
// actions and for actions that do not apply in the current state.
func (ae *ActionExecutor) ExecuteAction(action string, inputActions InputActions, inputState InputState) bool {
	switch action {
	case "exit":
		inputActions.Exit()
	case "help":
		inputActions.ToggleHelp()
	case "info":
		inputActions.ToggleInfo()
	case "close":
		// Only while the viewer is up and its close control is showing
		if !inputState.IsViewerOpen() || !inputState.IsCloseEnabled() {
			return false
		}
		inputActions.CloseViewer()
	case "next":
		inputActions.NavigateNext()
	case "previous":
		inputActions.NavigatePrevious()
	case "zoom_in":
		if !inputState.IsViewerOpen() {
			return false
		}
		inputActions.ZoomIn()
	case "zoom_out":
		if !inputState.IsViewerOpen() {
			return false
		}
		inputActions.ZoomOut()
	case "zoom_reset":
		if !inputState.IsViewerOpen() {
			return false
		}
		inputActions.ZoomReset()
	case "fullscreen":
		inputActions.ToggleFullscreen()
	default:
		return false
	}

	return true
}

var globalActionExecutor = NewActionExecutor()
