package main

// ActionDefinition defines an action with its default keybindings and description
type ActionDefinition struct {
	Name        string
	Keys        []string
	Description string
}

// actionDefinitions is the single list of actions, in help display order
var actionDefinitions = []ActionDefinition{
	{"exit", []string{"KeyQ"}, "Quit application"},
	{"help", []string{"Shift+Slash", "KeyH"}, "Show/hide help"},
	{"info", []string{"KeyI"}, "Show/hide page counter"},
	{"close", []string{"Escape", "Backspace"}, "Close the viewer"},
	{"next", []string{"ArrowRight", "Space", "KeyN"}, "Next image (scroll down in grid)"},
	{"previous", []string{"ArrowLeft", "Shift+Space", "KeyP"}, "Previous image (scroll up in grid)"},
	{"zoom_in", []string{"Equal", "Shift+Equal"}, "Zoom in"},
	{"zoom_out", []string{"Minus"}, "Zoom out"},
	{"zoom_reset", []string{"Key0"}, "Reset zoom"},
	{"fullscreen", []string{"Enter", "KeyF"}, "Toggle fullscreen"},
}

// GetActionDescriptions returns a map of action names to their descriptions
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = append([]string(nil), action.Keys...)
	}
	return keybindings
}

// actionNames returns action names in definition order
func actionNames() []string {
	names := make([]string, len(actionDefinitions))
	for i, action := range actionDefinitions {
		names[i] = action.Name
	}
	return names
}
