package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Window size constants
const (
	defaultWidth  = 480
	defaultHeight = 800
	minWidth      = 240
	minHeight     = 320
)

// Sort method constants
const (
	SortNatural    = 0 // Natural sort order (e.g., file1, file2, file10)
	SortSimple     = 1 // Simple string sort (lexicographical)
	SortEntryOrder = 2 // Maintain original order (no sort)
)

// MouseSettings contains pointer-specific configuration
type MouseSettings struct {
	DragThreshold    int     `json:"drag_threshold"` // pixels before a press becomes a drag
	WheelSensitivity float64 `json:"wheel_sensitivity"`
	WheelInverted    bool    `json:"wheel_inverted"`
	WheelZoomStep    float64 `json:"wheel_zoom_step"` // ctrl+wheel zoom per notch
}

// GetDefaultMouseSettings returns the default pointer settings
func GetDefaultMouseSettings() MouseSettings {
	return MouseSettings{
		DragThreshold:    5,
		WheelSensitivity: 40.0, // pixels per wheel notch
		WheelInverted:    false,
		WheelZoomStep:    0.1,
	}
}

// ConfigLoadResult contains the result of loading configuration
type ConfigLoadResult struct {
	Config   Config
	HasError bool
	Warnings []string
	Status   string // "OK", "Default", "Warning", "Error"
}

type Config struct {
	WindowWidth  int                 `json:"window_width"`
	WindowHeight int                 `json:"window_height"`
	SortMethod   int                 `json:"sort_method"`
	Fullscreen   bool                `json:"fullscreen"`
	CacheSize    int                 `json:"cache_size"`
	HelpFontSize float64             `json:"help_font_size"`
	ShowInfo     bool                `json:"show_info"`
	Mouse        MouseSettings       `json:"mouse"`
	Keybindings  map[string][]string `json:"keybindings"`
}

func defaultConfig() Config {
	return Config{
		WindowWidth:  defaultWidth,
		WindowHeight: defaultHeight,
		SortMethod:   SortNatural,
		Fullscreen:   false,
		CacheSize:    32, // textures: pages plus rounded thumbnails
		HelpFontSize: 18.0,
		ShowInfo:     false,
		Mouse:        GetDefaultMouseSettings(),
		Keybindings:  GetDefaultKeybindings(),
	}
}

// validateKeybindings checks key formats and detects conflicts
func validateKeybindings(keybindings map[string][]string) error {
	keyToAction := make(map[string]string)
	validKeys := getKeyMapping()

	for action, keys := range keybindings {
		for _, keyStr := range keys {
			if err := validateKeyString(keyStr, validKeys); err != nil {
				return fmt.Errorf("invalid key '%s' for action '%s': %w", keyStr, action, err)
			}
			if existingAction, exists := keyToAction[keyStr]; exists {
				return fmt.Errorf("key conflict: '%s' is bound to both '%s' and '%s'", keyStr, existingAction, action)
			}
			keyToAction[keyStr] = action
		}
	}

	return nil
}

// validateKeyString validates a single "Mod+Mod+Key" string
func validateKeyString[V any](keyStr string, validKeys map[string]V) error {
	if keyStr == "" {
		return fmt.Errorf("empty key string")
	}
	parts := strings.Split(keyStr, "+")

	keyName := parts[len(parts)-1]
	if _, ok := validKeys[keyName]; !ok {
		return fmt.Errorf("unknown key: %s", keyName)
	}

	for _, modifier := range parts[:len(parts)-1] {
		switch strings.ToLower(modifier) {
		case "shift", "ctrl", "alt":
		default:
			return fmt.Errorf("unknown modifier: %s", modifier)
		}
	}

	return nil
}

func getConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "gallery.json"
	}
	return filepath.Join(homeDir, ".gallery.json")
}

func loadConfigFromPath(configPath string) ConfigLoadResult {
	config := defaultConfig()

	result := ConfigLoadResult{
		Config:   config,
		Warnings: []string{},
		Status:   "OK",
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file not found is not an error - use defaults
		result.Status = "Default"
		return result
	}

	if err := json.Unmarshal(data, &config); err != nil {
		log.Printf("Warning: Invalid config file %s, using defaults: %v", configPath, err)
		result.HasError = true
		result.Status = "Error"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid config file: %v", err))
		return result
	}

	defaults := defaultConfig()

	if config.WindowWidth < minWidth {
		config.WindowWidth = defaults.WindowWidth
	}
	if config.WindowHeight < minHeight {
		config.WindowHeight = defaults.WindowHeight
	}

	if config.SortMethod < SortNatural || config.SortMethod > SortEntryOrder {
		config.SortMethod = defaults.SortMethod
	}

	// Cache size (minimum 1, maximum 64)
	if config.CacheSize < 1 {
		config.CacheSize = defaults.CacheSize
	} else if config.CacheSize > 64 {
		config.CacheSize = 64
	}

	// Help font size (minimum 12px for readability)
	if config.HelpFontSize < 12.0 {
		config.HelpFontSize = defaults.HelpFontSize
	}

	// Drag threshold (1..50 pixels)
	if config.Mouse.DragThreshold < 1 {
		config.Mouse.DragThreshold = defaults.Mouse.DragThreshold
	} else if config.Mouse.DragThreshold > 50 {
		config.Mouse.DragThreshold = 50
	}
	if config.Mouse.WheelSensitivity <= 0 {
		config.Mouse.WheelSensitivity = defaults.Mouse.WheelSensitivity
	}
	if config.Mouse.WheelZoomStep <= 0 || config.Mouse.WheelZoomStep >= 1 {
		config.Mouse.WheelZoomStep = defaults.Mouse.WheelZoomStep
	}

	// Fill in missing keybindings with defaults, then validate the whole set
	if config.Keybindings == nil {
		config.Keybindings = defaults.Keybindings
	} else {
		for action, defaultKeys := range defaults.Keybindings {
			if _, exists := config.Keybindings[action]; !exists {
				config.Keybindings[action] = defaultKeys
			}
		}

		if err := validateKeybindings(config.Keybindings); err != nil {
			log.Printf("Warning: Invalid keybindings detected, using defaults: %v", err)
			config.Keybindings = defaults.Keybindings
			result.Status = "Warning"
			result.Warnings = append(result.Warnings, fmt.Sprintf("Keybinding errors: %v", err))
		}
	}

	result.Config = config
	return result
}

func saveConfigToPath(config Config, configPath string) {
	// Don't save if size is too small
	if config.WindowWidth < minWidth || config.WindowHeight < minHeight {
		log.Printf("Warning: Not saving config with invalid window size: %dx%d",
			config.WindowWidth, config.WindowHeight)
		return
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		log.Printf("Error: Failed to marshal config: %v", err)
		return
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		log.Printf("Error: Failed to save config to %s: %v", configPath, err)
	}
}
