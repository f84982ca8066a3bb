package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings represents the application settings
type Settings struct {
	Version  int        `toml:"version"`
	ListsDir string     `toml:"lists_dir"`
	UI       UISettings `toml:"ui"`
}

// UISettings represents UI-related settings
type UISettings struct {
	ExitDelaySeconds int  `toml:"exit_delay_seconds"` // pause after a successful save
	ShowHelpBar      bool `toml:"show_help_bar"`
}

// SettingsService handles settings management
type SettingsService interface {
	Load() (*Settings, error)
	Save(settings *Settings) error
	LoadFromPath(path string) (*Settings, error)
	SaveToPath(settings *Settings, path string) error
}

// settingsService is the concrete implementation
type settingsService struct {
	filePath string
}

// NewSettingsService creates a settings service backed by the user config dir
func NewSettingsService() SettingsService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	listpickDir := filepath.Join(configDir, "listpick")
	os.MkdirAll(listpickDir, 0755)

	return &settingsService{
		filePath: filepath.Join(listpickDir, "config.toml"),
	}
}

// Load loads the settings from the default location
func (ss *settingsService) Load() (*Settings, error) {
	if _, err := os.Stat(ss.filePath); os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	return ss.LoadFromPath(ss.filePath)
}

// Save saves the settings to the default location
func (ss *settingsService) Save(settings *Settings) error {
	return ss.SaveToPath(settings, ss.filePath)
}

// LoadFromPath loads settings from a specific path
func (ss *settingsService) LoadFromPath(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if settings.UI.ExitDelaySeconds < 0 {
		settings.UI.ExitDelaySeconds = 0
	}

	return &settings, nil
}

// SaveToPath saves settings to a specific path
func (ss *settingsService) SaveToPath(settings *Settings, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// DefaultSettings returns the default settings
func DefaultSettings() *Settings {
	return &Settings{
		Version:  1,
		ListsDir: "lists",
		UI: UISettings{
			ExitDelaySeconds: 5,
			ShowHelpBar:      true,
		},
	}
}
