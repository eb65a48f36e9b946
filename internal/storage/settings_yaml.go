package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pompano/internal/core/model"
	"pompano/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

// ErrSettingsExist is returned when refusing to overwrite a settings file.
var ErrSettingsExist = errors.New("settings file already exists")

type yamlSettings struct {
	WorkMinutes   int   `yaml:"work_minutes"`
	BreakMinutes  int   `yaml:"break_minutes"`
	Sound         *bool `yaml:"sound,omitempty"`
	DesktopNotify *bool `yaml:"desktop_notify,omitempty"`
}

// DefaultPath returns the settings file location for appName.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML. An existing file is only
// replaced when overwrite is set.
func SaveSettings(path string, settings preferences.Settings, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrSettingsExist, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := MarshalSettings(settings)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// MarshalSettings renders settings in the on-disk YAML layout.
func MarshalSettings(settings preferences.Settings) ([]byte, error) {
	fileData := yamlSettings{
		WorkMinutes:   settings.WorkMinutes,
		BreakMinutes:  settings.BreakMinutes,
		Sound:         &settings.Sound,
		DesktopNotify: &settings.DesktopNotify,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return nil, fmt.Errorf("marshal settings yaml: %w", err)
	}
	return serialized, nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if preferences.InRange(model.SessionWork, fileData.WorkMinutes) {
		settings.WorkMinutes = fileData.WorkMinutes
	}
	if preferences.InRange(model.SessionBreak, fileData.BreakMinutes) {
		settings.BreakMinutes = fileData.BreakMinutes
	}
	if fileData.Sound != nil {
		settings.Sound = *fileData.Sound
	}
	if fileData.DesktopNotify != nil {
		settings.DesktopNotify = *fileData.DesktopNotify
	}
}
