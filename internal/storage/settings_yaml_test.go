package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pompano/internal/ui/preferences"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "settings.yaml"))

	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected preferences.Settings
	}{
		{
			name:    "Custom values",
			content: "work_minutes: 50\nbreak_minutes: 10\nsound: false\n",
			expected: preferences.Settings{
				WorkMinutes:   50,
				BreakMinutes:  10,
				Sound:         false,
				DesktopNotify: true,
			},
		},
		{
			name:    "Out of range minutes keep defaults",
			content: "work_minutes: 90\nbreak_minutes: 0\ndesktop_notify: false\n",
			expected: preferences.Settings{
				WorkMinutes:   25,
				BreakMinutes:  5,
				Sound:         true,
				DesktopNotify: false,
			},
		},
		{
			name:     "Empty file",
			content:  "",
			expected: preferences.DefaultSettings(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			settings, err := LoadSettings(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, settings)
		})
	}
}

func TestLoadSettingsInvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: [oops"), 0o644))

	settings, err := LoadSettings(path)

	assert.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pompano", "settings.yaml")
	settings := preferences.DefaultSettings()
	settings.WorkMinutes = 45
	settings.Sound = false

	require.NoError(t, SaveSettings(path, settings, false))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)

	err = SaveSettings(path, preferences.DefaultSettings(), false)
	assert.ErrorIs(t, err, ErrSettingsExist)

	require.NoError(t, SaveSettings(path, preferences.DefaultSettings(), true))
	loaded, err = LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), loaded)
}
