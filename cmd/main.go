package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pompano/internal/platform"
	"pompano/internal/storage"
	"pompano/internal/ui/preferences"
	"pompano/internal/ui/tui"
)

const appName = "pompano"

var configPath string

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "pompano is a Pomodoro work/break timer",
	Long: `pompano alternates focus and break sessions, counting down each one
and starting the next as soon as the previous finishes.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		guard, err := platform.AcquireSingleInstance(appName)
		if err != nil {
			return err
		}
		defer func() {
			_ = guard.Release()
		}()

		closeLog := redirectLog()
		defer closeLog()

		alerts, closeAlerts := newAlerts(settings)
		defer closeAlerts()

		return tui.Run(settings.Durations(), alerts)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the settings file",
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if err := storage.SaveSettings(path, preferences.DefaultSettings(), configInitForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default settings to %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		serialized, err := storage.MarshalSettings(settings)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(serialized)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default is $XDG_CONFIG_HOME/pompano/settings.yaml)")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing settings file")

	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd, guiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return storage.DefaultPath(appName)
}

func loadSettings() (preferences.Settings, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	settings, err := storage.LoadSettings(path)
	if err != nil {
		return settings, fmt.Errorf("load settings %s: %w", path, err)
	}
	return settings, nil
}

func newAlerts(settings preferences.Settings) (*platform.Alerts, func()) {
	notifier := platform.NewDesktopNotifier(appName)
	alerts := platform.NewAlerts(alertConfig(settings), platform.NewAlarm(), notifier)
	return alerts, func() {
		if err := notifier.Close(); err != nil {
			log.Printf("close notifier: %v", err)
		}
	}
}

func alertConfig(settings preferences.Settings) platform.AlertConfig {
	return platform.AlertConfig{
		Sound:         settings.Sound,
		DesktopNotify: settings.DesktopNotify,
	}
}

// redirectLog keeps log output off the terminal while the TUI owns it.
func redirectLog() func() {
	path, err := resolveConfigPath()
	if err == nil {
		path = filepath.Join(filepath.Dir(path), appName+".log")
		if err = os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			var logFile *os.File
			if logFile, err = tea.LogToFile(path, appName); err == nil {
				return func() {
					_ = logFile.Close()
					log.SetOutput(os.Stderr)
				}
			}
		}
	}
	log.SetOutput(io.Discard)
	return func() {
		log.SetOutput(os.Stderr)
	}
}
