package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/botui/internal/config"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration botui runs with: the config file merged with
BOTUI_* environment variables and command-line flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		printConfig(cmd.OutOrStdout(), path, app.config)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	// Loading would create the file before init gets to decide.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}
		if err := config.Save(config.DefaultConfig(), path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Wrote default config to %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, nil
}

func printConfig(w io.Writer, path string, cfg *config.Config) {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Config file:     %s\n", path)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Canvas:          %dx%d\n", cfg.Display.Width, cfg.Display.Height)
	fmt.Fprintf(w, "  Pomodoro:        %s\n", formatMinutes(time.Duration(cfg.Pomodoro.Duration)))
	fmt.Fprintf(w, "  Alarm default:   %02d:%02d\n", cfg.Alarm.DefaultHour, cfg.Alarm.DefaultMinute)

	splashSource := cfg.Splash.Path
	if splashSource == "" {
		splashSource = "built-in"
	}
	fmt.Fprintf(w, "  Splash:          %s (%s, %s per frame)\n", onOff(cfg.Splash.Enabled), splashSource, cfg.Splash.FrameInterval)

	notif := onOff(cfg.Notifications.Enabled)
	if cfg.Notifications.Enabled && cfg.Notifications.Sound {
		notif = "on (with sound)"
	}
	fmt.Fprintf(w, "  Notifications:   %s\n", notif)
	fmt.Fprintf(w, "  Log:             %s (%s)\n", cfg.Log.File, cfg.Log.Level)
	fmt.Fprintln(w)
}

// formatMinutes renders a duration as 25m, 1h or 1h30m; shorter ones as seconds.
func formatMinutes(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	m := int(d.Minutes())
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	h := m / 60
	rem := m % 60
	if rem == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%dm", h, rem)
}
