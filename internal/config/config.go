// Package config provides configuration management for botui.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/xvierd/botui/internal/domain"
)

// Config holds all configuration for the kiosk.
type Config struct {
	Display       DisplayConfig      `mapstructure:"display"`
	Pomodoro      PomodoroConfig     `mapstructure:"pomodoro"`
	Alarm         AlarmConfig        `mapstructure:"alarm"`
	Splash        SplashConfig       `mapstructure:"splash"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Log           LogConfig          `mapstructure:"log"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// DisplayConfig holds the fixed canvas size in terminal cells.
type DisplayConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// PomodoroConfig holds pomodoro timer settings.
type PomodoroConfig struct {
	Duration Duration `mapstructure:"duration"`
}

// AlarmConfig holds the initial picker selection of the alarm screen.
type AlarmConfig struct {
	DefaultHour   int `mapstructure:"default_hour"`
	DefaultMinute int `mapstructure:"default_minute"`
}

// SplashConfig holds startup animation settings.
type SplashConfig struct {
	Enabled       bool     `mapstructure:"enabled"`
	Path          string   `mapstructure:"path"`
	FrameInterval Duration `mapstructure:"frame_interval"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// LogConfig holds logging settings. The terminal belongs to the kiosk, so
// logs always go to a file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// ThemeConfig holds theme customization settings (colors).
type ThemeConfig struct {
	ColorBackground   string `mapstructure:"color_background"`
	ColorTimer        string `mapstructure:"color_timer"`
	ColorFace         string `mapstructure:"color_face"`
	ColorButton       string `mapstructure:"color_button"`
	ColorButtonActive string `mapstructure:"color_button_active"`
	ColorButtonText   string `mapstructure:"color_button_text"`
	ColorHelp         string `mapstructure:"color_help"`
	GradientStart     string `mapstructure:"gradient_start"`
	GradientEnd       string `mapstructure:"gradient_end"`
}

// DefaultThemeConfig returns the default pastel theme.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorBackground:   "#FFF7F0",
		ColorTimer:        "#FF6B6B",
		ColorFace:         "#444444",
		ColorButton:       "#FFD6D6",
		ColorButtonActive: "#FFBFBF",
		ColorButtonText:   "#333333",
		ColorHelp:         "#95A5A6",
		GradientStart:     "#FFD6D6",
		GradientEnd:       "#FF6B6B",
	}
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	alarm := domain.DefaultAlarmTarget()
	return &Config{
		Display: DisplayConfig{
			Width:  80,
			Height: 24,
		},
		Pomodoro: PomodoroConfig{
			Duration: Duration(25 * time.Minute),
		},
		Alarm: AlarmConfig{
			DefaultHour:   alarm.Hour,
			DefaultMinute: alarm.Minute,
		},
		Splash: SplashConfig{
			Enabled:       true,
			FrameInterval: Duration(250 * time.Millisecond),
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.botui/botui.log",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load reads the configuration at path, creating it with defaults when it
// does not exist yet. An empty path means the default location.
// Environment variables prefixed with BOTUI_ override file values
// (BOTUI_POMODORO_DURATION=10m).
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(DefaultConfig(), path); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.normalize()

	logFile, err := expandHome(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	cfg.Log.File = logFile

	splashPath, err := expandHome(cfg.Splash.Path)
	if err != nil {
		return nil, err
	}
	cfg.Splash.Path = splashPath

	return &cfg, nil
}

// Save writes cfg to path as TOML.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")

	v.Set("display.width", cfg.Display.Width)
	v.Set("display.height", cfg.Display.Height)
	v.Set("pomodoro.duration", cfg.Pomodoro.Duration.String())
	v.Set("alarm.default_hour", cfg.Alarm.DefaultHour)
	v.Set("alarm.default_minute", cfg.Alarm.DefaultMinute)
	v.Set("splash.enabled", cfg.Splash.Enabled)
	v.Set("splash.path", cfg.Splash.Path)
	v.Set("splash.frame_interval", cfg.Splash.FrameInterval.String())
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.sound", cfg.Notifications.Sound)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("theme.color_background", cfg.Theme.ColorBackground)
	v.Set("theme.color_timer", cfg.Theme.ColorTimer)
	v.Set("theme.color_face", cfg.Theme.ColorFace)
	v.Set("theme.color_button", cfg.Theme.ColorButton)
	v.Set("theme.color_button_active", cfg.Theme.ColorButtonActive)
	v.Set("theme.color_button_text", cfg.Theme.ColorButtonText)
	v.Set("theme.color_help", cfg.Theme.ColorHelp)
	v.Set("theme.gradient_start", cfg.Theme.GradientStart)
	v.Set("theme.gradient_end", cfg.Theme.GradientEnd)

	return v.WriteConfigAs(path)
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".botui", "config.toml"), nil
}

// AlarmTarget returns the configured initial alarm selection.
func (c *Config) AlarmTarget() domain.AlarmTarget {
	return domain.AlarmTarget{Hour: c.Alarm.DefaultHour, Minute: c.Alarm.DefaultMinute}
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix("BOTUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("display.width", defaults.Display.Width)
	v.SetDefault("display.height", defaults.Display.Height)
	v.SetDefault("pomodoro.duration", defaults.Pomodoro.Duration.String())
	v.SetDefault("alarm.default_hour", defaults.Alarm.DefaultHour)
	v.SetDefault("alarm.default_minute", defaults.Alarm.DefaultMinute)
	v.SetDefault("splash.enabled", defaults.Splash.Enabled)
	v.SetDefault("splash.path", defaults.Splash.Path)
	v.SetDefault("splash.frame_interval", defaults.Splash.FrameInterval.String())
	v.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	v.SetDefault("notifications.sound", defaults.Notifications.Sound)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)

	// Theme defaults
	v.SetDefault("theme.color_background", defaults.Theme.ColorBackground)
	v.SetDefault("theme.color_timer", defaults.Theme.ColorTimer)
	v.SetDefault("theme.color_face", defaults.Theme.ColorFace)
	v.SetDefault("theme.color_button", defaults.Theme.ColorButton)
	v.SetDefault("theme.color_button_active", defaults.Theme.ColorButtonActive)
	v.SetDefault("theme.color_button_text", defaults.Theme.ColorButtonText)
	v.SetDefault("theme.color_help", defaults.Theme.ColorHelp)
	v.SetDefault("theme.gradient_start", defaults.Theme.GradientStart)
	v.SetDefault("theme.gradient_end", defaults.Theme.GradientEnd)
}

// normalize pulls out-of-range values back to something the kiosk can show.
func (c *Config) normalize() {
	defaults := DefaultConfig()
	if c.Display.Width < 40 {
		c.Display.Width = defaults.Display.Width
	}
	if c.Display.Height < 16 {
		c.Display.Height = defaults.Display.Height
	}
	if time.Duration(c.Pomodoro.Duration) < time.Second {
		c.Pomodoro.Duration = defaults.Pomodoro.Duration
	}
	if _, err := domain.NewAlarmTarget(c.Alarm.DefaultHour, c.Alarm.DefaultMinute); err != nil {
		c.Alarm.DefaultHour = clamp(c.Alarm.DefaultHour, 0, domain.MaxAlarmHour)
		c.Alarm.DefaultMinute = clamp(c.Alarm.DefaultMinute, 0, domain.MaxAlarmMinute)
	}
	if time.Duration(c.Splash.FrameInterval) <= 0 {
		c.Splash.FrameInterval = defaults.Splash.FrameInterval
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
