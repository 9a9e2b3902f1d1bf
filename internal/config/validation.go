package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	// Shell validation
	if !strings.HasPrefix(c.Shell.HomePath, "/") {
		errs = append(errs, "shell.home_path must be absolute")
	}
	if strings.TrimSpace(c.Shell.Username) == "" {
		errs = append(errs, "shell.username must not be empty")
	}
	if strings.TrimSpace(c.Shell.Hostname) == "" {
		errs = append(errs, "shell.hostname must not be empty")
	}
	if c.Shell.HistorySize < 1 {
		errs = append(errs, "shell.history_size must be >= 1")
	}
	if c.Shell.MaxOutputLines < 1 {
		errs = append(errs, "shell.max_output_lines must be >= 1")
	}

	// UI validation
	colors := []struct{ key, value string }{
		{"ui.color_prompt", c.UI.ColorPrompt},
		{"ui.color_error", c.UI.ColorError},
		{"ui.color_info", c.UI.ColorInfo},
		{"ui.color_command", c.UI.ColorCommand},
		{"ui.color_directory", c.UI.ColorDirectory},
	}
	for _, col := range colors {
		if !validColor(col.value) {
			errs = append(errs, fmt.Sprintf("%s must be an ANSI code (0-255) or hex color, got %q", col.key, col.value))
		}
	}
	if c.UI.MarkdownWrap < 20 {
		errs = append(errs, "ui.markdown_wrap must be >= 20")
	}
	if c.UI.ViewportHeightReserve < 0 {
		errs = append(errs, "ui.viewport_height_reserve must be >= 0")
	}

	// Log validation
	if !logLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}

// validColor accepts "" (terminal default), ANSI codes 0-255 and #RGB/#RRGGBB.
func validColor(s string) bool {
	if s == "" || hexColor.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
