package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Shell   ShellConfig   `json:"shell"`
	UI      UIConfig      `json:"ui"`
	Log     LogConfig     `json:"log"`
	Metrics MetricsConfig `json:"metrics"`
}

type ShellConfig struct {
	// Content
	ProfilePath string `json:"profile_path"` // Default: "" (embedded profile)
	HomePath    string `json:"home_path"`    // Default: "/"

	// Identity shown by whoami and the prompt
	Username string `json:"username"` // Default: "guest"
	Hostname string `json:"hostname"` // Default: "portfolio"

	// Buffers
	HistorySize    int `json:"history_size"`     // Default: 500
	MaxOutputLines int `json:"max_output_lines"` // Default: 2000
}

type UIConfig struct {
	ColorPrompt    string `json:"color_prompt"`    // Default: "42"
	ColorError     string `json:"color_error"`     // Default: "196"
	ColorInfo      string `json:"color_info"`      // Default: "245"
	ColorCommand   string `json:"color_command"`   // Default: "252"
	ColorDirectory string `json:"color_directory"` // Default: "63"

	RenderMarkdown        bool `json:"render_markdown"`         // Default: true
	MarkdownWrap          int  `json:"markdown_wrap"`           // Default: 80
	ViewportHeightReserve int  `json:"viewport_height_reserve"` // Default: 2
}

type LogConfig struct {
	Level  string `json:"level"`  // Default: "info"
	Output string `json:"output"` // Default: "" (disabled); "stderr", "stdout" or a file path
}

type MetricsConfig struct {
	Addr string `json:"addr"` // Default: "" (disabled), e.g. ":9090"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Shell: ShellConfig{
			ProfilePath:    "",
			HomePath:       "/",
			Username:       "guest",
			Hostname:       "portfolio",
			HistorySize:    500,
			MaxOutputLines: 2000,
		},
		UI: UIConfig{
			ColorPrompt:           "42",
			ColorError:            "196",
			ColorInfo:             "245",
			ColorCommand:          "252",
			ColorDirectory:        "63",
			RenderMarkdown:        true,
			MarkdownWrap:          80,
			ViewportHeightReserve: 2,
		},
		Log: LogConfig{
			Level:  "info",
			Output: "",
		},
	}
}
