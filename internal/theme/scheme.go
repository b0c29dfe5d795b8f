package theme

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Scheme holds the terminal colors used by the UI. Values are ANSI color
// codes or hex strings understood by lipgloss.
type Scheme struct {
	Title    string `yaml:"title"`
	Border   string `yaml:"border"`
	Selected string `yaml:"selected"`
	Muted    string `yaml:"muted"`
	Error    string `yaml:"error"`
	Success  string `yaml:"success"`
	Warning  string `yaml:"warning"`
	Info     string `yaml:"info"`
}

// LightScheme is the default palette
func LightScheme() Scheme {
	return Scheme{
		Title:    "26",
		Border:   "250",
		Selected: "26",
		Muted:    "243",
		Error:    "160",
		Success:  "28",
		Warning:  "130",
		Info:     "31",
	}
}

// DarkScheme is the palette for dark terminals
func DarkScheme() Scheme {
	return Scheme{
		Title:    "39",
		Border:   "238",
		Selected: "39",
		Muted:    "241",
		Error:    "196",
		Success:  "10",
		Warning:  "11",
		Info:     "14",
	}
}

// MergeFrom copies non-empty colors from other
func (s *Scheme) MergeFrom(other Scheme) {
	if other.Title != "" {
		s.Title = other.Title
	}
	if other.Border != "" {
		s.Border = other.Border
	}
	if other.Selected != "" {
		s.Selected = other.Selected
	}
	if other.Muted != "" {
		s.Muted = other.Muted
	}
	if other.Error != "" {
		s.Error = other.Error
	}
	if other.Success != "" {
		s.Success = other.Success
	}
	if other.Warning != "" {
		s.Warning = other.Warning
	}
	if other.Info != "" {
		s.Info = other.Info
	}
}

// loadSchemeFile merges overrides from the file named by ERPX_THEME_FILE.
// A missing or unreadable file leaves the scheme untouched.
func loadSchemeFile(mode Mode, scheme *Scheme) {
	themeFile := os.Getenv("ERPX_THEME_FILE")
	if themeFile == "" {
		return
	}

	if _, err := os.Stat(themeFile); err != nil {
		return
	}

	data, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var overrides struct {
		Light Scheme `yaml:"light"`
		Dark  Scheme `yaml:"dark"`
	}

	if yaml.Unmarshal(data, &overrides) != nil {
		return
	}

	if mode == ModeDark {
		scheme.MergeFrom(overrides.Dark)
	} else {
		scheme.MergeFrom(overrides.Light)
	}
}
