package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Mode is the active theme variant
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Controller owns the persisted theme preference, stored under the key
// "theme" in the config directory. Storage failures are not fatal; the
// preference degrades to light.
type Controller struct {
	prefFile string
	mode     Mode
}

// NewController loads the persisted preference. Anything other than a
// literal "dark" means light.
func NewController(configDir string) *Controller {
	c := &Controller{
		prefFile: filepath.Join(configDir, "theme"),
		mode:     ModeLight,
	}

	data, err := os.ReadFile(c.prefFile)
	if err == nil && strings.TrimSpace(string(data)) == string(ModeDark) {
		c.mode = ModeDark
	}

	return c
}

// Mode returns the active theme mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// Toggle flips the preference and persists the new value
func (c *Controller) Toggle() Mode {
	if c.mode == ModeDark {
		c.mode = ModeLight
	} else {
		c.mode = ModeDark
	}

	if err := os.WriteFile(c.prefFile, []byte(c.mode), 0644); err != nil {
		fmt.Printf("Warning: Failed to save theme preference: %v\n", err)
	}

	return c.mode
}

// Scheme returns the color scheme for the active mode, with any overrides
// from ERPX_THEME_FILE applied.
func (c *Controller) Scheme() Scheme {
	var scheme Scheme
	if c.mode == ModeDark {
		scheme = DarkScheme()
	} else {
		scheme = LightScheme()
	}
	loadSchemeFile(c.mode, &scheme)
	return scheme
}
