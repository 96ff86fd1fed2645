// Package config loads the named placement presets. Builtin presets are
// always available; a user file at ~/.config/wmplace/config.yaml
// overrides or extends them per preset name.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wmplace/wmplace/internal/plan"
)

// Preset is one named placement in the config file. Horiz/Vert take the
// symbolic spec names; Width/Height/HAlign/VAlign take the numeric
// percent form. Empty fields keep the window's current state on that
// axis.
type Preset struct {
	Horiz  string `yaml:"horiz,omitempty"`
	Vert   string `yaml:"vert,omitempty"`
	Width  *int   `yaml:"width,omitempty"`
	Height *int   `yaml:"height,omitempty"`
	HAlign string `yaml:"halign,omitempty"`
	VAlign string `yaml:"valign,omitempty"`
}

// Config is the full preset map.
type Config struct {
	Presets map[string]Preset `yaml:"presets"`
}

// DefaultConfigPath returns the standard user config location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "wmplace", "config.yaml"), nil
}

// Builtin returns the presets that ship with wmplace.
func Builtin() *Config {
	pct := func(v int) *int { return &v }
	return &Config{
		Presets: map[string]Preset{
			"left":   {Horiz: "left", Vert: "full"},
			"right":  {Horiz: "right", Vert: "full"},
			"top":    {Horiz: "full", Vert: "top"},
			"bottom": {Horiz: "full", Vert: "bottom"},
			"full":   {Horiz: "full", Vert: "full"},
			"center": {Width: pct(50), Height: pct(50), HAlign: "middle", VAlign: "middle"},
		},
	}
}

// Load returns the builtin presets merged with the user file, if one
// exists. A missing file is not an error; a malformed one is.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile merges the presets from the given file over the builtins. A
// user preset replaces a builtin of the same name wholesale.
func LoadFile(path string) (*Config, error) {
	cfg := Builtin()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var user Config
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	for name, p := range user.Presets {
		cfg.Presets[name] = p
	}
	return cfg, nil
}

// Request translates a named preset into a planner request, validating
// every field.
func (c *Config) Request(name string) (plan.Request, error) {
	p, ok := c.Presets[name]
	if !ok {
		return plan.Request{}, fmt.Errorf("unknown preset %q", name)
	}

	var req plan.Request
	var err error

	if p.Horiz != "" {
		if req.Horiz, err = plan.ParseHoriz(p.Horiz); err != nil {
			return plan.Request{}, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	if p.Vert != "" {
		if req.Vert, err = plan.ParseVert(p.Vert); err != nil {
			return plan.Request{}, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	if req.HAlign, err = plan.ParseHAlign(p.HAlign); err != nil {
		return plan.Request{}, fmt.Errorf("preset %q: %w", name, err)
	}
	if req.VAlign, err = plan.ParseVAlign(p.VAlign); err != nil {
		return plan.Request{}, fmt.Errorf("preset %q: %w", name, err)
	}
	if p.Width != nil {
		if *p.Width < 0 || *p.Width > 100 {
			return plan.Request{}, fmt.Errorf("preset %q: width %d out of range 0-100", name, *p.Width)
		}
		req.Width = p.Width
	}
	if p.Height != nil {
		if *p.Height < 0 || *p.Height > 100 {
			return plan.Request{}, fmt.Errorf("preset %q: height %d out of range 0-100", name, *p.Height)
		}
		req.Height = p.Height
	}
	return req, nil
}
