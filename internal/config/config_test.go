package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wmplace/wmplace/internal/plan"
)

func TestBuiltinPresets(t *testing.T) {
	cfg := Builtin()

	req, err := cfg.Request("left")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Horiz != plan.HorizLeft || req.Vert != plan.VertFull {
		t.Fatalf("unexpected request for left: %+v", req)
	}

	req, err = cfg.Request("center")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Width == nil || *req.Width != 50 || req.HAlign != plan.HAlignMiddle {
		t.Fatalf("unexpected request for center: %+v", req)
	}
}

func TestRequestUnknownPreset(t *testing.T) {
	if _, err := Builtin().Request("teleport"); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
}

func TestRequestValidatesFields(t *testing.T) {
	cfg := Builtin()
	w := 150
	cfg.Presets["wide"] = Preset{Width: &w, HAlign: "left"}
	if _, err := cfg.Request("wide"); err == nil {
		t.Fatalf("expected error for out-of-range width")
	}

	cfg.Presets["odd"] = Preset{Horiz: "diagonal"}
	if _, err := cfg.Request("odd"); err == nil {
		t.Fatalf("expected error for bad horiz spec")
	}
}

func TestLoadFileMergesOverBuiltins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `presets:
  left:
    horiz: left50
    vert: current
  editor:
    width: 80
    height: 90
    halign: middle
    valign: middle
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// User preset replaces the builtin wholesale.
	req, err := cfg.Request("left")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Horiz != plan.HorizLeft50 || req.Vert != plan.VertCurrent {
		t.Fatalf("expected overridden left preset, got %+v", req)
	}

	req, err = cfg.Request("editor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Width == nil || *req.Width != 80 || req.VAlign != plan.VAlignMiddle {
		t.Fatalf("unexpected editor preset: %+v", req)
	}

	// Untouched builtins survive the merge.
	if _, err := cfg.Request("full"); err != nil {
		t.Fatalf("builtin full preset lost: %v", err)
	}
}

func TestLoadFileMissingIsBuiltins(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if _, err := cfg.Request("top"); err != nil {
		t.Fatalf("expected builtins, got %v", err)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("presets: [not a map"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
