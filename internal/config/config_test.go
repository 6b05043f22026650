package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reelforge/reelforge/internal/segment"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:8750" {
		t.Errorf("listen addr = %q", cfg.ListenAddr)
	}
	if cfg.Overlay.Width != 1920 || cfg.Overlay.Height != 1080 {
		t.Errorf("overlay = %dx%d", cfg.Overlay.Width, cfg.Overlay.Height)
	}
	if cfg.DefaultStyle != nil {
		t.Error("default style should be nil unless configured")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	content := `
listen_addr: "0.0.0.0:9000"
overlay:
  width: 1280
  height: 720
default_style:
  font_size: 36
  font_family: Arial
  color: "#ffff00"
  background_color: "rgba(0, 0, 0, 0.5)"
  position: {x: 50, y: 90}
  text_align: center
  bold: false
  italic: false
`
	path := filepath.Join(t.TempDir(), "reelforge.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:9000" {
		t.Errorf("listen addr = %q", cfg.ListenAddr)
	}
	if cfg.Overlay.Width != 1280 {
		t.Errorf("overlay width = %d", cfg.Overlay.Width)
	}
	if cfg.DefaultStyle == nil {
		t.Fatal("default style not loaded")
	}
	if cfg.DefaultStyle.FontSize != 36 || cfg.DefaultStyle.TextAlign != segment.AlignCenter {
		t.Errorf("default style = %+v", cfg.DefaultStyle)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "listen_addr: [unclosed"},
		{"zero overlay", "overlay: {width: 0, height: 720}"},
		{"empty addr", `listen_addr: ""`},
		{"bad align", "default_style: {font_size: 40, text_align: middle}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
