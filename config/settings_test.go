package config

import (
	"os"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	s := Get()
	if s.Viewer.Width != 1280 || s.Viewer.Height != 720 {
		t.Errorf("default window %dx%d, want 1280x720", s.Viewer.Width, s.Viewer.Height)
	}
	if s.Viewer.SphereSegments == 0 || s.Viewer.SphereRings == 0 {
		t.Error("default sphere resolution is zero")
	}
	if s.Dataset.AutoAdvanceSec != 15 {
		t.Errorf("default auto-advance %f, want 15", s.Dataset.AutoAdvanceSec)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	t.Chdir(t.TempDir())

	settings := `{"viewer": {"width": 640, "height": 480, "sphereSegments": 16, "sphereRings": 8, "planetSpinRate": 1.0}, "dataset": {"path": "other.csv", "autoAdvanceSec": 5}}`
	if err := os.WriteFile("settings.json", []byte(settings), 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	if err := Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	s := Get()
	if s.Viewer.Width != 640 || s.Viewer.Height != 480 {
		t.Errorf("window %dx%d, want 640x480", s.Viewer.Width, s.Viewer.Height)
	}
	if s.Dataset.Path != "other.csv" {
		t.Errorf("dataset path %q, want other.csv", s.Dataset.Path)
	}
	if s.Dataset.AutoAdvanceSec != 5 {
		t.Errorf("auto-advance %f, want 5", s.Dataset.AutoAdvanceSec)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.WriteFile("settings.json", []byte("{nope"), 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
	if err := Load(); err == nil {
		t.Error("expected error for malformed settings.json")
	}
}
