package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultScenario(t *testing.T) {
	sc := DefaultScenario()
	if sc.Width <= 0 || sc.Height <= 0 {
		t.Error("expected positive domain")
	}
	if sc.NumParticles != DefaultNumParticles {
		t.Errorf("expected %d particles, got %d", DefaultNumParticles, sc.NumParticles)
	}
}

func TestLoadFillsDefaultsForUnsetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	yamlBody := "name: sparse\nnum_particles: 42\nwidth: 300\nheight: 300\n"
	if err := os.WriteFile(path, []byte(yamlBody), 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.NumParticles != 42 {
		t.Errorf("expected 42 particles, got %d", sc.NumParticles)
	}
	if sc.Fluid.GasConstant != DefaultGasConstant {
		t.Errorf("expected default gas constant to survive partial yaml, got %f", sc.Fluid.GasConstant)
	}
}

func TestLoadRejectsInvalidScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("width: 0\nheight: 300\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for zero-width domain")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")
	sc := DefaultScenario()
	sc.NumParticles = 77

	if err := Save(path, sc); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.NumParticles != 77 {
		t.Errorf("expected round-tripped particle count 77, got %d", loaded.NumParticles)
	}
}
