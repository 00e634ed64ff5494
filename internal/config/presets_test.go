package config

import "testing"

func TestGetPresetKnown(t *testing.T) {
	sc, err := GetPreset("crowd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.NumParticles != 1200 {
		t.Errorf("expected 1200 particles, got %d", sc.NumParticles)
	}
	if len(sc.Obstacles) == 0 {
		t.Error("expected crowd preset to include an obstacle")
	}
}

func TestGetPresetUnknown(t *testing.T) {
	if _, err := GetPreset("nonexistent"); err != ErrUnknownPreset {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	a, _ := GetPreset("calm")
	a.NumParticles = 999
	b, _ := GetPreset("calm")
	if b.NumParticles == 999 {
		t.Fatal("GetPreset should return an independent copy")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(names))
	}
}
