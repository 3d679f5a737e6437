package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Atoms != DefaultAtoms {
		t.Errorf("expected %d atoms, got %d", DefaultAtoms, cfg.Atoms)
	}
	if cfg.Dt != DefaultDt {
		t.Errorf("expected dt %f, got %f", DefaultDt, cfg.Dt)
	}
	if cfg.Bonding != BondingNone {
		t.Errorf("expected bonding none, got %s", cfg.Bonding)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Atoms = 0
	if cfg.Validate() == nil {
		t.Error("expected error for zero atoms")
	}

	cfg = DefaultConfig()
	cfg.Dt = -0.01
	if cfg.Validate() == nil {
		t.Error("expected error for negative dt")
	}

	cfg = DefaultConfig()
	cfg.Bonding = "ring"
	if cfg.Validate() == nil {
		t.Error("expected error for unknown bonding strategy")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Atoms = 7
	cfg.Bonding = BondingChain
	cfg.Region.Width = 800

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Atoms != 7 {
		t.Errorf("expected 7 atoms, got %d", loaded.Atoms)
	}
	if loaded.Bonding != BondingChain {
		t.Errorf("expected chain bonding, got %s", loaded.Bonding)
	}
	if loaded.Region.Width != 800 {
		t.Errorf("expected region width 800, got %f", loaded.Region.Width)
	}
}

func TestPresets(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s missing", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}

	if GetPreset("nope") != nil {
		t.Error("expected nil for unknown preset")
	}

	triad := GetPreset("triad")
	if triad.Atoms != 3 || triad.Bonding != BondingFull {
		t.Error("triad should be three fully bonded atoms")
	}
}
