package photometry

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rig.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadPreset_FullFile(t *testing.T) {
	path := writePreset(t, `
[acquisition]
sample-rate = 1000.0
cutoff = 10.0
order = 2
start = 5.0
end = 55.0
`)

	p, err := LoadPreset(path)
	if err != nil {
		t.Fatal(err)
	}

	cfg := ApplyOptions(p.Options()...)

	if cfg.SampleRate != 1000 {
		t.Fatalf("sample rate: got %v, want 1000", cfg.SampleRate)
	}

	if cfg.CutoffHz != 10 {
		t.Fatalf("cutoff: got %v, want 10", cfg.CutoffHz)
	}

	if cfg.FilterOrder != 2 {
		t.Fatalf("order: got %d, want 2", cfg.FilterOrder)
	}

	if cfg.StartTime != 5 || cfg.EndTime != 55 {
		t.Fatalf("window: got [%v, %v], want [5, 55]", cfg.StartTime, cfg.EndTime)
	}
}

func TestLoadPreset_PartialFileKeepsDefaults(t *testing.T) {
	path := writePreset(t, `
[acquisition]
cutoff = 15.0
`)

	p, err := LoadPreset(path)
	if err != nil {
		t.Fatal(err)
	}

	cfg := ApplyOptions(p.Options()...)
	def := DefaultConfig()

	if cfg.CutoffHz != 15 {
		t.Fatalf("cutoff: got %v, want 15", cfg.CutoffHz)
	}

	if cfg.SampleRate != def.SampleRate || cfg.FilterOrder != def.FilterOrder {
		t.Fatalf("defaults not kept: %+v", cfg)
	}

	if cfg.StartTime != def.StartTime || !math.IsNaN(cfg.EndTime) {
		t.Fatalf("window defaults not kept: %+v", cfg)
	}
}

func TestLoadPreset_Missing(t *testing.T) {
	if _, err := LoadPreset(""); err == nil {
		t.Fatal("expected error for empty path")
	}

	if _, err := LoadPreset(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
