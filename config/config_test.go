package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "riichi.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Log.Level != "info" || cfg.Log.Dir != "" || cfg.Output.Format != "text" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.RuleOptions() != riichi.DefaultRule() {
		t.Errorf("RuleOptions = %+v, want %+v", cfg.RuleOptions(), riichi.DefaultRule())
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  dir: /tmp/riichi
rule:
  strict_pinfu: true
  double_wind_pair_fu: false
output:
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Dir != "/tmp/riichi" || cfg.Output.Format != "json" {
		t.Errorf("cfg = %+v", cfg)
	}
	want := riichi.Rule{StrictPinfu: true, DoubleWindPairFu: false}
	if cfg.RuleOptions() != want {
		t.Errorf("RuleOptions = %+v, want %+v", cfg.RuleOptions(), want)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("RIICHI_RULE_STRICT_PINFU", "true")
	t.Setenv("RIICHI_OUTPUT_FORMAT", "json")
	cfg, err := Load(writeConfig(t, "output:\n  format: text\n"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.Rule.StrictPinfu || cfg.Output.Format != "json" {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "missing.yaml")},
		{name: "bad yaml", path: writeConfig(t, "log: [level\n")},
		{name: "bad format", path: writeConfig(t, "output:\n  format: xml\n")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if cfg, err := Load(tc.path); err == nil {
				t.Errorf("Load(%s) = %+v, want error", tc.path, cfg)
			}
		})
	}
}
