package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func boolPtr(v bool) *bool { return &v }

func TestMergeStrongestFirst(t *testing.T) {
	flags := Settings{LogLevel: "debug", Group: boolPtr(false)}
	file := Settings{LogLevel: "warn", Engine: "cel", Rules: []string{"cents < 500"}}

	merged := Merge(flags, file, Defaults())

	if merged.LogLevel != "debug" {
		t.Fatalf("expected flag log level, got %q", merged.LogLevel)
	}
	if merged.Engine != "cel" {
		t.Fatalf("expected file engine, got %q", merged.Engine)
	}
	if merged.LogFormat != "console" || merged.Channel != "brew" {
		t.Fatalf("expected defaults to fill gaps, got %+v", merged)
	}
	if merged.GroupEnabled() {
		t.Fatalf("expected explicit false group to win over default true")
	}
	if len(merged.Rules) != 1 || merged.Rules[0] != "cents < 500" {
		t.Fatalf("unexpected rules %v", merged.Rules)
	}

	file.Rules[0] = "changed"
	if merged.Rules[0] != "cents < 500" {
		t.Fatalf("expected merged rules to be cloned")
	}
	*flags.Group = true
	if merged.GroupEnabled() {
		t.Fatalf("expected merged group pointer to be cloned")
	}
}

func TestMergeEmpty(t *testing.T) {
	merged := Merge()
	if merged.LogLevel != "" || merged.Group != nil {
		t.Fatalf("expected zero settings, got %+v", merged)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brew.yaml")
	payload := "log_level: debug\nengine: cel\ngroup: false\nrules:\n  - layers <= 4\n"
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	settings, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.LogLevel != "debug" || settings.Engine != "cel" || settings.Group == nil || *settings.Group {
		t.Fatalf("unexpected settings %+v", settings)
	}
	if len(settings.Rules) != 1 || settings.Rules[0] != "layers <= 4" {
		t.Fatalf("unexpected rules %v", settings.Rules)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	if _, err := Decode([]byte("colour: blue\n")); err == nil {
		t.Fatalf("expected unknown key to fail")
	}
	settings, err := Decode([]byte("  \n"))
	if err != nil || settings.Engine != "" {
		t.Fatalf("expected empty document to decode to zero settings, got %+v (%v)", settings, err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil || !strings.Contains(err.Error(), "config: read") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	bad := Defaults()
	bad.LogFormat = "xml"
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected log format error")
	}
	bad = Defaults()
	bad.Engine = "lua"
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected engine error")
	}
}
