package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"simplec/internal/project"
)

func TestLoadMissingManifestUsesDefaults(t *testing.T) {
	m, err := project.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Source.Dir != "." || m.Output.Format != "pretty" {
		t.Errorf("unexpected defaults: %+v", m)
	}
}

func TestLoadParsesManifest(t *testing.T) {
	dir := t.TempDir()
	content := "[source]\ndir = \"examples\"\n\n[output]\nformat = \"json\"\n"
	if err := os.WriteFile(filepath.Join(dir, "simplec.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	m, err := project.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Source.Dir != "examples" || m.Output.Format != "json" {
		t.Errorf("unexpected manifest: %+v", m)
	}
}
