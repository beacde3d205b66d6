package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Host != "" || cfg.Signal != "" {
		t.Errorf("missing file should yield zero config, got %+v", cfg)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() error = nil for explicit missing file, want error")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	in := &Config{Host: "unix:///run/user/1000/docker.sock", Signal: "SIGINT"}
	if err := in.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *out != *in {
		t.Errorf("Load() = %+v, want %+v", out, in)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alt.yaml")
	if err := os.WriteFile(path, []byte("host: tcp://127.0.0.1:2375\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Host != "tcp://127.0.0.1:2375" {
		t.Errorf("Host = %q, want tcp endpoint", cfg.Host)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("host: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil for malformed yaml, want error")
	}
}
