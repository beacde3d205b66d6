package cmdutil

import (
	"path/filepath"
	"testing"
)

func TestDialPropagatesConfigError(t *testing.T) {
	f := ConnectionFlags{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}
	if _, _, err := f.Dial(); err == nil {
		t.Fatal("Dial() error = nil for missing explicit config, want error")
	}
}

// Client construction does not touch the daemon socket, so Dial is
// safe to call without a runtime present.
func TestDialWithoutConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	f := ConnectionFlags{}
	rt, cfg, err := f.Dial()
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer func() {
		_ = rt.Close()
	}()
	if cfg.Host != "" || cfg.Signal != "" {
		t.Errorf("zero config expected, got %+v", cfg)
	}
}
