package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/oomph-ac/fpsim/oerror"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	c := Default()
	c.SlideMaxTime = -1
	c.Gravity = 9.8
	c.CrouchMode = "sideways"

	err := c.Validate()
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	for _, want := range []string{"slideMaxTime", "gravity", "crouchMode"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected error to mention %s, got %v", want, err)
		}
	}
}

func TestLoadYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movement.yaml")
	data := "walkSpeed: 6\nsprintSpeed: 10.5\ncrouchMode: toggle\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.WalkSpeed != 6 || c.SprintSpeed != 10.5 {
		t.Fatalf("overrides not applied: walk=%v sprint=%v", c.WalkSpeed, c.SprintSpeed)
	}
	if c.CrouchMode != CrouchModeToggle {
		t.Fatalf("expected toggle crouch mode, got %q", c.CrouchMode)
	}
	if c.SlideSpeed != Default().SlideSpeed {
		t.Fatalf("unset values must keep defaults, slideSpeed=%v", c.SlideSpeed)
	}
}

func TestSaveDefaultTOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movement.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("save default: %v", err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatalf("expected an error when the file already exists")
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c != Default() {
		t.Fatalf("loaded config differs from default:\n got %+v\nwant %+v", c, Default())
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	path := filepath.Join(dir, "movement.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	var simErr *oerror.SimError
	if !errors.As(err, &simErr) {
		t.Fatalf("expected SimError for unsupported format, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gravity: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "gravity") {
		t.Fatalf("expected validation failure for positive gravity, got %v", err)
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movement.yaml")
	if err := os.WriteFile(path, []byte("walkSpeed: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("walkSpeed: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-w.Configs:
		if c.WalkSpeed != 9 {
			t.Fatalf("expected reloaded walk speed 9, got %v", c.WalkSpeed)
		}
	case err := <-w.Errors:
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
}
