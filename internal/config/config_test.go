package config

import (
	"os"
	"reflect"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"GITHUB_TOKEN", "GITHUB_OWNER", "GITHUB_REPO", "NOTES_PATH"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Live() {
		t.Fatalf("expected fallback mode")
	}
	if cfg.NotesPath != "notes" {
		t.Fatalf("notes path = %q", cfg.NotesPath)
	}
	if cfg.Branch != "main" {
		t.Fatalf("branch = %q", cfg.Branch)
	}
	want := []string{"GITHUB_TOKEN", "GITHUB_OWNER", "GITHUB_REPO", "NOTES_PATH"}
	if !reflect.DeepEqual(cfg.MissingVars, want) {
		t.Fatalf("missing = %v", cfg.MissingVars)
	}
}

func TestLoadLiveMode(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GITHUB_TOKEN", "tok")
	t.Setenv("GITHUB_OWNER", "octo")
	t.Setenv("GITHUB_REPO", "vault")
	t.Setenv("NOTES_PATH", "journal")

	cfg := Load()
	if !cfg.Live() {
		t.Fatalf("expected live mode")
	}
	if cfg.NotesPath != "journal" {
		t.Fatalf("notes path = %q", cfg.NotesPath)
	}
	if len(cfg.MissingVars) != 0 {
		t.Fatalf("missing = %v", cfg.MissingVars)
	}
}

func TestLivePartialConfiguration(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GITHUB_TOKEN", "tok")
	t.Setenv("GITHUB_OWNER", "octo")
	t.Setenv("GITHUB_REPO", "")
	cfg := Load()
	if cfg.Live() {
		t.Fatalf("missing repo must force fallback mode")
	}
}
