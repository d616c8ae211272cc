package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/0x0FACED/go-branching/pkg/branching"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "branching.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsReference(t *testing.T) {
	if got := Default().Params(); got != branching.Reference() {
		t.Errorf("Default().Params() = %+v, want %+v", got, branching.Reference())
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
width = 2000
radius = 12.5
children_limit = 3
seed = 42
circles = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Width = 2000
	want.Radius = 12.5
	want.ChildrenLimit = 3
	want.Seed = 42
	want.Circles = true
	if cfg != want {
		t.Errorf("Load = %+v, want %+v", cfg, want)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"unknown key", "radius = 10\nspread = 3\n", ErrUnknownKeys},
		{"invalid params", "radius = 0.5\nangle = -1\n", branching.ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	if _, err := Load(writeConfig(t, "width = = 3")); err == nil {
		t.Error("expected a decode error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
