package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/0x0FACED/go-branching/pkg/branching"
)

var lineRecord = regexp.MustCompile(`^L 1 -?\d+,-?\d+;-?\d+,-?\d+$`)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestEmit(t *testing.T) {
	args := []string{"emit", "--width", "200", "--height", "120", "--radius", "8", "--children", "3", "--angle", "90", "--seed", "7"}

	out, _, err := execute(t, args...)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) == 0 || lines[0] == "" {
		t.Fatal("no segments printed")
	}
	for _, l := range lines {
		if !lineRecord.MatchString(l) {
			t.Fatalf("malformed record %q", l)
		}
	}
	if !strings.HasPrefix(lines[0], "L 1 100,60;") {
		t.Errorf("first segment %q does not start at the root", lines[0])
	}

	again, _, err := execute(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	if again != out {
		t.Error("same seed printed different output")
	}
}

func TestRootRunsEmit(t *testing.T) {
	out, _, err := execute(t, "--width", "50", "--height", "50", "--radius", "5", "--seed", "3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "L 1 25,25;") {
		t.Errorf("root command output = %q", out)
	}
}

func TestEmitCircles(t *testing.T) {
	out, _, err := execute(t, "emit", "--width", "60", "--height", "60", "--radius", "6", "--seed", "2", "--circles")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Count(out, "L 1 ")
	circles := strings.Count(out, "C 1 1 5 ")
	if circles != lines+1 {
		t.Errorf("%d circles for %d segments, want one per sample", circles, lines)
	}
	if !strings.Contains(out, "C 1 1 5 30,30\n") {
		t.Error("root circle missing")
	}
}

func TestEmitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	body := "width = 80\nheight = 40\nradius = 4\nchildren_limit = 2\nangle = 120\nseed = 11\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	fromFile, _, err := execute(t, "emit", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	fromFlags, _, err := execute(t, "emit", "--width", "80", "--height", "40", "--radius", "4",
		"--children", "2", "--angle", "120", "--seed", "11")
	if err != nil {
		t.Fatal(err)
	}

	if fromFile != fromFlags {
		t.Error("config file and flags disagree")
	}
	if !strings.HasPrefix(fromFile, "L 1 40,20;") {
		t.Errorf("output = %q", fromFile)
	}
}

func TestEmitInvalidParams(t *testing.T) {
	_, _, err := execute(t, "emit", "--radius", "0.5", "--angle", "0")
	if !errors.Is(err, branching.ErrInvalidParams) {
		t.Errorf("error = %v, want ErrInvalidParams", err)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, errOut, err := execute(t, "emit", "-v", "--width", "40", "--height", "40", "--radius", "5", "--seed", "1")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[s] Sampler ready", "[s] Fill finished", "[s-gen] Accepted"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr misses %q", want)
		}
	}
}
