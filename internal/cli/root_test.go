// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jmylchreest/koyo/internal/cli"
	"github.com/jmylchreest/koyo/internal/ramp"
)

// runCommand executes the CLI with the given args and returns stdout and
// the execution error.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), err
}

func TestRampCommand(t *testing.T) {
	t.Run("DefaultHexOutput", func(t *testing.T) {
		out, err := runCommand(t, "ramp", "#2F6FED")
		if err != nil {
			t.Fatalf("ramp command failed: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 9 {
			t.Fatalf("expected 9 hex lines, got %d:\n%s", len(lines), out)
		}
		for _, line := range lines {
			if _, err := ramp.ParseHex(line); err != nil {
				t.Errorf("output line %q is not a hex colour: %v", line, err)
			}
		}
	})

	t.Run("ElevenSteps", func(t *testing.T) {
		out, err := runCommand(t, "ramp", "808080", "--temperature=-1", "--steps", "11")
		if err != nil {
			t.Fatalf("ramp command failed: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 11 {
			t.Fatalf("expected 11 hex lines, got %d", len(lines))
		}
	})

	t.Run("JSONFormat", func(t *testing.T) {
		out, err := runCommand(t, "ramp", "2f6fed", "--temperature", "0.6", "--mode", "painterly", "--format", "json")
		if err != nil {
			t.Fatalf("ramp command failed: %v", err)
		}

		var doc struct {
			Base        string   `json:"base"`
			Temperature float64  `json:"temperature"`
			Steps       int      `json:"steps"`
			Mode        string   `json:"mode"`
			Colors      []string `json:"colors"`
		}
		if err := json.Unmarshal([]byte(out), &doc); err != nil {
			t.Fatalf("output is not valid JSON: %v\n%s", err, out)
		}
		if doc.Base != "#2F6FED" {
			t.Errorf("base = %q, want canonical %q", doc.Base, "#2F6FED")
		}
		if doc.Mode != "painterly" || doc.Steps != 9 || len(doc.Colors) != 9 {
			t.Errorf("unexpected document: %+v", doc)
		}
	})

	t.Run("CSSFormat", func(t *testing.T) {
		out, err := runCommand(t, "ramp", "#D9A520", "--format", "css")
		if err != nil {
			t.Fatalf("ramp command failed: %v", err)
		}
		if !strings.Contains(out, ":root {") || !strings.Contains(out, "--ramp-0:") || !strings.Contains(out, "--ramp-8:") {
			t.Errorf("css output missing expected properties:\n%s", out)
		}
	})

	t.Run("InvalidBaseColour", func(t *testing.T) {
		_, err := runCommand(t, "ramp", "2F6FE")
		if err == nil {
			t.Fatal("expected an error for a 5-digit base colour")
		}
		if !errors.Is(err, ramp.ErrInvalidColorFormat) {
			t.Errorf("error = %v, want ErrInvalidColorFormat", err)
		}
	})

	t.Run("InvalidTemperature", func(t *testing.T) {
		_, err := runCommand(t, "ramp", "#2F6FED", "--temperature", "3")
		if !errors.Is(err, ramp.ErrInvalidArgument) {
			t.Errorf("error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := runCommand(t, "ramp", "#2F6FED", "--format", "yaml")
		if err == nil || !strings.Contains(err.Error(), "unknown format") {
			t.Errorf("error = %v, want unknown format error", err)
		}
	})
}

func TestModesCommand(t *testing.T) {
	out, err := runCommand(t, "modes")
	if err != nil {
		t.Fatalf("modes command failed: %v", err)
	}
	for _, want := range []string{"conservative", "painterly", "max-hue-shift", "yellow-ceiling"} {
		if !strings.Contains(out, want) {
			t.Errorf("modes output missing %q:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(out, "koyo version") {
		t.Errorf("unexpected version output: %q", out)
	}
}
