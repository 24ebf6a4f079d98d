package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/balloon-climber/internal/config"
)

func simulate(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"simulate", "--log-level", "error"}, args...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	return out.String()
}

func hashLine(out string) string {
	for line := range strings.Lines(out) {
		if strings.Contains(line, "state hash") {
			return line
		}
	}
	return ""
}

func TestSimulateIsReproducible(t *testing.T) {
	first := simulate(t, "--ticks", "3000", "--seed", "42")
	second := simulate(t, "--ticks", "3000", "--seed", "42")

	if !strings.Contains(first, "runs ended") {
		t.Fatalf("summary missing:\n%s", first)
	}
	if hashLine(first) == "" || hashLine(first) != hashLine(second) {
		t.Errorf("same seed should end in the same state:\n%s\n%s", hashLine(first), hashLine(second))
	}
}

func TestSimulateRejectsUnknownVariant(t *testing.T) {
	rootCmd.SetArgs([]string{"simulate", "nope", "--ticks", "10"})
	rootCmd.SetOut(&bytes.Buffer{})
	if err := rootCmd.Execute(); err == nil {
		t.Error("unknown variant should fail")
	}
}

func TestInvalidConfigFlagFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("balloon:\n  radius: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { flagConfig = "" })

	rootCmd.SetArgs([]string{"simulate", "--config", path, "--ticks", "10"})
	rootCmd.SetOut(&bytes.Buffer{})
	err := rootCmd.Execute()
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestMissingConfigFlagFails(t *testing.T) {
	t.Cleanup(func() { flagConfig = "" })

	rootCmd.SetArgs([]string{"simulate", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "--ticks", "10"})
	rootCmd.SetOut(&bytes.Buffer{})
	if err := rootCmd.Execute(); err == nil {
		t.Error("a missing --config file should fail")
	}
}
