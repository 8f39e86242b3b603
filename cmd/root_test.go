package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/witanlabs/cellref/config"
)

func setupJSONTest(t *testing.T) {
	t.Helper()
	orig := jsonOutput
	t.Cleanup(func() { jsonOutput = orig })
	jsonOutput = false
	t.Setenv("CELLREF_JSON", "")
	t.Setenv("CELLREF_CONFIG_DIR", t.TempDir())
}

func TestResolveJSON_DefaultsToText(t *testing.T) {
	setupJSONTest(t)

	if resolveJSON() {
		t.Fatal("expected text output with no flag, env, or config")
	}
}

func TestResolveJSON_Flag(t *testing.T) {
	setupJSONTest(t)
	jsonOutput = true

	if !resolveJSON() {
		t.Fatal("expected JSON output when the flag is set")
	}
}

func TestResolveJSON_Env(t *testing.T) {
	setupJSONTest(t)
	t.Setenv("CELLREF_JSON", "1")

	if !resolveJSON() {
		t.Fatal("expected JSON output when CELLREF_JSON=1")
	}

	t.Setenv("CELLREF_JSON", "true")
	if !resolveJSON() {
		t.Fatal("expected JSON output when CELLREF_JSON=true")
	}

	t.Setenv("CELLREF_JSON", "0")
	if resolveJSON() {
		t.Fatal("expected text output when CELLREF_JSON=0")
	}
}

func TestResolveJSON_Config(t *testing.T) {
	setupJSONTest(t)

	if err := config.Save(config.Config{Output: config.OutputJSON}); err != nil {
		t.Fatalf("saving config: %v", err)
	}

	if !resolveJSON() {
		t.Fatal("expected JSON output from saved config")
	}
}

func TestResolveJSON_TextWhenConfigLoadErrors(t *testing.T) {
	setupJSONTest(t)

	configDir := os.Getenv("CELLREF_CONFIG_DIR")
	if err := os.Mkdir(filepath.Join(configDir, "config.json"), 0o755); err != nil {
		t.Fatalf("setup invalid config path: %v", err)
	}

	if resolveJSON() {
		t.Fatal("expected text output when config cannot be loaded")
	}
}
