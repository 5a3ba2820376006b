package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("SHOOTER_TEST_STR", "hello")
	t.Setenv("SHOOTER_TEST_INT", "42")
	t.Setenv("SHOOTER_TEST_BAD_INT", "forty")
	t.Setenv("SHOOTER_TEST_FLOAT", "0.25")
	t.Setenv("SHOOTER_TEST_DUR", "800ms")

	if got := GetEnv("SHOOTER_TEST_STR", "x"); got != "hello" {
		t.Errorf("GetEnv = %q, want hello", got)
	}
	if got := GetEnv("SHOOTER_TEST_MISSING", "x"); got != "x" {
		t.Errorf("GetEnv fallback = %q, want x", got)
	}
	if got := GetEnvInt("SHOOTER_TEST_INT", 1); got != 42 {
		t.Errorf("GetEnvInt = %d, want 42", got)
	}
	if got := GetEnvInt("SHOOTER_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetEnvInt malformed = %d, want fallback 7", got)
	}
	if got := GetEnvFloat("SHOOTER_TEST_FLOAT", 1); got != 0.25 {
		t.Errorf("GetEnvFloat = %v, want 0.25", got)
	}
	if got := GetEnvDuration("SHOOTER_TEST_DUR", time.Second); got != 800*time.Millisecond {
		t.Errorf("GetEnvDuration = %v, want 800ms", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("SHOOTER_DOTENV_VALUE=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SHOOTER_DOTENV_VALUE", "")
	os.Unsetenv("SHOOTER_DOTENV_VALUE")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("SHOOTER_DOTENV_VALUE"); got != "from-file" {
		t.Errorf("value = %q, want from-file", got)
	}

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}
