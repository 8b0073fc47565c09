package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  api-key-value\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	secret, err := Load(Source{Name: "gemini api key", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "api-key-value" {
		t.Fatalf("expected trimmed secret, got %q", secret)
	}
}

func TestLoadEmptyFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  \n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(Source{Name: "gemini api key", File: path}); err == nil {
		t.Fatal("expected error for empty secret file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SKILL2SUCCESS_TEST_KEY", " env-value ")

	secret, err := Load(Source{Env: "SKILL2SUCCESS_TEST_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "env-value" {
		t.Fatalf("unexpected secret: %q", secret)
	}
}

func TestLoadFilePrecedesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("file-value"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SKILL2SUCCESS_TEST_KEY", "env-value")

	secret, err := Load(Source{File: path, Env: "SKILL2SUCCESS_TEST_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secret != "file-value" {
		t.Fatalf("expected file to win, got %q", secret)
	}
}

func TestLoadNothingConfigured(t *testing.T) {
	if _, err := Load(Source{Name: "gemini api key"}); err == nil {
		t.Fatal("expected error when nothing is configured")
	}
}
