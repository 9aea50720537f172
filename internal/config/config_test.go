package config

import (
	"os"
	"testing"

	"github.com/jotlabs/jot/internal/constants"
)

func loadTestConfig(t *testing.T) (*Config, string) {
	t.Helper()

	home := t.TempDir()
	if err := EnsureConfigExists(home); err != nil {
		t.Fatalf("failed to ensure config: %v", err)
	}

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return cfg, home
}

func TestLoadEmptyFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	cfg, _ := loadTestConfig(t)

	if cfg.ServerURL != constants.DefaultServerURL {
		t.Fatalf("server url: got %q, want %q", cfg.ServerURL, constants.DefaultServerURL)
	}
	if cfg.Search.Scope != constants.DefaultScope {
		t.Fatalf("scope: got %q, want %q", cfg.Search.Scope, constants.DefaultScope)
	}
	if cfg.Token != "" {
		t.Fatalf("token: got %q, want empty", cfg.Token)
	}
}

func TestChangeTokenRoundTrip(t *testing.T) {
	t.Parallel()

	cfg, home := loadTestConfig(t)

	if err := cfg.ChangeToken("abc123"); err != nil {
		t.Fatalf("change token failed: %v", err)
	}

	reloaded, err := Load(home)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Token != "abc123" {
		t.Fatalf("token: got %q, want %q", reloaded.Token, "abc123")
	}

	// Logout clears it again.
	if err := reloaded.ChangeToken(""); err != nil {
		t.Fatalf("clear token failed: %v", err)
	}
	cleared, err := Load(home)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if cleared.Token != "" {
		t.Fatalf("token after logout: got %q, want empty", cleared.Token)
	}
}

func TestChangeScope(t *testing.T) {
	t.Parallel()

	cfg, home := loadTestConfig(t)

	if err := cfg.ChangeScope("Title"); err != nil {
		t.Fatalf("change scope failed: %v", err)
	}

	reloaded, err := Load(home)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Search.Scope != "title" {
		t.Fatalf("scope: got %q, want %q", reloaded.Search.Scope, "title")
	}

	if err := cfg.ChangeScope("everything"); err == nil {
		t.Fatal("expected an error for an invalid scope")
	}
}

func TestChangeServer(t *testing.T) {
	t.Parallel()

	cfg, home := loadTestConfig(t)

	if err := cfg.ChangeServer("https://notes.example.com/"); err != nil {
		t.Fatalf("change server failed: %v", err)
	}

	reloaded, err := Load(home)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.ServerURL != "https://notes.example.com" {
		t.Fatalf("server url: got %q", reloaded.ServerURL)
	}

	if err := cfg.ChangeServer("   "); err == nil {
		t.Fatal("expected an error for an empty server url")
	}
}

func TestEnsureConfigExistsIdempotent(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	if err := EnsureConfigExists(home); err != nil {
		t.Fatalf("first ensure failed: %v", err)
	}

	if err := os.WriteFile(GetConfigPath(home), []byte("token: keepme\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// A second ensure must not truncate the existing file.
	if err := EnsureConfigExists(home); err != nil {
		t.Fatalf("second ensure failed: %v", err)
	}

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Token != "keepme" {
		t.Fatalf("token: got %q, want %q", cfg.Token, "keepme")
	}
}
