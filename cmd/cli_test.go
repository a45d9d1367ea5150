package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	terrors "github.com/4yzz/text-encrypter/internal/errors"
	"github.com/4yzz/text-encrypter/internal/keystore"
)

// runCommand executes the CLI with the given arguments from a clean state.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	ResetGlobalState()
	root := GetRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func TestGenkeyCommand(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "my.key")

	if err := runCommand(t, "genkey", "--out", keyFile); err != nil {
		t.Fatalf("genkey failed: %v", err)
	}

	if _, err := keystore.Load(keyFile); err != nil {
		t.Fatalf("Generated key does not load back: %v", err)
	}
}

func TestEncryptDecryptFileCommands(t *testing.T) {
	tmpDir := t.TempDir()
	keyFile := filepath.Join(tmpDir, "my.key")
	if err := runCommand(t, "genkey", "--out", keyFile); err != nil {
		t.Fatalf("genkey failed: %v", err)
	}

	src := filepath.Join(tmpDir, "report.txt")
	if err := os.WriteFile(src, []byte("hello from the CLI"), 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to write source file: %v", err)
	}

	if err := runCommand(t, "encrypt", "--key", keyFile, "--file", src); err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	encFile := src + ".enc"
	if _, err := os.Stat(encFile); err != nil {
		t.Fatalf("Expected encrypted file at %s: %v", encFile, err)
	}

	out := filepath.Join(tmpDir, "recovered.txt")
	if err := runCommand(t, "decrypt", "--key", keyFile, "--file", encFile, "--out", out); err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read recovered file: %v", err)
	}
	if string(data) != "hello from the CLI" {
		t.Errorf("Expected original content, got %q", data)
	}
}

func TestEncryptCommandRequiresExactlyOneInput(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "a.txt")
	if err := os.WriteFile(src, []byte("x"), 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to write source file: %v", err)
	}

	if err := runCommand(t, "encrypt"); err == nil {
		t.Error("encrypt with no input should fail")
	}
	if err := runCommand(t, "encrypt", "--text", "x", "--file", src); err == nil {
		t.Error("encrypt with both inputs should fail")
	}
}

func TestEncryptCommandExplicitKeyMissing(t *testing.T) {
	tmpDir := t.TempDir()
	missingKey := filepath.Join(tmpDir, "missing.key")

	err := runCommand(t, "encrypt", "--key", missingKey, "--text", "doomed")
	if !errors.Is(err, terrors.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got: %v", err)
	}
	if _, statErr := os.Stat(missingKey); !os.IsNotExist(statErr) {
		t.Error("No key may be created at an explicit missing path")
	}
}

func TestDecryptCommandGarbageFile(t *testing.T) {
	tmpDir := t.TempDir()
	keyFile := filepath.Join(tmpDir, "my.key")
	if err := runCommand(t, "genkey", "--out", keyFile); err != nil {
		t.Fatalf("genkey failed: %v", err)
	}

	garbage := filepath.Join(tmpDir, "garbage.enc")
	if err := os.WriteFile(garbage, []byte("never a token"), 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to write garbage file: %v", err)
	}

	err := runCommand(t, "decrypt", "--key", keyFile, "--file", garbage)
	if !errors.Is(err, terrors.ErrDecryptionFailed) {
		t.Errorf("Expected ErrDecryptionFailed, got: %v", err)
	}
}

func TestDecryptCommandMissingSource(t *testing.T) {
	tmpDir := t.TempDir()
	keyFile := filepath.Join(tmpDir, "my.key")
	if err := runCommand(t, "genkey", "--out", keyFile); err != nil {
		t.Fatalf("genkey failed: %v", err)
	}

	err := runCommand(t, "decrypt", "--key", keyFile, "--file", filepath.Join(tmpDir, "nope.enc"))
	if !errors.Is(err, terrors.ErrSourceNotFound) {
		t.Errorf("Expected ErrSourceNotFound, got: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	if err := runCommand(t, "version"); err != nil {
		t.Fatalf("version failed: %v", err)
	}
}
