package keystore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	terrors "github.com/4yzz/text-encrypter/internal/errors"
)

func TestGenerateSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "fernet.key")

	key, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Save must create the parent directory.
	if err := Save(key, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Encode() != key.Encode() {
		t.Error("Loaded key does not match saved key")
	}
}

func TestGenerateProducesDistinctKeys(t *testing.T) {
	first, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if first.Encode() == second.Encode() {
		t.Error("Two generated keys are identical")
	}
}

func TestSaveOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "fernet.key")

	first, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := Save(first, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	second, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := Save(second, path); err != nil {
		t.Fatalf("Overwriting save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Encode() != second.Encode() {
		t.Error("Expected the second key after overwrite")
	}
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.key")

	_, err := Load(path)
	if !errors.Is(err, terrors.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got: %v", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	tmpDir := t.TempDir()

	cases := []struct {
		name    string
		content string
	}{
		{"garbage", "definitely not a key"},
		{"empty", ""},
		{"truncated base64", "Zm9vYmFy"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tc.name+".key")
			if err := os.WriteFile(path, []byte(tc.content), 0600); err != nil {
				t.Fatalf("Failed to write key file: %v", err)
			}

			_, err := Load(path)
			if !errors.Is(err, terrors.ErrKeyCorrupt) {
				t.Errorf("Expected ErrKeyCorrupt, got: %v", err)
			}
		})
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "fernet.key")

	key, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(key.Encode()+"\n"), 0600); err != nil {
		t.Fatalf("Failed to write key file: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Encode() != key.Encode() {
		t.Error("Loaded key does not match after whitespace trim")
	}
}

func TestDefaultPathCreatesAppDir(t *testing.T) {
	base := t.TempDir()
	s := Store{Base: base}

	path, err := s.DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath failed: %v", err)
	}

	want := filepath.Join(base, "text-encrypter", "fernet.key")
	if path != want {
		t.Errorf("Expected %s, got %s", want, path)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("App directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("App directory path is not a directory")
	}
}

func TestResolveExplicitMissing(t *testing.T) {
	base := t.TempDir()
	s := Store{Base: base}
	missing := filepath.Join(base, "missing.key")

	_, created, err := s.Resolve(missing)
	if !errors.Is(err, terrors.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got: %v", err)
	}
	if created {
		t.Error("Resolve must not generate a key for an explicit path")
	}
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Error("Resolve must not write anything for an explicit missing path")
	}
}

func TestResolveExplicitExisting(t *testing.T) {
	base := t.TempDir()
	s := Store{Base: base}
	path := filepath.Join(base, "my.key")

	key, err := Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := Save(key, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	resolved, created, err := s.Resolve(path)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if created {
		t.Error("Resolve must not report creation for an existing explicit key")
	}
	if resolved.Encode() != key.Encode() {
		t.Error("Resolved key does not match the saved key")
	}
}

func TestResolveAutoProvisions(t *testing.T) {
	base := t.TempDir()
	s := Store{Base: base}

	key, created, err := s.Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !created {
		t.Error("Expected first resolve to create a key")
	}

	keyFile := filepath.Join(base, "text-encrypter", "fernet.key")
	if _, err := os.Stat(keyFile); err != nil {
		t.Fatalf("Expected key file at default path: %v", err)
	}

	// Subsequent resolutions return the same key without re-creating it.
	again, created, err := s.Resolve("")
	if err != nil {
		t.Fatalf("Second resolve failed: %v", err)
	}
	if created {
		t.Error("Second resolve must not create another key")
	}
	if again.Encode() != key.Encode() {
		t.Error("Second resolve returned a different key")
	}
}
