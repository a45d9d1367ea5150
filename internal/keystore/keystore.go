package keystore

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	terrors "github.com/4yzz/text-encrypter/internal/errors"

	"github.com/fernet/fernet-go"
)

const (
	// appDirName is the per-user application data subdirectory.
	appDirName = "text-encrypter"

	// keyFileName is the fixed name of the key file inside the app directory.
	keyFileName = "fernet.key"
)

// Store resolves where the symmetric key lives on this machine.
//
// The zero value uses the OS-appropriate application data directory.
type Store struct {
	// Base overrides the OS data directory when set. Tests use this to
	// avoid touching the real home directory.
	Base string
}

// DefaultPath returns the default key file location, creating the
// application directory if it does not exist yet.
func (s Store) DefaultPath() (string, error) {
	base := s.Base
	if base == "" {
		var err error
		base, err = dataDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve data directory: %w", err)
		}
	}

	appDir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(appDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create app directory at %s: %w", appDir, err)
	}

	return filepath.Join(appDir, keyFileName), nil
}

// Resolve loads the key the user asked for.
//
// With an explicit path, a missing file is fatal: the user pointed at a
// specific key and silently generating one there would be wrong. With no
// path, the default location is used, and a missing key file is provisioned
// on the spot. The returned flag reports whether a new key was created, so
// the caller can tell the user that durable secret material was written.
func (s Store) Resolve(userPath string) (*fernet.Key, bool, error) {
	if userPath != "" {
		key, err := Load(userPath)
		return key, false, err
	}

	path, err := s.DefaultPath()
	if err != nil {
		return nil, false, err
	}

	created := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		key, err := Generate()
		if err != nil {
			return nil, false, err
		}
		if err := Save(key, path); err != nil {
			return nil, false, err
		}
		created = true
	}

	key, err := Load(path)
	return key, created, err
}

// Generate produces a fresh random key using the primitive's
// cryptographically secure key generation.
func Generate() (*fernet.Key, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return &key, nil
}

// Save writes the encoded key to path, creating parent directories as
// needed. Any existing content at path is overwritten.
func Save(key *fernet.Key, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create key directory at %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(key.Encode()), 0600); err != nil {
		return fmt.Errorf("failed to write key to %s: %w", path, err)
	}

	return nil
}

// Load reads a key back from path.
//
// A missing file maps to ErrKeyNotFound; a file the primitive cannot decode
// maps to ErrKeyCorrupt.
func Load(path string) (*fernet.Key, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", terrors.ErrKeyNotFound, path)
		}
		return nil, fmt.Errorf("failed to read key at %s: %w", path, err)
	}

	key, err := fernet.DecodeKey(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", terrors.ErrKeyCorrupt, path)
	}

	return key, nil
}

// dataDir returns the per-user application data base directory for this OS.
func dataDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "AppData", "Roaming"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}
