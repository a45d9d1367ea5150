package workflows

import (
	"context"

	"github.com/4yzz/text-encrypter/internal/codec"
	"github.com/4yzz/text-encrypter/internal/keystore"
)

// GenerateKeyOptions configures the genkey workflow.
type GenerateKeyOptions struct {
	// Output is where to save the key. If empty, the default path is used.
	Output string

	// Store resolves the default key location.
	Store keystore.Store
}

// GenerateKeyResult contains the outcome of a genkey operation.
type GenerateKeyResult struct {
	// Path is where the key was written.
	Path string
}

// GenerateKey creates a fresh key and persists it.
//
// Any existing key at the target path is overwritten: tokens sealed under
// the old key become unrecoverable.
func GenerateKey(ctx context.Context, opts GenerateKeyOptions) (*GenerateKeyResult, error) {
	path := opts.Output
	if path == "" {
		var err error
		path, err = opts.Store.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	key, err := keystore.Generate()
	if err != nil {
		return nil, err
	}

	if err := keystore.Save(key, path); err != nil {
		return nil, err
	}

	return &GenerateKeyResult{Path: path}, nil
}

// keyInfo describes which key a workflow ended up using.
type keyInfo struct {
	// Path is the key file the workflow read.
	Path string

	// Created reports whether the key was auto-provisioned during this
	// invocation.
	Created bool
}

// resolveCodec loads the key per the resolution rules and binds a codec
// to it. With an empty keyPath the default location is used and a missing
// key is provisioned on the spot.
func resolveCodec(store keystore.Store, keyPath string) (codec.Codec, keyInfo, error) {
	key, created, err := store.Resolve(keyPath)
	if err != nil {
		return codec.Codec{}, keyInfo{}, err
	}

	path := keyPath
	if path == "" {
		// Resolve already created the app directory; this only recomputes
		// the path for reporting.
		path, err = store.DefaultPath()
		if err != nil {
			return codec.Codec{}, keyInfo{}, err
		}
	}

	return codec.New(key), keyInfo{Path: path, Created: created}, nil
}
