package transcoder

import (
	"fmt"
	"os"
	"strings"

	"github.com/4yzz/text-encrypter/internal/codec"
	terrors "github.com/4yzz/text-encrypter/internal/errors"
)

const (
	// DefaultEncryptedSuffix marks sealed output files.
	DefaultEncryptedSuffix = ".enc"

	// DefaultDecryptedSuffix marks recovered files whose source name did
	// not carry the encrypted suffix.
	DefaultDecryptedSuffix = ".dec"
)

// Options names the transcoder's configuration points. The zero value uses
// the default suffixes.
type Options struct {
	// EncryptedSuffix is appended to encrypted output names, after any
	// existing extension.
	EncryptedSuffix string

	// DecryptedSuffix is appended when a decrypted source name does not
	// end with EncryptedSuffix.
	DecryptedSuffix string
}

// Transcoder applies a Codec to whole-file contents, deriving output names
// by suffix convention.
type Transcoder struct {
	codec     codec.Codec
	encSuffix string
	decSuffix string
}

// New returns a Transcoder using c and the given options.
func New(c codec.Codec, opts Options) Transcoder {
	if opts.EncryptedSuffix == "" {
		opts.EncryptedSuffix = DefaultEncryptedSuffix
	}
	if opts.DecryptedSuffix == "" {
		opts.DecryptedSuffix = DefaultDecryptedSuffix
	}
	return Transcoder{
		codec:     c,
		encSuffix: opts.EncryptedSuffix,
		decSuffix: opts.DecryptedSuffix,
	}
}

// EncryptFile seals the contents of src and writes the token to dst, or to
// src with the encrypted suffix appended when dst is empty. The source file
// is left untouched. Returns the path actually written.
func (t Transcoder) EncryptFile(src, dst string) (string, error) {
	if err := checkSource(src); err != nil {
		return "", err
	}

	plaintext, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read file at %s: %w", src, err)
	}

	token, err := t.codec.Seal(plaintext)
	if err != nil {
		return "", err
	}

	out := dst
	if out == "" {
		out = src + t.encSuffix
	}

	if err := os.WriteFile(out, token, 0600); err != nil {
		return "", fmt.Errorf("failed to write to %s: %w", out, err)
	}

	return out, nil
}

// DecryptFile reads src as a token, opens it, and writes the recovered
// bytes to dst. When dst is empty the output name strips one encrypted
// suffix if present, else appends the decrypted suffix. A name that never
// had the encrypted suffix and one already stripped are indistinguishable;
// both get the decrypted suffix, matching the suffix convention rather than
// guessing intent. Returns the path actually written.
func (t Transcoder) DecryptFile(src, dst string) (string, error) {
	if err := checkSource(src); err != nil {
		return "", err
	}

	token, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read file at %s: %w", src, err)
	}

	plaintext, err := t.codec.Open(token)
	if err != nil {
		return "", err
	}

	out := dst
	if out == "" {
		if strings.HasSuffix(src, t.encSuffix) {
			out = strings.TrimSuffix(src, t.encSuffix)
		} else {
			out = src + t.decSuffix
		}
	}

	// #nosec G306 -- The recovered file should be editable by the user.
	if err := os.WriteFile(out, plaintext, 0644); err != nil {
		return "", fmt.Errorf("failed to write to %s: %w", out, err)
	}

	return out, nil
}

// checkSource verifies src exists and is a regular file.
func checkSource(src string) error {
	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", terrors.ErrSourceNotFound, src)
		}
		return fmt.Errorf("failed to check file at %s: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", terrors.ErrSourceNotFound, src)
	}
	return nil
}
