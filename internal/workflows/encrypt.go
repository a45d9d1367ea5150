package workflows

import (
	"context"

	"github.com/4yzz/text-encrypter/internal/keystore"
	"github.com/4yzz/text-encrypter/internal/transcoder"
)

// EncryptTextOptions configures the text encrypt workflow.
type EncryptTextOptions struct {
	// Text is the UTF-8 string to seal.
	Text string

	// KeyPath is an explicit key file. If empty, the default key is
	// resolved, auto-provisioning one on first use.
	KeyPath string

	// Store resolves the default key location.
	Store keystore.Store
}

// EncryptTextResult contains the outcome of a text encrypt operation.
type EncryptTextResult struct {
	// Token is the sealed text in its printable form.
	Token string

	// KeyPath is the key file that was used.
	KeyPath string

	// KeyCreated reports whether a new key was provisioned.
	KeyCreated bool
}

// EncryptText seals a text string into a token.
//
// Returns ErrKeyNotFound if an explicit key path is missing and
// ErrKeyCorrupt if the key file cannot be decoded.
func EncryptText(ctx context.Context, opts EncryptTextOptions) (*EncryptTextResult, error) {
	c, info, err := resolveCodec(opts.Store, opts.KeyPath)
	if err != nil {
		return nil, err
	}

	token, err := c.SealText(opts.Text)
	if err != nil {
		return nil, err
	}

	return &EncryptTextResult{
		Token:      token,
		KeyPath:    info.Path,
		KeyCreated: info.Created,
	}, nil
}

// EncryptFileOptions configures the file encrypt workflow.
type EncryptFileOptions struct {
	// File is the path of the file to encrypt.
	File string

	// Output overrides the derived output path when set.
	Output string

	// KeyPath is an explicit key file. If empty, the default key is
	// resolved, auto-provisioning one on first use.
	KeyPath string

	// Store resolves the default key location.
	Store keystore.Store
}

// EncryptFileResult contains the outcome of a file encrypt operation.
type EncryptFileResult struct {
	// OutputPath is the encrypted file that was written.
	OutputPath string

	// KeyPath is the key file that was used.
	KeyPath string

	// KeyCreated reports whether a new key was provisioned.
	KeyCreated bool
}

// EncryptFile seals a whole file into a token file.
//
// Returns ErrSourceNotFound if the input file is missing or not a regular
// file, plus the key resolution errors of EncryptText.
func EncryptFile(ctx context.Context, opts EncryptFileOptions) (*EncryptFileResult, error) {
	c, info, err := resolveCodec(opts.Store, opts.KeyPath)
	if err != nil {
		return nil, err
	}

	t := transcoder.New(c, transcoder.Options{})
	out, err := t.EncryptFile(opts.File, opts.Output)
	if err != nil {
		return nil, err
	}

	return &EncryptFileResult{
		OutputPath: out,
		KeyPath:    info.Path,
		KeyCreated: info.Created,
	}, nil
}
