package workflows

import (
	"context"

	"github.com/4yzz/text-encrypter/internal/keystore"
	"github.com/4yzz/text-encrypter/internal/transcoder"
)

// DecryptTextOptions configures the text decrypt workflow.
type DecryptTextOptions struct {
	// Token is the sealed text to open.
	Token string

	// KeyPath is an explicit key file. If empty, the default key is
	// resolved, auto-provisioning one on first use.
	KeyPath string

	// Store resolves the default key location.
	Store keystore.Store
}

// DecryptTextResult contains the outcome of a text decrypt operation.
type DecryptTextResult struct {
	// Text is the recovered plaintext.
	Text string

	// KeyPath is the key file that was used.
	KeyPath string

	// KeyCreated reports whether a new key was provisioned.
	KeyCreated bool
}

// DecryptText opens a token back into text.
//
// Returns ErrDecryptionFailed when the token is invalid or was sealed under
// a different key, and ErrEncodingFailed when the recovered payload is not
// valid UTF-8.
func DecryptText(ctx context.Context, opts DecryptTextOptions) (*DecryptTextResult, error) {
	c, info, err := resolveCodec(opts.Store, opts.KeyPath)
	if err != nil {
		return nil, err
	}

	text, err := c.OpenText(opts.Token)
	if err != nil {
		return nil, err
	}

	return &DecryptTextResult{
		Text:       text,
		KeyPath:    info.Path,
		KeyCreated: info.Created,
	}, nil
}

// DecryptFileOptions configures the file decrypt workflow.
type DecryptFileOptions struct {
	// File is the path of the encrypted file.
	File string

	// Output overrides the derived output path when set.
	Output string

	// KeyPath is an explicit key file. If empty, the default key is
	// resolved, auto-provisioning one on first use.
	KeyPath string

	// Store resolves the default key location.
	Store keystore.Store
}

// DecryptFileResult contains the outcome of a file decrypt operation.
type DecryptFileResult struct {
	// OutputPath is the recovered file that was written.
	OutputPath string

	// KeyPath is the key file that was used.
	KeyPath string

	// KeyCreated reports whether a new key was provisioned.
	KeyCreated bool
}

// DecryptFile opens a token file back into its original bytes.
//
// Returns ErrSourceNotFound if the input file is missing or not a regular
// file, and ErrDecryptionFailed when its contents don't verify.
func DecryptFile(ctx context.Context, opts DecryptFileOptions) (*DecryptFileResult, error) {
	c, info, err := resolveCodec(opts.Store, opts.KeyPath)
	if err != nil {
		return nil, err
	}

	t := transcoder.New(c, transcoder.Options{})
	out, err := t.DecryptFile(opts.File, opts.Output)
	if err != nil {
		return nil, err
	}

	return &DecryptFileResult{
		OutputPath: out,
		KeyPath:    info.Path,
		KeyCreated: info.Created,
	}, nil
}
