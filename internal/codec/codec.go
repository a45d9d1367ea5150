package codec

import (
	"fmt"
	"unicode/utf8"

	terrors "github.com/4yzz/text-encrypter/internal/errors"

	"github.com/fernet/fernet-go"
)

// Codec seals payloads into opaque tokens under one key and opens them
// back. Token construction (nonce, timestamp, authentication tag) is
// entirely the primitive's; this type only maps its results onto the
// application's error taxonomy.
type Codec struct {
	key *fernet.Key
}

// New returns a Codec bound to key.
func New(key *fernet.Key) Codec {
	return Codec{key: key}
}

// Seal encrypts and signs payload, returning the token bytes. Tokens embed
// a fresh nonce and timestamp, so sealing the same payload twice yields two
// different tokens.
func (c Codec) Seal(payload []byte) ([]byte, error) {
	token, err := fernet.EncryptAndSign(payload, c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to seal payload: %w", err)
	}
	return token, nil
}

// Open verifies token and recovers the payload. Tokens are verified with no
// expiry: the embedded timestamp is authenticated but never aged out.
//
// Returns ErrDecryptionFailed when the token is malformed, truncated, or
// was sealed under a different key; the primitive does not report which.
func (c Codec) Open(token []byte) ([]byte, error) {
	payload := fernet.VerifyAndDecrypt(token, 0, []*fernet.Key{c.key})
	if payload == nil {
		return nil, terrors.ErrDecryptionFailed
	}
	return payload, nil
}

// SealText seals a UTF-8 string and returns the token in its textual form.
func (c Codec) SealText(text string) (string, error) {
	token, err := c.Seal([]byte(text))
	if err != nil {
		return "", err
	}
	return string(token), nil
}

// OpenText opens a textual token and decodes the payload as UTF-8.
//
// A payload that opens successfully but is not valid UTF-8 returns
// ErrEncodingFailed, which is distinct from an authentication failure.
func (c Codec) OpenText(token string) (string, error) {
	payload, err := c.Open([]byte(token))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(payload) {
		return "", terrors.ErrEncodingFailed
	}
	return string(payload), nil
}
