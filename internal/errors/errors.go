package errors

import "errors"

// Key errors indicate problems locating or reading the symmetric key.
var (
	// ErrKeyNotFound indicates an explicitly requested key file does not exist.
	ErrKeyNotFound = errors.New("key not found")

	// ErrKeyCorrupt indicates the key file exists but its contents are not a valid key.
	ErrKeyCorrupt = errors.New("key file is not a valid key")
)

// Input errors indicate problems with the data the user asked to process.
var (
	// ErrSourceNotFound indicates the input file is missing or not a regular file.
	ErrSourceNotFound = errors.New("source file not found")
)

// Cryptographic errors indicate failures while opening tokens.
var (
	// ErrDecryptionFailed indicates the token could not be verified. The
	// primitive does not distinguish a wrong key from a corrupted token;
	// both surface as this error.
	ErrDecryptionFailed = errors.New("failed to decrypt token")

	// ErrEncodingFailed indicates a token decrypted successfully but the
	// recovered payload is not valid UTF-8 text.
	ErrEncodingFailed = errors.New("decrypted payload is not valid text")
)
