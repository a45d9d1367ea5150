// Package errors provides typed error values for the text-encrypter application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Key errors: Key material issues (ErrKeyNotFound, ErrKeyCorrupt)
//   - Input errors: Missing input files (ErrSourceNotFound)
//   - Crypto errors: Token verification failures (ErrDecryptionFailed, ErrEncodingFailed)
//
// # Usage
//
// Return errors from internal packages:
//
//	if _, err := os.Stat(path); os.IsNotExist(err) {
//	    return nil, fmt.Errorf("%w: %s", errors.ErrKeyNotFound, path)
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, terrors.ErrDecryptionFailed) {
//	    // Show user-friendly message
//	}
//
// Note that ErrDecryptionFailed covers both a wrong key and a corrupted
// token: the underlying primitive rejects both the same way and does not
// report which occurred.
package errors
