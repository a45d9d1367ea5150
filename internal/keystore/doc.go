// Package keystore manages the lifecycle of the single symmetric key.
//
// The key is a fernet key persisted as its URL-safe base64 encoding in a
// plain file, with no additional framing. Exactly one key is active per
// invocation; it is never rotated or mutated.
//
// The default location is the per-user application data directory joined
// with "text-encrypter/fernet.key":
//
//   - Windows: %APPDATA%\text-encrypter\fernet.key
//   - macOS: ~/Library/Application Support/text-encrypter/fernet.key
//   - Linux: $XDG_DATA_HOME or ~/.local/share, then text-encrypter/fernet.key
//
// Resolving a key with no explicit path auto-provisions one at the default
// location on first use. Resolving an explicit path that does not exist is
// fatal and performs no writes. Callers must treat the auto-provisioning
// side effect as intentional: it trades first-run convenience for silently
// creating durable secret material.
package keystore
