// Package codec wraps the fernet authenticated-encryption primitive.
//
// A token is meaningful only under the key that produced it. Because fernet
// tokens are URL-safe base64 text, the same bytes serve both the printed
// text form and the raw form written to files.
package codec
