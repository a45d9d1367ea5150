// Package transcoder encrypts and decrypts whole files.
//
// Files are read into memory in full; there is no streaming mode. Output
// names follow a suffix convention: encrypting report.txt produces
// report.txt.enc, decrypting report.txt.enc produces report.txt, and
// decrypting a file without the encrypted suffix produces name.dec.
package transcoder
