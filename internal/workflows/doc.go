// Package workflows implements the operations behind text-encrypter commands.
//
// Each workflow takes an Options struct, orchestrates the keystore, codec,
// and transcoder packages, and returns a Result struct. Workflows return
// sentinel errors from the internal errors package (wrapped with context);
// rendering failures and deciding exit status is the command layer's job.
package workflows
