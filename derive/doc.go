// Package derive implements the derivation engine of termpasshash.
//
// A hash is derived from a password and a salt by one of two pipelines:
//
//    legacy: salt||password -> SHA3-512 (iterated over its own hex text) -> base64 or hex
//    modern: password, salt -> Argon2id                                   -> base64
//
// The encoded result is truncated to a caller chosen number of characters.
// In create mode the whole pipeline runs twice and both results have to
// match before anything is handed out (see Verify).
//
// Nothing in this package prompts, prints or exits the process. All failures
// are returned as errors that wrap one of the sentinels in errors.go.
package derive
