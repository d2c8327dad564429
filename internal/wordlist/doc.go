// Package wordlist provides the integrity-checked 2048-word catalogue used
// by the mnemonic codec.
//
// A List is built once via Load (or English for the embedded canonical
// list) and is immutable afterwards, so it may be shared across goroutines
// without synchronisation. Lists are identified by the SHA-256 digest of
// their concatenated word bytes; the canonical English digest is pinned in
// EnglishDigest.
//
// Lookup relies on the list being sorted ascending, which the canonical
// list is; callers supplying alternate lists to Load are responsible for
// ordering.
package wordlist
