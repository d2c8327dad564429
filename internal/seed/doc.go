// Package seed turns a mnemonic sentence and optional passphrase into
// 64 bytes of wallet seed material by deliberate key stretching.
//
// Two derivations are provided: Derive, the iterated HMAC-SHA512 stretch
// used by bitcoinj-era wallets, and Standard, the PBKDF2 construction from
// the final BIP-39 specification. Both are pure functions; neither
// persists or validates its inputs.
package seed
