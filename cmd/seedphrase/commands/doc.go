// Package commands defines the seedphrase CLI.
//
// Commands
//
//   - generate   Produce a fresh mnemonic from system entropy
//   - validate   Check a mnemonic's words and checksum
//   - seed       Stretch a mnemonic (and passphrase) into a 64-byte seed
//   - wordlist   Show or verify wordlist integrity
//
// # Implementation
//
// The root command loads the embedded English wordlist and builds the codec
// once before any subcommand runs, so handlers share one immutable list.
// Mnemonics are accepted as arguments or as a single line on stdin; seeds
// and entropy are printed as hex and wiped afterwards.
package commands
